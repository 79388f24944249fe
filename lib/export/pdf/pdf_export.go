package pdfexport

import (
	"bytes"
	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-onboarding-board/lib/board"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"strings"
)

type Provider interface {
	ExportOnboardingList(list []onboardingapimodels.OnboardingView) ([]byte, error)
}

var Instance Provider

// fontDir - каталог с DejaVuSansCondensed*.ttf, встроенные шрифты fpdf не умеют кириллицу
func NewHandler(fontDir string) {
	Instance = impl{fontDir: fontDir}
}

type impl struct {
	fontDir string
}

const (
	reportTitle = "Onboarding Status"
	fontFamily  = "DejaVu"
)

var (
	columnTitles = []string{"Candidate", "Status", "Start Date", "Documents", "Pending Documents"}
	columnWidths = []float64{70, 50, 35, 30, 92}

	statusColors = map[board.StatusClass][3]int{
		board.StatusClassInitiated: {225, 236, 250},
		board.StatusClassProgress:  {255, 243, 205},
		board.StatusClassCompleted: {212, 237, 218},
		board.StatusClassPending:   {248, 215, 218},
	}
)

func (i impl) ExportOnboardingList(list []onboardingapimodels.OnboardingView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportOnboardingList panic recover: %v", r)
		}
	}()
	if i.fontDir == "" {
		return nil, errors.New("не задан каталог шрифтов для pdf")
	}
	pdf := fpdf.New("L", "mm", "A4", i.fontDir)
	pdf.AddUTF8Font(fontFamily, "", "DejaVuSansCondensed.ttf")
	pdf.AddUTF8Font(fontFamily, "B", "DejaVuSansCondensed-Bold.ttf")
	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка загрузки шрифтов")
	}
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 12, reportTitle, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(235, 235, 235)
	for idx, title := range columnTitles {
		pdf.CellFormat(columnWidths[idx], 8, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	if len(list) == 0 {
		pdf.CellFormat(sum(columnWidths), 8, board.EmptyMessage, "1", 1, "C", false, 0, "")
	}
	for _, item := range list {
		card := board.NewCard(item)
		values := []string{
			card.CandidateName,
			card.StatusText,
			card.StartDate,
			card.DocumentsCompleted,
			strings.Join(item.PendingDocuments, ", "),
		}
		for idx, value := range values {
			fill := false
			// бейдж статуса
			if idx == 1 {
				color := statusColors[card.StatusClass]
				pdf.SetFillColor(color[0], color[1], color[2])
				fill = true
			}
			pdf.CellFormat(columnWidths[idx], 8, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "ошибка формирования pdf")
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}

func sum(values []float64) float64 {
	var result float64
	for _, v := range values {
		result += v
	}
	return result
}
