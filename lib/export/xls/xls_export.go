package xlsexport

import (
	"bytes"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hr-onboarding-board/lib/board"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"strings"
)

type Provider interface {
	ExportOnboardingList(list []onboardingapimodels.OnboardingView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const sheetName = "Onboarding"

var onboardingHeaders = []string{"Candidate", "Status", "Start Date", "Documents Completed", "Pending Documents"}

func (i impl) ExportOnboardingList(list []onboardingapimodels.OnboardingView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, onboardingHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeOnboardingData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeOnboardingData(f *excelize.File, sheet string, list []onboardingapimodels.OnboardingView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(onboardingHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		card := board.NewCard(item)
		values := []interface{}{
			card.CandidateName,
			card.StatusText,
			card.StartDate,
			card.DocumentsCompleted,
			strings.Join(item.PendingDocuments, ", "),
		}
		for idx, value := range values {
			if str, ok := value.(string); ok && str == "" {
				continue
			}
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
