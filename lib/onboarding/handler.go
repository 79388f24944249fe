package onboarding

import (
	"bytes"
	"context"
	"fmt"
	"hr-onboarding-board/db"
	pdfexport "hr-onboarding-board/lib/export/pdf"
	xlsexport "hr-onboarding-board/lib/export/xls"
	filestorage "hr-onboarding-board/lib/file-storage"
	onboardingstore "hr-onboarding-board/lib/onboarding/store"
	initchecker "hr-onboarding-board/lib/utils/init-checker"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"time"
)

type Provider interface {
	ListOnboarding(ctx context.Context) ([]onboardingapimodels.OnboardingView, error)
	ExportXls(ctx context.Context) (*bytes.Buffer, error)
	ExportPdf(ctx context.Context) ([]byte, error)
	// ArchiveXls выгружает xlsx в хранилище и возвращает ссылку
	ArchiveXls(ctx context.Context) (link string, err error)
}

var Instance Provider

const XlsContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func NewHandler() {
	instance := impl{
		store: onboardingstore.NewInstance(db.DB),
		xls:   xlsexport.Instance,
		pdf:   pdfexport.Instance,
		files: filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"xls", instance.xls,
		"pdf", instance.pdf,
		"files", instance.files,
	)
	Instance = instance
}

type impl struct {
	store onboardingstore.Provider
	xls   xlsexport.Provider
	pdf   pdfexport.Provider
	files filestorage.Provider
}

func (i impl) ListOnboarding(ctx context.Context) ([]onboardingapimodels.OnboardingView, error) {
	list, err := i.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]onboardingapimodels.OnboardingView, 0, len(list))
	for _, rec := range list {
		result = append(result, onboardingapimodels.OnboardingConvert(rec))
	}
	return result, nil
}

func (i impl) ExportXls(ctx context.Context) (*bytes.Buffer, error) {
	list, err := i.ListOnboarding(ctx)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportOnboardingList(list)
}

func (i impl) ExportPdf(ctx context.Context) ([]byte, error) {
	list, err := i.ListOnboarding(ctx)
	if err != nil {
		return nil, err
	}
	return i.pdf.ExportOnboardingList(list)
}

func (i impl) ArchiveXls(ctx context.Context) (link string, err error) {
	buf, err := i.ExportXls(ctx)
	if err != nil {
		return "", err
	}
	return i.files.ArchiveExport(ctx, ExportFileName("xlsx"), XlsContentType, buf.Bytes())
}

func ExportFileName(ext string) string {
	return fmt.Sprintf("onboarding_%s.%s", time.Now().Format("20060102"), ext)
}
