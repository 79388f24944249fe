package filestorage

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	s3client "hr-onboarding-board/s3"
	"time"
)

type Provider interface {
	// ArchiveExport сохраняет файл выгрузки и возвращает временную ссылку на него
	ArchiveExport(ctx context.Context, fileName, contentType string, file []byte) (link string, err error)
}

var Instance Provider

var ErrNotConfigured = errors.New("хранилище файлов не настроено")

const exportFolder = "exports"

func NewHandler(client s3client.Provider, linkExpire time.Duration) {
	if client == nil {
		log.Warn("хранилище файлов не настроено, архивирование выгрузок отключено")
		Instance = disabledImpl{}
		return
	}
	Instance = impl{
		client:     client,
		linkExpire: linkExpire,
		now:        time.Now,
	}
}

type impl struct {
	client     s3client.Provider
	linkExpire time.Duration
	now        func() time.Time
}

func (i impl) ArchiveExport(ctx context.Context, fileName, contentType string, file []byte) (link string, err error) {
	objectName := fmt.Sprintf("%s/%s/%s", exportFolder, i.now().UTC().Format("2006-01-02T150405"), fileName)
	logger := log.WithField("object_name", objectName)
	if err = i.client.MakeBucket(ctx); err != nil {
		return "", err
	}
	if err = i.client.PutObject(ctx, objectName, contentType, file); err != nil {
		return "", err
	}
	link, err = i.client.PresignedGetObject(ctx, objectName, i.linkExpire)
	if err != nil {
		return "", err
	}
	logger.Info("выгрузка сохранена в хранилище")
	return link, nil
}

type disabledImpl struct{}

func (disabledImpl) ArchiveExport(ctx context.Context, fileName, contentType string, file []byte) (string, error) {
	return "", ErrNotConfigured
}
