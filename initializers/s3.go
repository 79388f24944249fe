package initializers

import (
	"context"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"hr-onboarding-board/config"
	s3client "hr-onboarding-board/s3"
)

// InitS3 возвращает nil, если хранилище не настроено или недоступно
func InitS3(ctx context.Context) s3client.Provider {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, отсутствует настройка S3_ENDPOINT")
		return nil
	}
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return nil
	}

	// Проверка соединения
	_, err = minioClient.ListBuckets(ctx)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось — ListBuckets вернул ошибку")
	}

	log.Info("S3 клиент успешно инициализирован")
	return s3client.NewClient(minioClient, config.Conf.S3.BucketName)
}
