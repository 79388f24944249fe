package s3client

import (
	"bytes"
	"context"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"time"
)

type Provider interface {
	MakeBucket(ctx context.Context) error
	PutObject(ctx context.Context, objectName, contentType string, data []byte) error
	PresignedGetObject(ctx context.Context, objectName string, expires time.Duration) (string, error)
}

type s3client struct {
	minioClient *minio.Client
	bucketName  string
}

func NewClient(minioClient *minio.Client, bucketName string) Provider {
	return &s3client{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

func (s s3client) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := s.minioClient.BucketExists(ctx, s.bucketName)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки бакета")
	}
	if exists {
		return nil
	}
	err = s.minioClient.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return errors.Wrap(err, "ошибка создания бакета")
	}
	return nil
}

func (s s3client) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в S3")
	}
	return nil
}

func (s s3client) PresignedGetObject(ctx context.Context, objectName string, expires time.Duration) (string, error) {
	link, err := s.minioClient.PresignedGetObject(ctx, s.bucketName, objectName, expires, nil)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения ссылки на файл")
	}
	return link.String(), nil
}
