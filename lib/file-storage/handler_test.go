package filestorage

import (
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"time"
)

type fakeS3 struct {
	objects    map[string][]byte
	putErr     error
	bucketMade bool
}

func (f *fakeS3) MakeBucket(ctx context.Context) error {
	f.bucketMade = true
	return nil
}

func (f *fakeS3) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[objectName] = data
	return nil
}

func (f *fakeS3) PresignedGetObject(ctx context.Context, objectName string, expires time.Duration) (string, error) {
	return "https://s3.local/bucket/" + objectName + "?expires=" + expires.String(), nil
}

func TestArchiveExport(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)

	t.Run(`file uploaded and link returned`, func(t *testing.T) {
		s3 := &fakeS3{objects: map[string][]byte{}}
		i := impl{client: s3, linkExpire: time.Hour, now: func() time.Time { return now }}
		link, err := i.ArchiveExport(context.TODO(), "onboarding.xlsx", "application/octet-stream", []byte("data"))
		require.Nil(t, err)
		require.True(t, s3.bucketMade)
		require.Equal(t, []byte("data"), s3.objects["exports/2024-03-05T102030/onboarding.xlsx"])
		require.True(t, strings.HasPrefix(link, "https://s3.local/bucket/exports/2024-03-05T102030/onboarding.xlsx"))
		require.Contains(t, link, "expires=1h0m0s")
	})

	t.Run(`upload error`, func(t *testing.T) {
		s3 := &fakeS3{objects: map[string][]byte{}, putErr: errors.New("access denied")}
		i := impl{client: s3, linkExpire: time.Hour, now: func() time.Time { return now }}
		link, err := i.ArchiveExport(context.TODO(), "onboarding.xlsx", "application/octet-stream", []byte("data"))
		require.Empty(t, link)
		require.EqualError(t, err, "access denied")
	})

	t.Run(`storage not configured`, func(t *testing.T) {
		NewHandler(nil, time.Hour)
		_, err := Instance.ArchiveExport(context.TODO(), "onboarding.xlsx", "application/octet-stream", nil)
		require.True(t, errors.Is(err, ErrNotConfigured))
	})
}
