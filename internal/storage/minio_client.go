package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
	"personalblog/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, ext string, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinIOClient connects to MinIO and creates the bucket when missing.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета %s: %w", cfg.BucketName, err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("ошибка создания бакета %s: %w", cfg.BucketName, err)
		}
		log.Info().Str("bucket", cfg.BucketName).Msg("Бакет MinIO создан")
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: BaseURL(cfg),
	}, nil
}

// BaseURL is the prefix of public object URLs: MINIO_PUBLIC_URL when set,
// otherwise the endpoint itself.
func BaseURL(cfg config.MinIO) string {
	if cfg.PublicURL != "" {
		return fmt.Sprintf("%s/%s", cfg.PublicURL, cfg.BucketName)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.BucketName)
}

// ObjectName lays uploads out by month: uploads/<yyyy>/<mm>/<uuid><ext>.
func ObjectName(now time.Time, ext string) string {
	return fmt.Sprintf("uploads/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)
}

// UploadImage stores file and returns its object name and public URL.
func (m *MinIOClient) UploadImage(ctx context.Context, ext string, contentType string, file io.Reader, size int64) (string, string, error) {
	now := time.Now().UTC()
	objectName := ObjectName(now, ext)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, m.baseURL + "/" + objectName, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
