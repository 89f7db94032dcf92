package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
	"personalblog/internal/models"
	"personalblog/internal/repository"
	"personalblog/internal/storage"
)

// allowedImageTypes maps accepted content types to stored file extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var ErrImageTooLarge = models.NewValidationError("Файл превышает допустимый размер")

type ImageService interface {
	UploadImage(ctx context.Context, file io.Reader) (*models.Image, error)
	ListImages(ctx context.Context) ([]*models.Image, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
	storage   storage.Storage
	maxSize   int64
}

// NewImageService builds the upload service. A nil storage disables uploads.
func NewImageService(imageRepo repository.ImageRepository, storage storage.Storage, maxSize int64) ImageService {
	return &imageService{
		imageRepo: imageRepo,
		storage:   storage,
		maxSize:   maxSize,
	}
}

// DetectImageType sniffs data and returns its content type and extension
// when it is one of the accepted formats.
func DetectImageType(data []byte) (string, string, bool) {
	mtype := mimetype.Detect(data)
	for contentType, ext := range allowedImageTypes {
		if mtype.Is(contentType) {
			return contentType, ext, true
		}
	}
	return "", "", false
}

func (s *imageService) UploadImage(ctx context.Context, file io.Reader) (*models.Image, error) {
	if s.storage == nil {
		return nil, models.ErrImageStorageDisabled
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrImageTooLarge
	}

	contentType, ext, ok := DetectImageType(data)
	if !ok {
		return nil, models.ErrUnsupportedImage
	}

	size := int64(len(data))
	objectName, imageURL, err := s.storage.UploadImage(ctx, ext, contentType, bytes.NewReader(data), size)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		ObjectName:  objectName,
		ImageURL:    imageURL,
		ContentType: contentType,
		Size:        size,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Error().Err(delErr).Str("object", objectName).Msg("Не удалось удалить загруженный файл")
		}
		return nil, err
	}

	return image, nil
}

func (s *imageService) ListImages(ctx context.Context) ([]*models.Image, error) {
	if s.storage == nil {
		return nil, models.ErrImageStorageDisabled
	}
	return s.imageRepo.List(ctx)
}
