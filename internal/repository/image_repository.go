package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"personalblog/internal/models"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (image_id, object_name, image_url, content_type, size, created_at)
		VALUES (:image_id, :object_name, :image_url, :content_type, :size, :created_at)
	`

	if image.ImageID == "" {
		image.ImageID = uuid.New().String()
	}

	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.NamedExecContext(ctx, query, image)
	if err != nil {
		return fmt.Errorf("ошибка при создании изображения: %w", err)
	}

	return nil
}

func (r *imageRepository) List(ctx context.Context) ([]*models.Image, error) {
	query := `
		SELECT image_id, object_name, image_url, content_type, size, created_at
		FROM images ORDER BY created_at DESC
	`

	images := []*models.Image{}
	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении изображений: %w", err)
	}

	return images, nil
}
