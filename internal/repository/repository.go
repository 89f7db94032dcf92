package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"personalblog/internal/models"
)

// uniqueViolation is the Postgres SQLSTATE for a unique index conflict.
const uniqueViolation = "23505"

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	SlugExists(ctx context.Context, slug, excludePostID string) (bool, error)
	List(ctx context.Context, publishedOnly bool, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Stats(ctx context.Context) (*models.PostStats, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	List(ctx context.Context) ([]*models.Image, error)
}

type TablesRepository interface {
	ListTables(ctx context.Context) ([]string, error)
}

type Repository struct {
	Admins AdminRepository
	Posts  PostRepository
	Images ImageRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admins: NewAdminRepository(db),
		Posts:  NewPostRepository(db),
		Images: NewImageRepository(db),
		Tables: NewTablesRepository(db),
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
