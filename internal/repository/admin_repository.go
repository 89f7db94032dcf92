package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"personalblog/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create stores an administrator whose PasswordHash is already computed.
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.AdminID == "" {
		admin.AdminID = uuid.New().String()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO admins (admin_id, username, password_hash, created_at)
		VALUES (:admin_id, :username, :password_hash, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrUsernameTaken
		}
		return fmt.Errorf("ошибка при создании администратора: %w", err)
	}

	return nil
}

// GetByUsername matches the username exactly; usernames are case-sensitive.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT admin_id, username, password_hash, created_at FROM admins WHERE username = $1`

	err := r.db.GetContext(ctx, &admin, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrAdminNotFound
		}
		return nil, fmt.Errorf("ошибка при получении администратора: %w", err)
	}

	return &admin, nil
}
