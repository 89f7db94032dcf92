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

const postColumns = `post_id, title, slug, content, excerpt, tags, published, reading_time, created_at, updated_at`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts post and stamps both timestamps. A slug already present in
// the unique index yields ErrSlugTaken.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(post_id, title, slug, content, excerpt, tags, published, reading_time, created_at, updated_at)
		VALUES
		(:post_id, :title, :slug, :content, :excerpt, :tags, :published, :reading_time, :created_at, :updated_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrSlugTaken
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

// GetBySlug is an exact match only.
func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// SlugExists reports whether a post other than excludePostID owns slug.
func (r *postRepository) SlugExists(ctx context.Context, slug, excludePostID string) (bool, error) {
	var (
		exists bool
		err    error
	)

	if excludePostID == "" {
		err = r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug)
	} else {
		err = r.db.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1 AND post_id <> $2)`, slug, excludePostID)
	}
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке slug: %w", err)
	}

	return exists, nil
}

// List returns posts newest first. limit <= 0 means no limit.
func (r *postRepository) List(ctx context.Context, publishedOnly bool, limit int) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts`
	args := []interface{}{}

	if publishedOnly {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	posts := []*models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

// Update overwrites every mutable column of the post identified by PostID and
// bumps updated_at. created_at is never written.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			slug = :slug,
			content = :content,
			excerpt = :excerpt,
			tags = :tags,
			published = :published,
			reading_time = :reading_time,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.UpdatedAt = time.Now().UTC()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrSlugTaken
		}
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrPostNotFound
	}

	return nil
}

func (r *postRepository) Stats(ctx context.Context) (*models.PostStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE published) AS published,
			COUNT(*) FILTER (WHERE NOT published) AS drafts
		FROM posts
	`

	var stats models.PostStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return &stats, nil
}
