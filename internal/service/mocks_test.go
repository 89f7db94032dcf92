package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"personalblog/internal/models"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug, excludePostID string) (bool, error) {
	args := m.Called(ctx, slug, excludePostID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, publishedOnly bool, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, publishedOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Stats(ctx context.Context) (*models.PostStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostStats), args.Error(1)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) List(ctx context.Context) ([]*models.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, ext string, contentType string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, ext, contentType, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
