package service

import (
	"context"
	"errors"
	"strings"

	"personalblog/internal/models"
	"personalblog/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, input models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, currentSlug string, input models.PostInput) (*models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	GetPublishedPost(ctx context.Context, slug string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]*models.Post, error)
	ListPublishedPosts(ctx context.Context) ([]*models.Post, error)
	RecentPosts(ctx context.Context, limit int) ([]*models.Post, error)
	Stats(ctx context.Context) (*models.PostStats, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func requireFields(input models.PostInput) error {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Slug) == "" ||
		strings.TrimSpace(input.Content) == "" {
		return models.ErrMissingPostFields
	}
	return nil
}

// CreatePost validates the submitted slug as is (after trimming) and rejects
// it with ErrSlugTaken when any post already owns it.
func (p *postService) CreatePost(ctx context.Context, input models.PostInput) (*models.Post, error) {
	if err := requireFields(input); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if !IsValidSlug(slug) {
		return nil, models.ErrInvalidSlug
	}

	exists, err := p.postRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrSlugTaken
	}

	post := &models.Post{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     optionalText(input.Excerpt),
		Tags:        normalizeTags(input.Tags),
		Published:   input.Published,
		ReadingTime: ReadingTime(input.Content),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost replaces the post found under currentSlug. The new slug is
// lowercased before validation; a rename onto a slug owned by another post
// fails with ErrSlugTaken and writes nothing.
func (p *postService) UpdatePost(ctx context.Context, currentSlug string, input models.PostInput) (*models.Post, error) {
	if err := requireFields(input); err != nil {
		return nil, err
	}

	nextSlug := strings.ToLower(strings.TrimSpace(input.Slug))
	if !IsValidSlug(nextSlug) {
		return nil, models.ErrInvalidSlug
	}

	post, err := p.findBySlug(ctx, currentSlug)
	if err != nil {
		return nil, err
	}

	if nextSlug != post.Slug {
		exists, err := p.postRepo.SlugExists(ctx, nextSlug, post.PostID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.ErrSlugTaken
		}
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Slug = nextSlug
	post.Content = input.Content
	post.Excerpt = optionalText(input.Excerpt)
	post.Tags = normalizeTags(input.Tags)
	post.Published = input.Published
	post.ReadingTime = ReadingTime(input.Content)

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// findBySlug tries the slug exactly, then its lowercase form.
func (p *postService) findBySlug(ctx context.Context, slug string) (*models.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, models.ErrPostNotFound
	}

	post, err := p.postRepo.GetBySlug(ctx, slug)
	if err == nil || !errors.Is(err, models.ErrPostNotFound) {
		return post, err
	}

	normalized := strings.ToLower(slug)
	if normalized == slug {
		return nil, err
	}

	return p.postRepo.GetBySlug(ctx, normalized)
}

func (p *postService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return p.findBySlug(ctx, slug)
}

// GetPublishedPost hides drafts behind ErrPostNotFound.
func (p *postService) GetPublishedPost(ctx context.Context, slug string) (*models.Post, error) {
	post, err := p.findBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, models.ErrPostNotFound
	}
	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return p.postRepo.List(ctx, false, 0)
}

func (p *postService) ListPublishedPosts(ctx context.Context) ([]*models.Post, error) {
	return p.postRepo.List(ctx, true, 0)
}

func (p *postService) RecentPosts(ctx context.Context, limit int) ([]*models.Post, error) {
	return p.postRepo.List(ctx, false, limit)
}

func (p *postService) Stats(ctx context.Context) (*models.PostStats, error) {
	return p.postRepo.Stats(ctx)
}
