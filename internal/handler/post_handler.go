package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"personalblog/internal/models"
	"personalblog/internal/service"
)

type PostsResponse struct {
	Posts []*models.Post `json:"posts"`
}

type PostResponse struct {
	Post *models.Post `json:"post"`
}

type CreatePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  string `json:"postId"`
	Slug    string `json:"slug"`
}

type UpdatePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Slug    string `json:"slug"`
}

type SlugResponse struct {
	Slug string `json:"slug"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	var req models.PostInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.validateRequest(req, models.ErrMissingPostFields); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, CreatePostResponse{
		Success: true,
		Message: "Пост успешно создан",
		PostID:  post.PostID,
		Slug:    post.Slug,
	}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, PostResponse{Post: post}, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	var req models.PostInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.validateRequest(req, models.ErrMissingPostFields); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), mux.Vars(r)["slug"], req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, UpdatePostResponse{
		Success: true,
		Message: "Пост успешно обновлен",
		Slug:    post.Slug,
	}, http.StatusOK)
}

func (h *Handlers) GetPostStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	stats, err := h.PostService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}

func (h *Handlers) Slugify(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	writeSuccess(w, SlugResponse{Slug: service.GenerateSlug(r.URL.Query().Get("title"))}, http.StatusOK)
}

// GetBlogPosts is the public list: published posts only.
func (h *Handlers) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPublishedPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPublishedPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, PostResponse{Post: post}, http.StatusOK)
}
