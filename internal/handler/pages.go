package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"personalblog/internal/auth"
	"personalblog/internal/models"
)

const recentPostsLimit = 5

type pageData struct {
	Title    string
	Username string
	Posts    []*models.Post
	Post     *models.Post
	Stats    *models.PostStats
}

func (h *Handlers) render(w http.ResponseWriter, page string, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates[page].ExecuteTemplate(w, "base", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("Ошибка отрисовки страницы")
	}
}

func (h *Handlers) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, models.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Ошибка при обработке страницы")
	http.Error(w, internalErrorMessage, http.StatusInternalServerError)
}

// adminSession is the page counterpart of requireSession: anonymous
// visitors are sent to the login page.
func (h *Handlers) adminSession(w http.ResponseWriter, r *http.Request) (models.SessionClaim, bool) {
	if claim, ok := auth.ClaimFromContext(r.Context()); ok {
		return claim, true
	}
	if token := auth.TokenFromRequest(r); token != "" {
		if session, ok := h.AuthService.Authenticate(r.Context(), token); ok {
			return session.Claim, true
		}
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return models.SessionClaim{}, false
}

func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPublishedPosts(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	claim, _ := auth.ClaimFromContext(r.Context())
	h.render(w, "home.html", http.StatusOK, pageData{Title: "Блог", Username: claim.Username, Posts: posts})
}

func (h *Handlers) BlogPostPage(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPublishedPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	claim, _ := auth.ClaimFromContext(r.Context())
	h.render(w, "post.html", http.StatusOK, pageData{Title: post.Title, Username: claim.Username, Post: post})
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", http.StatusOK, pageData{Title: "Вход"})
}

func (h *Handlers) AdminPage(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	stats, err := h.PostService.Stats(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	posts, err := h.PostService.RecentPosts(r.Context(), recentPostsLimit)
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	h.render(w, "admin.html", http.StatusOK, pageData{
		Title:    "Админка",
		Username: claim.Username,
		Posts:    posts,
		Stats:    stats,
	})
}

func (h *Handlers) AdminPostsPage(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	h.render(w, "posts.html", http.StatusOK, pageData{Title: "Все посты", Username: claim.Username, Posts: posts})
}

func (h *Handlers) NewPostPage(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	h.render(w, "editor.html", http.StatusOK, pageData{Title: "Новый пост", Username: claim.Username})
}

func (h *Handlers) EditPostPage(w http.ResponseWriter, r *http.Request) {
	claim, ok := h.adminSession(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.pageError(w, r, err)
		return
	}

	h.render(w, "editor.html", http.StatusOK, pageData{Title: post.Title, Username: claim.Username, Post: post})
}
