package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers every route on one flat table so that the JSON 404 and
// 405 handlers cover all of them. /api/posts/stats must precede
// /api/posts/{slug}.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/health/db", h.DatabaseHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", h.Logout).Methods(http.MethodPost)

	r.HandleFunc("/api/posts", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/stats", h.GetPostStats).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{slug}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{slug}", h.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/api/slugify", h.Slugify).Methods(http.MethodGet)

	r.HandleFunc("/api/images", h.UploadImage).Methods(http.MethodPost)
	r.HandleFunc("/api/images", h.GetImages).Methods(http.MethodGet)

	r.HandleFunc("/api/blog", h.GetBlogPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/blog/{slug}", h.GetBlogPost).Methods(http.MethodGet)

	r.HandleFunc("/", h.HomePage).Methods(http.MethodGet)
	r.HandleFunc("/blog", h.HomePage).Methods(http.MethodGet)
	r.HandleFunc("/blog/{slug}", h.BlogPostPage).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/admin", h.AdminPage).Methods(http.MethodGet)
	r.HandleFunc("/admin/posts", h.AdminPostsPage).Methods(http.MethodGet)
	r.HandleFunc("/admin/posts/new", h.NewPostPage).Methods(http.MethodGet)
	r.HandleFunc("/admin/posts/{slug}", h.EditPostPage).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Не найдено", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
