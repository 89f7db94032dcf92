package middleware

import (
	"context"
	"net/http"
	"strings"

	"personalblog/internal/auth"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, bool)
}

// SessionMiddleware verifies the session cookie once per request and injects
// the session into the context. It never rejects a request.
func SessionMiddleware(authenticator Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromRequest(r)
			if token != "" {
				if session, ok := authenticator.Authenticate(r.Context(), token); ok {
					r = r.WithContext(auth.WithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

type GateConfig struct {
	ProtectedPrefix string
	LoginPath       string
	HomePath        string
}

func DefaultGateConfig() GateConfig {
	return GateConfig{
		ProtectedPrefix: "/admin",
		LoginPath:       "/login",
		HomePath:        "/admin",
	}
}

// matchesRoute reports whether path is base itself or lies below it.
func matchesRoute(path, base string) bool {
	return path == base || strings.HasPrefix(path, strings.TrimSuffix(base, "/")+"/")
}

// Gate redirects anonymous requests for protected pages to the login page and
// authenticated requests for the login page to the protected home. Everything
// else passes through.
func Gate(authenticator Authenticator, cfg GateConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected := matchesRoute(r.URL.Path, cfg.ProtectedPrefix)
			login := matchesRoute(r.URL.Path, cfg.LoginPath)
			if !protected && !login {
				next.ServeHTTP(w, r)
				return
			}

			session, ok := auth.SessionFromContext(r.Context())
			if !ok {
				if token := auth.TokenFromRequest(r); token != "" {
					session, ok = authenticator.Authenticate(r.Context(), token)
				}
				if ok {
					r = r.WithContext(auth.WithSession(r.Context(), session))
				}
			}

			switch {
			case protected && !ok:
				http.Redirect(w, r, cfg.LoginPath, http.StatusSeeOther)
			case login && ok:
				http.Redirect(w, r, cfg.HomePath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
