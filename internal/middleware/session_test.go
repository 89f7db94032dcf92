package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"personalblog/internal/auth"
	"personalblog/internal/models"
)

const testSecret = "middleware-test-secret-middleware-test"

type tokenAuthenticator struct {
	tokens *auth.TokenManager
	calls  int
}

func (a *tokenAuthenticator) Authenticate(_ context.Context, token string) (*auth.Session, bool) {
	a.calls++
	return a.tokens.Verify(token)
}

func newAuthenticator(t *testing.T) *tokenAuthenticator {
	t.Helper()
	tokens, err := auth.NewTokenManager(testSecret)
	require.NoError(t, err)
	return &tokenAuthenticator{tokens: tokens}
}

func issueToken(t *testing.T, now func() time.Time) string {
	t.Helper()
	tokens, err := auth.NewTokenManager(testSecret, auth.WithClock(now))
	require.NoError(t, err)
	token, _, err := tokens.Issue(models.SessionClaim{UserID: "admin-1", Username: "admin"})
	require.NoError(t, err)
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMatchesRoute(t *testing.T) {
	tests := []struct {
		path string
		base string
		want bool
	}{
		{"/admin", "/admin", true},
		{"/admin/", "/admin", true},
		{"/admin/posts/new", "/admin", true},
		{"/administrator", "/admin", false},
		{"/", "/admin", false},
		{"/login", "/login", true},
		{"/login/", "/login", true},
		{"/loginx", "/login", false},
		{"/api/auth/login", "/login", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesRoute(tt.path, tt.base))
		})
	}
}

func TestGate(t *testing.T) {
	authenticator := newAuthenticator(t)
	valid := issueToken(t, time.Now)
	expired := issueToken(t, func() time.Time { return time.Now().Add(-auth.SessionTTL - time.Hour) })

	handler := Gate(authenticator, DefaultGateConfig())(okHandler())

	tests := []struct {
		name     string
		path     string
		cookie   string
		status   int
		location string
	}{
		{"Админка без cookie", "/admin", "", http.StatusSeeOther, "/login"},
		{"Вложенная страница админки без cookie", "/admin/posts/new", "", http.StatusSeeOther, "/login"},
		{"Админка с истёкшим токеном", "/admin", expired, http.StatusSeeOther, "/login"},
		{"Админка с мусором в cookie", "/admin", "garbage", http.StatusSeeOther, "/login"},
		{"Админка с действующим токеном", "/admin/posts", valid, http.StatusOK, ""},
		{"Логин с действующим токеном", "/login", valid, http.StatusSeeOther, "/admin"},
		{"Логин без cookie", "/login", "", http.StatusOK, ""},
		{"Логин с истёкшим токеном", "/login", expired, http.StatusOK, ""},
		{"Публичная страница", "/", "", http.StatusOK, ""},
		{"Похожий на админку путь", "/administrator", "", http.StatusOK, ""},
		{"API не перенаправляется", "/api/posts", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}

func TestGate_UsesInjectedSession(t *testing.T) {
	authenticator := newAuthenticator(t)
	valid := issueToken(t, time.Now)

	var claim models.SessionClaim
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claim, _ = auth.ClaimFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Chain(inner, Gate(authenticator, DefaultGateConfig()), SessionMiddleware(authenticator))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: valid})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "admin", claim.Username)
	assert.Equal(t, 1, authenticator.calls)
}

func TestSessionMiddleware(t *testing.T) {
	authenticator := newAuthenticator(t)
	valid := issueToken(t, time.Now)

	var (
		got bool
		hit bool
	)
	handler := SessionMiddleware(authenticator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, got = auth.SessionFromContext(r.Context())
	}))

	t.Run("Действующий токен", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: valid})

		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, hit)
		assert.True(t, got)
	})

	t.Run("Недействительный токен не блокирует запрос", func(t *testing.T) {
		hit, got = false, false
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: valid + "x"})

		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, hit)
		assert.False(t, got)
	})
}
