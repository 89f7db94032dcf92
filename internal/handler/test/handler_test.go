package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"personalblog/internal/auth"
	"personalblog/internal/config"
	handlers "personalblog/internal/handler"
	"personalblog/internal/models"
	"personalblog/internal/service"
)

type testEnv struct {
	auth    *MockAuthService
	posts   *MockPostService
	images  *MockImageService
	tables  *MockTablesService
	handler *handlers.Handlers
	router  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:   new(MockAuthService),
		posts:  new(MockPostService),
		images: new(MockImageService),
		tables: new(MockTablesService),
	}

	cfg := &config.Config{
		ServerPort:    8080,
		Env:           "development",
		MaxUploadSize: 1024 * 1024,
	}

	env.handler = handlers.NewHandlers(&service.Service{
		Auth:   env.auth,
		Post:   env.posts,
		Image:  env.images,
		Tables: env.tables,
	}, cfg)
	env.router = handlers.NewRouter(env.handler)

	return env
}

// serve runs req through the router. A non-nil claim is injected the way the
// session middleware does it.
func (e *testEnv) serve(req *http.Request, claim *models.SessionClaim) *httptest.ResponseRecorder {
	if claim != nil {
		req = req.WithContext(auth.WithSession(req.Context(), &auth.Session{Claim: *claim}))
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

var adminClaim = &models.SessionClaim{UserID: "admin-1", Username: "admin"}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(context.Background())
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()
	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func TestNewHandlers(t *testing.T) {
	env := newTestEnv(t)

	assert.NotNil(t, env.handler.AuthService)
	assert.NotNil(t, env.handler.PostService)
	assert.NotNil(t, env.handler.ImageService)
	assert.NotNil(t, env.handler.TablesService)
	assert.NotNil(t, env.handler.Cfg)
	assert.NotNil(t, env.handler.Validate)
}

func TestValidator_NotBlank(t *testing.T) {
	v := handlers.NewValidator()

	assert.Error(t, v.Struct(models.PostInput{Title: "   ", Slug: "a", Content: "c"}))
	assert.NoError(t, v.Struct(models.PostInput{Title: "t", Slug: "a", Content: "c"}))
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	env := newTestEnv(t)

	rr := env.serve(httptest.NewRequest(http.MethodGet, "/api/unknown", nil), nil)
	assertJSONError(t, rr, http.StatusNotFound, "Не найдено")

	tests := []struct {
		method string
		target string
	}{
		{http.MethodDelete, "/api/posts/hello"},
		{http.MethodPatch, "/api/posts/hello"},
		{http.MethodDelete, "/api/posts"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/images"},
		{http.MethodPost, "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := env.serve(httptest.NewRequest(tt.method, tt.target, nil), adminClaim)

			assertJSONError(t, rr, http.StatusMethodNotAllowed, "Method not allowed")
			env.posts.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
		})
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rr := env.serve(httptest.NewRequest(http.MethodGet, "/health", nil), nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestDatabaseHealth(t *testing.T) {
	t.Run("База доступна", func(t *testing.T) {
		env := newTestEnv(t)
		env.tables.On("ListTables", mock.Anything).Return([]string{"admins", "images", "posts"}, nil)

		rr := env.serve(httptest.NewRequest(http.MethodGet, "/api/health/db", nil), nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"connected":true,"tables":["admins","images","posts"],"countTables":3}`, rr.Body.String())
	})

	t.Run("База недоступна", func(t *testing.T) {
		env := newTestEnv(t)
		env.tables.On("ListTables", mock.Anything).Return(nil, assert.AnError)

		rr := env.serve(httptest.NewRequest(http.MethodGet, "/api/health/db", nil), nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, false, body["connected"])
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}
