package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecosphere/ecosphere-api/internal/config"
	"github.com/ecosphere/ecosphere-api/internal/handlers"
	"github.com/ecosphere/ecosphere-api/internal/repository"
	"github.com/ecosphere/ecosphere-api/internal/services"
	"github.com/ecosphere/ecosphere-api/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T) *mux.Router {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret", TokenExpiry: 1}
	svc := services.NewUserService(repository.NewMemoryStore())
	handler := handlers.NewUserHandler(svc, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/users/register", handler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", handler.LoginUserHandler).Methods("POST")

	protected := router.PathPrefix("/users").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protected.HandleFunc("/{id}", handler.GetUserHandler).Methods("GET")
	return router
}

func postJSON(t *testing.T, router *mux.Router, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndLoginFlow(t *testing.T) {
	router := newUserRouter(t)

	rec := postJSON(t, router, "/users/register",
		`{"name": "Aruzhan", "email": "aruzhan@example.com", "password": "s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "s3cret-pass",
		"password material must never appear in responses")

	var registered struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.ID)

	rec = postJSON(t, router, "/users/login",
		`{"email": "aruzhan@example.com", "password": "s3cret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.User.ID)

	// The issued token opens the owner's profile but nobody else's.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/"+registered.ID, nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/users/someone-else", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newUserRouter(t)

	rec := postJSON(t, router, "/users/register",
		`{"name": "Aruzhan", "email": "aruzhan@example.com", "password": "s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/users/login",
		`{"email": "aruzhan@example.com", "password": "wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "authentication_error", body["error"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	router := newUserRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/users/abc", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
