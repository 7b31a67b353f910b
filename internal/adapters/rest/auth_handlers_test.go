package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-console-service/internal/adapters/rest"
	"admin-console-service/internal/core/domain"
	"admin-console-service/internal/core/port/usecases_port"
)

type stubLoginUC struct {
	user      *domain.AdminUser
	fieldErrs usecases_port.FieldErrors
	err       error
}

func (s *stubLoginUC) Execute(ctx context.Context, email, password string) (*domain.AdminUser, usecases_port.FieldErrors, error) {
	return s.user, s.fieldErrs, s.err
}

type stubSession struct {
	user  *domain.AdminUser
	token string
}

func (s *stubSession) SetSession(user *domain.AdminUser, token string) error {
	s.user = user
	s.token = token
	return nil
}
func (s *stubSession) ClearSession() error            { s.user = nil; s.token = ""; return nil }
func (s *stubSession) IsAuthenticated() bool          { return s.token != "" }
func (s *stubSession) Token() string                  { return s.token }
func (s *stubSession) CurrentUser() *domain.AdminUser { return s.user }

func TestHandleLoginSuccess(t *testing.T) {
	uc := &stubLoginUC{user: &domain.AdminUser{ID: 1, Name: "Admin", Email: "admin@example.com", Role: "ADMIN"}}
	h := rest.NewAuthHandlers(uc, &stubSession{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "secret1"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User struct {
			ID    int64  `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "admin@example.com", resp.User.Email)
}

func TestHandleLoginValidationErrors(t *testing.T) {
	uc := &stubLoginUC{
		fieldErrs: usecases_port.FieldErrors{"email": "Please enter a valid email"},
		err:       domain.ErrValidationFailed,
	}
	h := rest.NewAuthHandlers(uc, &stubSession{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "nope", "password": "secret1"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid email")
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	h := rest.NewAuthHandlers(&stubLoginUC{err: domain.ErrInvalidCredentials}, &stubSession{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "wrong1"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleLoginMalformedBody(t *testing.T) {
	h := rest.NewAuthHandlers(&stubLoginUC{}, &stubSession{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogoutClearsSession(t *testing.T) {
	session := &stubSession{user: &domain.AdminUser{ID: 1}, token: "jwt-token"}
	h := rest.NewAuthHandlers(&stubLoginUC{}, session)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.HandleLogout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, session.IsAuthenticated())
}

func TestHandleSession(t *testing.T) {
	session := &stubSession{}
	h := rest.NewAuthHandlers(&stubLoginUC{}, session)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	rec := httptest.NewRecorder()
	h.HandleSession(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	session.user = &domain.AdminUser{ID: 1, Email: "admin@example.com"}
	rec = httptest.NewRecorder()
	h.HandleSession(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestSessionMiddlewareBlocksAnonymous(t *testing.T) {
	session := &stubSession{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := rest.SessionMiddleware(session)(next)

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	session.token = "jwt-token"
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
