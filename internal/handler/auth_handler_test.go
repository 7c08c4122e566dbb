package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/repository"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/familyalbum/album-backend/pkg/i18n"
	"github.com/familyalbum/album-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T) *testServer {
	t.Helper()
	db := setupTestDB(t)
	manager := jwt.NewManager("test-secret", 900, 3600)
	h := NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), manager), false, 3600)

	r := gin.New()
	r.Use(middleware.I18n(i18n.Default()))
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", middleware.JWTAuth(manager), h.Me)
	return &testServer{router: r, db: db}
}

type tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func TestAuthFlow(t *testing.T) {
	s := newAuthServer(t)

	w, env := s.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "Ann@Example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	signed := decode[tokens](t, env.Data)
	assert.NotEmpty(t, signed.AccessToken)
	assert.Contains(t, w.Header().Get("Set-Cookie"), refreshCookie+"=")
	assert.NotContains(t, w.Body.String(), "password")

	w, _ = s.do(t, http.MethodPost, "/auth/signup", map[string]string{
		"email":    "ann@example.com",
		"password": "another pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = s.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "ann@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = s.do(t, http.MethodPost, "/auth/login", map[string]string{"email": "ANN@example.com", "password": "correct horse"})
	require.Equal(t, http.StatusOK, w.Code)
	logged := decode[tokens](t, env.Data)

	w, env = s.do(t, http.MethodGet, "/auth/me", nil, "Authorization", "Bearer "+logged.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"email":"ann@example.com"`)

	// body 로 전달한 refresh token
	w, env = s.do(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": logged.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[tokens](t, env.Data).AccessToken)

	// cookie 가 우선
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"garbage"}`))
	req.AddCookie(&http.Cookie{Name: refreshCookie, Value: logged.RefreshToken})
	w, _ = s.serve(t, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": logged.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/auth/refresh", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_WeakPassword(t *testing.T) {
	s := newAuthServer(t)

	w, env := s.do(t, http.MethodPost, "/auth/signup", map[string]string{"email": "bob@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Could not create the account", env.Error.Message)
}

func TestLogout_ClearsCookie(t *testing.T) {
	s := newAuthServer(t)

	w, env := s.do(t, http.MethodPost, "/auth/logout", nil, "Accept-Language", "ko")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	assert.JSONEq(t, `{"message":"로그아웃 되었습니다"}`, string(env.Data))
}
