package handler

import (
	"errors"
	"net/http"

	"github.com/familyalbum/album-backend/internal/common"
	"github.com/familyalbum/album-backend/internal/middleware"
	"github.com/familyalbum/album-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

// AuthHandler handles authentication requests
type AuthHandler struct {
	service      service.AuthService
	secureCookie bool
	refreshTTL   int
}

// NewAuthHandler creates a new AuthHandler. refreshTTL is the cookie lifetime in seconds.
func NewAuthHandler(service service.AuthService, secureCookie bool, refreshTTL int) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie, refreshTTL: refreshTTL}
}

// LoginRequest login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest refresh token request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		fail(c, middleware.T(c, "auth.signup_failed"), err)
		return
	}

	h.setRefreshTokenCookie(c, response.RefreshToken)
	created(c, response)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	response, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, middleware.T(c, "auth.login_failed"), err)
		return
	}

	// refresh_token은 httpOnly Cookie로도 내려줌 (XSS 방지)
	h.setRefreshTokenCookie(c, response.RefreshToken)
	ok(c, response, nil)
}

// RefreshToken handles POST /api/v1/auth/refresh. The token is read from the
// cookie first, then from the body.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(refreshCookie)
	if token == "" {
		var req RefreshRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	if token == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "Refresh token is required", nil)
		return
	}

	tokens, err := h.service.RefreshToken(c.Request.Context(), token)
	if errors.Is(err, common.ErrUnauthorized) {
		h.clearRefreshTokenCookie(c)
		common.ErrorResponse(c, http.StatusUnauthorized, middleware.T(c, "auth.token_invalid"), err)
		return
	}
	if err != nil {
		fail(c, "Token refresh failed", err)
		return
	}

	h.setRefreshTokenCookie(c, tokens.RefreshToken)
	ok(c, tokens, nil)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		fail(c, "User not found", err)
		return
	}
	ok(c, user, nil)
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearRefreshTokenCookie(c)
	ok(c, gin.H{"message": middleware.T(c, "auth.logout_success")}, nil)
}

func (h *AuthHandler) setRefreshTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, h.refreshTTL, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearRefreshTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secureCookie, true)
}
