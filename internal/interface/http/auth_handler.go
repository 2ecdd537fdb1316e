package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/interface/middleware"
	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
	"github.com/oksasatya/fitness-gen-api/pkg/response"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (application.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (application.TokenPair, error)
	Authorize(ctx context.Context, accessToken string) (string, error)
	Logout(ctx context.Context, subject string) error
}

type AuthHandler struct {
	Svc     AuthUseCase
	Cookies *helpers.CookieManager
	Logger  *logrus.Logger
}

func NewAuthHandler(svc AuthUseCase, cookies *helpers.CookieManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func pairMeta(p application.TokenPair) map[string]any {
	return map[string]any{"access_expires_at": p.AccessTokenExpiry, "refresh_expires_at": p.RefreshTokenExpiry}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{"email": pair.Subject}, "login successful", pairMeta(pair))
}

// Refresh POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie(helpers.RefreshCookie)
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", response.ErrorBody{Code: "unauthorized"})
		return
	}
	pair, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", pairMeta(pair))
}

// Logout POST /api/auth/logout
// Cookies are always cleared; the server-side session is dropped when the caller is known.
func (h *AuthHandler) Logout(c *gin.Context) {
	subject := c.GetString(middleware.CtxCoachKey)
	if subject == "" {
		if tok, err := c.Cookie(helpers.AccessCookie); err == nil && tok != "" {
			subject, _ = h.Svc.Authorize(c.Request.Context(), tok)
		}
	}
	if subject != "" {
		if err := h.Svc.Logout(c.Request.Context(), subject); err != nil && h.Logger != nil {
			h.Logger.WithError(err).WithField("subject", subject).Warn("session delete failed")
		}
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
