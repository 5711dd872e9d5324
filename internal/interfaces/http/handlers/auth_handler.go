package handlers

import (
	"context"
	"net/http"
	"time"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/middleware"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResult, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// SessionCookie describes the cookie carrying the session id
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service authService
	cookie  SessionCookie
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service authService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
	}
}

// Register handles user registration
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.service.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(h.cookie.TTL.Seconds()))
	response.Success(c, http.StatusCreated, result.User)
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID, int(h.cookie.TTL.Seconds()))
	response.Success(c, http.StatusOK, result.User)
}

// Me returns the session user
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Logout ends the session. Calling it without a session succeeds.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.SessionID(c, h.cookie.Name)
	if err := h.service.Logout(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.Success(c, http.StatusOK, successBody{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}
