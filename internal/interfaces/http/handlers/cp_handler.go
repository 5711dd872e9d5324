package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

type cpPanelService interface {
	Dashboard(ctx context.Context, cp *entities.User) (*entities.CpDashboard, error)
	Profile(ctx context.Context, cp *entities.User) (*entities.CpProfileView, error)
	UpdateProfile(ctx context.Context, cp *entities.User, input *entities.UpdateCpProfileInput) (*entities.CpProfileView, error)
}

// CpHandler handles the CP panel dashboard and profile
type CpHandler struct {
	service cpPanelService
}

// NewCpHandler creates a new CP panel handler
func NewCpHandler(service cpPanelService) *CpHandler {
	return &CpHandler{service: service}
}

// GetDashboard GET /api/cp/dashboard
func (h *CpHandler) GetDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	dashboard, err := h.service.Dashboard(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, dashboard)
}

// GetProfile GET /api/cp/profile
func (h *CpHandler) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	profile, err := h.service.Profile(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// UpdateProfile PUT /api/cp/profile
func (h *CpHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.UpdateCpProfileInput
	if !bindStrict(c, &input) {
		return
	}
	profile, err := h.service.UpdateProfile(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}
