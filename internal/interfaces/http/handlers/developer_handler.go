package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type developerService interface {
	Dashboard(ctx context.Context, developer *entities.User) (*entities.DeveloperDashboard, error)
	Partners(ctx context.Context, developer *entities.User) ([]*entities.PartnerActivity, error)
	Performance(ctx context.Context, developer *entities.User) ([]*entities.ProjectPerformance, error)
}

type inviteService interface {
	Create(ctx context.Context, developer *entities.User, projectID uuid.UUID) (*entities.ProjectInvite, error)
	Accept(ctx context.Context, cp *entities.User, input *entities.AcceptInviteInput) (*entities.CpProjectMap, error)
}

// DeveloperHandler handles the developer panel and project invites
type DeveloperHandler struct {
	service developerService
	invites inviteService
}

// NewDeveloperHandler creates a new developer panel handler
func NewDeveloperHandler(service developerService, invites inviteService) *DeveloperHandler {
	return &DeveloperHandler{
		service: service,
		invites: invites,
	}
}

// GetDashboard GET /api/developer/dashboard
func (h *DeveloperHandler) GetDashboard(c *gin.Context) {
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

// ListPartners GET /api/developer/partners
func (h *DeveloperHandler) ListPartners(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	rows, err := h.service.Partners(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// GetPerformance GET /api/developer/projects/performance
func (h *DeveloperHandler) GetPerformance(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	rows, err := h.service.Performance(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// CreateInvite issues a signed invite link for an owned project
// POST /api/developer/projects/:id/invite
func (h *DeveloperHandler) CreateInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, projectNotFound)
	if !ok {
		return
	}
	inv, err := h.invites.Create(c.Request.Context(), user, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, inv)
}

// AcceptInvite redeems an invite for the calling CP
// POST /api/cp/invites/accept
func (h *DeveloperHandler) AcceptInvite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.AcceptInviteInput
	if !bindJSON(c, &input) {
		return
	}
	assignment, err := h.invites.Accept(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, assignment)
}
