package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/interfaces/http/response"
	"betterside.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const leadNotFound = "Lead not found"

type leadService interface {
	List(ctx context.Context, actor *entities.User) ([]*entities.Lead, error)
	Get(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Lead, error)
	Create(ctx context.Context, cp *entities.User, input *entities.CreateLeadInput) (*entities.Lead, error)
	Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateLeadInput) (*entities.Lead, error)
	MarkLost(ctx context.Context, cp *entities.User, id uuid.UUID) error
	ListForCp(ctx context.Context, cp *entities.User, query *entities.CpLeadQuery) ([]*entities.Lead, utils.PaginationMeta, error)
}

// LeadHandler serves both the generic lead API and the CP panel one
type LeadHandler struct {
	service leadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(service leadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// ListLeads returns the caller's leads
// GET /api/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	leads, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, leads)
}

// GetLead returns one lead owned by the caller
// GET /api/leads/:id, GET /api/cp/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, leadNotFound)
	if !ok {
		return
	}
	lead, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

// CreateLead registers a lead for the calling CP
// POST /api/leads, POST /api/cp/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateLeadInput
	if !bindJSON(c, &input) {
		return
	}

	lead, err := h.service.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lead)
}

// UpdateLead applies a strict partial update
// PUT /api/leads/:id, PUT /api/cp/leads/:id
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, leadNotFound)
	if !ok {
		return
	}
	var input entities.UpdateLeadInput
	if !bindStrict(c, &input) {
		return
	}

	lead, err := h.service.Update(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, lead)
}

// ListCpLeads returns a filtered page of the CP's leads
// GET /api/cp/leads
func (h *LeadHandler) ListCpLeads(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var query entities.CpLeadQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid query parameters"))
		return
	}

	leads, meta, err := h.service.ListForCp(c.Request.Context(), user, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, leads, meta)
}

// DeleteCpLead marks the lead lost; the row is kept
// DELETE /api/cp/leads/:id
func (h *LeadHandler) DeleteCpLead(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, leadNotFound)
	if !ok {
		return
	}
	if err := h.service.MarkLost(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
