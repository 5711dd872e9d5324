package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/response"
	"betterside.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type marketingService interface {
	Summary(ctx context.Context, cp *entities.User) (*entities.MarketingSummary, error)
	Increment(ctx context.Context, input *entities.IncrementCountersInput) (*entities.MarketingCounter, error)
	CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateMarketingRequestInput) (*entities.MarketingRequest, error)
	ListRequests(ctx context.Context, cp *entities.User) ([]*entities.MarketingRequest, utils.CountMeta, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMarketingRequestStatusInput) (*entities.MarketingRequest, error)
}

// MarketingHandler handles marketing counters and collateral requests
type MarketingHandler struct {
	service marketingService
}

// NewMarketingHandler creates a new marketing handler
func NewMarketingHandler(service marketingService) *MarketingHandler {
	return &MarketingHandler{service: service}
}

// GetSummary GET /api/cp/marketing
func (h *MarketingHandler) GetSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	summary, err := h.service.Summary(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// IncrementCounters POST /api/cp/marketing/increment
func (h *MarketingHandler) IncrementCounters(c *gin.Context) {
	var input entities.IncrementCountersInput
	if !bindJSON(c, &input) {
		return
	}
	counter, err := h.service.Increment(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, counter)
}

// CreateRequest POST /api/cp/marketing/request
func (h *MarketingHandler) CreateRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateMarketingRequestInput
	if !bindJSON(c, &input) {
		return
	}
	req, err := h.service.CreateRequest(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// ListRequests GET /api/cp/marketing/requests
func (h *MarketingHandler) ListRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	items, meta, err := h.service.ListRequests(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, items, meta)
}

// UpdateRequestStatus PUT /api/admin/marketing/requests/:id/status
func (h *MarketingHandler) UpdateRequestStatus(c *gin.Context) {
	id, ok := pathID(c, "Marketing request not found")
	if !ok {
		return
	}
	var input entities.UpdateMarketingRequestStatusInput
	if !bindJSON(c, &input) {
		return
	}
	req, err := h.service.UpdateRequestStatus(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, req)
}
