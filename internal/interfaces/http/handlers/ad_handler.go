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

const (
	adNotFound        = "Ad not found"
	adRequestNotFound = "Ad request not found"
)

type adService interface {
	List(ctx context.Context, actor *entities.User) ([]*entities.Ad, error)
	Get(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Ad, error)
	Create(ctx context.Context, actor *entities.User, input *entities.CreateAdInput) (*entities.Ad, error)
	Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateAdInput) (*entities.Ad, error)
	ListRequests(ctx context.Context, cp *entities.User) ([]*entities.Ad, utils.CountMeta, error)
	GetRequest(ctx context.Context, cp *entities.User, id uuid.UUID) (*entities.Ad, error)
	CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateAdRequestInput) (*entities.Ad, error)
	UpdateRequest(ctx context.Context, cp *entities.User, id uuid.UUID, input *entities.UpdateAdRequestInput) (*entities.Ad, error)
	UpdateMetrics(ctx context.Context, id uuid.UUID, input *entities.AdMetricsInput) (*entities.Ad, error)
}

// AdHandler handles ads, CP ad requests and externally reported metrics
type AdHandler struct {
	service adService
}

// NewAdHandler creates a new ad handler
func NewAdHandler(service adService) *AdHandler {
	return &AdHandler{service: service}
}

// ListAds GET /api/ads
func (h *AdHandler) ListAds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	ads, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ads)
}

// GetAd GET /api/ads/:id
func (h *AdHandler) GetAd(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, adNotFound)
	if !ok {
		return
	}
	ad, err := h.service.Get(c.Request.Context(), user, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ad)
}

// CreateAd POST /api/ads
func (h *AdHandler) CreateAd(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateAdInput
	if !bindJSON(c, &input) {
		return
	}
	ad, err := h.service.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ad)
}

// UpdateAd PUT /api/ads/:id
func (h *AdHandler) UpdateAd(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, adNotFound)
	if !ok {
		return
	}
	var input entities.UpdateAdInput
	if !bindStrict(c, &input) {
		return
	}
	ad, err := h.service.Update(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ad)
}

// ListAdRequests GET /api/cp/ads-requests
func (h *AdHandler) ListAdRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	ads, meta, err := h.service.ListRequests(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, ads, meta)
}

// GetAdRequest GET /api/cp/ads-requests/:id
func (h *AdHandler) GetAdRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, adRequestNotFound)
	if !ok {
		return
	}
	ad, err := h.service.GetRequest(c.Request.Context(), user, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ad)
}

// CreateAdRequest POST /api/cp/ads-requests
func (h *AdHandler) CreateAdRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateAdRequestInput
	if !bindJSON(c, &input) {
		return
	}
	ad, err := h.service.CreateRequest(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, ad)
}

// UpdateAdRequest PUT /api/cp/ads-requests/:id
func (h *AdHandler) UpdateAdRequest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, adRequestNotFound)
	if !ok {
		return
	}
	var input entities.UpdateAdRequestInput
	if !bindStrict(c, &input) {
		return
	}
	ad, err := h.service.UpdateRequest(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ad)
}

// UpdateAdMetrics sets reported performance figures
// PUT /api/admin/ads/:id/metrics
func (h *AdHandler) UpdateAdMetrics(c *gin.Context) {
	id, ok := pathID(c, adNotFound)
	if !ok {
		return
	}
	var input entities.AdMetricsInput
	if !bindStrict(c, &input) {
		return
	}
	ad, err := h.service.UpdateMetrics(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, ad)
}
