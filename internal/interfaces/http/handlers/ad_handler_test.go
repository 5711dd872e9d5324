package handlers

import (
	"context"
	"net/http"
	"testing"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adServiceStub struct {
	listFn          func(ctx context.Context, actor *entities.User) ([]*entities.Ad, error)
	getFn           func(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Ad, error)
	createFn        func(ctx context.Context, actor *entities.User, input *entities.CreateAdInput) (*entities.Ad, error)
	updateFn        func(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateAdInput) (*entities.Ad, error)
	listRequestsFn  func(ctx context.Context, cp *entities.User) ([]*entities.Ad, utils.CountMeta, error)
	getRequestFn    func(ctx context.Context, cp *entities.User, id uuid.UUID) (*entities.Ad, error)
	createRequestFn func(ctx context.Context, cp *entities.User, input *entities.CreateAdRequestInput) (*entities.Ad, error)
	updateRequestFn func(ctx context.Context, cp *entities.User, id uuid.UUID, input *entities.UpdateAdRequestInput) (*entities.Ad, error)
	updateMetricsFn func(ctx context.Context, id uuid.UUID, input *entities.AdMetricsInput) (*entities.Ad, error)
}

func (s adServiceStub) List(ctx context.Context, actor *entities.User) ([]*entities.Ad, error) {
	return s.listFn(ctx, actor)
}
func (s adServiceStub) Get(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Ad, error) {
	return s.getFn(ctx, actor, id)
}
func (s adServiceStub) Create(ctx context.Context, actor *entities.User, input *entities.CreateAdInput) (*entities.Ad, error) {
	return s.createFn(ctx, actor, input)
}
func (s adServiceStub) Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateAdInput) (*entities.Ad, error) {
	return s.updateFn(ctx, actor, id, input)
}
func (s adServiceStub) ListRequests(ctx context.Context, cp *entities.User) ([]*entities.Ad, utils.CountMeta, error) {
	return s.listRequestsFn(ctx, cp)
}
func (s adServiceStub) GetRequest(ctx context.Context, cp *entities.User, id uuid.UUID) (*entities.Ad, error) {
	return s.getRequestFn(ctx, cp, id)
}
func (s adServiceStub) CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateAdRequestInput) (*entities.Ad, error) {
	return s.createRequestFn(ctx, cp, input)
}
func (s adServiceStub) UpdateRequest(ctx context.Context, cp *entities.User, id uuid.UUID, input *entities.UpdateAdRequestInput) (*entities.Ad, error) {
	return s.updateRequestFn(ctx, cp, id, input)
}
func (s adServiceStub) UpdateMetrics(ctx context.Context, id uuid.UUID, input *entities.AdMetricsInput) (*entities.Ad, error) {
	return s.updateMetricsFn(ctx, id, input)
}

func newAdRouter(svc adServiceStub, user *entities.User) *gin.Engine {
	h := NewAdHandler(svc)
	r := gin.New()
	api := r.Group("/api", withUser(user))
	api.GET("/ads", h.ListAds)
	api.GET("/ads/:id", h.GetAd)
	api.POST("/ads", h.CreateAd)
	api.PUT("/ads/:id", h.UpdateAd)
	api.GET("/cp/ads-requests", h.ListAdRequests)
	api.GET("/cp/ads-requests/:id", h.GetAdRequest)
	api.POST("/cp/ads-requests", h.CreateAdRequest)
	api.PUT("/cp/ads-requests/:id", h.UpdateAdRequest)
	r.PUT("/api/admin/ads/:id/metrics", h.UpdateAdMetrics)
	return r
}

func TestAdHandler_GenericRoutes(t *testing.T) {
	dev := newUser(entities.UserRoleDeveloper)
	ad := &entities.Ad{ID: uuid.New(), DeveloperID: &dev.ID, Title: "Diwali launch", Status: entities.AdStatusDraft}
	svc := adServiceStub{
		listFn: func(context.Context, *entities.User) ([]*entities.Ad, error) {
			return []*entities.Ad{ad}, nil
		},
		getFn: func(_ context.Context, _ *entities.User, id uuid.UUID) (*entities.Ad, error) {
			if id != ad.ID {
				return nil, domainerrors.NotFound(adNotFound)
			}
			return ad, nil
		},
		createFn: func(_ context.Context, _ *entities.User, input *entities.CreateAdInput) (*entities.Ad, error) {
			return &entities.Ad{ID: uuid.New(), DeveloperID: &dev.ID, Title: input.Title, Status: entities.AdStatusDraft}, nil
		},
		updateFn: func(_ context.Context, _ *entities.User, _ uuid.UUID, input *entities.UpdateAdInput) (*entities.Ad, error) {
			updated := *ad
			updated.Title = *input.Title
			return &updated, nil
		},
	}
	r := newAdRouter(svc, dev)

	w := doRequest(r, http.MethodGet, "/api/ads", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = doRequest(r, http.MethodGet, "/api/ads/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, adNotFound, decodeMap(t, w)["error"])

	w = doRequest(r, http.MethodPost, "/api/ads", `{"title":"Site visit drive","budget":50000,"startDate":"2024-11-01T00:00:00Z","endDate":"2024-11-15T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Site visit drive", decodeMap(t, w)["title"])

	w = doRequest(r, http.MethodPut, "/api/ads/"+ad.ID.String(), `{"title":"Festive launch"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Festive launch", decodeMap(t, w)["title"])

	w = doRequest(r, http.MethodPut, "/api/ads/"+ad.ID.String(), `{"impressions":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdHandler_CpRequestsAndMetrics(t *testing.T) {
	cp := newUser(entities.UserRoleCP)
	request := &entities.Ad{ID: uuid.New(), CpID: &cp.ID, Title: "lead_generation Campaign", Status: entities.AdStatusPending}
	var gotMetrics *entities.AdMetricsInput
	svc := adServiceStub{
		listRequestsFn: func(context.Context, *entities.User) ([]*entities.Ad, utils.CountMeta, error) {
			return []*entities.Ad{request}, utils.CountMeta{Total: 1}, nil
		},
		getRequestFn: func(context.Context, *entities.User, uuid.UUID) (*entities.Ad, error) {
			return request, nil
		},
		createRequestFn: func(_ context.Context, _ *entities.User, input *entities.CreateAdRequestInput) (*entities.Ad, error) {
			assert.Equal(t, 14, input.DurationDays)
			return request, nil
		},
		updateRequestFn: func(_ context.Context, _ *entities.User, _ uuid.UUID, input *entities.UpdateAdRequestInput) (*entities.Ad, error) {
			updated := *request
			if input.Status != nil && *input.Status == "cancelled" {
				updated.Status = entities.AdStatusCancelled
			}
			return &updated, nil
		},
		updateMetricsFn: func(_ context.Context, _ uuid.UUID, input *entities.AdMetricsInput) (*entities.Ad, error) {
			gotMetrics = input
			if input.Empty() {
				return nil, domainerrors.BadRequest("At least one metric is required")
			}
			return request, nil
		},
	}
	r := newAdRouter(svc, cp)

	w := doRequest(r, http.MethodGet, "/api/cp/ads-requests", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Len(t, body["data"], 1)
	assert.EqualValues(t, 1, body["meta"].(map[string]interface{})["total"])

	w = doRequest(r, http.MethodGet, "/api/cp/ads-requests/"+request.ID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/cp/ads-requests", `{"projectId":"`+uuid.NewString()+`","objective":"lead_generation","budgetInr":25000,"durationDays":14}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", decodeMap(t, w)["status"])

	w = doRequest(r, http.MethodPut, "/api/cp/ads-requests/"+request.ID.String(), `{"status":"cancelled"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeMap(t, w)["status"])

	w = doRequest(r, http.MethodPut, "/api/admin/ads/"+request.ID.String()+"/metrics", `{"impressions":1200,"clicks":80}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotMetrics.Impressions)
	assert.Equal(t, 1200, *gotMetrics.Impressions)
	assert.Nil(t, gotMetrics.Leads)

	w = doRequest(r, http.MethodPut, "/api/admin/ads/"+request.ID.String()+"/metrics", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, "/api/admin/ads/"+request.ID.String()+"/metrics", `{"views":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
