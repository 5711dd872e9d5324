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

type marketingServiceStub struct {
	summaryFn       func(ctx context.Context, cp *entities.User) (*entities.MarketingSummary, error)
	incrementFn     func(ctx context.Context, input *entities.IncrementCountersInput) (*entities.MarketingCounter, error)
	createRequestFn func(ctx context.Context, cp *entities.User, input *entities.CreateMarketingRequestInput) (*entities.MarketingRequest, error)
	listRequestsFn  func(ctx context.Context, cp *entities.User) ([]*entities.MarketingRequest, utils.CountMeta, error)
	updateStatusFn  func(ctx context.Context, id uuid.UUID, input *entities.UpdateMarketingRequestStatusInput) (*entities.MarketingRequest, error)
}

func (s marketingServiceStub) Summary(ctx context.Context, cp *entities.User) (*entities.MarketingSummary, error) {
	return s.summaryFn(ctx, cp)
}
func (s marketingServiceStub) Increment(ctx context.Context, input *entities.IncrementCountersInput) (*entities.MarketingCounter, error) {
	return s.incrementFn(ctx, input)
}
func (s marketingServiceStub) CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateMarketingRequestInput) (*entities.MarketingRequest, error) {
	return s.createRequestFn(ctx, cp, input)
}
func (s marketingServiceStub) ListRequests(ctx context.Context, cp *entities.User) ([]*entities.MarketingRequest, utils.CountMeta, error) {
	return s.listRequestsFn(ctx, cp)
}
func (s marketingServiceStub) UpdateRequestStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMarketingRequestStatusInput) (*entities.MarketingRequest, error) {
	return s.updateStatusFn(ctx, id, input)
}

func newMarketingRouter(svc marketingServiceStub, user *entities.User) *gin.Engine {
	h := NewMarketingHandler(svc)
	r := gin.New()
	cp := r.Group("/api/cp/marketing", withUser(user))
	cp.GET("", h.GetSummary)
	cp.POST("/request", h.CreateRequest)
	cp.GET("/requests", h.ListRequests)
	r.POST("/api/cp/marketing/increment", h.IncrementCounters)
	r.PUT("/api/admin/marketing/requests/:id/status", h.UpdateRequestStatus)
	return r
}

func TestMarketingHandler_SummaryAndIncrement(t *testing.T) {
	cp := newUser(entities.UserRoleCP)
	projectID := uuid.New()
	svc := marketingServiceStub{
		summaryFn: func(context.Context, *entities.User) (*entities.MarketingSummary, error) {
			return &entities.MarketingSummary{
				CreativesShared: 7,
				EdmsShared:      3,
				PerProject:      []entities.ProjectMarketing{{ProjectID: projectID, ProjectTitle: "Unknown", CreativesShared: 5, EdmsShared: 1}},
			}, nil
		},
		incrementFn: func(_ context.Context, input *entities.IncrementCountersInput) (*entities.MarketingCounter, error) {
			if input.Creatives != nil && *input.Creatives < 0 {
				return nil, domainerrors.BadRequest("Invalid increment")
			}
			return &entities.MarketingCounter{ID: uuid.New(), CpID: uuid.MustParse(input.CpID), CreativesShared: 2, EdmsShared: 1}, nil
		},
	}
	r := newMarketingRouter(svc, cp)

	w := doRequest(r, http.MethodGet, "/api/cp/marketing", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.EqualValues(t, 7, body["creatives_shared"])
	assert.EqualValues(t, 3, body["edms_shared"])
	perProject := body["per_project"].([]interface{})
	require.Len(t, perProject, 1)
	assert.Equal(t, "Unknown", perProject[0].(map[string]interface{})["projectTitle"])

	w = doRequest(r, http.MethodPost, "/api/cp/marketing/increment", `{"cp_id":"`+cp.ID.String()+`","creatives":2,"edms":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, decodeMap(t, w)["creativesShared"])

	w = doRequest(r, http.MethodPost, "/api/cp/marketing/increment", `{"cp_id":"`+cp.ID.String()+`","creatives":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/cp/marketing/increment", `{"cp_id":"`+cp.ID.String()+`","creatives":"two"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketingHandler_Requests(t *testing.T) {
	cp := newUser(entities.UserRoleCP)
	id := uuid.New()
	svc := marketingServiceStub{
		createRequestFn: func(_ context.Context, _ *entities.User, input *entities.CreateMarketingRequestInput) (*entities.MarketingRequest, error) {
			if input.Type != "creative" && input.Type != "edm" {
				return nil, domainerrors.BadRequest("Invalid request type. Must be 'creative' or 'edm'")
			}
			return &entities.MarketingRequest{ID: id, CpID: cp.ID, RequestType: entities.MarketingRequestType(input.Type), Status: entities.MarketingRequestPending}, nil
		},
		listRequestsFn: func(context.Context, *entities.User) ([]*entities.MarketingRequest, utils.CountMeta, error) {
			return []*entities.MarketingRequest{}, utils.CountMeta{Total: 0}, nil
		},
		updateStatusFn: func(_ context.Context, rid uuid.UUID, input *entities.UpdateMarketingRequestStatusInput) (*entities.MarketingRequest, error) {
			if rid != id {
				return nil, domainerrors.NotFound("Marketing request not found")
			}
			return &entities.MarketingRequest{ID: rid, Status: entities.MarketingRequestStatus(input.Status)}, nil
		},
	}
	r := newMarketingRouter(svc, cp)

	w := doRequest(r, http.MethodPost, "/api/cp/marketing/request", `{"type":"edm","notes":"Weekend open house"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pending", decodeMap(t, w)["status"])

	w = doRequest(r, http.MethodPost, "/api/cp/marketing/request", `{"type":"video"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request type. Must be 'creative' or 'edm'", decodeMap(t, w)["error"])

	w = doRequest(r, http.MethodGet, "/api/cp/marketing/requests", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeMap(t, w)
	assert.Empty(t, body["data"])
	assert.EqualValues(t, 0, body["meta"].(map[string]interface{})["total"])

	w = doRequest(r, http.MethodPut, "/api/admin/marketing/requests/"+id.String()+"/status", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decodeMap(t, w)["status"])

	w = doRequest(r, http.MethodPut, "/api/admin/marketing/requests/"+uuid.NewString()+"/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Marketing request not found", decodeMap(t, w)["error"])
}
