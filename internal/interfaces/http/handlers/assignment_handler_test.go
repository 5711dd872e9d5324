package handlers

import (
	"context"
	"net/http"
	"testing"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assignmentServiceStub struct {
	listFn         func(ctx context.Context, actor *entities.User, rawProjectID string) ([]*entities.CpProjectMap, error)
	createFn       func(ctx context.Context, actor *entities.User, input *entities.CreateAssignmentInput) (*entities.CpProjectMap, error)
	updateStatusFn func(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateAssignmentStatusInput) (*entities.CpProjectMap, error)
	listCpsFn      func(ctx context.Context) ([]*entities.User, error)
	listForCpFn    func(ctx context.Context, cp *entities.User) ([]*entities.AssignmentWithProject, error)
}

func (s assignmentServiceStub) List(ctx context.Context, actor *entities.User, rawProjectID string) ([]*entities.CpProjectMap, error) {
	return s.listFn(ctx, actor, rawProjectID)
}
func (s assignmentServiceStub) Create(ctx context.Context, actor *entities.User, input *entities.CreateAssignmentInput) (*entities.CpProjectMap, error) {
	return s.createFn(ctx, actor, input)
}
func (s assignmentServiceStub) UpdateStatus(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateAssignmentStatusInput) (*entities.CpProjectMap, error) {
	return s.updateStatusFn(ctx, developer, id, input)
}
func (s assignmentServiceStub) ListCps(ctx context.Context) ([]*entities.User, error) {
	return s.listCpsFn(ctx)
}
func (s assignmentServiceStub) ListForCp(ctx context.Context, cp *entities.User) ([]*entities.AssignmentWithProject, error) {
	return s.listForCpFn(ctx, cp)
}

func newAssignmentRouter(svc assignmentServiceStub, user *entities.User) *gin.Engine {
	h := NewAssignmentHandler(svc)
	r := gin.New()
	r.Use(withUser(user))
	r.GET("/api/cp-projects", h.ListAssignments)
	r.POST("/api/cp-projects", h.CreateAssignment)
	r.PUT("/api/cp-projects/:id/status", h.UpdateAssignmentStatus)
	r.GET("/api/users/cps", h.ListCps)
	r.GET("/api/cp/projects", h.ListCpProjects)
	return r
}

func TestAssignmentHandler_ListAndCreate(t *testing.T) {
	dev := newUser(entities.UserRoleDeveloper)
	projectID := uuid.New()
	svc := assignmentServiceStub{
		listFn: func(_ context.Context, _ *entities.User, raw string) ([]*entities.CpProjectMap, error) {
			if raw == "" {
				return nil, domainerrors.BadRequest("Project ID required for developers")
			}
			return []*entities.CpProjectMap{{ID: uuid.New(), ProjectID: projectID, Status: entities.AssignmentStatusPending}}, nil
		},
		createFn: func(_ context.Context, _ *entities.User, input *entities.CreateAssignmentInput) (*entities.CpProjectMap, error) {
			return &entities.CpProjectMap{ID: uuid.New(), CpID: uuid.MustParse(input.CpID), ProjectID: projectID, Status: entities.AssignmentStatusApproved}, nil
		},
	}
	r := newAssignmentRouter(svc, dev)

	w := doRequest(r, http.MethodGet, "/api/cp-projects?projectId="+projectID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = doRequest(r, http.MethodGet, "/api/cp-projects", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Project ID required for developers", decodeMap(t, w)["error"])

	cpID := uuid.New()
	w = doRequest(r, http.MethodPost, "/api/cp-projects", `{"cpId":"`+cpID.String()+`","projectId":"`+projectID.String()+`","status":"approved"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, cpID.String(), decodeMap(t, w)["cpId"])
}

func TestAssignmentHandler_StatusAndCpViews(t *testing.T) {
	dev := newUser(entities.UserRoleDeveloper)
	id := uuid.New()
	project := &entities.Project{ID: uuid.New(), Name: "Lodha Park"}
	svc := assignmentServiceStub{
		updateStatusFn: func(_ context.Context, _ *entities.User, aid uuid.UUID, input *entities.UpdateAssignmentStatusInput) (*entities.CpProjectMap, error) {
			if !entities.AssignmentStatus(input.Status).Valid() {
				return nil, domainerrors.BadRequest("Invalid status")
			}
			return &entities.CpProjectMap{ID: aid, Status: entities.AssignmentStatus(input.Status)}, nil
		},
		listCpsFn: func(context.Context) ([]*entities.User, error) {
			return []*entities.User{newUser(entities.UserRoleCP)}, nil
		},
		listForCpFn: func(context.Context, *entities.User) ([]*entities.AssignmentWithProject, error) {
			return []*entities.AssignmentWithProject{
				{CpProjectMap: &entities.CpProjectMap{ID: uuid.New(), ProjectID: project.ID}, Project: project},
				{CpProjectMap: &entities.CpProjectMap{ID: uuid.New(), ProjectID: uuid.New()}},
			}, nil
		},
	}
	r := newAssignmentRouter(svc, dev)

	w := doRequest(r, http.MethodPut, "/api/cp-projects/"+id.String()+"/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approved", decodeMap(t, w)["status"])

	w = doRequest(r, http.MethodPut, "/api/cp-projects/"+id.String()+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, "/api/cp-projects/nope/status", `{"status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/api/users/cps", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = doRequest(r, http.MethodGet, "/api/cp/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Lodha Park", first["project"].(map[string]interface{})["name"])
	assert.Nil(t, items[1].(map[string]interface{})["project"])
}
