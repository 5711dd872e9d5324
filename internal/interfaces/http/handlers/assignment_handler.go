package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type assignmentService interface {
	List(ctx context.Context, actor *entities.User, rawProjectID string) ([]*entities.CpProjectMap, error)
	Create(ctx context.Context, actor *entities.User, input *entities.CreateAssignmentInput) (*entities.CpProjectMap, error)
	UpdateStatus(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateAssignmentStatusInput) (*entities.CpProjectMap, error)
	ListCps(ctx context.Context) ([]*entities.User, error)
	ListForCp(ctx context.Context, cp *entities.User) ([]*entities.AssignmentWithProject, error)
}

// AssignmentHandler handles CP-project assignments
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(service assignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ListAssignments GET /api/cp-projects?projectId=
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.service.List(c.Request.Context(), user, c.Query("projectId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateAssignment POST /api/cp-projects
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateAssignmentInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := h.service.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdateAssignmentStatus PUT /api/cp-projects/:id/status
func (h *AssignmentHandler) UpdateAssignmentStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "Assignment not found")
	if !ok {
		return
	}
	var input entities.UpdateAssignmentStatusInput
	if !bindJSON(c, &input) {
		return
	}
	item, err := h.service.UpdateStatus(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// ListCps GET /api/users/cps
func (h *AssignmentHandler) ListCps(c *gin.Context) {
	users, err := h.service.ListCps(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// ListCpProjects GET /api/cp/projects
func (h *AssignmentHandler) ListCpProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.service.ListForCp(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}
