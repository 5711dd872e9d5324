package handlers

import (
	"context"
	"net/http"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const projectNotFound = "Project not found"

type projectService interface {
	List(ctx context.Context, actor *entities.User) ([]*entities.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	Create(ctx context.Context, developer *entities.User, input *entities.CreateProjectInput) (*entities.Project, error)
	Update(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateProjectInput) (*entities.Project, error)
	Delete(ctx context.Context, developer *entities.User, id uuid.UUID) error
}

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	service projectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(service projectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// ListProjects returns the projects visible to the caller
// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.service.List(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, projects)
}

// GetProject returns one project
// GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, projectNotFound)
	if !ok {
		return
	}
	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// CreateProject creates a project owned by the developer
// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	var input entities.CreateProjectInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// UpdateProject applies a partial update
// PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, projectNotFound)
	if !ok {
		return
	}
	var input entities.UpdateProjectInput
	if !bindJSON(c, &input) {
		return
	}

	project, err := h.service.Update(c.Request.Context(), user, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// DeleteProject removes a project
// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, projectNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, successBody{Success: true})
}
