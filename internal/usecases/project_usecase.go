package usecases

import (
	"context"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/domain/validation"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

const projectNotFound = "Project not found"

// ProjectUsecase handles project business logic
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(projectRepo repositories.ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{projectRepo: projectRepo}
}

// List returns a developer's own projects, or every active project for other roles
func (u *ProjectUsecase) List(ctx context.Context, actor *entities.User) ([]*entities.Project, error) {
	var (
		projects []*entities.Project
		err      error
	)
	if actor.Role == entities.UserRoleDeveloper {
		projects, err = u.projectRepo.ListByDeveloper(ctx, actor.ID)
	} else {
		projects, err = u.projectRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return projects, nil
}

// Get returns a project by id
func (u *ProjectUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}
	return project, nil
}

// Create creates a project owned by the developer
func (u *ProjectUsecase) Create(ctx context.Context, developer *entities.User, input *entities.CreateProjectInput) (*entities.Project, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &entities.Project{
		ID:             utils.GenerateUUIDv7(),
		DeveloperID:    developer.ID,
		Name:           input.Name,
		Description:    null.StringFromPtr(input.Description),
		Location:       input.Location,
		City:           input.City,
		ProjectType:    entities.ProjectType(input.ProjectType),
		Status:         entities.ProjectStatus(input.Status),
		PriceMin:       optionalInt(input.PriceMin),
		PriceMax:       optionalInt(input.PriceMax),
		ReraNumber:     null.StringFromPtr(input.ReraNumber),
		TotalUnits:     optionalInt(input.TotalUnits),
		AvailableUnits: optionalInt(input.AvailableUnits),
		Amenities:      null.StringFromPtr(input.Amenities),
		ImageURL:       null.StringFromPtr(input.ImageURL),
		BrochureURL:    null.StringFromPtr(input.BrochureURL),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return project, nil
}

// Update applies a partial update to a project the developer owns
func (u *ProjectUsecase) Update(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateProjectInput) (*entities.Project, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	project, err := u.owned(ctx, developer, id)
	if err != nil {
		return nil, err
	}

	input.Apply(project)
	project.UpdatedAt = time.Now()
	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}
	return project, nil
}

// Delete removes a project the developer owns
func (u *ProjectUsecase) Delete(ctx context.Context, developer *entities.User, id uuid.UUID) error {
	if _, err := u.owned(ctx, developer, id); err != nil {
		return err
	}
	if err := u.projectRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, projectNotFound)
	}
	return nil
}

// owned loads a project and hides it from anyone but its developer
func (u *ProjectUsecase) owned(ctx context.Context, developer *entities.User, id uuid.UUID) (*entities.Project, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}
	if project.DeveloperID != developer.ID {
		return nil, domainerrors.NotFound(projectNotFound)
	}
	return project, nil
}
