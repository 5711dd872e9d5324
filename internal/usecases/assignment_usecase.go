package usecases

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/domain/validation"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AssignmentUsecase handles CP-project assignments
type AssignmentUsecase struct {
	assignmentRepo repositories.AssignmentRepository
	projectRepo    repositories.ProjectRepository
	userRepo       repositories.UserRepository
}

// NewAssignmentUsecase creates a new assignment usecase
func NewAssignmentUsecase(
	assignmentRepo repositories.AssignmentRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
) *AssignmentUsecase {
	return &AssignmentUsecase{
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
	}
}

// List returns a CP's own assignments, or the assignments on one project
// the calling developer owns
func (u *AssignmentUsecase) List(ctx context.Context, actor *entities.User, rawProjectID string) ([]*entities.CpProjectMap, error) {
	switch actor.Role {
	case entities.UserRoleCP:
		items, err := u.assignmentRepo.ListByCp(ctx, actor.ID)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		return items, nil
	case entities.UserRoleDeveloper:
		if rawProjectID == "" {
			return nil, domainerrors.BadRequest("Project ID required for developers")
		}
		projectID, err := parseID(rawProjectID, "projectId")
		if err != nil {
			return nil, err
		}
		if err := u.requireOwner(ctx, actor, projectID); err != nil {
			return nil, err
		}
		items, err := u.assignmentRepo.ListByProjects(ctx, []uuid.UUID{projectID})
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		return items, nil
	}
	return nil, domainerrors.Forbidden(accessDenied)
}

// Create links a CP to a project. A developer assigns CPs to their own
// projects; a CP may only request access for themselves, always as pending.
func (u *AssignmentUsecase) Create(ctx context.Context, actor *entities.User, input *entities.CreateAssignmentInput) (*entities.CpProjectMap, error) {
	if actor.Role != entities.UserRoleCP && actor.Role != entities.UserRoleDeveloper {
		return nil, domainerrors.Forbidden(accessDenied)
	}
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	cpID, err := parseID(input.CpID, "cpId")
	if err != nil {
		return nil, err
	}
	projectID, err := parseID(input.ProjectID, "projectId")
	if err != nil {
		return nil, err
	}

	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}

	status := entities.AssignmentStatusPending
	switch actor.Role {
	case entities.UserRoleDeveloper:
		if project.DeveloperID != actor.ID {
			return nil, domainerrors.Forbidden(accessDenied)
		}
		if input.Status != "" {
			status = entities.AssignmentStatus(input.Status)
		}
	case entities.UserRoleCP:
		if cpID != actor.ID {
			return nil, domainerrors.Forbidden("CPs can only request access for themselves")
		}
	}

	assignment := &entities.CpProjectMap{
		ID:                utils.GenerateUUIDv7(),
		CpID:              cpID,
		ProjectID:         project.ID,
		Status:            status,
		CommissionPercent: null.StringFromPtr(input.CommissionPercent),
		AssignedAt:        time.Now(),
	}
	if err := u.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return assignment, nil
}

// UpdateStatus approves or rejects an assignment. Project ownership is
// checked on every call.
func (u *AssignmentUsecase) UpdateStatus(ctx context.Context, developer *entities.User, id uuid.UUID, input *entities.UpdateAssignmentStatusInput) (*entities.CpProjectMap, error) {
	status := entities.AssignmentStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.BadRequest("Invalid status")
	}

	assignment, err := u.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Assignment not found")
	}
	if err := u.requireOwner(ctx, developer, assignment.ProjectID); err != nil {
		return nil, err
	}

	if err := u.assignmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFoundOr(err, "Assignment not found")
	}
	assignment.Status = status
	return assignment, nil
}

// ListCps returns every channel partner account
func (u *AssignmentUsecase) ListCps(ctx context.Context) ([]*entities.User, error) {
	users, err := u.userRepo.ListByRole(ctx, entities.UserRoleCP)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return users, nil
}

// ListForCp returns the CP's assignments with their projects. The project
// is nil when it has been deleted.
func (u *AssignmentUsecase) ListForCp(ctx context.Context, cp *entities.User) ([]*entities.AssignmentWithProject, error) {
	assignments, err := u.assignmentRepo.ListByCp(ctx, cp.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	ids := projectIDs(assignments, func(a *entities.CpProjectMap) uuid.UUID { return a.ProjectID })
	projects, err := u.projectRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	byID := make(map[uuid.UUID]*entities.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	out := make([]*entities.AssignmentWithProject, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, &entities.AssignmentWithProject{CpProjectMap: a, Project: byID[a.ProjectID]})
	}
	return out, nil
}

func (u *AssignmentUsecase) requireOwner(ctx context.Context, developer *entities.User, projectID uuid.UUID) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Forbidden(accessDenied)
		}
		return domainerrors.InternalError(err)
	}
	if project.DeveloperID != developer.ID {
		return domainerrors.Forbidden(accessDenied)
	}
	return nil
}
