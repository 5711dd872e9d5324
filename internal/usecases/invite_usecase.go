package usecases

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/pkg/invite"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
)

// InviteTokens signs and verifies project invite tokens
type InviteTokens interface {
	Issue(projectID, developerID uuid.UUID) (string, time.Time, error)
	Link(token string) string
	Verify(token string) (*invite.Claims, error)
}

// InviteUsecase issues project invites and redeems them for CPs
type InviteUsecase struct {
	projectRepo    repositories.ProjectRepository
	assignmentRepo repositories.AssignmentRepository
	tokens         InviteTokens
}

// NewInviteUsecase creates a new invite usecase
func NewInviteUsecase(
	projectRepo repositories.ProjectRepository,
	assignmentRepo repositories.AssignmentRepository,
	tokens InviteTokens,
) *InviteUsecase {
	return &InviteUsecase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		tokens:         tokens,
	}
}

// Create issues an invite link for a project owned by the developer
func (u *InviteUsecase) Create(ctx context.Context, developer *entities.User, projectID uuid.UUID) (*entities.ProjectInvite, error) {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}
	if project.DeveloperID != developer.ID {
		return nil, domainerrors.NotFound(projectNotFound)
	}

	token, expiresAt, err := u.tokens.Issue(project.ID, developer.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.ProjectInvite{
		Token:     token,
		Link:      u.tokens.Link(token),
		ExpiresAt: expiresAt,
	}, nil
}

// Accept redeems an invite for an existing CP
func (u *InviteUsecase) Accept(ctx context.Context, cp *entities.User, input *entities.AcceptInviteInput) (*entities.CpProjectMap, error) {
	claims, err := u.verify(input.Token, "token")
	if err != nil {
		return nil, err
	}
	return u.redeem(ctx, cp.ID, claims, "token")
}

func (u *InviteUsecase) verify(token, field string) (*entities.InviteClaims, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, invite.ErrExpiredInvite) {
			return nil, fieldError(field, "has expired")
		}
		return nil, fieldError(field, "is invalid")
	}
	return &entities.InviteClaims{ProjectID: claims.ProjectID, DeveloperID: claims.DeveloperID}, nil
}

// redeem creates an approved assignment for the invited project. An existing
// assignment of the CP on that project is returned unchanged.
func (u *InviteUsecase) redeem(ctx context.Context, cpID uuid.UUID, claims *entities.InviteClaims, field string) (*entities.CpProjectMap, error) {
	project, err := u.projectRepo.GetByID(ctx, claims.ProjectID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, fieldError(field, "refers to a project that no longer exists")
		}
		return nil, domainerrors.InternalError(err)
	}
	if project.DeveloperID != claims.DeveloperID {
		return nil, fieldError(field, "is invalid")
	}

	existing, err := u.assignmentRepo.GetByCpAndProject(ctx, cpID, project.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	assignment := &entities.CpProjectMap{
		ID:         utils.GenerateUUIDv7(),
		CpID:       cpID,
		ProjectID:  project.ID,
		Status:     entities.AssignmentStatusApproved,
		AssignedAt: time.Now(),
	}
	if err := u.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return assignment, nil
}
