package usecases

import (
	"context"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/domain/validation"
	"betterside.backend/pkg/metrics"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
)

const leadNotFound = "Lead not found"

// LeadUsecase handles lead business logic
type LeadUsecase struct {
	leadRepo    repositories.LeadRepository
	projectRepo repositories.ProjectRepository
}

// NewLeadUsecase creates a new lead usecase
func NewLeadUsecase(leadRepo repositories.LeadRepository, projectRepo repositories.ProjectRepository) *LeadUsecase {
	return &LeadUsecase{
		leadRepo:    leadRepo,
		projectRepo: projectRepo,
	}
}

// leadScope narrows a lead filter to what the actor may see
func leadScope(actor *entities.User) (entities.LeadFilter, error) {
	switch actor.Role {
	case entities.UserRoleCP:
		return entities.LeadFilter{CpID: &actor.ID}, nil
	case entities.UserRoleDeveloper:
		return entities.LeadFilter{DeveloperID: &actor.ID}, nil
	}
	return entities.LeadFilter{}, domainerrors.Forbidden(accessDenied)
}

func canAccessLead(actor *entities.User, lead *entities.Lead) bool {
	switch actor.Role {
	case entities.UserRoleCP:
		return lead.CpID == actor.ID
	case entities.UserRoleDeveloper:
		return lead.DeveloperID == actor.ID
	}
	return false
}

// List returns every lead visible to the actor
func (u *LeadUsecase) List(ctx context.Context, actor *entities.User) ([]*entities.Lead, error) {
	filter, err := leadScope(actor)
	if err != nil {
		return nil, err
	}
	leads, _, err := u.leadRepo.List(ctx, filter, 0, 0)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return leads, nil
}

// Get returns a lead the actor owns
func (u *LeadUsecase) Get(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Lead, error) {
	lead, err := u.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, leadNotFound)
	}
	if !canAccessLead(actor, lead) {
		return nil, domainerrors.Forbidden(accessDenied)
	}
	return lead, nil
}

// Create records a lead for the CP. The developer is taken from the project.
func (u *LeadUsecase) Create(ctx context.Context, cp *entities.User, input *entities.CreateLeadInput) (*entities.Lead, error) {
	if err := validation.Check(input); err != nil {
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

	status := entities.LeadStatusNew
	if input.Status != "" {
		status = entities.LeadStatus(input.Status)
	}

	now := time.Now()
	lead := &entities.Lead{
		ID:            utils.GenerateUUIDv7(),
		CpID:          cp.ID,
		ProjectID:     project.ID,
		DeveloperID:   project.DeveloperID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: optional(input.CustomerEmail),
		CustomerCity:  optional(input.CustomerCity),
		Budget:        optional(input.Budget),
		Status:        status,
		Notes:         optional(input.Notes),
		Source:        optional(input.Source),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.leadRepo.Create(ctx, lead); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	source := input.Source
	if source == "" {
		source = "unspecified"
	}
	metrics.LeadsCreatedTotal.WithLabelValues(source).Inc()
	return lead, nil
}

// Update applies a partial update to a lead the actor owns.
// Any status may move to any other.
func (u *LeadUsecase) Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateLeadInput) (*entities.Lead, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	lead, err := u.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	input.Apply(lead)
	lead.UpdatedAt = time.Now()
	if err := u.leadRepo.Update(ctx, lead); err != nil {
		return nil, notFoundOr(err, leadNotFound)
	}
	return lead, nil
}

// MarkLost retires a lead; the row is kept
func (u *LeadUsecase) MarkLost(ctx context.Context, cp *entities.User, id uuid.UUID) error {
	lost := string(entities.LeadStatusLost)
	_, err := u.Update(ctx, cp, id, &entities.UpdateLeadInput{Status: &lost})
	return err
}

// ListForCp returns one page of the CP's leads, newest first
func (u *LeadUsecase) ListForCp(ctx context.Context, cp *entities.User, query *entities.CpLeadQuery) ([]*entities.Lead, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(query.Page, query.Limit)

	filter := entities.LeadFilter{CpID: &cp.ID, Status: query.Status}
	if query.ProjectID != "" {
		projectID, err := parseID(query.ProjectID, "project_id")
		if err != nil {
			return nil, utils.PaginationMeta{}, err
		}
		filter.ProjectID = &projectID
	}
	if query.Date == "today" {
		since := startOfDay(time.Now())
		filter.Since = &since
	}

	leads, total, err := u.leadRepo.List(ctx, filter, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, domainerrors.InternalError(err)
	}
	return leads, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
