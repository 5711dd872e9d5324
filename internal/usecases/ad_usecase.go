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

const (
	adNotFound        = "Ad not found"
	adRequestNotFound = "Ad request not found"
)

// AdUsecase handles ad campaigns and CP ad requests
type AdUsecase struct {
	adRepo      repositories.AdRepository
	projectRepo repositories.ProjectRepository
}

// NewAdUsecase creates a new ad usecase
func NewAdUsecase(adRepo repositories.AdRepository, projectRepo repositories.ProjectRepository) *AdUsecase {
	return &AdUsecase{
		adRepo:      adRepo,
		projectRepo: projectRepo,
	}
}

func adScope(actor *entities.User) (repositories.AdFilter, error) {
	switch actor.Role {
	case entities.UserRoleCP:
		return repositories.AdFilter{CpID: &actor.ID}, nil
	case entities.UserRoleDeveloper:
		return repositories.AdFilter{DeveloperID: &actor.ID}, nil
	}
	return repositories.AdFilter{}, domainerrors.Forbidden(accessDenied)
}

// cpStatusChange reports whether a CP may move its own ad from one status
// to another. Campaign state past pending is set by the ads team.
func cpStatusChange(from, to entities.AdStatus) bool {
	switch {
	case from == to, to == entities.AdStatusCancelled:
		return true
	case from == entities.AdStatusDraft && to == entities.AdStatusPending:
		return true
	}
	return false
}

func ownsAd(actor *entities.User, ad *entities.Ad) bool {
	switch actor.Role {
	case entities.UserRoleCP:
		return ad.CpID != nil && *ad.CpID == actor.ID
	case entities.UserRoleDeveloper:
		return ad.DeveloperID != nil && *ad.DeveloperID == actor.ID
	}
	return false
}

// List returns every ad visible to the actor
func (u *AdUsecase) List(ctx context.Context, actor *entities.User) ([]*entities.Ad, error) {
	filter, err := adScope(actor)
	if err != nil {
		return nil, err
	}
	ads, err := u.adRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return ads, nil
}

// Get returns an ad the actor owns
func (u *AdUsecase) Get(ctx context.Context, actor *entities.User, id uuid.UUID) (*entities.Ad, error) {
	return u.owned(ctx, actor, id, adNotFound)
}

// Create creates an ad owned by the calling CP or developer
func (u *AdUsecase) Create(ctx context.Context, actor *entities.User, input *entities.CreateAdInput) (*entities.Ad, error) {
	if actor.Role != entities.UserRoleCP && actor.Role != entities.UserRoleDeveloper {
		return nil, domainerrors.Forbidden(accessDenied)
	}
	if err := validation.Check(input); err != nil {
		return nil, err
	}
	if actor.Role == entities.UserRoleCP && input.Status != "" {
		status := entities.AdStatus(input.Status)
		if status != entities.AdStatusDraft && status != entities.AdStatusPending {
			return nil, fieldError("status", "must be one of draft, pending")
		}
	}

	projectID, err := utils.ParseUUIDPtr(input.ProjectID)
	if err != nil {
		return nil, fieldError("projectId", "must be a valid id")
	}

	now := time.Now()
	ad := &entities.Ad{
		ID:          utils.GenerateUUIDv7(),
		ProjectID:   projectID,
		Title:       input.Title,
		Description: null.StringFromPtr(input.Description),
		Budget:      *input.Budget,
		StartDate:   *input.StartDate,
		EndDate:     *input.EndDate,
		Status:      entities.AdStatusDraft,
		Platform:    entities.AdPlatformAll,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Status != "" {
		ad.Status = entities.AdStatus(input.Status)
	}
	if input.Platform != "" {
		ad.Platform = entities.AdPlatform(input.Platform)
	}
	if actor.Role == entities.UserRoleCP {
		ad.CpID = &actor.ID
	} else {
		ad.DeveloperID = &actor.ID
	}

	if err := u.adRepo.Create(ctx, ad); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return ad, nil
}

// Update applies a partial update to an ad the actor owns
func (u *AdUsecase) Update(ctx context.Context, actor *entities.User, id uuid.UUID, input *entities.UpdateAdInput) (*entities.Ad, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	ad, err := u.owned(ctx, actor, id, adNotFound)
	if err != nil {
		return nil, err
	}
	if actor.Role == entities.UserRoleCP && input.Status != nil &&
		!cpStatusChange(ad.Status, entities.AdStatus(*input.Status)) {
		return nil, fieldError("status", "can only be cancelled or submitted as pending")
	}

	input.Apply(ad)
	return u.save(ctx, ad, adNotFound)
}

// ListRequests returns the CP's ad requests
func (u *AdUsecase) ListRequests(ctx context.Context, cp *entities.User) ([]*entities.Ad, utils.CountMeta, error) {
	ads, err := u.adRepo.List(ctx, repositories.AdFilter{CpID: &cp.ID})
	if err != nil {
		return nil, utils.CountMeta{}, domainerrors.InternalError(err)
	}
	return ads, utils.CountMeta{Total: int64(len(ads))}, nil
}

// GetRequest returns one of the CP's ad requests
func (u *AdUsecase) GetRequest(ctx context.Context, cp *entities.User, id uuid.UUID) (*entities.Ad, error) {
	return u.owned(ctx, cp, id, adRequestNotFound)
}

// CreateRequest turns a CP "run ads" request into a pending campaign
func (u *AdUsecase) CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateAdRequestInput) (*entities.Ad, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	projectID, err := parseID(input.ProjectID, "projectId")
	if err != nil {
		return nil, err
	}
	if _, err := u.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, notFoundOr(err, projectNotFound)
	}

	now := time.Now()
	ad := &entities.Ad{
		ID:          utils.GenerateUUIDv7(),
		CpID:        &cp.ID,
		ProjectID:   &projectID,
		Title:       entities.AdObjective(input.Objective).CampaignTitle(),
		Description: optional(input.Notes),
		Budget:      input.BudgetInr,
		StartDate:   now,
		EndDate:     now.AddDate(0, 0, input.DurationDays),
		Status:      entities.AdStatusPending,
		Platform:    entities.AdPlatformAll,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.adRepo.Create(ctx, ad); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return ad, nil
}

// UpdateRequest lets a CP cancel a request or edit its description.
// Any other status value is ignored.
func (u *AdUsecase) UpdateRequest(ctx context.Context, cp *entities.User, id uuid.UUID, input *entities.UpdateAdRequestInput) (*entities.Ad, error) {
	ad, err := u.owned(ctx, cp, id, adRequestNotFound)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && entities.AdStatus(*input.Status) == entities.AdStatusCancelled {
		ad.Status = entities.AdStatusCancelled
	}
	if input.Description != nil {
		ad.Description = null.StringFrom(*input.Description)
	}
	return u.save(ctx, ad, adRequestNotFound)
}

// UpdateMetrics records externally reported performance figures
func (u *AdUsecase) UpdateMetrics(ctx context.Context, id uuid.UUID, input *entities.AdMetricsInput) (*entities.Ad, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}
	if input.Empty() {
		return nil, domainerrors.BadRequest("At least one metric is required")
	}

	if err := u.adRepo.UpdateMetrics(ctx, id, input); err != nil {
		return nil, notFoundOr(err, adNotFound)
	}
	ad, err := u.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, adNotFound)
	}
	return ad, nil
}

func (u *AdUsecase) owned(ctx context.Context, actor *entities.User, id uuid.UUID, notFound string) (*entities.Ad, error) {
	ad, err := u.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, notFound)
	}
	if !ownsAd(actor, ad) {
		return nil, domainerrors.Forbidden(accessDenied)
	}
	return ad, nil
}

func (u *AdUsecase) save(ctx context.Context, ad *entities.Ad, notFound string) (*entities.Ad, error) {
	ad.UpdatedAt = time.Now()
	if err := u.adRepo.Update(ctx, ad); err != nil {
		return nil, notFoundOr(err, notFound)
	}
	return ad, nil
}
