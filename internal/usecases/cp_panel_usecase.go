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
)

// CpPanelUsecase serves the CP dashboard and profile
type CpPanelUsecase struct {
	leadRepo       repositories.LeadRepository
	adRepo         repositories.AdRepository
	assignmentRepo repositories.AssignmentRepository
	profileRepo    repositories.CpProfileRepository
}

// NewCpPanelUsecase creates a new CP panel usecase
func NewCpPanelUsecase(
	leadRepo repositories.LeadRepository,
	adRepo repositories.AdRepository,
	assignmentRepo repositories.AssignmentRepository,
	profileRepo repositories.CpProfileRepository,
) *CpPanelUsecase {
	return &CpPanelUsecase{
		leadRepo:       leadRepo,
		adRepo:         adRepo,
		assignmentRepo: assignmentRepo,
		profileRepo:    profileRepo,
	}
}

// Dashboard summarises the CP's leads, projects and running ads
func (u *CpPanelUsecase) Dashboard(ctx context.Context, cp *entities.User) (*entities.CpDashboard, error) {
	since := startOfDay(time.Now())

	todays, err := u.leadRepo.Count(ctx, entities.LeadFilter{CpID: &cp.ID, Since: &since})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	total, err := u.leadRepo.Count(ctx, entities.LeadFilter{CpID: &cp.ID})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	projects, err := u.assignmentRepo.CountDistinctProjectsByCp(ctx, cp.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	ads, err := u.adRepo.Count(ctx, repositories.AdFilter{CpID: &cp.ID, Status: entities.AdStatusActive})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.CpDashboard{
		TodaysLeads:    todays,
		TotalLeads:     total,
		ActiveProjects: projects,
		ActiveAds:      ads,
	}, nil
}

// Profile returns the stored profile, or one built from the user row
func (u *CpPanelUsecase) Profile(ctx context.Context, cp *entities.User) (*entities.CpProfileView, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, cp.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.CpProfileView{
				UserID:      cp.ID,
				FullName:    cp.FullName,
				CompanyName: cp.CompanyName,
				Phone:       cp.Phone,
				City:        cp.City,
				Email:       cp.Email,
			}, nil
		}
		return nil, domainerrors.InternalError(err)
	}
	return profileView(profile, cp), nil
}

// UpdateProfile updates the CP's profile, creating it from the user row
// on first write
func (u *CpPanelUsecase) UpdateProfile(ctx context.Context, cp *entities.User, input *entities.UpdateCpProfileInput) (*entities.CpProfileView, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, cp.ID)
	switch {
	case err == nil:
		input.Apply(profile)
		if err := u.profileRepo.Update(ctx, profile); err != nil {
			return nil, domainerrors.InternalError(err)
		}
	case errors.Is(err, domainerrors.ErrNotFound):
		now := time.Now()
		profile = &entities.CpProfile{
			ID:          utils.GenerateUUIDv7(),
			UserID:      cp.ID,
			FullName:    cp.FullName,
			CompanyName: cp.CompanyName,
			Phone:       cp.Phone,
			City:        cp.City,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		input.Apply(profile)
		if err := u.profileRepo.Create(ctx, profile); err != nil {
			return nil, domainerrors.InternalError(err)
		}
	default:
		return nil, domainerrors.InternalError(err)
	}

	return profileView(profile, cp), nil
}

func profileView(p *entities.CpProfile, cp *entities.User) *entities.CpProfileView {
	id := p.ID
	return &entities.CpProfileView{
		ID:          &id,
		UserID:      p.UserID,
		FullName:    p.FullName,
		CompanyName: p.CompanyName,
		Phone:       p.Phone,
		City:        p.City,
		ExtraJSON:   p.ExtraJSON,
		Email:       cp.Email,
	}
}
