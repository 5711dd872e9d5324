package usecases

import (
	"context"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/domain/validation"
	"betterside.backend/pkg/logger"
	"betterside.backend/pkg/metrics"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MarketingUsecase handles collateral counters and requests
type MarketingUsecase struct {
	counterRepo repositories.MarketingCounterRepository
	requestRepo repositories.MarketingRequestRepository
	projectRepo repositories.ProjectRepository
}

// NewMarketingUsecase creates a new marketing usecase
func NewMarketingUsecase(
	counterRepo repositories.MarketingCounterRepository,
	requestRepo repositories.MarketingRequestRepository,
	projectRepo repositories.ProjectRepository,
) *MarketingUsecase {
	return &MarketingUsecase{
		counterRepo: counterRepo,
		requestRepo: requestRepo,
		projectRepo: projectRepo,
	}
}

// Summary totals every counter row of the CP and lists the project-scoped ones
func (u *MarketingUsecase) Summary(ctx context.Context, cp *entities.User) (*entities.MarketingSummary, error) {
	rows, err := u.counterRepo.ListByCp(ctx, cp.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	var scoped []*entities.MarketingCounter
	summary := &entities.MarketingSummary{PerProject: []entities.ProjectMarketing{}}
	for _, row := range rows {
		summary.CreativesShared += row.CreativesShared
		summary.EdmsShared += row.EdmsShared
		if row.ProjectID != nil {
			scoped = append(scoped, row)
		}
	}
	if len(scoped) == 0 {
		return summary, nil
	}

	ids := projectIDs(scoped, func(c *entities.MarketingCounter) uuid.UUID { return *c.ProjectID })
	projects, err := u.projectRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	titles := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		titles[p.ID] = p.Name
	}

	for _, row := range scoped {
		title, ok := titles[*row.ProjectID]
		if !ok {
			title = "Unknown"
		}
		summary.PerProject = append(summary.PerProject, entities.ProjectMarketing{
			ProjectID:       *row.ProjectID,
			ProjectTitle:    title,
			CreativesShared: row.CreativesShared,
			EdmsShared:      row.EdmsShared,
		})
	}
	return summary, nil
}

// Increment adds non-negative deltas to a CP's counter row atomically
func (u *MarketingUsecase) Increment(ctx context.Context, input *entities.IncrementCountersInput) (*entities.MarketingCounter, error) {
	if input.CpID == "" {
		return nil, domainerrors.BadRequest("cp_id required")
	}
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	cpID, err := parseID(input.CpID, "cp_id")
	if err != nil {
		return nil, err
	}
	projectID, err := utils.ParseUUIDPtr(input.ProjectID)
	if err != nil {
		return nil, fieldError("project_id", "must be a valid id")
	}

	counter, err := u.counterRepo.Increment(ctx, cpID, projectID, intOrZero(input.Creatives), intOrZero(input.Edms))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	metrics.MarketingCounterIncrementsTotal.Inc()
	logger.Info(ctx, "Marketing counters incremented",
		zap.String("cp_id", cpID.String()),
		zap.Int("creatives", intOrZero(input.Creatives)),
		zap.Int("edms", intOrZero(input.Edms)),
	)
	return counter, nil
}

// CreateRequest records a CP's ask for collateral
func (u *MarketingUsecase) CreateRequest(ctx context.Context, cp *entities.User, input *entities.CreateMarketingRequestInput) (*entities.MarketingRequest, error) {
	requestType := entities.MarketingRequestType(input.Type)
	if requestType != entities.MarketingRequestCreative && requestType != entities.MarketingRequestEdm {
		return nil, domainerrors.BadRequest("Invalid request type. Must be 'creative' or 'edm'")
	}

	projectID, err := utils.ParseUUIDPtr(input.ProjectID)
	if err != nil {
		return nil, fieldError("project_id", "must be a valid id")
	}

	now := time.Now()
	request := &entities.MarketingRequest{
		ID:          utils.GenerateUUIDv7(),
		CpID:        cp.ID,
		ProjectID:   projectID,
		RequestType: requestType,
		Notes:       optional(input.Notes),
		Status:      entities.MarketingRequestPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.requestRepo.Create(ctx, request); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return request, nil
}

// ListRequests returns the CP's requests, newest first
func (u *MarketingUsecase) ListRequests(ctx context.Context, cp *entities.User) ([]*entities.MarketingRequest, utils.CountMeta, error) {
	items, err := u.requestRepo.ListByCp(ctx, cp.ID)
	if err != nil {
		return nil, utils.CountMeta{}, domainerrors.InternalError(err)
	}
	return items, utils.CountMeta{Total: int64(len(items))}, nil
}

// UpdateRequestStatus moves a request to any status
func (u *MarketingUsecase) UpdateRequestStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateMarketingRequestStatusInput) (*entities.MarketingRequest, error) {
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	if err := u.requestRepo.UpdateStatus(ctx, id, entities.MarketingRequestStatus(input.Status)); err != nil {
		return nil, notFoundOr(err, "Marketing request not found")
	}
	request, err := u.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Marketing request not found")
	}
	return request, nil
}
