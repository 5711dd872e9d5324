package repositories

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// MarketingCounterRepository defines marketing counter data operations
type MarketingCounterRepository interface {
	// Increment atomically adds the deltas to the (cp, project) row,
	// creating it on first write, and returns the resulting row
	Increment(ctx context.Context, cpID uuid.UUID, projectID *uuid.UUID, creatives, edms int) (*entities.MarketingCounter, error)
	ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingCounter, error)
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.MarketingCounter, error)
}

// MarketingRequestRepository defines marketing request data operations
type MarketingRequestRepository interface {
	Create(ctx context.Context, request *entities.MarketingRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketingRequest, error)
	ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MarketingRequestStatus) error
}
