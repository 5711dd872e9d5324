package repositories

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// AdFilter narrows ad listings
type AdFilter struct {
	CpID        *uuid.UUID
	DeveloperID *uuid.UUID
	Status      entities.AdStatus
}

// AdRepository defines ad data operations
type AdRepository interface {
	Create(ctx context.Context, ad *entities.Ad) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error)
	List(ctx context.Context, filter AdFilter) ([]*entities.Ad, error)
	Count(ctx context.Context, filter AdFilter) (int64, error)
	Update(ctx context.Context, ad *entities.Ad) error
	UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entities.AdMetricsInput) error
	// CpProjectsWithAds returns the (CP, project) pairs that have at least
	// one ad outside the draft state
	CpProjectsWithAds(ctx context.Context, projectIDs []uuid.UUID) (map[CpProjectKey]bool, error)
}
