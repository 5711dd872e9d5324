package repositories

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// CpProjectKey identifies a (CP, project) pair in aggregate results
type CpProjectKey struct {
	CpID      uuid.UUID
	ProjectID uuid.UUID
}

// LeadRepository defines lead data operations. Leads are never removed.
type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error)
	Update(ctx context.Context, lead *entities.Lead) error
	// List returns the page of matching leads and the unpaginated total.
	// A limit of 0 returns every match.
	List(ctx context.Context, filter entities.LeadFilter, limit, offset int) ([]*entities.Lead, int64, error)
	Count(ctx context.Context, filter entities.LeadFilter) (int64, error)
	CountByProject(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountByCpAndProject(ctx context.Context, projectIDs []uuid.UUID) (map[CpProjectKey]int64, error)
}
