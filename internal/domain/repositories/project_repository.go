package repositories

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ProjectRepository defines project data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Project, error)
	ListByDeveloper(ctx context.Context, developerID uuid.UUID) ([]*entities.Project, error)
	ListActive(ctx context.Context) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentRepository defines CP-project assignment data operations
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entities.CpProjectMap) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.CpProjectMap, error)
	GetByCpAndProject(ctx context.Context, cpID, projectID uuid.UUID) (*entities.CpProjectMap, error)
	ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.CpProjectMap, error)
	ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.CpProjectMap, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AssignmentStatus) error
	CountDistinctProjectsByCp(ctx context.Context, cpID uuid.UUID) (int64, error)
}
