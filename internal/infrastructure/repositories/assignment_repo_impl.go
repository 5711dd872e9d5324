package repositories

import (
	"context"
	"errors"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// AssignmentRepository implements CP-project assignment data operations
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, a *entities.CpProjectMap) error {
	m := &models.CpProjectMap{
		ID:                a.ID,
		CpID:              a.CpID,
		ProjectID:         a.ProjectID,
		Status:            string(a.Status),
		CommissionPercent: a.CommissionPercent.Ptr(),
		AssignedAt:        a.AssignedAt,
	}
	return GetDB(ctx, r.db).Create(m).Error
}

// GetByID gets an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CpProjectMap, error) {
	var m models.CpProjectMap
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCpAndProject gets the assignment of a CP on a project
func (r *AssignmentRepository) GetByCpAndProject(ctx context.Context, cpID, projectID uuid.UUID) (*entities.CpProjectMap, error) {
	var m models.CpProjectMap
	if err := GetDB(ctx, r.db).
		Where("cp_id = ? AND project_id = ?", cpID, projectID).
		Order("assigned_at ASC").
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByCp lists a CP's assignments, newest first
func (r *AssignmentRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.CpProjectMap, error) {
	var ms []models.CpProjectMap
	if err := GetDB(ctx, r.db).
		Where("cp_id = ?", cpID).
		Order("assigned_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListByProjects lists the assignments on any of the given projects
func (r *AssignmentRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.CpProjectMap, error) {
	if len(projectIDs) == 0 {
		return []*entities.CpProjectMap{}, nil
	}
	var ms []models.CpProjectMap
	if err := GetDB(ctx, r.db).
		Where("project_id IN ?", projectIDs).
		Order("assigned_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// UpdateStatus sets the approval status of an assignment
func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AssignmentStatus) error {
	result := GetDB(ctx, r.db).Model(&models.CpProjectMap{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountDistinctProjectsByCp counts the projects a CP is assigned to
func (r *AssignmentRepository) CountDistinctProjectsByCp(ctx context.Context, cpID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).
		Model(&models.CpProjectMap{}).
		Where("cp_id = ?", cpID).
		Distinct("project_id").
		Count(&count).Error
	return count, err
}

func (r *AssignmentRepository) toEntities(ms []models.CpProjectMap) []*entities.CpProjectMap {
	items := make([]*entities.CpProjectMap, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *AssignmentRepository) toEntity(m *models.CpProjectMap) *entities.CpProjectMap {
	return &entities.CpProjectMap{
		ID:                m.ID,
		CpID:              m.CpID,
		ProjectID:         m.ProjectID,
		Status:            entities.AssignmentStatus(m.Status),
		CommissionPercent: null.StringFromPtr(m.CommissionPercent),
		AssignedAt:        m.AssignedAt,
	}
}
