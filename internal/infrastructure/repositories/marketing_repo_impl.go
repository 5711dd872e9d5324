package repositories

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/infrastructure/models"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarketingCounterRepository implements marketing counter data operations
type MarketingCounterRepository struct {
	db *gorm.DB
}

// NewMarketingCounterRepository creates a new marketing counter repository
func NewMarketingCounterRepository(db *gorm.DB) *MarketingCounterRepository {
	return &MarketingCounterRepository{db: db}
}

func scopeKey(projectID *uuid.UUID) string {
	if projectID == nil {
		return ""
	}
	return projectID.String()
}

// Increment adds the deltas in a single INSERT ... ON CONFLICT DO UPDATE
// statement so concurrent increments on one row never lose an update.
func (r *MarketingCounterRepository) Increment(ctx context.Context, cpID uuid.UUID, projectID *uuid.UUID, creatives, edms int) (*entities.MarketingCounter, error) {
	now := time.Now()
	key := scopeKey(projectID)
	m := &models.MarketingCounter{
		ID:              utils.GenerateUUIDv7(),
		CpID:            cpID,
		ProjectID:       projectID,
		ScopeKey:        key,
		CreativesShared: creatives,
		EdmsShared:      edms,
		LastUpdated:     now,
	}

	db := GetDB(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cp_id"}, {Name: "scope_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"creatives_shared": gorm.Expr("marketing_counters.creatives_shared + ?", creatives),
			"edms_shared":      gorm.Expr("marketing_counters.edms_shared + ?", edms),
			"last_updated":     now,
		}),
	}).Create(m).Error
	if err != nil {
		return nil, err
	}

	var out models.MarketingCounter
	if err := db.Where("cp_id = ? AND scope_key = ?", cpID, key).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&out), nil
}

// ListByCp lists every counter row of a CP
func (r *MarketingCounterRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingCounter, error) {
	var ms []models.MarketingCounter
	if err := GetDB(ctx, r.db).
		Where("cp_id = ?", cpID).
		Order("last_updated DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListByProjects lists the project-scoped counter rows of the given projects
func (r *MarketingCounterRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.MarketingCounter, error) {
	if len(projectIDs) == 0 {
		return []*entities.MarketingCounter{}, nil
	}
	var ms []models.MarketingCounter
	if err := GetDB(ctx, r.db).
		Where("project_id IN ?", projectIDs).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *MarketingCounterRepository) toEntities(ms []models.MarketingCounter) []*entities.MarketingCounter {
	items := make([]*entities.MarketingCounter, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *MarketingCounterRepository) toEntity(m *models.MarketingCounter) *entities.MarketingCounter {
	return &entities.MarketingCounter{
		ID:              m.ID,
		CpID:            m.CpID,
		ProjectID:       m.ProjectID,
		CreativesShared: m.CreativesShared,
		EdmsShared:      m.EdmsShared,
		LastUpdated:     m.LastUpdated,
	}
}

// MarketingRequestRepository implements marketing request data operations
type MarketingRequestRepository struct {
	db *gorm.DB
}

// NewMarketingRequestRepository creates a new marketing request repository
func NewMarketingRequestRepository(db *gorm.DB) *MarketingRequestRepository {
	return &MarketingRequestRepository{db: db}
}

// Create creates a new marketing request
func (r *MarketingRequestRepository) Create(ctx context.Context, req *entities.MarketingRequest) error {
	m := &models.MarketingRequest{
		ID:          req.ID,
		CpID:        req.CpID,
		ProjectID:   req.ProjectID,
		RequestType: string(req.RequestType),
		Notes:       req.Notes.Ptr(),
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a marketing request by ID
func (r *MarketingRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketingRequest, error) {
	var m models.MarketingRequest
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByCp lists a CP's requests, newest first
func (r *MarketingRequestRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingRequest, error) {
	var ms []models.MarketingRequest
	if err := GetDB(ctx, r.db).
		Where("cp_id = ?", cpID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.MarketingRequest, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// UpdateStatus sets the status of a request
func (r *MarketingRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MarketingRequestStatus) error {
	result := GetDB(ctx, r.db).Model(&models.MarketingRequest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MarketingRequestRepository) toEntity(m *models.MarketingRequest) *entities.MarketingRequest {
	return &entities.MarketingRequest{
		ID:          m.ID,
		CpID:        m.CpID,
		ProjectID:   m.ProjectID,
		RequestType: entities.MarketingRequestType(m.RequestType),
		Notes:       null.StringFromPtr(m.Notes),
		Status:      entities.MarketingRequestStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
