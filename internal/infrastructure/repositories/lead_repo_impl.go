package repositories

import (
	"context"
	"errors"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	domainRepos "betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// LeadRepository implements lead data operations
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	m := r.toModel(lead)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	lead.CreatedAt = m.CreatedAt
	lead.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a lead by ID
func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	var m models.Lead
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update saves the mutable columns of a lead
func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	m := r.toModel(lead)
	result := GetDB(ctx, r.db).Model(&models.Lead{}).Where("id = ?", lead.ID).Updates(map[string]interface{}{
		"customer_name":  m.CustomerName,
		"customer_phone": m.CustomerPhone,
		"customer_email": m.CustomerEmail,
		"customer_city":  m.CustomerCity,
		"budget":         m.Budget,
		"status":         m.Status,
		"notes":          m.Notes,
		"source":         m.Source,
		"updated_at":     lead.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) filtered(ctx context.Context, filter entities.LeadFilter) *gorm.DB {
	query := GetDB(ctx, r.db).Model(&models.Lead{})
	if filter.CpID != nil {
		query = query.Where("cp_id = ?", *filter.CpID)
	}
	if filter.DeveloperID != nil {
		query = query.Where("developer_id = ?", *filter.DeveloperID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	return query
}

// List returns a page of matching leads, newest first, and the total match count
func (r *LeadRepository) List(ctx context.Context, filter entities.LeadFilter, limit, offset int) ([]*entities.Lead, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.filtered(ctx, filter).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Lead
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Lead, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

// Count counts matching leads
func (r *LeadRepository) Count(ctx context.Context, filter entities.LeadFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

// CountByProject counts leads per project
func (r *LeadRepository) CountByProject(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		ProjectID uuid.UUID
		Total     int64
	}
	if err := GetDB(ctx, r.db).
		Model(&models.Lead{}).
		Select("project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProjectID] = row.Total
	}
	return out, nil
}

// CountByCpAndProject counts leads per (CP, project) on the given projects
func (r *LeadRepository) CountByCpAndProject(ctx context.Context, projectIDs []uuid.UUID) (map[domainRepos.CpProjectKey]int64, error) {
	out := make(map[domainRepos.CpProjectKey]int64)
	if len(projectIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		CpID      uuid.UUID
		ProjectID uuid.UUID
		Total     int64
	}
	if err := GetDB(ctx, r.db).
		Model(&models.Lead{}).
		Select("cp_id, project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs).
		Group("cp_id, project_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[domainRepos.CpProjectKey{CpID: row.CpID, ProjectID: row.ProjectID}] = row.Total
	}
	return out, nil
}

func (r *LeadRepository) toModel(l *entities.Lead) *models.Lead {
	return &models.Lead{
		ID:            l.ID,
		CpID:          l.CpID,
		ProjectID:     l.ProjectID,
		DeveloperID:   l.DeveloperID,
		CustomerName:  l.CustomerName,
		CustomerPhone: l.CustomerPhone,
		CustomerEmail: l.CustomerEmail.Ptr(),
		CustomerCity:  l.CustomerCity.Ptr(),
		Budget:        l.Budget.Ptr(),
		Status:        string(l.Status),
		Notes:         l.Notes.Ptr(),
		Source:        l.Source.Ptr(),
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func (r *LeadRepository) toEntity(m *models.Lead) *entities.Lead {
	return &entities.Lead{
		ID:            m.ID,
		CpID:          m.CpID,
		ProjectID:     m.ProjectID,
		DeveloperID:   m.DeveloperID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		CustomerEmail: null.StringFromPtr(m.CustomerEmail),
		CustomerCity:  null.StringFromPtr(m.CustomerCity),
		Budget:        null.StringFromPtr(m.Budget),
		Status:        entities.LeadStatus(m.Status),
		Notes:         null.StringFromPtr(m.Notes),
		Source:        null.StringFromPtr(m.Source),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
