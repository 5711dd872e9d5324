package repositories

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	domainRepos "betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// AdRepository implements ad data operations
type AdRepository struct {
	db *gorm.DB
}

// NewAdRepository creates a new ad repository
func NewAdRepository(db *gorm.DB) *AdRepository {
	return &AdRepository{db: db}
}

// Create creates a new ad
func (r *AdRepository) Create(ctx context.Context, ad *entities.Ad) error {
	m := r.toModel(ad)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	ad.CreatedAt = m.CreatedAt
	ad.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an ad by ID
func (r *AdRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error) {
	var m models.Ad
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AdRepository) filtered(ctx context.Context, filter domainRepos.AdFilter) *gorm.DB {
	query := GetDB(ctx, r.db).Model(&models.Ad{})
	if filter.CpID != nil {
		query = query.Where("cp_id = ?", *filter.CpID)
	}
	if filter.DeveloperID != nil {
		query = query.Where("developer_id = ?", *filter.DeveloperID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	return query
}

// List lists matching ads, newest first
func (r *AdRepository) List(ctx context.Context, filter domainRepos.AdFilter) ([]*entities.Ad, error) {
	var ms []models.Ad
	if err := r.filtered(ctx, filter).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Ad, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// Count counts matching ads
func (r *AdRepository) Count(ctx context.Context, filter domainRepos.AdFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

// Update saves the campaign fields of an ad. Performance metrics are untouched.
func (r *AdRepository) Update(ctx context.Context, ad *entities.Ad) error {
	result := GetDB(ctx, r.db).Model(&models.Ad{}).Where("id = ?", ad.ID).Updates(map[string]interface{}{
		"title":       ad.Title,
		"description": ad.Description.Ptr(),
		"budget":      ad.Budget,
		"start_date":  ad.StartDate,
		"end_date":    ad.EndDate,
		"status":      string(ad.Status),
		"platform":    string(ad.Platform),
		"updated_at":  ad.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateMetrics sets the externally reported performance figures
func (r *AdRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entities.AdMetricsInput) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if metrics.Impressions != nil {
		updates["impressions"] = *metrics.Impressions
	}
	if metrics.Clicks != nil {
		updates["clicks"] = *metrics.Clicks
	}
	if metrics.Leads != nil {
		updates["leads"] = *metrics.Leads
	}
	if metrics.SpentAmount != nil {
		updates["spent_amount"] = *metrics.SpentAmount
	}

	result := GetDB(ctx, r.db).Model(&models.Ad{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CpProjectsWithAds returns the (CP, project) pairs with a non-draft ad
func (r *AdRepository) CpProjectsWithAds(ctx context.Context, projectIDs []uuid.UUID) (map[domainRepos.CpProjectKey]bool, error) {
	out := make(map[domainRepos.CpProjectKey]bool)
	if len(projectIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		CpID      uuid.UUID
		ProjectID uuid.UUID
	}
	if err := GetDB(ctx, r.db).
		Model(&models.Ad{}).
		Distinct("cp_id", "project_id").
		Where("project_id IN ? AND cp_id IS NOT NULL AND status <> ?", projectIDs, string(entities.AdStatusDraft)).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[domainRepos.CpProjectKey{CpID: row.CpID, ProjectID: row.ProjectID}] = true
	}
	return out, nil
}

func (r *AdRepository) toModel(a *entities.Ad) *models.Ad {
	return &models.Ad{
		ID:          a.ID,
		CpID:        a.CpID,
		ProjectID:   a.ProjectID,
		DeveloperID: a.DeveloperID,
		Title:       a.Title,
		Description: a.Description.Ptr(),
		Budget:      a.Budget,
		SpentAmount: a.SpentAmount,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Status:      string(a.Status),
		Platform:    string(a.Platform),
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		Leads:       a.Leads,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r *AdRepository) toEntity(m *models.Ad) *entities.Ad {
	return &entities.Ad{
		ID:          m.ID,
		CpID:        m.CpID,
		ProjectID:   m.ProjectID,
		DeveloperID: m.DeveloperID,
		Title:       m.Title,
		Description: null.StringFromPtr(m.Description),
		Budget:      m.Budget,
		SpentAmount: m.SpentAmount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      entities.AdStatus(m.Status),
		Platform:    entities.AdPlatform(m.Platform),
		Impressions: m.Impressions,
		Clicks:      m.Clicks,
		Leads:       m.Leads,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
