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

// ProjectRepository implements project data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByIDs gets every project whose id is in ids
func (r *ProjectRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Project, error) {
	if len(ids) == 0 {
		return []*entities.Project{}, nil
	}
	var ms []models.Project
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListByDeveloper lists a developer's projects, newest first
func (r *ProjectRepository) ListByDeveloper(ctx context.Context, developerID uuid.UUID) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).
		Where("developer_id = ?", developerID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListActive lists every active project, newest first
func (r *ProjectRepository) ListActive(ctx context.Context) ([]*entities.Project, error) {
	var ms []models.Project
	if err := GetDB(ctx, r.db).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// Update saves every mutable column of a project. The owner is never changed.
func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	result := GetDB(ctx, r.db).Model(&models.Project{}).Where("id = ?", project.ID).Updates(map[string]interface{}{
		"name":            m.Name,
		"description":     m.Description,
		"location":        m.Location,
		"city":            m.City,
		"project_type":    m.ProjectType,
		"status":          m.Status,
		"price_min":       m.PriceMin,
		"price_max":       m.PriceMax,
		"rera_number":     m.ReraNumber,
		"total_units":     m.TotalUnits,
		"available_units": m.AvailableUnits,
		"amenities":       m.Amenities,
		"image_url":       m.ImageURL,
		"brochure_url":    m.BrochureURL,
		"is_active":       m.IsActive,
		"updated_at":      project.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a project permanently
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) toEntities(ms []models.Project) []*entities.Project {
	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items
}

func (r *ProjectRepository) toModel(p *entities.Project) *models.Project {
	return &models.Project{
		ID:             p.ID,
		DeveloperID:    p.DeveloperID,
		Name:           p.Name,
		Description:    p.Description.Ptr(),
		Location:       p.Location,
		City:           p.City,
		ProjectType:    string(p.ProjectType),
		Status:         string(p.Status),
		PriceMin:       p.PriceMin.Ptr(),
		PriceMax:       p.PriceMax.Ptr(),
		ReraNumber:     p.ReraNumber.Ptr(),
		TotalUnits:     p.TotalUnits.Ptr(),
		AvailableUnits: p.AvailableUnits.Ptr(),
		Amenities:      p.Amenities.Ptr(),
		ImageURL:       p.ImageURL.Ptr(),
		BrochureURL:    p.BrochureURL.Ptr(),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:             m.ID,
		DeveloperID:    m.DeveloperID,
		Name:           m.Name,
		Description:    null.StringFromPtr(m.Description),
		Location:       m.Location,
		City:           m.City,
		ProjectType:    entities.ProjectType(m.ProjectType),
		Status:         entities.ProjectStatus(m.Status),
		PriceMin:       null.IntFromPtr(m.PriceMin),
		PriceMax:       null.IntFromPtr(m.PriceMax),
		ReraNumber:     null.StringFromPtr(m.ReraNumber),
		TotalUnits:     null.IntFromPtr(m.TotalUnits),
		AvailableUnits: null.IntFromPtr(m.AvailableUnits),
		Amenities:      null.StringFromPtr(m.Amenities),
		ImageURL:       null.StringFromPtr(m.ImageURL),
		BrochureURL:    null.StringFromPtr(m.BrochureURL),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
