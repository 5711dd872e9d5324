package repositories

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A taken email yields ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := r.toModel(user)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByIDs gets every user whose id is in ids
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	if len(ids) == 0 {
		return []*entities.User{}, nil
	}
	var ms []models.User
	if err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// ListByRole lists users of the given role, newest first
func (r *UserRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	var ms []models.User
	if err := GetDB(ctx, r.db).
		Where("role = ?", string(role)).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

func (r *UserRepository) toEntities(ms []models.User) []*entities.User {
	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, r.toEntity(&ms[i]))
	}
	return users
}

func (r *UserRepository) toModel(u *entities.User) *models.User {
	return &models.User{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Phone:            u.Phone,
		City:             u.City,
		Role:             string(u.Role),
		Password:         u.PasswordHash,
		CompanyName:      u.CompanyName.Ptr(),
		ContactPerson:    u.ContactPerson.Ptr(),
		GSTNumber:        u.GSTNumber.Ptr(),
		ReraNumber:       u.ReraNumber.Ptr(),
		IsReraRegistered: u.IsReraRegistered,
		DocLink:          u.DocLink.Ptr(),
		Budget:           u.Budget.Ptr(),
		CreatedAt:        u.CreatedAt,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:               m.ID,
		FullName:         m.FullName,
		Email:            m.Email,
		Phone:            m.Phone,
		City:             m.City,
		Role:             entities.UserRole(m.Role),
		PasswordHash:     m.Password,
		CompanyName:      null.StringFromPtr(m.CompanyName),
		ContactPerson:    null.StringFromPtr(m.ContactPerson),
		GSTNumber:        null.StringFromPtr(m.GSTNumber),
		ReraNumber:       null.StringFromPtr(m.ReraNumber),
		IsReraRegistered: m.IsReraRegistered,
		DocLink:          null.StringFromPtr(m.DocLink),
		Budget:           null.StringFromPtr(m.Budget),
		CreatedAt:        m.CreatedAt,
	}
}

// CpProfileRepository implements CP profile data operations
type CpProfileRepository struct {
	db *gorm.DB
}

// NewCpProfileRepository creates a new CP profile repository
func NewCpProfileRepository(db *gorm.DB) *CpProfileRepository {
	return &CpProfileRepository{db: db}
}

// GetByUserID gets the profile of a CP user
func (r *CpProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CpProfile, error) {
	var m models.CpProfile
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Create creates a profile; one per user
func (r *CpProfileRepository) Create(ctx context.Context, profile *entities.CpProfile) error {
	m := r.toModel(profile)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	profile.CreatedAt = m.CreatedAt
	profile.UpdatedAt = m.UpdatedAt
	return nil
}

// Update saves the display fields of a profile
func (r *CpProfileRepository) Update(ctx context.Context, profile *entities.CpProfile) error {
	m := r.toModel(profile)
	result := GetDB(ctx, r.db).Model(&models.CpProfile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"full_name":    m.FullName,
		"company_name": m.CompanyName,
		"phone":        m.Phone,
		"city":         m.City,
		"extra_json":   m.ExtraJSON,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *CpProfileRepository) toModel(p *entities.CpProfile) *models.CpProfile {
	m := &models.CpProfile{
		ID:          p.ID,
		UserID:      p.UserID,
		FullName:    p.FullName,
		CompanyName: p.CompanyName.Ptr(),
		Phone:       p.Phone,
		City:        p.City,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ExtraJSON.Valid && p.ExtraJSON.String != "" {
		m.ExtraJSON = datatypes.JSON(p.ExtraJSON.String)
	}
	return m
}

func (r *CpProfileRepository) toEntity(m *models.CpProfile) *entities.CpProfile {
	p := &entities.CpProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		FullName:    m.FullName,
		CompanyName: null.StringFromPtr(m.CompanyName),
		Phone:       m.Phone,
		City:        m.City,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.ExtraJSON) > 0 {
		p.ExtraJSON = null.StringFrom(string(m.ExtraJSON))
	}
	return p
}
