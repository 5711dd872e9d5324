package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeveloperID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:text;not null"`
	Description    *string   `gorm:"type:text"`
	Location       string    `gorm:"type:text;not null"`
	City           string    `gorm:"type:text;not null"`
	ProjectType    string    `gorm:"type:varchar(20);not null"`
	Status         string    `gorm:"type:varchar(30);not null"`
	PriceMin       *int
	PriceMax       *int
	ReraNumber     *string `gorm:"type:text"`
	TotalUnits     *int
	AvailableUnits *int
	Amenities      *string `gorm:"type:text"`
	ImageURL       *string `gorm:"column:image_url;type:text"`
	BrochureURL    *string `gorm:"column:brochure_url;type:text"`
	IsActive       bool    `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CpProjectMap struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CpID              uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CommissionPercent *string   `gorm:"type:decimal(5,2)"`
	AssignedAt        time.Time `gorm:"not null"`
}

func (CpProjectMap) TableName() string {
	return "cp_project_map"
}
