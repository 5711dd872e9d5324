package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CpID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DeveloperID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:text;not null"`
	CustomerPhone string    `gorm:"type:varchar(20);not null"`
	CustomerEmail *string   `gorm:"type:text"`
	CustomerCity  *string   `gorm:"type:text"`
	Budget        *string   `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'new';index"`
	Notes         *string   `gorm:"type:text"`
	Source        *string   `gorm:"type:varchar(20)"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

type Ad struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CpID        *uuid.UUID `gorm:"type:uuid;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid;index"`
	DeveloperID *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:text;not null"`
	Description *string    `gorm:"type:text"`
	Budget      int        `gorm:"not null"`
	SpentAmount int        `gorm:"not null;default:0"`
	StartDate   time.Time  `gorm:"not null"`
	EndDate     time.Time  `gorm:"not null"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'"`
	Platform    string     `gorm:"type:varchar(20);not null;default:'all'"`
	Impressions int        `gorm:"not null;default:0"`
	Clicks      int        `gorm:"not null;default:0"`
	Leads       int        `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
