package models

import (
	"time"

	"github.com/google/uuid"
)

// MarketingCounter rows are unique per (cp_id, scope_key). ScopeKey is the
// project id, or empty for the CP-wide row, so the unique index also covers
// rows without a project.
type MarketingCounter struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CpID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_marketing_counters_scope,priority:1"`
	ProjectID       *uuid.UUID `gorm:"type:uuid"`
	ScopeKey        string     `gorm:"type:varchar(36);not null;default:'';uniqueIndex:idx_marketing_counters_scope,priority:2"`
	CreativesShared int        `gorm:"not null;default:0"`
	EdmsShared      int        `gorm:"not null;default:0"`
	LastUpdated     time.Time  `gorm:"not null"`
}

type MarketingRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CpID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectID   *uuid.UUID `gorm:"type:uuid"`
	RequestType string     `gorm:"type:varchar(20);not null"`
	Notes       *string    `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
