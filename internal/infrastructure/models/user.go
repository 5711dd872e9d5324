package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName         string    `gorm:"type:text;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	City             string    `gorm:"type:text;not null"`
	Role             string    `gorm:"type:varchar(20);not null;index"`
	Password         string    `gorm:"type:varchar(255);not null"`
	CompanyName      *string   `gorm:"type:text"`
	ContactPerson    *string   `gorm:"type:text"`
	GSTNumber        *string   `gorm:"column:gst_number;type:varchar(15)"`
	ReraNumber       *string   `gorm:"type:text"`
	IsReraRegistered bool      `gorm:"not null;default:false"`
	DocLink          *string   `gorm:"type:text"`
	Budget           *string   `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
}

type CpProfile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	FullName    string         `gorm:"type:text;not null"`
	CompanyName *string        `gorm:"type:text"`
	Phone       string         `gorm:"type:varchar(20);not null"`
	City        string         `gorm:"type:text;not null"`
	ExtraJSON   datatypes.JSON `gorm:"column:extra_json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
