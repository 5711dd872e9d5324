package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProjectType represents the kind of real-estate project
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeVilla       ProjectType = "villa"
	ProjectTypePlot        ProjectType = "plot"
)

// ProjectStatus represents the construction stage of a project
type ProjectStatus string

const (
	ProjectStatusPreLaunch         ProjectStatus = "pre_launch"
	ProjectStatusUnderConstruction ProjectStatus = "under_construction"
	ProjectStatusReadyToMove       ProjectStatus = "ready_to_move"
	ProjectStatusCompleted         ProjectStatus = "completed"
)

// Project is owned by exactly one developer
type Project struct {
	ID             uuid.UUID     `json:"id"`
	DeveloperID    uuid.UUID     `json:"developerId"`
	Name           string        `json:"name"`
	Description    null.String   `json:"description"`
	Location       string        `json:"location"`
	City           string        `json:"city"`
	ProjectType    ProjectType   `json:"projectType"`
	Status         ProjectStatus `json:"status"`
	PriceMin       null.Int      `json:"priceMin"`
	PriceMax       null.Int      `json:"priceMax"`
	ReraNumber     null.String   `json:"reraNumber"`
	TotalUnits     null.Int      `json:"totalUnits"`
	AvailableUnits null.Int      `json:"availableUnits"`
	Amenities      null.String   `json:"amenities"`
	ImageURL       null.String   `json:"imageUrl"`
	BrochureURL    null.String   `json:"brochureUrl"`
	IsActive       bool          `json:"isActive"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name           string  `json:"name" validate:"required,min=1"`
	Description    *string `json:"description"`
	Location       string  `json:"location" validate:"required,min=1"`
	City           string  `json:"city" validate:"required,min=1"`
	ProjectType    string  `json:"projectType" validate:"required,oneof=residential commercial villa plot"`
	Status         string  `json:"status" validate:"required,oneof=pre_launch under_construction ready_to_move completed"`
	PriceMin       *int    `json:"priceMin" validate:"omitempty,gte=0"`
	PriceMax       *int    `json:"priceMax" validate:"omitempty,gte=0"`
	ReraNumber     *string `json:"reraNumber"`
	TotalUnits     *int    `json:"totalUnits" validate:"omitempty,gte=0"`
	AvailableUnits *int    `json:"availableUnits" validate:"omitempty,gte=0"`
	Amenities      *string `json:"amenities"`
	ImageURL       *string `json:"imageUrl"`
	BrochureURL    *string `json:"brochureUrl"`
	IsActive       *bool   `json:"isActive"`
}

// UpdateProjectInput is a partial update; nil fields are left unchanged.
// developerId is not updatable.
type UpdateProjectInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Description    *string `json:"description"`
	Location       *string `json:"location" validate:"omitempty,min=1"`
	City           *string `json:"city" validate:"omitempty,min=1"`
	ProjectType    *string `json:"projectType" validate:"omitempty,oneof=residential commercial villa plot"`
	Status         *string `json:"status" validate:"omitempty,oneof=pre_launch under_construction ready_to_move completed"`
	PriceMin       *int    `json:"priceMin" validate:"omitempty,gte=0"`
	PriceMax       *int    `json:"priceMax" validate:"omitempty,gte=0"`
	ReraNumber     *string `json:"reraNumber"`
	TotalUnits     *int    `json:"totalUnits" validate:"omitempty,gte=0"`
	AvailableUnits *int    `json:"availableUnits" validate:"omitempty,gte=0"`
	Amenities      *string `json:"amenities"`
	ImageURL       *string `json:"imageUrl"`
	BrochureURL    *string `json:"brochureUrl"`
	IsActive       *bool   `json:"isActive"`
}

// Apply copies the set fields of in onto p
func (in *UpdateProjectInput) Apply(p *Project) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = null.StringFrom(*in.Description)
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.ProjectType != nil {
		p.ProjectType = ProjectType(*in.ProjectType)
	}
	if in.Status != nil {
		p.Status = ProjectStatus(*in.Status)
	}
	if in.PriceMin != nil {
		p.PriceMin = null.IntFrom(*in.PriceMin)
	}
	if in.PriceMax != nil {
		p.PriceMax = null.IntFrom(*in.PriceMax)
	}
	if in.ReraNumber != nil {
		p.ReraNumber = null.StringFrom(*in.ReraNumber)
	}
	if in.TotalUnits != nil {
		p.TotalUnits = null.IntFrom(*in.TotalUnits)
	}
	if in.AvailableUnits != nil {
		p.AvailableUnits = null.IntFrom(*in.AvailableUnits)
	}
	if in.Amenities != nil {
		p.Amenities = null.StringFrom(*in.Amenities)
	}
	if in.ImageURL != nil {
		p.ImageURL = null.StringFrom(*in.ImageURL)
	}
	if in.BrochureURL != nil {
		p.BrochureURL = null.StringFrom(*in.BrochureURL)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

// ProjectPerformance is one row of the developer performance report
type ProjectPerformance struct {
	ProjectID   uuid.UUID `json:"projectId"`
	Name        string    `json:"name"`
	TotalLeads  int64     `json:"totalLeads"`
	Performance string    `json:"performance"`
}
