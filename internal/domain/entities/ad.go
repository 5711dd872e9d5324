package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AdStatus represents the state of an ad campaign
type AdStatus string

const (
	AdStatusDraft     AdStatus = "draft"
	AdStatusPending   AdStatus = "pending"
	AdStatusActive    AdStatus = "active"
	AdStatusPaused    AdStatus = "paused"
	AdStatusCompleted AdStatus = "completed"
	AdStatusCancelled AdStatus = "cancelled"
)

// AdPlatform represents where an ad runs
type AdPlatform string

const (
	AdPlatformFacebook  AdPlatform = "facebook"
	AdPlatformInstagram AdPlatform = "instagram"
	AdPlatformGoogle    AdPlatform = "google"
	AdPlatformAll       AdPlatform = "all"
)

// Ad is an ad campaign request. Impressions, clicks, leads and spentAmount
// are written only by the admin metrics path.
type Ad struct {
	ID          uuid.UUID   `json:"id"`
	CpID        *uuid.UUID  `json:"cpId"`
	ProjectID   *uuid.UUID  `json:"projectId"`
	DeveloperID *uuid.UUID  `json:"developerId"`
	Title       string      `json:"title"`
	Description null.String `json:"description"`
	Budget      int         `json:"budget"`
	SpentAmount int         `json:"spentAmount"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Status      AdStatus    `json:"status"`
	Platform    AdPlatform  `json:"platform"`
	Impressions int         `json:"impressions"`
	Clicks      int         `json:"clicks"`
	Leads       int         `json:"leads"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateAdInput represents input for POST /api/ads
type CreateAdInput struct {
	ProjectID   *string    `json:"projectId" validate:"omitempty,uuid"`
	Title       string     `json:"title" validate:"required,min=1"`
	Description *string    `json:"description"`
	Budget      *int       `json:"budget" validate:"required,gte=0"`
	StartDate   *time.Time `json:"startDate" validate:"required"`
	EndDate     *time.Time `json:"endDate" validate:"required"`
	Status      string     `json:"status" validate:"omitempty,oneof=draft pending active paused completed cancelled"`
	Platform    string     `json:"platform" validate:"omitempty,oneof=facebook instagram google all"`
}

// UpdateAdInput is a strict partial update
type UpdateAdInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Budget      *int       `json:"budget" validate:"omitempty,gte=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft pending active paused completed cancelled"`
	Platform    *string    `json:"platform" validate:"omitempty,oneof=facebook instagram google all"`
}

// Apply copies the set fields of in onto a
func (in *UpdateAdInput) Apply(a *Ad) {
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = null.StringFrom(*in.Description)
	}
	if in.Budget != nil {
		a.Budget = *in.Budget
	}
	if in.StartDate != nil {
		a.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		a.EndDate = *in.EndDate
	}
	if in.Status != nil {
		a.Status = AdStatus(*in.Status)
	}
	if in.Platform != nil {
		a.Platform = AdPlatform(*in.Platform)
	}
}

// AdObjective is the goal of a CP "run ads" request
type AdObjective string

const (
	AdObjectiveLeadGeneration AdObjective = "lead_generation"
	AdObjectiveAwareness      AdObjective = "awareness"
	AdObjectiveSiteVisits     AdObjective = "site_visits"
)

// CampaignTitle is the ad title derived from the objective
func (o AdObjective) CampaignTitle() string {
	return fmt.Sprintf("%s Campaign", o)
}

// CreateAdRequestInput represents input for POST /api/cp/ads-requests
type CreateAdRequestInput struct {
	ProjectID    string `json:"projectId" validate:"required,uuid"`
	Objective    string `json:"objective" validate:"required,oneof=lead_generation awareness site_visits"`
	BudgetInr    int    `json:"budgetInr" validate:"required,gt=0"`
	DurationDays int    `json:"durationDays" validate:"required,gt=0"`
	Notes        string `json:"notes"`
}

// UpdateAdRequestInput is the CP-side update. Only cancellation and
// the description are honoured.
type UpdateAdRequestInput struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

// AdMetricsInput sets externally reported performance figures
type AdMetricsInput struct {
	Impressions *int `json:"impressions" validate:"omitempty,gte=0"`
	Clicks      *int `json:"clicks" validate:"omitempty,gte=0"`
	Leads       *int `json:"leads" validate:"omitempty,gte=0"`
	SpentAmount *int `json:"spentAmount" validate:"omitempty,gte=0"`
}

// Empty reports whether no metric is set
func (in *AdMetricsInput) Empty() bool {
	return in.Impressions == nil && in.Clicks == nil && in.Leads == nil && in.SpentAmount == nil
}
