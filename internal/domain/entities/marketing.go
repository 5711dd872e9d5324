package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MarketingCounter holds running totals of collateral shared with a CP,
// optionally scoped to one project
type MarketingCounter struct {
	ID              uuid.UUID  `json:"id"`
	CpID            uuid.UUID  `json:"cpId"`
	ProjectID       *uuid.UUID `json:"projectId"`
	CreativesShared int        `json:"creativesShared"`
	EdmsShared      int        `json:"edmsShared"`
	LastUpdated     time.Time  `json:"lastUpdated"`
}

// IncrementCountersInput adds non-negative deltas to a counter row
type IncrementCountersInput struct {
	CpID      string  `json:"cp_id" validate:"required,uuid"`
	ProjectID *string `json:"project_id" validate:"omitempty,uuid"`
	Creatives *int    `json:"creatives" validate:"omitempty,gte=0"`
	Edms      *int    `json:"edms" validate:"omitempty,gte=0"`
}

// ProjectMarketing is the per-project slice of a CP's counters
type ProjectMarketing struct {
	ProjectID       uuid.UUID `json:"projectId"`
	ProjectTitle    string    `json:"projectTitle"`
	CreativesShared int       `json:"creativesShared"`
	EdmsShared      int       `json:"edmsShared"`
}

// MarketingSummary is the CP marketing overview
type MarketingSummary struct {
	CreativesShared int                `json:"creatives_shared"`
	EdmsShared      int                `json:"edms_shared"`
	PerProject      []ProjectMarketing `json:"per_project"`
}

// MarketingRequestType is the kind of collateral requested
type MarketingRequestType string

const (
	MarketingRequestCreative MarketingRequestType = "creative"
	MarketingRequestEdm      MarketingRequestType = "edm"
)

// MarketingRequestStatus has no enforced transitions
type MarketingRequestStatus string

const (
	MarketingRequestPending    MarketingRequestStatus = "pending"
	MarketingRequestInProgress MarketingRequestStatus = "in_progress"
	MarketingRequestCompleted  MarketingRequestStatus = "completed"
	MarketingRequestCancelled  MarketingRequestStatus = "cancelled"
)

// Valid reports whether s is a known request status
func (s MarketingRequestStatus) Valid() bool {
	switch s {
	case MarketingRequestPending, MarketingRequestInProgress, MarketingRequestCompleted, MarketingRequestCancelled:
		return true
	}
	return false
}

// MarketingRequest is a CP's ask for collateral
type MarketingRequest struct {
	ID          uuid.UUID              `json:"id"`
	CpID        uuid.UUID              `json:"cpId"`
	ProjectID   *uuid.UUID             `json:"projectId"`
	RequestType MarketingRequestType   `json:"requestType"`
	Notes       null.String            `json:"notes"`
	Status      MarketingRequestStatus `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// CreateMarketingRequestInput represents input for POST /api/cp/marketing/request
type CreateMarketingRequestInput struct {
	ProjectID *string `json:"project_id" validate:"omitempty,uuid"`
	Type      string  `json:"type"`
	Notes     string  `json:"notes"`
}

// UpdateMarketingRequestStatusInput represents the collateral team status update
type UpdateMarketingRequestStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}
