package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LeadStatus represents lead pipeline state. Any status may move to any other.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusSiteVisit   LeadStatus = "site_visit"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusConverted   LeadStatus = "converted"
	LeadStatusLost        LeadStatus = "lost"
)

// LeadSource values
const (
	LeadSourceMetaAds    = "meta_ads"
	LeadSourceOrganic    = "organic"
	LeadSourceBetterSide = "betterside"
	LeadSourceReferral   = "referral"
	LeadSourceOther      = "other"
)

// Lead is owned by a CP and scoped to one project and its developer
type Lead struct {
	ID            uuid.UUID   `json:"id"`
	CpID          uuid.UUID   `json:"cpId"`
	ProjectID     uuid.UUID   `json:"projectId"`
	DeveloperID   uuid.UUID   `json:"developerId"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail null.String `json:"customerEmail"`
	CustomerCity  null.String `json:"customerCity"`
	Budget        null.String `json:"budget"`
	Status        LeadStatus  `json:"status"`
	Notes         null.String `json:"notes"`
	Source        null.String `json:"source"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateLeadInput represents input for creating a lead.
// developerId is taken from the project, never from the caller.
type CreateLeadInput struct {
	ProjectID     string `json:"projectId" validate:"required,uuid"`
	CustomerName  string `json:"customerName" validate:"required,min=1"`
	CustomerPhone string `json:"customerPhone" validate:"required,digits10"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email_addr"`
	CustomerCity  string `json:"customerCity"`
	Budget        string `json:"budget"`
	Source        string `json:"source" validate:"omitempty,lead_source"`
	Status        string `json:"status" validate:"omitempty,oneof=new contacted site_visit negotiation converted lost"`
	Notes         string `json:"notes"`
}

// UpdateLeadInput is a strict partial update
type UpdateLeadInput struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail"`
	CustomerCity  *string `json:"customerCity"`
	Budget        *string `json:"budget"`
	Status        *string `json:"status" validate:"omitempty,oneof=new contacted site_visit negotiation converted lost"`
	Notes         *string `json:"notes"`
	Source        *string `json:"source"`
}

// Apply copies the set fields of in onto l
func (in *UpdateLeadInput) Apply(l *Lead) {
	if in.CustomerName != nil {
		l.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		l.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		l.CustomerEmail = null.StringFrom(*in.CustomerEmail)
	}
	if in.CustomerCity != nil {
		l.CustomerCity = null.StringFrom(*in.CustomerCity)
	}
	if in.Budget != nil {
		l.Budget = null.StringFrom(*in.Budget)
	}
	if in.Status != nil {
		l.Status = LeadStatus(*in.Status)
	}
	if in.Notes != nil {
		l.Notes = null.StringFrom(*in.Notes)
	}
	if in.Source != nil {
		l.Source = null.StringFrom(*in.Source)
	}
}

// LeadFilter narrows lead listings
type LeadFilter struct {
	CpID        *uuid.UUID
	DeveloperID *uuid.UUID
	ProjectID   *uuid.UUID
	Status      string
	Since       *time.Time
}

// CpLeadQuery holds the CP panel list parameters
type CpLeadQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	ProjectID string `form:"project_id"`
	Status    string `form:"status"`
	Date      string `form:"date"`
}
