package entities

import (
	"time"

	"github.com/google/uuid"
)

// CpDashboard is the CP panel summary
type CpDashboard struct {
	TodaysLeads    int64 `json:"todaysLeads"`
	TotalLeads     int64 `json:"totalLeads"`
	ActiveProjects int64 `json:"activeProjects"`
	ActiveAds      int64 `json:"activeAds"`
}

// DeveloperDashboard is the developer panel summary
type DeveloperDashboard struct {
	TotalProjects          int64 `json:"totalProjects"`
	ActiveProjects         int64 `json:"activeProjects"`
	TotalLeads             int64 `json:"totalLeads"`
	ConvertedLeads         int64 `json:"convertedLeads"`
	ApprovedPartners       int64 `json:"approvedPartners"`
	PendingPartnerRequests int64 `json:"pendingPartnerRequests"`
}

// ProjectInvite is a signed link that tags signing-up CPs to a project
type ProjectInvite struct {
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InviteClaims identifies the project an invite grants access to
type InviteClaims struct {
	ProjectID   uuid.UUID
	DeveloperID uuid.UUID
}

// AcceptInviteInput represents input for POST /api/cp/invites/accept
type AcceptInviteInput struct {
	Token string `json:"token" validate:"required"`
}
