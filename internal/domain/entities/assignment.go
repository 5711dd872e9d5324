package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AssignmentStatus represents the approval state of a CP on a project
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusApproved AssignmentStatus = "approved"
	AssignmentStatusRejected AssignmentStatus = "rejected"
)

// Valid reports whether s is a known assignment status
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusApproved, AssignmentStatusRejected:
		return true
	}
	return false
}

// CpProjectMap links a channel partner to a project
type CpProjectMap struct {
	ID                uuid.UUID        `json:"id"`
	CpID              uuid.UUID        `json:"cpId"`
	ProjectID         uuid.UUID        `json:"projectId"`
	Status            AssignmentStatus `json:"status"`
	CommissionPercent null.String      `json:"commissionPercent"`
	AssignedAt        time.Time        `json:"assignedAt"`
}

// CreateAssignmentInput represents input for POST /api/cp-projects
type CreateAssignmentInput struct {
	CpID              string  `json:"cpId" validate:"required,uuid"`
	ProjectID         string  `json:"projectId" validate:"required,uuid"`
	Status            string  `json:"status" validate:"omitempty,oneof=pending approved rejected"`
	CommissionPercent *string `json:"commissionPercent" validate:"omitempty,numeric"`
}

// UpdateAssignmentStatusInput represents input for PUT /api/cp-projects/:id/status
type UpdateAssignmentStatusInput struct {
	Status string `json:"status"`
}

// AssignmentWithProject is an assignment enriched with its project.
// Project is nil when the project has been deleted.
type AssignmentWithProject struct {
	*CpProjectMap
	Project *Project `json:"project"`
}

// PartnerActivity is one (CP, project) row of the developer partners view
type PartnerActivity struct {
	CpID              uuid.UUID        `json:"cpId"`
	CpName            string           `json:"cpName"`
	Company           string           `json:"company"`
	City              string           `json:"city"`
	ProjectID         uuid.UUID        `json:"projectId"`
	ProjectName       string           `json:"projectName"`
	AssignmentStatus  AssignmentStatus `json:"assignmentStatus"`
	TotalLeads        int64            `json:"totalLeads"`
	HasRunAds         bool             `json:"hasRunAds"`
	CreativesReceived int              `json:"creativesReceived"`
	EdmsSent          int              `json:"edmsSent"`
	Engagement        string           `json:"engagement"`
}
