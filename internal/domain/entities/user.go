package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleBuyer     UserRole = "buyer"
	UserRoleCP        UserRole = "cp"
	UserRoleDeveloper UserRole = "developer"
)

// Valid reports whether r is a known role
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleBuyer, UserRoleCP, UserRoleDeveloper:
		return true
	}
	return false
}

// User represents a registered account. Role never changes after creation.
type User struct {
	ID               uuid.UUID   `json:"id"`
	FullName         string      `json:"fullName"`
	Email            string      `json:"email"`
	Phone            string      `json:"phone"`
	City             string      `json:"city"`
	Role             UserRole    `json:"role"`
	PasswordHash     string      `json:"-"`
	CompanyName      null.String `json:"companyName"`
	ContactPerson    null.String `json:"contactPerson"`
	GSTNumber        null.String `json:"gstNumber"`
	ReraNumber       null.String `json:"reraNumber"`
	IsReraRegistered bool        `json:"isReraRegistered"`
	DocLink          null.String `json:"docLink"`
	Budget           null.String `json:"budget"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// RegisterInput represents input for user registration.
// Role-specific rules are applied by the validation package.
type RegisterInput struct {
	Role             string `json:"role" validate:"required,oneof=buyer cp developer"`
	FullName         string `json:"fullName"`
	Email            string `json:"email" validate:"required,email_addr"`
	Phone            string `json:"phone" validate:"required,in_mobile"`
	City             string `json:"city" validate:"required,city_name"`
	Password         string `json:"password" validate:"required,min=6"`
	CompanyName      string `json:"companyName"`
	ContactPerson    string `json:"contactPerson"`
	GSTNumber        string `json:"gstNumber"`
	ReraNumber       string `json:"reraNumber"`
	IsReraRegistered bool   `json:"isReraRegistered"`
	DocLink          string `json:"docLink" validate:"omitempty,doc_link"`
	Budget           string `json:"budget"`
	InviteToken      string `json:"inviteToken"`
}

// Normalize trims whitespace and fills role defaults
func (in *RegisterInput) Normalize() {
	in.Role = strings.TrimSpace(in.Role)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.GSTNumber = strings.ToUpper(strings.TrimSpace(in.GSTNumber))
	in.ReraNumber = strings.TrimSpace(in.ReraNumber)
	in.DocLink = strings.TrimSpace(in.DocLink)
	in.Budget = strings.TrimSpace(in.Budget)
	in.InviteToken = strings.TrimSpace(in.InviteToken)

	if UserRole(in.Role) == UserRoleDeveloper && in.FullName == "" {
		in.FullName = in.ContactPerson
	}
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalize matches the email form stored at registration
func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// AuthResult is returned by register and login
type AuthResult struct {
	SessionID string
	User      *User
}
