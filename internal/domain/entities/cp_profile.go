package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CpProfile is the optional 1:1 display extension of a CP user
type CpProfile struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	FullName    string      `json:"fullName"`
	CompanyName null.String `json:"companyName"`
	Phone       string      `json:"phone"`
	City        string      `json:"city"`
	ExtraJSON   null.String `json:"extraJson"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// UpdateCpProfileInput is a strict partial update
type UpdateCpProfileInput struct {
	FullName    *string `json:"fullName"`
	CompanyName *string `json:"companyName"`
	Phone       *string `json:"phone" validate:"omitempty,digits10"`
	City        *string `json:"city"`
	ExtraJSON   *string `json:"extraJson" validate:"omitempty,json"`
}

// Apply copies the set fields of in onto p
func (in *UpdateCpProfileInput) Apply(p *CpProfile) {
	if in.FullName != nil {
		p.FullName = *in.FullName
	}
	if in.CompanyName != nil {
		p.CompanyName = null.StringFrom(*in.CompanyName)
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.ExtraJSON != nil {
		p.ExtraJSON = null.StringFrom(*in.ExtraJSON)
	}
}

// CpProfileView is the profile as returned to the CP, with the account email
type CpProfileView struct {
	ID          *uuid.UUID  `json:"id,omitempty"`
	UserID      uuid.UUID   `json:"userId"`
	FullName    string      `json:"fullName"`
	CompanyName null.String `json:"companyName"`
	Phone       string      `json:"phone"`
	City        string      `json:"city"`
	ExtraJSON   null.String `json:"extraJson"`
	Email       string      `json:"email"`
}
