package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"github.com/go-playground/validator/v10"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	digits10Pattern = regexp.MustCompile(`^\d{10}$`)
	cityPattern     = regexp.MustCompile(`^[A-Za-z\s]{3,}$`)
	gstPattern      = regexp.MustCompile(`(?i)^[A-Z0-9]{15}$`)
	reraPattern     = regexp.MustCompile(`^[A-Za-z0-9/\-]{8,}$`)
)

var leadSources = map[string]bool{
	entities.LeadSourceMetaAds:    true,
	entities.LeadSourceOrganic:    true,
	entities.LeadSourceBetterSide: true,
	entities.LeadSourceReferral:   true,
	entities.LeadSourceOther:      true,
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("email_addr", matches(emailPattern))
		_ = v.RegisterValidation("in_mobile", matches(mobilePattern))
		_ = v.RegisterValidation("digits10", matches(digits10Pattern))
		_ = v.RegisterValidation("city_name", matches(cityPattern))
		_ = v.RegisterValidation("gstin", matches(gstPattern))
		_ = v.RegisterValidation("rera", matches(reraPattern))
		_ = v.RegisterValidation("doc_link", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
		})
		_ = v.RegisterValidation("lead_source", func(fl validator.FieldLevel) bool {
			return leadSources[fl.Field().String()]
		})

		v.RegisterStructValidation(registrationRules, entities.RegisterInput{})
		instance = v
	})
	return instance
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// registrationRules applies the role-conditional registration fields
func registrationRules(sl validator.StructLevel) {
	var in entities.RegisterInput
	switch v := sl.Current().Interface().(type) {
	case entities.RegisterInput:
		in = v
	case *entities.RegisterInput:
		in = *v
	default:
		return
	}

	minLen := func(value, field, structField string, n int) {
		if len([]rune(strings.TrimSpace(value))) < n {
			sl.ReportError(value, field, structField, "min", strconv.Itoa(n))
		}
	}

	switch entities.UserRole(in.Role) {
	case entities.UserRoleBuyer:
		minLen(in.FullName, "fullName", "FullName", 3)
		if in.Budget != "" {
			if b, err := strconv.ParseFloat(in.Budget, 64); err != nil || b < 0 {
				sl.ReportError(in.Budget, "budget", "Budget", "budget", "")
			}
		}
	case entities.UserRoleCP:
		minLen(in.FullName, "fullName", "FullName", 3)
		minLen(in.CompanyName, "companyName", "CompanyName", 2)
	case entities.UserRoleDeveloper:
		minLen(in.CompanyName, "companyName", "CompanyName", 3)
		minLen(in.ContactPerson, "contactPerson", "ContactPerson", 3)
		switch {
		case in.GSTNumber == "":
			sl.ReportError(in.GSTNumber, "gstNumber", "GSTNumber", "required", "")
		case !gstPattern.MatchString(in.GSTNumber):
			sl.ReportError(in.GSTNumber, "gstNumber", "GSTNumber", "gstin", "")
		}
		if in.IsReraRegistered {
			switch {
			case in.ReraNumber == "":
				sl.ReportError(in.ReraNumber, "reraNumber", "ReraNumber", "required", "")
			case !reraPattern.MatchString(in.ReraNumber):
				sl.ReportError(in.ReraNumber, "reraNumber", "ReraNumber", "rera", "")
			}
		}
	}
}

// ValidateRegistration returns every violated registration rule.
// An empty result means the input is acceptable.
func ValidateRegistration(in *entities.RegisterInput) []domainerrors.FieldError {
	return Struct(in)
}

// Struct validates v against its validate tags and returns all violations
func Struct(v interface{}) []domainerrors.FieldError {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domainerrors.FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// Check wraps Struct into a VALIDATION_ERROR when anything fails
func Check(v interface{}) error {
	if fields := Struct(v); len(fields) > 0 {
		return domainerrors.Validation(fields)
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "numeric":
		return "must be numeric"
	case "json":
		return "must be valid JSON"
	case "email_addr":
		return "must be a valid email address"
	case "in_mobile":
		return "must be a 10-digit mobile number starting with 6-9"
	case "digits10":
		return "must be 10 digits"
	case "city_name":
		return "must contain only letters and be at least 3 characters"
	case "gstin":
		return "must be a 15-character alphanumeric GST number"
	case "rera":
		return "must be at least 8 characters of letters, digits, '/' or '-'"
	case "doc_link":
		return "must start with http:// or https://"
	case "lead_source":
		return "must be one of meta_ads, organic, betterside, referral, other"
	case "budget":
		return "must be a non-negative number"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
