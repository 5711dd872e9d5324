package usecases

import (
	"errors"
	"time"

	domainerrors "betterside.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// accessDenied is the ownership failure shared by leads, ads and assignments
const accessDenied = "Access denied"

// notFoundOr maps ErrNotFound to a 404 carrying msg; anything else is a 500
func notFoundOr(err error, msg string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound(msg)
	}
	return domainerrors.InternalError(err)
}

func fieldError(field, message string) error {
	return domainerrors.Validation([]domainerrors.FieldError{{Field: field, Message: message}})
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fieldError(field, "must be a valid id")
	}
	return id, nil
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}

func optionalInt(p *int) null.Int {
	if p == nil {
		return null.Int{}
	}
	return null.IntFrom(*p)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func projectIDs[T any](items []T, id func(T) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	out := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		v := id(item)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
