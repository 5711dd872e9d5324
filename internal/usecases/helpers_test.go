package usecases_test

import (
	"errors"
	"testing"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, status int, code string) *domainerrors.AppError {
	t.Helper()
	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func newUser(role entities.UserRole) *entities.User {
	return &entities.User{
		ID:       uuid.New(),
		FullName: "Rahul Sharma",
		Email:    string(role) + "@example.com",
		Phone:    "9876543210",
		City:     "Mumbai",
		Role:     role,
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
