package repositories

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
}

// CpProfileRepository defines CP profile data operations
type CpProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CpProfile, error)
	Create(ctx context.Context, profile *entities.CpProfile) error
	Update(ctx context.Context, profile *entities.CpProfile) error
}
