package usecases

import (
	"context"
	"errors"
	"time"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/domain/validation"
	"betterside.backend/pkg/crypto"
	"betterside.backend/pkg/logger"
	"betterside.backend/pkg/metrics"
	"betterside.backend/pkg/redis"
	"betterside.backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const invalidCredentials = "Invalid email or password"

// SessionStore persists server-side sessions
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var (
	newSessionID  = crypto.GenerateSessionID
	hashPassword  = crypto.HashPassword
	checkPassword = crypto.CheckPassword
)

// AuthUsecase handles registration, login and session resolution
type AuthUsecase struct {
	uow        repositories.UnitOfWork
	userRepo   repositories.UserRepository
	invites    *InviteUsecase
	sessions   SessionStore
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	invites *InviteUsecase,
	sessions SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		uow:        uow,
		userRepo:   userRepo,
		invites:    invites,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a user and starts a session. A CP carrying an invite
// token is tagged to the invited project in the same transaction.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResult, error) {
	input.Normalize()
	if fields := validation.ValidateRegistration(input); len(fields) > 0 {
		return nil, domainerrors.Validation(fields)
	}
	role := entities.UserRole(input.Role)

	var claims *entities.InviteClaims
	if input.InviteToken != "" && role == entities.UserRoleCP {
		c, err := u.invites.verify(input.InviteToken, "inviteToken")
		if err != nil {
			return nil, err
		}
		claims = c
	}

	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.Conflict("Email already registered")
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.InternalError(err)
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		ID:               utils.GenerateUUIDv7(),
		FullName:         input.FullName,
		Email:            input.Email,
		Phone:            input.Phone,
		City:             input.City,
		Role:             role,
		PasswordHash:     passwordHash,
		CompanyName:      optional(input.CompanyName),
		ContactPerson:    optional(input.ContactPerson),
		GSTNumber:        optional(input.GSTNumber),
		ReraNumber:       optional(input.ReraNumber),
		IsReraRegistered: input.IsReraRegistered,
		DocLink:          optional(input.DocLink),
		Budget:           optional(input.Budget),
		CreatedAt:        time.Now(),
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if claims != nil {
			if _, err := u.invites.redeem(ctx, user.ID, claims, "inviteToken"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *domainerrors.AppError
		switch {
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			return nil, domainerrors.Conflict("Email already registered")
		case errors.As(err, &appErr):
			return nil, appErr
		default:
			return nil, domainerrors.InternalError(err)
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	logger.Info(ctx, "User registered", zap.String("user_id", user.ID.String()), zap.String("role", string(role)))

	return u.startSession(ctx, user)
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password produce the same error.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResult, error) {
	input.Normalize()
	if err := validation.Check(input); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized(invalidCredentials)
		}
		return nil, domainerrors.InternalError(err)
	}

	if !checkPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized(invalidCredentials)
	}

	return u.startSession(ctx, user)
}

// Authenticate resolves a session id to its freshly loaded user
func (u *AuthUsecase) Authenticate(ctx context.Context, sessionID string) (*entities.User, error) {
	if sessionID == "" {
		return nil, domainerrors.Unauthorized("Not authenticated")
	}

	data, err := u.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, redis.ErrSessionNotFound) {
			logger.Warn(ctx, "Session lookup failed", zap.Error(err))
		}
		return nil, domainerrors.Unauthorized("Not authenticated")
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return nil, domainerrors.Unauthorized("Not authenticated")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return user, nil
}

// Logout deletes the session. Deleting an unknown session succeeds.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.DeleteSession(ctx, sessionID); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

func (u *AuthUsecase) startSession(ctx context.Context, user *entities.User) (*entities.AuthResult, error) {
	sessionID, err := newSessionID()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	data := &redis.SessionData{
		UserID:    user.ID.String(),
		Role:      string(user.Role),
		CreatedAt: time.Now(),
	}
	if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResult{SessionID: sessionID, User: user}, nil
}
