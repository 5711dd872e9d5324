package invite

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidInvite = errors.New("invalid invite")
	ErrExpiredInvite = errors.New("invite has expired")
)

// Claims represents the payload of a project invite token
type Claims struct {
	ProjectID   uuid.UUID `json:"projectId"`
	DeveloperID uuid.UUID `json:"developerId"`
	jwt.RegisteredClaims
}

// Service signs and verifies project invite tokens
type Service struct {
	secret  []byte
	ttl     time.Duration
	baseURL string
}

var signInviteToken = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewService creates a new invite service
func NewService(secret string, ttl time.Duration, baseURL string) *Service {
	return &Service{
		secret:  []byte(secret),
		ttl:     ttl,
		baseURL: baseURL,
	}
}

// Issue creates a signed invite for the given project
func (s *Service) Issue(projectID, developerID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		ProjectID:   projectID,
		DeveloperID: developerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := signInviteToken(token, s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign invite: %w", err)
	}
	return signed, expiresAt, nil
}

// Link returns the registration URL carrying the token
func (s *Service) Link(token string) string {
	return s.baseURL + "?invite=" + url.QueryEscape(token)
}

// Verify validates an invite token and returns its claims
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidInvite
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredInvite
		}
		return nil, ErrInvalidInvite
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ProjectID == uuid.Nil {
		return nil, ErrInvalidInvite
	}
	return claims, nil
}
