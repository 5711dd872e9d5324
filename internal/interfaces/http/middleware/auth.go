package middleware

import (
	"context"
	"net/http"
	"strings"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/interfaces/http/response"
	"betterside.backend/pkg/crypto"
	"betterside.backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionHeader carries the session id for API clients without cookies
	SessionHeader = "X-Session-ID"
	// UserKey is the context key for the authenticated user
	UserKey = "user"
	// SessionIDKey is the context key for the session id
	SessionIDKey = "sessionId"
)

// Authenticator resolves a session id to its user
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*entities.User, error)
}

var roleNames = map[entities.UserRole]string{
	entities.UserRoleBuyer:     "Buyer",
	entities.UserRoleCP:        "CP",
	entities.UserRoleDeveloper: "Developer",
}

// SessionID reads the session id from the cookie, falling back to the header
func SessionID(c *gin.Context, cookieName string) string {
	if sid, err := c.Cookie(cookieName); err == nil && sid != "" {
		return sid
	}
	return c.GetHeader(SessionHeader)
}

// SessionAuth loads the session user on every request
func SessionAuth(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionID(c, cookieName)
		user, err := auth.Authenticate(c.Request.Context(), sessionID)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(UserKey, user)
		c.Set(SessionIDKey, sessionID)
		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, user.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser gets the authenticated user from context
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok && user != nil
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	message := "Access denied"
	if len(roles) == 1 {
		message = "Access denied. " + roleNames[roles[0]] + " role required"
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if ok {
			for _, role := range roles {
				if user.Role == role {
					c.Next()
					return
				}
			}
		}
		response.Error(c, domainerrors.Forbidden(message))
	}
}

// RequireAdminToken guards the operator endpoints. An empty token disables them.
func RequireAdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthorizationHeader)
		if token == "" || !strings.HasPrefix(header, BearerPrefix) ||
			!crypto.SecureCompare(strings.TrimPrefix(header, BearerPrefix), token) {
			response.ErrorWithError(c, http.StatusForbidden, domainerrors.CodeForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}
