package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/interfaces/http/middleware"
	"betterside.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON decodes the body and maps decode failures to a 400
func bindJSON(c *gin.Context, v interface{}) bool {
	return decodeBody(c, v, false)
}

// bindStrict decodes an update body, rejecting keys the schema does not know
func bindStrict(c *gin.Context, v interface{}) bool {
	return decodeBody(c, v, true)
}

func decodeBody(c *gin.Context, v interface{}, strict bool) bool {
	if c.Request.Body == nil {
		response.Error(c, domainerrors.BadRequest("Invalid JSON body"))
		return false
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Failed to read request body"))
		return false
	}
	if strict && len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		response.Error(c, decodeError(err))
		return false
	}
	return true
}

// decodeError names the offending field without echoing decoder internals
func decodeError(err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return domainerrors.Validation([]domainerrors.FieldError{{Field: field, Message: "is not allowed"}})
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.Validation([]domainerrors.FieldError{{Field: typeErr.Field, Message: "has the wrong type"}})
	}
	return domainerrors.BadRequest("Invalid JSON body")
}

// pathID parses :id; a malformed id cannot name an existing row
func pathID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound(notFound))
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (*entities.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return nil, false
	}
	return user, true
}

type successBody struct {
	Success bool `json:"success"`
}
