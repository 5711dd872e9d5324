package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeValidation, "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, "bad", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)
	assert.Equal(t, "internal server error", internal.Message)
	assert.Equal(t, "internal server error: db down", internal.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeValidation, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	bare := &AppError{Err: ErrNotFound}
	assert.Equal(t, "resource not found", bare.Error())
}

func TestValidation_EnumeratesFields(t *testing.T) {
	single := Validation([]FieldError{{Field: "phone", Message: "must be 10 digits"}})
	assert.Equal(t, http.StatusBadRequest, single.Status)
	assert.Equal(t, CodeValidation, single.Code)
	assert.Equal(t, "phone: must be 10 digits", single.Message)
	assert.Equal(t, "phone: must be 10 digits", single.Error())
	assert.Len(t, single.Fields, 1)

	multi := Validation([]FieldError{
		{Field: "email", Message: "invalid"},
		{Field: "gstNumber", Message: "required"},
	})
	assert.Equal(t, "Validation failed for email, gstNumber", multi.Message)
	assert.Equal(t, "Validation failed for email, gstNumber (email: invalid; gstNumber: required)", multi.Error())
	assert.Len(t, multi.Fields, 2)

	empty := Validation(nil)
	assert.Equal(t, "Validation failed", empty.Message)
}
