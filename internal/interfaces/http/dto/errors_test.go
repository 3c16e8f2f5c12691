package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidation))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(ErrCodeForbidden))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(ErrCodeInternal))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_NEVER_SEEN"))
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeForbidden, NormalizeErrorCode("FORBIDDEN"))
	assert.Equal(t, ErrCodeValidation, NormalizeErrorCode("VALIDATION_ERROR"))
	assert.Equal(t, ErrCodeValidation, NormalizeErrorCode(ErrCodeValidation))
	assert.Equal(t, "SOMETHING_ELSE", NormalizeErrorCode("SOMETHING_ELSE"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "nope", "req-1")

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.NotEmpty(t, resp.Error.Timestamp)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{{Field: "include_zero_stock", Message: "must be a boolean"}}
	resp := NewValidationErrorResponse("Request validation failed", "req-2", details)

	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "include_zero_stock", resp.Error.Details[0].Field)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 2)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.EqualValues(t, 2, resp.Meta.Total)
}
