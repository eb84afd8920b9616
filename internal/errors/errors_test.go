package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantFields []string
	}{
		{
			name:       "missing fields",
			err:        NewMissingFieldsError("PAN", "RoleID"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "Missing required fields",
			wantFields: []string{"PAN", "RoleID"},
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("create user: %w", NewInvalidFieldsError("MonthlyIncome")),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "Invalid field values",
			wantFields: []string{"MonthlyIncome"},
		},
		{
			name:       "user not found",
			err:        fmt.Errorf("get user 4: %w", ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "USER_NOT_FOUND",
			wantMsg:    "User not found",
		},
		{
			name:       "invalid body",
			err:        fmt.Errorf("decode: %w", ErrInvalidBody),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_BODY",
			wantMsg:    "invalid request body",
		},
		{
			name:       "unknown",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)

			resp := httpErr.ToErrorResponse()
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantFields, resp.Fields)
		})
	}
}

func TestNotFoundError_Is(t *testing.T) {
	assert.ErrorIs(t, &NotFoundError{Resource: "User"}, ErrUserNotFound)
	assert.NotErrorIs(t, &NotFoundError{Resource: "Role"}, ErrUserNotFound)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "Missing required fields: Email, PAN", NewMissingFieldsError("Email", "PAN").Error())
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())
}
