package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = &NotFoundError{Resource: "User"}
	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
)

// ValidationError reports request fields that are missing or unusable.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NewMissingFieldsError builds the ValidationError for absent required fields.
func NewMissingFieldsError(fields ...string) *ValidationError {
	return &ValidationError{Message: "Missing required fields", Fields: fields}
}

// NewInvalidFieldsError builds the ValidationError for values of the wrong type.
func NewInvalidFieldsError(fields ...string) *ValidationError {
	return &ValidationError{Message: "Invalid field values", Fields: fields}
}

// NotFoundError reports an unknown identifier.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is makes errors.Is match any NotFoundError for the same resource.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Resource == e.Resource
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Fields  []string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
		Fields:  e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised
// becomes an opaque 500.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		httpErr := NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
		httpErr.Fields = validationErr.Fields
		return httpErr
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusNotFound, notFoundErr.Error(), strings.ToUpper(notFoundErr.Resource)+"_NOT_FOUND")
	case errors.Is(err, ErrInvalidBody):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_BODY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
