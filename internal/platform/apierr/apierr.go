package apierr

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
)

const (
	CodeInvalidAPIKey   = "invalid_api_key"
	CodeProviderError   = "llm_provider_error"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeInternalError   = "internal_error"
)

// InternalMessage is what callers see for unclassified failures.
const InternalMessage = "An unexpected error occurred"

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// From classifies err into a transport-facing error. Unclassified errors are
// replaced by a generic message so internals never leak.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, pkgerrors.ErrCredentialInvalid):
		return New(http.StatusUnauthorized, CodeInvalidAPIKey, err)
	case errors.Is(err, pkgerrors.ErrProviderUnavailable):
		return New(http.StatusServiceUnavailable, CodeProviderError, err)
	case errors.Is(err, pkgerrors.ErrInvalidArgument):
		return New(http.StatusUnprocessableEntity, CodeValidationError, err)
	case errors.Is(err, pkgerrors.ErrNotFound):
		return New(http.StatusNotFound, CodeNotFound, err)
	default:
		return New(http.StatusInternalServerError, CodeInternalError, errors.New(InternalMessage))
	}
}
