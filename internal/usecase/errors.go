package usecase

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrorUpstream        ErrorCode = "UPSTREAM_ERROR"
	ErrorUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrorLLM             ErrorCode = "LLM_ERROR"
)

// AuthErrorDetail is the fixed message returned when no completion provider
// credential is configured.
const AuthErrorDetail = "OpenAI API key not configured. Set OPENAI_API_KEY in your environment or .env file."

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HTTPStatus maps the error category to the response status code.
func (e *Error) HTTPStatus() int {
	if e == nil {
		return http.StatusOK
	}
	switch e.Code {
	case ErrorInvalidInput:
		return http.StatusBadRequest
	case ErrorUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Detail is the client-facing message for the error.
func (e *Error) Detail() string {
	if e == nil {
		return ""
	}
	switch e.Code {
	case ErrorInvalidInput:
		return "Question cannot be empty"
	case ErrorUpstream:
		return fmt.Sprintf("Upstream messages API error: %v", e.Err)
	case ErrorUnauthenticated:
		return AuthErrorDetail
	case ErrorLLM:
		return fmt.Sprintf("LLM error: %v", e.Err)
	}
	return "Internal server error"
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
