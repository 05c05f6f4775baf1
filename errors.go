package lsmodels

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies provider failures by their likely cause.
type ErrorCategory string

const (
	// ErrorTransient indicates the failure is probably temporary.
	// Examples: rate limits, network issues, server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates the failure will repeat until something changes.
	// Examples: invalid API key, insufficient permissions.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request itself was invalid.
	// Examples: unknown region, nonexistent project.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that reports its category and HTTP status.
type CategorizedError interface {
	error
	Category() ErrorCategory
	StatusCode() int // HTTP status code if applicable, 0 otherwise
}

// AuthError is returned when the credential a provider requires is missing.
// It is always produced before any network call is made.
type AuthError struct {
	Provider Provider
	EnvVar   string // environment variable that was expected, if any
	Cause    error  // underlying error, e.g. failed credential discovery
}

// Error returns the error message.
func (e *AuthError) Error() string {
	var msg string
	if e.EnvVar != "" {
		msg = fmt.Sprintf("%s not set (required for %s)", e.EnvVar, e.Provider)
	} else {
		msg = fmt.Sprintf("no credentials available for %s", e.Provider)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Cause
}

// ProviderError is a transport or API failure reported by a provider.
// The provider's message is kept verbatim in Cause.
type ProviderError struct {
	Provider Provider
	Cat      ErrorCategory
	Code     int   // HTTP status code, 0 if not applicable
	Cause    error // underlying error
}

// NewProviderError creates a ProviderError, deriving the category from the status code.
func NewProviderError(provider Provider, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Cat:      CategorizeStatusCode(statusCode),
		Code:     statusCode,
		Cause:    cause,
	}
}

// Error returns the error message.
func (e *ProviderError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s request failed", e.Provider)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *ProviderError) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *ProviderError) StatusCode() int {
	return e.Code
}

// CategorizeStatusCode determines the error category from an HTTP status code.
// A zero code means no response was received.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 0:
		return ErrorTransient // No response, likely network
	case code == 429:
		return ErrorTransient // Rate limited
	case code >= 500 && code < 600:
		return ErrorTransient // Server error
	case code == 401 || code == 403:
		return ErrorPermanent // Authentication/authorization
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput // Bad request or not found
	default:
		return ErrorPermanent
	}
}

// IsAuth returns true if err is or wraps an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsProvider returns true if err is or wraps a ProviderError.
func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// CategoryOf returns the category of a categorized error, or "".
func CategoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}
