// Package autherrors defines the flat error taxonomy every platform
// implementation reports through. Callers branch on Code, never on
// provider-specific exception types.
package autherrors

import (
	"errors"
	"fmt"
)

// Code is the stable string key callers branch on.
type Code string

const (
	CodeInvalidOptions      Code = "invalid_options"
	CodeOptionsMissing      Code = "options_missing"
	CodeNoAccount           Code = "no_account"
	CodeInteractionRequired Code = "interaction_required"
	CodeUserCancelled       Code = "user_cancelled"
	CodeNetworkError        Code = "network_error"
	CodeUnknown             Code = "unknown_error"
)

// Error category descriptors, mirroring the provider's error families.
const (
	TypeClientAuth          = "clientAuthError"
	TypeClientConfiguration = "clientConfigurationError"
	TypeInteractionRequired = "interactionRequiredError"
	TypeServer              = "serverError"
	TypeUnknown             = "unknown"
)

// NormalizedError is the single failure shape surfaced by every operation.
// Detail carries raw diagnostic text from the native error when available.
type NormalizedError struct {
	Type    string `json:"errorType"`
	Code    Code   `json:"errorCode"`
	Message string `json:"errorMessage"`
	Detail  string `json:"errorDetails,omitempty"`

	cause error
}

func (e *NormalizedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *NormalizedError) Unwrap() error { return e.cause }

// New builds a NormalizedError with the canonical message for code, or the
// supplied message when one is given.
func New(code Code, msg string) *NormalizedError {
	return &NormalizedError{Type: typeFor(code), Code: code, Message: msg}
}

// Wrap attaches a cause while keeping the normalized shape. The cause's text
// becomes the diagnostic detail.
func Wrap(err error, code Code, msg string) *NormalizedError {
	ne := New(code, msg)
	ne.cause = err
	if err != nil {
		ne.Detail = err.Error()
	}
	return ne
}

// HasCode reports whether err (or anything it wraps) is a NormalizedError
// carrying code.
func HasCode(err error, code Code) bool {
	var ne *NormalizedError
	if errors.As(err, &ne) {
		return ne.Code == code
	}
	return false
}

func typeFor(code Code) string {
	switch code {
	case CodeInvalidOptions, CodeOptionsMissing:
		return TypeClientConfiguration
	case CodeInteractionRequired:
		return TypeInteractionRequired
	case CodeNoAccount, CodeUserCancelled:
		return TypeClientAuth
	case CodeNetworkError:
		return TypeServer
	default:
		return TypeUnknown
	}
}
