// Package serviceerror defines the typed error taxonomy shared by the
// service layer and the HTTP handlers.
package serviceerror

import "fmt"

type ServiceErrorType string

const (
	ClientErrorType ServiceErrorType = "client_error"
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceError carries a stable code and a caller-safe description. For
// server-side faults the description holds only an opaque tracking code;
// diagnostic detail stays in the logs.
type ServiceError struct {
	Code             string           `json:"code"`
	Type             ServiceErrorType `json:"type"`
	Message          string           `json:"error"`
	ErrorDescription string           `json:"error_description,omitempty"`
}

func (e *ServiceError) Error() string {
	if e.ErrorDescription != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.ErrorDescription)
	}
	return e.Message
}

var (
	InternalError = ServiceError{
		Type:             ServerErrorType,
		Code:             "CFE-5000",
		Message:          "internal_server_error",
		ErrorDescription: "An unexpected error occurred",
	}

	DependencyError = ServiceError{
		Type:             ServerErrorType,
		Code:             "CFE-5001",
		Message:          "dependency_failure",
		ErrorDescription: "A backing service failed",
	}

	ValidationError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CFE-4001",
		Message:          "validation_error",
		ErrorDescription: "Validation failed",
	}

	NotFoundError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CFE-4004",
		Message:          "resource_not_found",
		ErrorDescription: "Resource not found",
	}

	ConflictError = ServiceError{
		Type:             ClientErrorType,
		Code:             "CFE-4009",
		Message:          "conflict",
		ErrorDescription: "Request conflicts with current state; retry may succeed",
	}
)

// New builds a concrete error from one of the base errors above.
func New(base ServiceError, description string) *ServiceError {
	return &ServiceError{
		Type:             base.Type,
		Code:             base.Code,
		Message:          base.Message,
		ErrorDescription: description,
	}
}

// Newf is New with formatting.
func Newf(base ServiceError, format string, args ...interface{}) *ServiceError {
	return New(base, fmt.Sprintf(format, args...))
}

// Is reports whether err is a *ServiceError with the same code as base.
func Is(err error, base ServiceError) bool {
	se, ok := err.(*ServiceError)
	return ok && se.Code == base.Code
}

// IsClientError reports whether err is caller-correctable.
func IsClientError(err error) bool {
	se, ok := err.(*ServiceError)
	return ok && se.Type == ClientErrorType
}
