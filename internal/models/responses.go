package models

import (
	"net/http"
	"time"
)

// TermoAceiteResponse is the summary returned after a successful submission.
type TermoAceiteResponse struct {
	ID              int64     `json:"id"`
	NumeroTermo     string    `json:"numeroTermo"`
	DataHoraAceite  time.Time `json:"dataHoraAceite"`
	HashIntegridade string    `json:"hashIntegridade"`
	CaminhoArquivo  string    `json:"caminhoArquivo"`
	PodeDownload    bool      `json:"podeDownload"`
	Mensagem        string    `json:"mensagem"`
}

// CpfCheckResponse answers the advisory "does this CPF already have an active
// term" question. It never blocks submission.
type CpfCheckResponse struct {
	Existe   bool   `json:"existe"`
	Mensagem string `json:"mensagem"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(code, message, details string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Common error codes
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeInternalError   = "INTERNAL_ERROR"
	ErrCodeValidationError = "VALIDATION_ERROR"
	ErrCodeFileNotFound    = "FILE_NOT_FOUND"
)

// HTTPStatusForErrorCode returns the appropriate HTTP status code for an error code
func HTTPStatusForErrorCode(code string) int {
	switch code {
	case ErrCodeBadRequest, ErrCodeValidationError:
		return http.StatusBadRequest
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
