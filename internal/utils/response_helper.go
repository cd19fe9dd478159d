package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/serviceerror"
)

// SendOKResponse sends a 200 OK response
func SendOKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreatedResponse sends a 201 Created response
func SendCreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SendErrorResponse sends an error JSON response
func SendErrorResponse(c *gin.Context, statusCode int, errCode, message, details string) {
	c.JSON(statusCode, models.ErrorResponse{
		Code:    errCode,
		Message: message,
		Details: details,
	})
}

// SendBadRequestError sends a 400 Bad Request error
func SendBadRequestError(c *gin.Context, message, details string) {
	SendErrorResponse(c, http.StatusBadRequest, models.ErrCodeBadRequest, message, details)
}

// SendValidationError sends a validation error response
func SendValidationError(c *gin.Context, details string) {
	SendErrorResponse(c, http.StatusBadRequest, models.ErrCodeValidationError, "Validation failed", details)
}

// SendNotFoundError sends a 404 Not Found error
func SendNotFoundError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusNotFound, models.ErrCodeNotFound, message, "")
}

// SendConflictError sends a 409 Conflict error
func SendConflictError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusConflict, models.ErrCodeConflict, message, "")
}

// SendInternalServerError sends a 500 Internal Server Error
func SendInternalServerError(c *gin.Context, message, details string) {
	SendErrorResponse(c, http.StatusInternalServerError, models.ErrCodeInternalError, message, details)
}

// SendServiceError maps a service layer error to the wire format.
func SendServiceError(c *gin.Context, err error) {
	se, ok := err.(*serviceerror.ServiceError)
	if !ok {
		SendInternalServerError(c, "Internal server error", "")
		return
	}
	switch {
	case serviceerror.Is(se, serviceerror.NotFoundError):
		SendNotFoundError(c, se.ErrorDescription)
	case serviceerror.Is(se, serviceerror.ConflictError):
		SendConflictError(c, se.ErrorDescription)
	case serviceerror.Is(se, serviceerror.ValidationError):
		SendValidationError(c, se.ErrorDescription)
	case se.Type == serviceerror.ClientErrorType:
		SendBadRequestError(c, se.Message, se.ErrorDescription)
	default:
		SendInternalServerError(c, se.Message, se.ErrorDescription)
	}
}

// GetClientIP extracts the originating client address, honoring proxies.
func GetClientIP(c *gin.Context) string {
	return c.ClientIP()
}
