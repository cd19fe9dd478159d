package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/service"
	"github.com/lgpd-forms/consent-form-api/internal/utils"
	pkgutils "github.com/lgpd-forms/consent-form-api/pkg/utils"
)

// LogHandler handles audit-log HTTP requests
type LogHandler struct {
	logService *service.LogService
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs handles GET /logs
func (h *LogHandler) ListLogs(c *gin.Context) {
	params := models.LogSearchParams{}

	if v := c.Query("dataInicio"); v != "" {
		inicio, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.SendBadRequestError(c, "Invalid dataInicio", v)
			return
		}
		params.DataInicio = &inicio
	}
	if v := c.Query("dataFim"); v != "" {
		fim, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.SendBadRequestError(c, "Invalid dataFim", v)
			return
		}
		params.DataFim = &fim
	}

	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err := pkgutils.ValidatePagination(params.Limit, params.Offset); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	logs, err := h.logService.Listar(c.Request.Context(), params)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, gin.H{
		"logs":  logs,
		"total": len(logs),
	})
}
