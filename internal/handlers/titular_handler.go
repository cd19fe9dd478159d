package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lgpd-forms/consent-form-api/internal/service"
	"github.com/lgpd-forms/consent-form-api/internal/utils"
)

// TitularHandler handles titular HTTP requests
type TitularHandler struct {
	titularService *service.TitularService
	termoService   *service.TermoService
}

// NewTitularHandler creates a new titular handler instance
func NewTitularHandler(titularService *service.TitularService, termoService *service.TermoService) *TitularHandler {
	return &TitularHandler{
		titularService: titularService,
		termoService:   termoService,
	}
}

// GetTitular handles GET /titulares/:cpf
func (h *TitularHandler) GetTitular(c *gin.Context) {
	titular, err := h.titularService.ObterPorCpf(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, titular)
}

// ListTermos handles GET /titulares/:cpf/termos
func (h *TitularHandler) ListTermos(c *gin.Context) {
	termos, err := h.termoService.ListarTermosPorCpf(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, gin.H{
		"termos": termos,
		"total":  len(termos),
	})
}
