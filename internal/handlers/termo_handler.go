package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lgpd-forms/consent-form-api/internal/models"
	"github.com/lgpd-forms/consent-form-api/internal/service"
	"github.com/lgpd-forms/consent-form-api/internal/utils"
)

// TermoHandler handles consent-form HTTP requests
type TermoHandler struct {
	termoService *service.TermoService
}

// NewTermoHandler creates a new termo handler instance
func NewTermoHandler(termoService *service.TermoService) *TermoHandler {
	return &TermoHandler{termoService: termoService}
}

// CreateTermo handles POST /termos
func (h *TermoHandler) CreateTermo(c *gin.Context) {
	var request models.TermoAceiteCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	ipOrigem := utils.GetClientIP(c)
	userAgent := c.Request.UserAgent()

	response, err := h.termoService.CriarTermoAceite(c.Request.Context(), &request, ipOrigem, userAgent)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendCreatedResponse(c, response)
}

// GetTermo handles GET /termos/:id
func (h *TermoHandler) GetTermo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid termo ID", c.Param("id"))
		return
	}

	termo, err := h.termoService.ObterTermoPorID(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, termo)
}

// DownloadDocumento handles GET /termos/:id/documento
func (h *TermoHandler) DownloadDocumento(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendBadRequestError(c, "Invalid termo ID", c.Param("id"))
		return
	}

	conteudo, numeroTermo, err := h.termoService.ObterDocumento(c.Request.Context(), id)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.html", numeroTermo))
	c.Data(200, "text/html; charset=utf-8", conteudo)
}

// ValidarCpf handles GET /termos/validar-cpf/:cpf
func (h *TermoHandler) ValidarCpf(c *gin.Context) {
	response, err := h.termoService.ValidarCpfExistente(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}
