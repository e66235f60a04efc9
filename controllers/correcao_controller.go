package controllers

import (
	"portalubs/dto"
	"portalubs/errors"
	"portalubs/middleware"
	"portalubs/response"
	"portalubs/services"

	"github.com/gin-gonic/gin"
)

// CorrecaoController expõe o fluxo de correção de checks
type CorrecaoController struct {
	service *services.CorrecaoService
}

func NewCorrecaoController(service *services.CorrecaoService) *CorrecaoController {
	return &CorrecaoController{service: service}
}

// SolicitarCorrecao cria uma solicitação pendente em nome do ator
func (ctrl *CorrecaoController) SolicitarCorrecao(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.SolicitarCorrecaoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	correcao, err := ctrl.service.Solicitar(c.Request.Context(), userID, request.PostoID, request.Periodo)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeInvalidPeriod) {
			response.BadRequest(c, errors.GetAppError(err).Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, correcao)
}

// GetCorrecoesPendentes lista as solicitações aguardando decisão (admin)
func (ctrl *CorrecaoController) GetCorrecoesPendentes(c *gin.Context) {
	correcoes, err := ctrl.service.ListarPendentes(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, correcoes)
}

// GetCorrecoesAprovadas lista as correções aprovadas do ator, para o aviso
// no dashboard do responsável
func (ctrl *CorrecaoController) GetCorrecoesAprovadas(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	correcoes, err := ctrl.service.ListarAprovadasDoUsuario(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, correcoes)
}

// DecidirCorrecao aplica a decisão do admin. Uma solicitação já decidida
// responde como não encontrada; uma falha parcial na reabertura volta com
// aviso explícito, já que o status é definitivo.
func (ctrl *CorrecaoController) DecidirCorrecao(c *gin.Context) {
	adminID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var request dto.DecidirCorrecaoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	resultado, err := ctrl.service.Decidir(c.Request.Context(), request.CorrecaoID, adminID, request.Decisao)
	if err != nil {
		switch {
		case errors.HasCode(err, errors.ErrCodeCorrectionNotPending):
			response.NotFound(c)
		case errors.HasCode(err, errors.ErrCodeInvalidDecision):
			response.BadRequest(c, errors.GetAppError(err).Message)
		case errors.HasCode(err, errors.ErrCodePartialApproval):
			// A decisão valeu; o operador precisa reabrir o check na mão
			response.Error(c, 0, errors.GetAppError(err).Message)
		default:
			response.ServerError(c)
		}
		return
	}

	response.Success(c, resultado)
}
