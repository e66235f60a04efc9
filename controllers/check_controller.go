package controllers

import (
	"strconv"
	"time"

	"portalubs/dto"
	"portalubs/middleware"
	"portalubs/response"
	"portalubs/services"

	"github.com/gin-gonic/gin"
)

// CheckController expõe o estado dos checks diários e o relatório de
// conformidade
type CheckController struct {
	checkService   *services.CheckService
	historyService *services.HistoryService
}

func NewCheckController(checkService *services.CheckService, historyService *services.HistoryService) *CheckController {
	return &CheckController{
		checkService:   checkService,
		historyService: historyService,
	}
}

// GetChecksHoje devolve os flags do dia corrente do ator para um posto
func (ctrl *CheckController) GetChecksHoje(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	postoID, err := strconv.ParseUint(c.Query("postoId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "postoId inválido")
		return
	}

	check, err := ctrl.checkService.ChecksDeHoje(c.Request.Context(), userID, uint(postoID))
	if err != nil {
		response.ServerError(c)
		return
	}
	if check == nil {
		response.Success(c, nil)
		return
	}

	response.Success(c, dto.ChecksDoDia{
		Data:  check.Data,
		Manha: check.Manha,
		Tarde: check.Tarde,
	})
}

// GetHistorico monta o relatório de conformidade por posto no intervalo
// [de, ate] (datas no formato 2006-01-02), só dias úteis
func (ctrl *CheckController) GetHistorico(c *gin.Context) {
	de, err := time.ParseInLocation("2006-01-02", c.Query("de"), services.LocalInstituicao())
	if err != nil {
		response.BadRequest(c, "Parâmetro de inválido, use o formato 2006-01-02")
		return
	}
	ate, err := time.ParseInLocation("2006-01-02", c.Query("ate"), services.LocalInstituicao())
	if err != nil {
		response.BadRequest(c, "Parâmetro ate inválido, use o formato 2006-01-02")
		return
	}
	if ate.Before(de) {
		response.BadRequest(c, "Data final deve ser posterior à inicial")
		return
	}

	relatorio, err := ctrl.historyService.RelatorioChecks(c.Request.Context(), de, ate)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, relatorio)
}
