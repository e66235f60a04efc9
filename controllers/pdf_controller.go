package controllers

import (
	"strconv"

	"portalubs/config"
	"portalubs/middleware"
	"portalubs/response"
	"portalubs/services"

	"github.com/gin-gonic/gin"
)

// PDFController trata o upload do PDF de medicações e a consulta pública
// do arquivo vigente
type PDFController struct {
	pdfService   *services.PDFService
	checkService *services.CheckService
}

func NewPDFController(pdfService *services.PDFService, checkService *services.CheckService) *PDFController {
	return &PDFController{
		pdfService:   pdfService,
		checkService: checkService,
	}
}

// UploadPDF substitui o PDF do posto e em seguida tenta marcar o check do
// período. A substituição nunca é bloqueada pela janela; "fora da janela"
// só significa que nenhum check foi marcado.
func (ctrl *PDFController) UploadPDF(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	postoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID do posto inválido")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Nenhum arquivo enviado")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Erro ao abrir o arquivo")
		return
	}
	defer src.Close()

	arquivo, err := ctrl.pdfService.Substituir(c.Request.Context(), uint(postoID), src)
	if err != nil {
		response.ServerError(c)
		return
	}

	// O timestamp de upload do banco é o instante classificado pelo check
	resultado, err := ctrl.checkService.RegistrarUpload(c.Request.Context(), userID, uint(postoID), arquivo.DataUpload)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)

	response.Success(c, gin.H{
		"url":        arquivo.URL,
		"dataUpload": arquivo.DataUpload,
		"check":      resultado,
	})
}

// GetPDF devolve o PDF vigente de um posto (público)
func (ctrl *PDFController) GetPDF(c *gin.Context) {
	postoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID do posto inválido")
		return
	}

	arquivo, err := ctrl.pdfService.Buscar(c.Request.Context(), uint(postoID))
	if err != nil {
		response.ServerError(c)
		return
	}
	if arquivo == nil {
		response.NotFound(c)
		return
	}

	response.Success(c, arquivo)
}
