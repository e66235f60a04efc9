package controllers

import (
	"sort"
	"strings"

	"portalubs/config"
	"portalubs/constants"
	"portalubs/dto"
	"portalubs/models"
	"portalubs/response"
	"portalubs/services"
	"portalubs/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// GetPostos lista os postos para o portal público (com cache)
func GetPostos(c *gin.Context) {
	postos, err := services.GetPostosPublicos(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, postos)
}

// GetPostoDetail devolve um posto pelo id
func GetPostoDetail(c *gin.Context) {
	var posto models.Posto
	if err := config.DB.Preload("Usuarios").First(&posto, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, posto)
}

// SearchPostos busca postos por nome ou localidade com tolerância a erros
// de digitação e acentos
func SearchPostos(c *gin.Context) {
	query := normalizeInput(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Informe o termo de busca")
		return
	}

	postos, err := services.GetPostosPublicos(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	nomes := make([]string, 0, len(postos))
	localidades := make([]string, 0, len(postos))
	for _, p := range postos {
		nomes = append(nomes, normalizeInput(p.Nome))
		localidades = append(localidades, normalizeInput(p.Localidade))
	}
	cmNome := createMatcher(nomes)
	cmLocalidade := createMatcher(localidades)

	type pontuado struct {
		posto dto.PostoResponse
		score float64
	}
	var resultados []pontuado
	for _, p := range postos {
		score := scorePosto(query, p, cmNome, cmLocalidade)
		if score > 0.4 {
			resultados = append(resultados, pontuado{posto: p, score: score})
		}
	}

	sort.Slice(resultados, func(i, j int) bool {
		return resultados[i].score > resultados[j].score
	})

	encontrados := make([]dto.PostoResponse, 0, len(resultados))
	for _, r := range resultados {
		encontrados = append(encontrados, r.posto)
	}

	response.Success(c, encontrados)
}

// CreatePosto cria um posto (admin)
func CreatePosto(c *gin.Context) {
	var request dto.CreatePostoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	posto := models.Posto{
		Nome:       request.Nome,
		Localidade: request.Localidade,
		Horarios:   request.Horarios,
		Contato:    request.Contato,
		Status:     request.Status,
	}
	if posto.Status == "" {
		posto.Status = constants.PostoAberto
	}
	if err := validator.ValidatePosto(&posto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&posto).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, posto)
}

// UpdatePosto atualiza um posto (admin); campos vazios são mantidos
func UpdatePosto(c *gin.Context) {
	var request dto.UpdatePostoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var posto models.Posto
	if err := config.DB.First(&posto, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Nome != "" {
		posto.Nome = request.Nome
	}
	if request.Localidade != "" {
		posto.Localidade = request.Localidade
	}
	if request.Horarios != "" {
		posto.Horarios = request.Horarios
	}
	if request.Contato != "" {
		posto.Contato = request.Contato
	}
	if request.Status != "" {
		posto.Status = request.Status
	}
	if err := validator.ValidatePosto(&posto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&posto).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, posto)
}

// DeletePosto remove um posto e seus vínculos (admin)
func DeletePosto(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Where("posto_id = ?", id).Delete(&models.UsuarioPosto{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&models.Posto{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, nil)
}

// normalizeInput remove acentos e baixa a caixa para a busca
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher monta o closestmatch para a lista de termos
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity mede a semelhança entre duas strings (0 a 1)
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/maxLen
}

func scorePosto(query string, p dto.PostoResponse, cmNome, cmLocalidade *closestmatch.ClosestMatch) float64 {
	nome := normalizeInput(p.Nome)
	localidade := normalizeInput(p.Localidade)

	if strings.Contains(nome, query) || strings.Contains(localidade, query) {
		return 1
	}

	score := calculateSimilarity(query, nome)
	if s := calculateSimilarity(query, localidade); s > score {
		score = s
	}

	// closestmatch ajuda quando o termo aproxima outro posto melhor
	if cmNome.Closest(query) == nome || cmLocalidade.Closest(query) == localidade {
		score += 0.2
	}
	if score > 1 {
		score = 1
	}
	return score
}
