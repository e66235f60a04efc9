package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"portalubs/config"
	"portalubs/constants"
	"portalubs/dto"
	"portalubs/models"
)

// Chave de cache da listagem pública de postos
const CachePostosKey = "postos:all"

// GetPostosPublicos devolve a listagem do portal público: postos com nomes
// dos responsáveis vinculados, URL do PDF vigente e última atualização.
// Tenta o cache primeiro; em caso de miss monta do banco e repovoa.
func GetPostosPublicos(ctx context.Context) ([]dto.PostoResponse, error) {
	var respostas []dto.PostoResponse

	rdb := config.RedisClient
	if rdb != nil {
		if err := GetFromRedis(ctx, rdb, CachePostosKey, &respostas); err == nil && len(respostas) > 0 {
			return respostas, nil
		}
	}

	var postos []models.Posto
	if err := config.DB.WithContext(ctx).Preload("Usuarios").Order("nome asc").Find(&postos).Error; err != nil {
		return nil, fmt.Errorf("erro ao listar postos: %w", err)
	}

	var arquivos []models.ArquivoPDF
	if err := config.DB.WithContext(ctx).Find(&arquivos).Error; err != nil {
		return nil, fmt.Errorf("erro ao listar PDFs: %w", err)
	}
	pdfPorPosto := make(map[uint]*models.ArquivoPDF, len(arquivos))
	for i := range arquivos {
		pdfPorPosto[arquivos[i].PostoID] = &arquivos[i]
	}

	for _, posto := range postos {
		resposta := dto.PostoResponse{
			ID:          posto.ID,
			Nome:        posto.Nome,
			Localidade:  posto.Localidade,
			Horarios:    posto.Horarios,
			Contato:     posto.Contato,
			Status:      posto.Status,
			Responsavel: nomesResponsaveis(posto.Usuarios),
			CreatedAt:   posto.CreatedAt,
			UpdatedAt:   posto.UpdatedAt,
		}
		if pdf, ok := pdfPorPosto[posto.ID]; ok {
			resposta.PdfURL = pdf.URL
			resposta.PdfUltimaAtualizacao = pdf.DataUpload.In(LocalInstituicao()).Format("02/01/2006 15:04")
		}
		respostas = append(respostas, resposta)
	}

	if rdb != nil {
		if err := SetToRedis(ctx, rdb, CachePostosKey, respostas, 10*time.Minute); err != nil {
			log.Printf("Erro ao salvar postos no Redis: %v", err)
		}
	}

	return respostas, nil
}

// InvalidarCachePostos remove a listagem do cache após escritas
func InvalidarCachePostos(ctx context.Context) {
	if config.RedisClient == nil {
		return
	}
	if err := DeleteFromRedis(ctx, config.RedisClient, CachePostosKey); err != nil {
		log.Printf("Erro ao invalidar cache de postos: %v", err)
	}
}

// Se houver vários responsáveis lista os nomes; se nenhum, "Não definido"
func nomesResponsaveis(usuarios []models.User) string {
	nomes := ""
	for _, u := range usuarios {
		if u.Role != constants.RoleResponsavel {
			continue
		}
		if nomes != "" {
			nomes += ", "
		}
		nomes += u.Nome
	}
	if nomes == "" {
		return "Não definido"
	}
	return nomes
}
