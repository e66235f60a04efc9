package dto

import "time"

// CreatePostoRequest é o corpo de criação de posto (UBS)
type CreatePostoRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Localidade string `json:"localidade" binding:"required"`
	Horarios   string `json:"horarios"`
	Contato    string `json:"contato"`
	Status     string `json:"status"` // aberto | fechado
}

// UpdatePostoRequest é o corpo de atualização de posto
type UpdatePostoRequest struct {
	ID         uint   `json:"id" binding:"required"`
	Nome       string `json:"nome"`
	Localidade string `json:"localidade"`
	Horarios   string `json:"horarios"`
	Contato    string `json:"contato"`
	Status     string `json:"status"`
}

// PostoResponse é o posto exibido no portal público
type PostoResponse struct {
	ID                   uint      `json:"id"`
	Nome                 string    `json:"nome"`
	Localidade           string    `json:"localidade"`
	Horarios             string    `json:"horarios"`
	Contato              string    `json:"contato"`
	Status               string    `json:"status"`
	Responsavel          string    `json:"responsavel"` // nomes vinculados ou "Não definido"
	PdfURL               string    `json:"pdfUrl,omitempty"`
	PdfUltimaAtualizacao string    `json:"pdfUltimaAtualizacao,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
