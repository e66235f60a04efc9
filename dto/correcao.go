package dto

// SolicitarCorrecaoRequest é o corpo de criação de uma solicitação de correção
type SolicitarCorrecaoRequest struct {
	PostoID uint   `json:"postoId" binding:"required"`
	Periodo string `json:"periodo" binding:"required"` // manha | tarde
}

// DecidirCorrecaoRequest é o corpo da decisão do admin
type DecidirCorrecaoRequest struct {
	CorrecaoID uint   `json:"correcaoId" binding:"required"`
	Decisao    string `json:"decisao" binding:"required"` // aprovar | rejeitar
}

// ResultadoDecisao é o resultado da decisão sobre uma solicitação
type ResultadoDecisao struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// EventoCorrecao é o payload publicado no websocket quando uma solicitação
// é decidida
type EventoCorrecao struct {
	CorrecaoID uint   `json:"correcaoId"`
	Status     string `json:"status"`
}
