package models

import (
	"time"
)

// CorrecaoPDF é a solicitação de um responsável para reabrir um período de
// check marcado por engano. Transições: pendente -> aprovado | rejeitado;
// estados terminais são definitivos.
type CorrecaoPDF struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"userId" gorm:"not null"`
	PostoID      uint       `json:"postoId" gorm:"not null"`
	Periodo      string     `json:"periodo" gorm:"type:varchar(10);not null"` // manha | tarde
	Status       string     `json:"status" gorm:"type:varchar(10);default:pendente;index"`
	SolicitadoEm time.Time  `gorm:"autoCreateTime" json:"solicitadoEm"`
	DecididoEm   *time.Time `json:"decididoEm"`
	DecididoPor  *uint      `json:"decididoPor"`
}

func (CorrecaoPDF) TableName() string {
	return "correcoes_pdf"
}

// Pendente indica se a solicitação ainda aguarda decisão
func (c *CorrecaoPDF) Pendente() bool {
	return c.Status == "pendente"
}
