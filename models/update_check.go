package models

import (
	"time"
)

// UpdateCheck registra os checks de atualização diários: um registro por
// (usuário, posto, dia). Os campos Manha/Tarde só voltam a false via
// aprovação de correção.
type UpdateCheck struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_check_dia;not null"`
	PostoID   uint      `json:"postoId" gorm:"uniqueIndex:idx_check_dia;not null"`
	Data      string    `json:"data" gorm:"uniqueIndex:idx_check_dia;type:varchar(10);not null"` // formato 2006-01-02
	Manha     bool      `json:"manha" gorm:"default:false"`
	Tarde     bool      `json:"tarde" gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UpdateCheck) TableName() string {
	return "update_checks"
}

// Completo indica se os dois períodos do dia foram marcados
func (u *UpdateCheck) Completo() bool {
	return u.Manha && u.Tarde
}
