package models

import (
	"time"
)

// Posto representa uma Unidade Básica de Saúde (UBS)
type Posto struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	Nome       string        `json:"nome" gorm:"not null"`
	Localidade string        `json:"localidade"`
	Horarios   string        `json:"horarios"`  // Horário de funcionamento exibido no portal
	Contato    string        `json:"contato"`
	Status     string        `json:"status" gorm:"default:aberto"` // aberto | fechado
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Usuarios   []User        `json:"usuarios,omitempty" gorm:"many2many:usuario_posto;"`
	Checks     []UpdateCheck `json:"checks,omitempty" gorm:"foreignKey:PostoID"`
}

func (Posto) TableName() string {
	return "postos"
}
