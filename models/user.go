package models

import (
	"time"
)

// User representa um usuário do portal (admin ou responsável por postos)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Nome      string    `gorm:"default:Novo Usuário" json:"nome"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Senha     string    `json:"-"`
	Role      string    `gorm:"default:responsavel" json:"role"` // admin | responsavel
	Avatar    string    `json:"avatar"`
	Postos    []Posto   `json:"postos,omitempty" gorm:"many2many:usuario_posto;"`
}

func (User) TableName() string {
	return "usuarios"
}
