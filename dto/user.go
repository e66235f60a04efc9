package dto

import "time"

// CreateUserRequest é o corpo de criação de usuário pelo admin
type CreateUserRequest struct {
	Nome   string `json:"nome" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Senha  string `json:"senha" binding:"required"`
	Role   string `json:"role" binding:"required"` // admin | responsavel
	Postos []uint `json:"postosVinculados"`
}

// UpdateUserRequest é o corpo de atualização de usuário; campos vazios são
// mantidos
type UpdateUserRequest struct {
	ID     uint    `json:"id" binding:"required"`
	Nome   string  `json:"nome"`
	Email  string  `json:"email"`
	Senha  string  `json:"senha"`
	Role   string  `json:"role"`
	Postos *[]uint `json:"postosVinculados"` // nil não mexe nos vínculos
}

// ToggleVinculoRequest alterna um único vínculo N:M usuário-posto
type ToggleVinculoRequest struct {
	UserID  uint `json:"userId" binding:"required"`
	PostoID uint `json:"postoId" binding:"required"`
}

// UserResponse é o usuário exposto nas listagens do admin
type UserResponse struct {
	ID        uint      `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Postos    []uint    `json:"postosVinculados"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
