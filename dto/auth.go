package dto

import "time"

// LoginInput é o corpo do login por email e senha
type LoginInput struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// GoogleUser carrega os claims relevantes do token do Google
type GoogleUser struct {
	Nome          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

// UserLoginResponse é o usuário retornado junto com o token de acesso
type UserLoginResponse struct {
	UserID    uint      `json:"userId"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	Postos    []uint    `json:"postosVinculados"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
