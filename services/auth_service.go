package services

import (
	"time"

	"portalubs/config"
	"portalubs/constants"
	"portalubs/errors"
	"portalubs/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// UserInfo são os dados do usuário embutidos no token
type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// CheckLogin valida email e senha e devolve o usuário com vínculos
func CheckLogin(email, senha string) (models.User, error) {
	var user models.User
	if err := config.DB.Preload("Postos").Where("email = ?", email).First(&user).Error; err != nil {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "Email ou senha inválidos", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return user, errors.NewAppError(errors.ErrCodeUserNotFound, "Email ou senha inválidos", err)
	}

	return user, nil
}

// CreateGoogleUser cria um responsável a partir do login do Google
func CreateGoogleUser(nome, email, avatar string) (models.User, error) {
	user := models.User{
		Nome:   nome,
		Email:  email,
		Avatar: avatar,
		Role:   constants.RoleResponsavel,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "erro ao criar usuário do Google", err)
	}
	return user, nil
}

// HashPassword gera o hash bcrypt da senha
func HashPassword(senha string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

// GenerateToken emite um JWT HS256 com userid e role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}
