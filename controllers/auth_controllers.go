package controllers

import (
	"context"
	stderrors "errors"
	"log"
	"os"
	"strings"

	"portalubs/config"
	"portalubs/dto"
	"portalubs/models"
	"portalubs/response"
	"portalubs/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// Login autentica por email e senha e emite o token de acesso
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.CheckLogin(input.Email, input.Senha)
	if err != nil {
		response.BadRequest(c, "Email ou senha inválidos")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   montarUserLogin(user),
		"accessToken": accessToken,
	})
}

// Logout limpa os cookies da sessão
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// AuthGoogle autentica com o token de identidade do Google; cria o usuário
// responsável no primeiro acesso
func AuthGoogle(c *gin.Context) {
	var token struct {
		TokenId string `json:"tokenId"`
	}

	if err := c.ShouldBindJSON(&token); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(token.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Nome:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
		Picture:       payload.Claims["picture"].(string),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email ainda não verificado")
		return
	}

	var user models.User
	result := config.DB.Preload("Postos").Where("email = ?", googleUser.Email).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Nome, googleUser.Email, googleUser.Picture)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		log.Println("Erro ao gerar token de acesso:", err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"user_info":   montarUserLogin(user),
		"accessToken": accessToken,
	})
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	return idtoken.Validate(context.Background(), tokenId, os.Getenv("GOOGLE_CLIENT_ID"))
}

func montarUserLogin(user models.User) dto.UserLoginResponse {
	postos := make([]uint, 0, len(user.Postos))
	for _, p := range user.Postos {
		postos = append(postos, p.ID)
	}
	return dto.UserLoginResponse{
		UserID:    user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Postos:    postos,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
