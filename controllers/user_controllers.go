package controllers

import (
	"strconv"

	"portalubs/config"
	"portalubs/dto"
	"portalubs/middleware"
	"portalubs/models"
	"portalubs/response"
	"portalubs/services"
	"portalubs/validator"

	"github.com/gin-gonic/gin"
)

// GetUsers lista os usuários com vínculos, paginado
func GetUsers(c *gin.Context) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	tx := config.DB.Model(&models.User{})
	if nome := c.Query("nome"); nome != "" {
		tx = tx.Where("nome ILIKE ?", "%"+nome+"%")
	}
	if role := c.Query("role"); role != "" {
		tx = tx.Where("role = ?", role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Preload("Postos").Order("nome asc").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, montarUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

// GetUserByID devolve um usuário com vínculos
func GetUserByID(c *gin.Context) {
	var user models.User
	if err := config.DB.Preload("Postos").First(&user, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, montarUserResponse(user))
}

// GetProfile devolve o usuário autenticado
func GetProfile(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Postos").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, montarUserResponse(user))
}

// CreateUser cria um usuário (admin); a senha é armazenada com bcrypt
func CreateUser(c *gin.Context) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	user := models.User{
		Nome:  request.Nome,
		Email: request.Email,
		Senha: request.Senha,
		Role:  request.Role,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hashed, err := services.HashPassword(request.Senha)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Senha = hashed

	if err := config.DB.Create(&user).Error; err != nil {
		response.Conflict(c)
		return
	}

	if len(request.Postos) > 0 {
		vinculos := make([]models.UsuarioPosto, 0, len(request.Postos))
		for _, postoID := range request.Postos {
			vinculos = append(vinculos, models.UsuarioPosto{UserID: user.ID, PostoID: postoID})
		}
		if err := config.DB.Create(&vinculos).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, montarUserResponse(user))
}

// UpdateUser atualiza um usuário; Postos nil mantém os vínculos atuais
func UpdateUser(c *gin.Context) {
	var request dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var user models.User
	if err := config.DB.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Nome != "" {
		user.Nome = request.Nome
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.Role != "" {
		if err := validator.ValidateRole(request.Role); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		user.Role = request.Role
	}
	if request.Senha != "" {
		hashed, err := services.HashPassword(request.Senha)
		if err != nil {
			response.ServerError(c)
			return
		}
		user.Senha = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if request.Postos != nil {
		// Refaz todos os vínculos do usuário
		if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UsuarioPosto{}).Error; err != nil {
			response.ServerError(c)
			return
		}
		if len(*request.Postos) > 0 {
			vinculos := make([]models.UsuarioPosto, 0, len(*request.Postos))
			for _, postoID := range *request.Postos {
				vinculos = append(vinculos, models.UsuarioPosto{UserID: user.ID, PostoID: postoID})
			}
			if err := config.DB.Create(&vinculos).Error; err != nil {
				response.ServerError(c)
				return
			}
		}
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, montarUserResponse(user))
}

// DeleteUser remove um usuário e seus vínculos
func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := config.DB.Where("user_id = ?", id).Delete(&models.UsuarioPosto{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&models.User{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, nil)
}

// ToggleVinculo adiciona ou remove um único vínculo usuário-posto
func ToggleVinculo(c *gin.Context) {
	var request dto.ToggleVinculoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dados inválidos")
		return
	}

	var existente models.UsuarioPosto
	err := config.DB.Where("user_id = ? AND posto_id = ?", request.UserID, request.PostoID).
		First(&existente).Error

	if err == nil {
		if err := config.DB.Where("user_id = ? AND posto_id = ?", request.UserID, request.PostoID).
			Delete(&models.UsuarioPosto{}).Error; err != nil {
			response.ServerError(c)
			return
		}
		services.InvalidarCachePostos(config.Ctx)
		response.Success(c, gin.H{"vinculado": false})
		return
	}

	vinculo := models.UsuarioPosto{UserID: request.UserID, PostoID: request.PostoID}
	if err := config.DB.Create(&vinculo).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidarCachePostos(config.Ctx)
	response.Success(c, gin.H{"vinculado": true})
}

func montarUserResponse(user models.User) dto.UserResponse {
	postos := make([]uint, 0, len(user.Postos))
	for _, p := range user.Postos {
		postos = append(postos, p.ID)
	}
	return dto.UserResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Postos:    postos,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
