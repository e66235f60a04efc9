package services

import (
	"encoding/json"
	"strings"

	"portalubs/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken extrai o userID e o role do token
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token inválido", nil)
	}

	// Decodifica o payload do token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Não foi possível decodificar o token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Não foi possível interpretar o token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Informações do usuário ausentes no token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "ID do usuário ausente no token", nil)
	}

	role, okRole := userInfo["role"].(string)
	if !okRole {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "Role ausente no token", nil)
	}

	return uint(userID), role, nil
}
