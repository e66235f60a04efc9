package middleware

import (
	"strings"

	"portalubs/response"
	"portalubs/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida o token e, se informado, restringe o acesso aos
// roles listados. O id e o role do ator ficam no contexto da requisição;
// nenhum handler depende de estado global de sessão.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Verifica o role quando exigido
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}

// ActorID extrai o id do ator autenticado do contexto
func ActorID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// ActorRole extrai o role do ator autenticado do contexto
func ActorRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("userRole")
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
