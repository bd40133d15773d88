package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sus-vacinacao-server/internal/config"
	"sus-vacinacao-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Cabeçalho Authorization obrigatório")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Formato do cabeçalho Authorization inválido")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "Token inválido: "+err.Error())
			c.Abort()
			return
		}

		// Set user information in context for downstream handlers
		c.Set("usuarioID", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// GetUsuarioIDFromContext returns the authenticated user's id, if any.
func GetUsuarioIDFromContext(c *gin.Context) (string, bool) {
	usuarioID, exists := c.Get("usuarioID")
	if !exists {
		return "", false
	}
	idStr, ok := usuarioID.(string)
	return idStr, ok
}
