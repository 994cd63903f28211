package middleware

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireRoles - middleware для проверки нескольких возможных ролей.
// Грубая проверка роли на роутере; проверки владения ресурсом
// живут в сервисном слое (auth/permissions.go).
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: invalid role type"})
			return
		}

		if !roleSet[models.UserRole(roleStr)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware ограничивает доступ административными пользователями
func AdminMiddleware() gin.HandlerFunc {
	return RequireRoles(models.UserRoleAdmin)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
