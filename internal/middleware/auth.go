package middleware

import (
	"net/http"
	"strings"

	"hatamo_backend/internal/auth"
	"hatamo_backend/internal/logger"
	"hatamo_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set("userID", claims.UserID)
		c.Set("userType", claims.UserType)
		c.Set("emailVerified", claims.EmailVerified)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware пропускает только аккаунты типа ADMIN
func AdminMiddleware() gin.HandlerFunc {
	return RequireUserTypes(models.UserTypeAdmin)
}

// RequireUserTypes - middleware для проверки нескольких допустимых типов аккаунта
func RequireUserTypes(types ...models.UserType) gin.HandlerFunc {
	typeSet := make(map[models.UserType]bool)
	for _, t := range types {
		typeSet[t] = true
	}

	return func(c *gin.Context) {
		typeVal, exists := c.Get("userType")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no user type"})
			return
		}

		userType, ok := typeVal.(models.UserType)
		if !ok {
			// Попытка преобразовать из string, если тип сохранен как строка
			typeStr, isString := typeVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid user type"})
				return
			}
			userType = models.UserType(typeStr)
		}

		if !typeSet[userType] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
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
