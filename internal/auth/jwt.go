package auth

import (
	"errors"
	"time"

	"hatamo_backend/internal/config"
	"hatamo_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired возвращается для структурно валидного, но истекшего токена
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed возвращается при невалидной подписи или структуре
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims - полезная нагрузка сессионного токена
type Claims struct {
	UserID        string          `json:"userId"`
	Email         string          `json:"email"`
	UserType      models.UserType `json:"userType"`
	EmailVerified bool            `json:"emailVerified"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает подписанный сессионный токен.
// Срок действия берется из конфигурации (по умолчанию 7 дней).
func GenerateToken(userID, email string, userType models.UserType, emailVerified bool) (string, error) {
	cfg := config.GetConfig()

	now := time.Now()
	claims := Claims{
		UserID:        userID,
		Email:         email,
		UserType:      userType,
		EmailVerified: emailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTLHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия токена и возвращает claims
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
