package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hatamo_backend/internal/models"
)

// CreateUser создает пользователя с автоматическим хешированием пароля.
// Поле PasswordHash принимает сырой пароль; флаг EmailVerified
// выставляет вызывающая сторона.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "Failed to hash test password")
		user.PasswordHash = string(hashedPassword)
	}

	require.NoError(t, db.Create(user).Error, "Failed to create test user %s", user.Email)
	return user
}

// CreateAdmin создает подтвержденного администратора
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string) *models.User {
	return CreateUser(t, db, &models.User{
		Email:         email,
		PasswordHash:  password,
		Name:          "Test Admin",
		UserType:      models.UserTypeAdmin,
		EmailVerified: true,
	})
}

// CreateInviteCode создает инвайт-код с заданным состоянием.
// expiresAt=nil означает бессрочный код.
func CreateInviteCode(t *testing.T, db *gorm.DB, code string, userType models.UserType, status models.InviteCodeStatus, expiresAt *time.Time, createdBy string) *models.InviteCode {
	invite := &models.InviteCode{
		Code:      code,
		UserType:  userType,
		Status:    status,
		ExpiresAt: expiresAt,
		CreatedBy: createdBy,
	}
	require.NoError(t, db.Create(invite).Error, "Failed to create test invite code %s", code)
	return invite
}

// CreateActiveInvite - активный код с месячным сроком действия
func CreateActiveInvite(t *testing.T, db *gorm.DB, code string, userType models.UserType, createdBy string) *models.InviteCode {
	expiresAt := time.Now().AddDate(0, 1, 0)
	return CreateInviteCode(t, db, code, userType, models.InviteCodeStatusActive, &expiresAt, createdBy)
}

// Login логинит пользователя через API и возвращает сессионный токен
func Login(t *testing.T, ts *TestServer, email, password string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed. Response: "+body)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken
}

// LatestVerificationToken возвращает последний выпущенный токен
// подтверждения для пользователя
func LatestVerificationToken(t *testing.T, db *gorm.DB, userID string) *models.EmailVerificationToken {
	var vt models.EmailVerificationToken
	err := db.Where("user_id = ?", userID).Order("created_at DESC").First(&vt).Error
	require.NoError(t, err, "Verification token should exist for user %s", userID)
	return &vt
}
