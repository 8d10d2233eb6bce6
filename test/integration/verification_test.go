package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatamo_backend/internal/models"
	"hatamo_backend/test/helpers"
)

// registerClient - регистрация клиента через API, возвращает созданного
// пользователя и его токен подтверждения
func registerClient(t *testing.T, ts *helpers.TestServer, inviteCodeID, email string) (*models.User, *models.EmailVerificationToken) {
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register/client", "", map[string]interface{}{
		"inviteCodeId": inviteCodeID,
		"firstName":    "Taro",
		"lastName":     "Yamada",
		"email":        email,
		"password":     "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)
	return &user, helpers.LatestVerificationToken(t, ts.DB, user.ID)
}

// TestVerifyEmail_Success - подтверждение email выдает сессионный токен
func TestVerifyEmail_Success(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	invite := helpers.CreateActiveInvite(t, ts.DB, "CLIENT01", models.UserTypeClient, admin.ID)
	user, vt := registerClient(t, ts, invite.ID, "verify-me@example.com")

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": vt.Token,
	})

	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+body)

	var result struct {
		AccessToken string `json:"accessToken"`
		UserID      string `json:"userId"`
		Email       string `json:"email"`
		UserType    string `json:"userType"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &result))
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, "verify-me@example.com", result.Email)
	assert.Equal(t, "CLIENT", result.UserType)

	// Флаг и токен обновлены атомарно
	var fresh models.User
	require.NoError(t, ts.DB.First(&fresh, "id = ?", user.ID).Error)
	assert.True(t, fresh.EmailVerified)

	var freshToken models.EmailVerificationToken
	require.NoError(t, ts.DB.First(&freshToken, "id = ?", vt.ID).Error)
	assert.NotNil(t, freshToken.UsedAt)

	// Выданный токен сразу пригоден для /auth/me
	meRes, meBody := ts.SendRequest(t, "GET", "/api/v1/auth/me", result.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBody, `"emailVerified":true`)
}

// TestVerifyEmail_Replay - повторное предъявление использованного токена
func TestVerifyEmail_Replay(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	invite := helpers.CreateActiveInvite(t, ts.DB, "CLIENT01", models.UserTypeClient, admin.ID)
	_, vt := registerClient(t, ts, invite.ID, "replay@example.com")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": vt.Token,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": vt.Token,
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VERIFICATION_TOKEN_ALREADY_USED")
}

// TestVerifyEmail_Expired - истекший токен не подтверждает email
func TestVerifyEmail_Expired(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	invite := helpers.CreateActiveInvite(t, ts.DB, "CLIENT01", models.UserTypeClient, admin.ID)
	user, vt := registerClient(t, ts, invite.ID, "expired@example.com")

	// Просрочиваем токен напрямую
	require.NoError(t, ts.DB.Model(&models.EmailVerificationToken{}).
		Where("id = ?", vt.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": vt.Token,
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VERIFICATION_TOKEN_EXPIRED")

	// Аккаунт остается неподтвержденным, токен - непотребленным
	var fresh models.User
	require.NoError(t, ts.DB.First(&fresh, "id = ?", user.ID).Error)
	assert.False(t, fresh.EmailVerified)

	var freshToken models.EmailVerificationToken
	require.NoError(t, ts.DB.First(&freshToken, "id = ?", vt.ID).Error)
	assert.Nil(t, freshToken.UsedAt)
}

// TestVerifyEmail_UnknownToken - несуществующий токен
func TestVerifyEmail_UnknownToken(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-email", "", map[string]interface{}{
		"token": "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "VERIFICATION_TOKEN_NOT_FOUND")
}
