package integration_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hatamo_backend/internal/models"
	"hatamo_backend/test/helpers"
)

// TestVerifyInviteCode_Active - активный код возвращает тип аккаунта
func TestVerifyInviteCode_Active(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	invite := helpers.CreateActiveInvite(t, ts.DB, "CLIENT01", models.UserTypeClient, admin.ID)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "CLIENT01",
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"userType":"CLIENT"`)
	assert.Contains(t, body, invite.ID)
}

// TestVerifyInviteCode_NotFound - несуществующий код
func TestVerifyInviteCode_NotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "NOSUCHCODE",
	})

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "INVITE_NOT_FOUND")
}

// TestVerifyInviteCode_Disabled - отключенный администратором код
func TestVerifyInviteCode_Disabled(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	future := time.Now().AddDate(0, 1, 0)
	helpers.CreateInviteCode(t, ts.DB, "DISABLED01", models.UserTypeClient, models.InviteCodeStatusDisabled, &future, admin.ID)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "DISABLED01",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVITE_INVALID")
}

// TestVerifyInviteCode_Expired - истекший код отклоняется, но статус в БД не меняется
func TestVerifyInviteCode_Expired(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	past := time.Now().Add(-time.Hour)
	invite := helpers.CreateInviteCode(t, ts.DB, "EXPIRED01", models.UserTypeClient, models.InviteCodeStatusActive, &past, admin.ID)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "EXPIRED01",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVITE_EXPIRED")

	// Истечение - вычисляемый предикат, строка остается ACTIVE
	var fresh models.InviteCode
	assert.NoError(t, ts.DB.First(&fresh, "id = ?", invite.ID).Error)
	assert.Equal(t, models.InviteCodeStatusActive, fresh.Status)
}

// TestVerifyInviteCode_AlreadyUsed - потребленный код
func TestVerifyInviteCode_AlreadyUsed(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	consumer := helpers.CreateUser(t, ts.DB, &models.User{
		Email: "consumer@test.com", PasswordHash: "some_password1", Name: "Consumer",
		UserType: models.UserTypeClient, EmailVerified: true,
	})

	future := time.Now().AddDate(0, 1, 0)
	usedAt := time.Now().Add(-time.Minute)
	invite := helpers.CreateInviteCode(t, ts.DB, "USED01", models.UserTypeClient, models.InviteCodeStatusUsed, &future, admin.ID)
	assert.NoError(t, ts.DB.Model(invite).Updates(map[string]interface{}{
		"used_by": consumer.ID,
		"used_at": usedAt,
	}).Error)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "USED01",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "INVITE_ALREADY_USED")
}

// TestVerifyInviteCode_MissingCode - пустое тело не проходит валидацию
func TestVerifyInviteCode_MissingCode(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
}
