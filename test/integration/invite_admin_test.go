package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hatamo_backend/internal/models"
	"hatamo_backend/test/helpers"
)

// TestAdminIssueInviteCode - выдача кода администратором и его немедленная пригодность
func TestAdminIssueInviteCode(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	token := helpers.Login(t, ts, "admin@test.com", "admin_password1")

	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/invite-codes", token, map[string]interface{}{
		"userType":      "CLIENT",
		"expiresInDays": 14,
		"memo":          "for pilot customer",
	})

	require.Equal(t, http.StatusCreated, res.StatusCode, "Response: "+body)

	var issued struct {
		ID       string `json:"id"`
		Code     string `json:"code"`
		UserType string `json:"userType"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &issued))
	assert.Len(t, issued.Code, 8)
	assert.Equal(t, "CLIENT", issued.UserType)
	assert.Equal(t, "ACTIVE", issued.Status)

	// Выданный код сразу проходит публичную проверку
	verifyRes, verifyBody := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": issued.Code,
	})
	assert.Equal(t, http.StatusOK, verifyRes.StatusCode)
	assert.Contains(t, verifyBody, issued.ID)
}

// TestAdminIssueInviteCode_AdminType - коды для ADMIN не выдаются
func TestAdminIssueInviteCode_AdminType(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	token := helpers.Login(t, ts, "admin@test.com", "admin_password1")

	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/invite-codes", token, map[string]interface{}{
		"userType": "ADMIN",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "VALIDATION_FAILED")
}

// TestAdminListInviteCodes - список с фильтром по статусу
func TestAdminListInviteCodes(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	token := helpers.Login(t, ts, "admin@test.com", "admin_password1")

	helpers.CreateActiveInvite(t, ts.DB, "LIST01", models.UserTypeClient, admin.ID)
	helpers.CreateActiveInvite(t, ts.DB, "LIST02", models.UserTypeSponsor, admin.ID)

	res, body := ts.SendRequest(t, "GET", "/api/v1/admin/invite-codes?status=ACTIVE", token, nil)

	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+body)

	var list struct {
		InviteCodes []struct {
			Code string `json:"code"`
		} `json:"inviteCodes"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.InviteCodes, 2)
}

// TestAdminDisableInviteCode - отключенный код перестает проходить проверку
func TestAdminDisableInviteCode(t *testing.T) {
	ts := GetTestServer(t)
	admin := helpers.CreateAdmin(t, ts.DB, "admin@test.com", "admin_password1")
	token := helpers.Login(t, ts, "admin@test.com", "admin_password1")
	invite := helpers.CreateActiveInvite(t, ts.DB, "KILLME01", models.UserTypeClient, admin.ID)

	res, body := ts.SendRequest(t, "POST", "/api/v1/admin/invite-codes/"+invite.ID+"/disable", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Response: "+body)

	verifyRes, verifyBody := ts.SendRequest(t, "POST", "/api/v1/auth/verify-invite-code", "", map[string]interface{}{
		"code": "KILLME01",
	})
	assert.Equal(t, http.StatusBadRequest, verifyRes.StatusCode)
	assert.Contains(t, verifyBody, "INVITE_INVALID")
}

// TestAdminRoutes_Forbidden - обычный аккаунт не имеет доступа к /admin
func TestAdminRoutes_Forbidden(t *testing.T) {
	ts := GetTestServer(t)
	helpers.CreateUser(t, ts.DB, &models.User{
		Email: "client@example.com", PasswordHash: "password123", Name: "Client",
		UserType: models.UserTypeClient, EmailVerified: true,
	})
	token := helpers.Login(t, ts, "client@example.com", "password123")

	res, _ := ts.SendRequest(t, "GET", "/api/v1/admin/invite-codes", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/admin/invite-codes", "", map[string]interface{}{
		"userType": "CLIENT",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
