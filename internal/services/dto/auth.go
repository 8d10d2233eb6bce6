package dto

import "hatamo_backend/internal/models"

// VerifyInviteCodeRequest - запрос на проверку допустимости инвайт-кода
type VerifyInviteCodeRequest struct {
	Code string `json:"code" validate:"required,min=1,max=64"`
}

// InviteCodeSummary - результат проверки: какой тип аккаунта открывает код
type InviteCodeSummary struct {
	UserType     models.UserType `json:"userType"`
	InviteCodeID string          `json:"inviteCodeId"`
}

// RegisterClientRequest - регистрация аккаунта типа CLIENT
type RegisterClientRequest struct {
	InviteCodeID string `json:"inviteCodeId" validate:"required,uuid"`
	FirstName    string `json:"firstName" validate:"required,max=50"`
	LastName     string `json:"lastName" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Password     string `json:"password" validate:"required,password"`
}

// RegisterSponsorRequest - регистрация аккаунта типа SPONSOR
type RegisterSponsorRequest struct {
	InviteCodeID        string `json:"inviteCodeId" validate:"required,uuid"`
	BusinessName        string `json:"businessName" validate:"required,max=100"`
	FirstName           string `json:"firstName" validate:"required,max=50"`
	LastName            string `json:"lastName" validate:"required,max=50"`
	Email               string `json:"email" validate:"required,email,max=255"`
	Password            string `json:"password" validate:"required,password"`
	BusinessDescription string `json:"businessDescription" validate:"max=1000"`
}

// RegistrationResult - итог успешной регистрации
type RegistrationResult struct {
	UserID   string          `json:"userId"`
	Email    string          `json:"email"`
	UserType models.UserType `json:"userType"`
	Message  string          `json:"message"`
}

// VerifyEmailRequest - обмен одноразового токена на подтверждение email
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required,min=1,max=128"`
}

// VerifyEmailResult - результат подтверждения: сессионный токен и сводка аккаунта
type VerifyEmailResult struct {
	AccessToken string          `json:"accessToken"`
	UserID      string          `json:"userId"`
	Email       string          `json:"email"`
	UserType    models.UserType `json:"userType"`
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - результат входа
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

// UserResponse - публичная сводка аккаунта
type UserResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	UserType      models.UserType `json:"userType"`
	EmailVerified bool            `json:"emailVerified"`
}
