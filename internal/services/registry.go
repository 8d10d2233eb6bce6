package services

import (
	"hatamo_backend/internal/email"
	"hatamo_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	AuthService       AuthService
	InviteCodeService InviteCodeService
}

// NewServiceContainer создает контейнер сервисов со всеми зависимостями
func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	inviteRepo := repositories.NewInviteCodeRepository()
	tokenRepo := repositories.NewVerificationTokenRepository()

	inviteCodeService := NewInviteCodeService(inviteRepo)
	authService := NewAuthService(userRepo, tokenRepo, inviteCodeService, emailProvider)

	return &ServiceContainer{
		AuthService:       authService,
		InviteCodeService: inviteCodeService,
	}
}
