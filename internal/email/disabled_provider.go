package email

import (
	"fmt"

	"hatamo_backend/internal/logger"
)

// DisabledProvider используется, когда отправка почты выключена
// (email.enabled=false). Письма не уходят, ссылка подтверждения
// логируется на Debug-уровне, чтобы регистрацию можно было пройти
// в development-окружении.
type DisabledProvider struct {
	FrontendBaseURL string
}

func NewDisabledProvider(frontendBaseURL string) *DisabledProvider {
	return &DisabledProvider{FrontendBaseURL: frontendBaseURL}
}

func (p *DisabledProvider) Send(email *Email) error {
	logger.Debug("email delivery disabled, message dropped", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *DisabledProvider) SendVerification(to string, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", p.FrontendBaseURL, token)
	logger.Debug("email delivery disabled, verification link not sent", "to", to, "link", link)
	return nil
}

func (p *DisabledProvider) Validate() error { return nil }

func (p *DisabledProvider) Close() error { return nil }
