package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider реализует Provider поверх SMTP через gomail
type GomailProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

// NewGomailProvider создает новый SMTP провайдер
func NewGomailProvider(config *SMTPConfig, renderer TemplateRenderer) *GomailProvider {
	return &GomailProvider{
		config:   config,
		renderer: renderer,
	}
}

// Send отправляет email сообщение
func (p *GomailProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)

	return d.DialAndSend(m)
}

// SendVerification отправляет письмо со ссылкой подтверждения email
func (p *GomailProvider) SendVerification(to string, token string) error {
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", p.config.FrontendBaseURL, token)

	htmlBody, err := p.renderer.Render("verification", TemplateData{
		"VerificationURL": link,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "【HATAMO】メールアドレスの確認",
		HTMLBody: htmlBody,
		Body:     "メールアドレスを確認してください: " + link,
	})
}

// Validate проверяет конфигурацию провайдера
func (p *GomailProvider) Validate() error {
	if p.config == nil || p.config.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is not configured")
	}
	return nil
}

// Close закрывает соединение с провайдером.
// Gomail открывает соединение на каждую отправку, закрывать нечего.
func (p *GomailProvider) Close() error {
	return nil
}
