package email

import "time"

// SMTPConfig содержит конфигурацию SMTP сервера и базовый URL
// фронтенда для построения ссылок в письмах
type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	FromEmail       string
	FromName        string
	UseTLS          bool
	Timeout         time.Duration
	FrontendBaseURL string
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:            "localhost",
		Port:            587,
		UseTLS:          true,
		Timeout:         30 * time.Second,
		FrontendBaseURL: "http://localhost:3000",
	}
}
