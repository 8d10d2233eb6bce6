package email

// Provider определяет интерфейс для отправки email.
// Доставка всегда best-effort: вызывающая сторона логирует ошибку,
// но никогда не откатывает из-за нее зафиксированную транзакцию.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendVerification отправляет письмо со ссылкой подтверждения email
	SendVerification(to string, token string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	// Render рендерит шаблон с данными
	Render(templateName string, data TemplateData) (string, error)

	// AddTemplate добавляет шаблон в рендерер
	AddTemplate(name string, template string) error
}
