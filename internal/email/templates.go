package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// verificationTemplate - письмо со ссылкой подтверждения email
const verificationTemplate = `
<html>
<body style="font-family: sans-serif; color: #0f172b;">
  <h2>HATAMOへようこそ</h2>
  <p>ご登録ありがとうございます。以下のリンクをクリックして、メールアドレスを確認してください。</p>
  <p><a href="{{.VerificationURL}}">メールアドレスを確認する</a></p>
  <p>このリンクは24時間有効です。</p>
  <p>心当たりのない場合は、このメールを無視してください。</p>
</body>
</html>
`

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с предзагруженными шаблонами писем
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	// Встроенные шаблоны; AddTemplate с константой не может вернуть ошибку
	_ = tm.AddTemplate("verification", verificationTemplate)
	return tm
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
