package models

import "time"

// EmailVerificationToken - одноразовый токен подтверждения email.
// Создается в той же транзакции, что и аккаунт; потребляется ровно
// один раз; строки никогда не удаляются (остаются для аудита).
type EmailVerificationToken struct {
	BaseModel
	Token     string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time

	User *User `gorm:"foreignKey:UserID"`
}

// IsExpired - та же включающая граница, что у инвайт-кодов
func (t *EmailVerificationToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// IsConsumed возвращает true, если токен уже был использован
func (t *EmailVerificationToken) IsConsumed() bool {
	return t.UsedAt != nil
}
