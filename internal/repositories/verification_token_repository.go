package repositories

import (
	"errors"
	"time"

	"hatamo_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrVerificationTokenNotFound возвращается, когда токен не найден в БД
	ErrVerificationTokenNotFound = errors.New("verification token not found")
)

// VerificationTokenRepository определяет интерфейс для операций
// с токенами подтверждения email
type VerificationTokenRepository interface {
	Create(db *gorm.DB, token *models.EmailVerificationToken) error

	// FindByTokenForUpdate читает строку токена с блокировкой и подгружает
	// владельца. Вызывается только внутри транзакции.
	FindByTokenForUpdate(db *gorm.DB, token string) (*models.EmailVerificationToken, error)

	// MarkUsed проставляет момент потребления, но только если токен
	// еще не был потреблен
	MarkUsed(db *gorm.DB, id string, usedAt time.Time) error
}

type verificationTokenRepository struct{}

// NewVerificationTokenRepository создает новый экземпляр VerificationTokenRepository
func NewVerificationTokenRepository() VerificationTokenRepository {
	return &verificationTokenRepository{}
}

func (r *verificationTokenRepository) Create(db *gorm.DB, token *models.EmailVerificationToken) error {
	return db.Create(token).Error
}

func (r *verificationTokenRepository) FindByTokenForUpdate(db *gorm.DB, token string) (*models.EmailVerificationToken, error) {
	var vt models.EmailVerificationToken
	// FOR UPDATE OF не трогает присоединяемую строку пользователя,
	// поэтому владельца читаем отдельным запросом после блокировки
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&vt, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVerificationTokenNotFound
		}
		return nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", vt.UserID).Error; err != nil {
		return nil, err
	}
	vt.User = &user

	return &vt, nil
}

func (r *verificationTokenRepository) MarkUsed(db *gorm.DB, id string, usedAt time.Time) error {
	result := db.Model(&models.EmailVerificationToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", usedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVerificationTokenNotFound
	}
	return nil
}
