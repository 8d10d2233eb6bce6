package repositories

import (
	"errors"
	"time"

	"hatamo_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInviteCodeNotFound возвращается, когда инвайт-код не найден в БД
	ErrInviteCodeNotFound = errors.New("invite code not found")
	// ErrInviteCodeConsumed возвращается, когда условное обновление не
	// затронуло ни одной строки: код успел потребить кто-то другой
	ErrInviteCodeConsumed = errors.New("invite code already consumed")
)

// InviteCodeFilter - критерии выборки для административного списка
type InviteCodeFilter struct {
	Status   models.InviteCodeStatus
	UserType models.UserType
	Page     int
	PageSize int
}

// InviteCodeRepository определяет интерфейс для операций с инвайт-кодами
type InviteCodeRepository interface {
	Create(db *gorm.DB, code *models.InviteCode) error

	// FindByCode находит код по точному совпадению строки (без блокировки)
	FindByCode(db *gorm.DB, code string) (*models.InviteCode, error)

	// FindByIDForUpdate читает строку кода с блокировкой SELECT ... FOR UPDATE.
	// Вызывается только внутри транзакции.
	FindByIDForUpdate(db *gorm.DB, id string) (*models.InviteCode, error)

	// Consume помечает код использованным одной записью: статус, потребитель
	// и момент потребления выставляются атомарно, и только если код все еще
	// ACTIVE и никем не потреблен.
	Consume(db *gorm.DB, id, consumerID string, usedAt time.Time) error

	FindWithFilter(db *gorm.DB, filter InviteCodeFilter) ([]models.InviteCode, int64, error)

	// Disable - терминальное административное отключение кода
	Disable(db *gorm.DB, id string) error
}

type inviteCodeRepository struct{}

// NewInviteCodeRepository создает новый экземпляр InviteCodeRepository
func NewInviteCodeRepository() InviteCodeRepository {
	return &inviteCodeRepository{}
}

func (r *inviteCodeRepository) Create(db *gorm.DB, code *models.InviteCode) error {
	return db.Create(code).Error
}

func (r *inviteCodeRepository) FindByCode(db *gorm.DB, code string) (*models.InviteCode, error) {
	var invite models.InviteCode
	if err := db.First(&invite, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteCodeNotFound
		}
		return nil, err
	}
	return &invite, nil
}

func (r *inviteCodeRepository) FindByIDForUpdate(db *gorm.DB, id string) (*models.InviteCode, error) {
	var invite models.InviteCode
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&invite, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteCodeNotFound
		}
		return nil, err
	}
	return &invite, nil
}

func (r *inviteCodeRepository) Consume(db *gorm.DB, id, consumerID string, usedAt time.Time) error {
	result := db.Model(&models.InviteCode{}).
		Where("id = ? AND status = ? AND used_by IS NULL", id, models.InviteCodeStatusActive).
		Updates(map[string]interface{}{
			"status":  models.InviteCodeStatusUsed,
			"used_by": consumerID,
			"used_at": usedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInviteCodeConsumed
	}
	return nil
}

func (r *inviteCodeRepository) FindWithFilter(db *gorm.DB, filter InviteCodeFilter) ([]models.InviteCode, int64, error) {
	query := db.Model(&models.InviteCode{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserType != "" {
		query = query.Where("user_type = ?", filter.UserType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var codes []models.InviteCode
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&codes).Error
	if err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

func (r *inviteCodeRepository) Disable(db *gorm.DB, id string) error {
	result := db.Model(&models.InviteCode{}).
		Where("id = ?", id).
		Update("status", models.InviteCodeStatusDisabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInviteCodeNotFound
	}
	return nil
}
