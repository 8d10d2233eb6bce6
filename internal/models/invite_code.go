package models

import "time"

// InviteCode - одноразовый код, открывающий регистрацию аккаунта
// определенного типа. Жизненный цикл: ACTIVE -> USED (успешная
// регистрация) или ACTIVE -> DISABLED (административное отключение).
// Истечение срока - вычисляемый предикат, а не хранимый статус.
type InviteCode struct {
	BaseModel
	Code      string           `gorm:"type:varchar(64);uniqueIndex;not null"`
	UserType  UserType         `gorm:"type:varchar(20);not null"`
	Status    InviteCodeStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	ExpiresAt *time.Time
	UsedBy    *string `gorm:"type:uuid"`
	UsedAt    *time.Time
	Memo      string
	CreatedBy string `gorm:"type:uuid;not null"`

	Consumer *User `gorm:"foreignKey:UsedBy"`
}

// IsExpired возвращает true, когда срок действия кода истек.
// Граница включающая: код с expires_at, равным now, уже истек
// ("сейчас" не раньше срока истечения).
func (ic *InviteCode) IsExpired(now time.Time) bool {
	return ic.ExpiresAt != nil && !ic.ExpiresAt.After(now)
}

// IsConsumed возвращает true, если код уже был потреблен регистрацией
func (ic *InviteCode) IsConsumed() bool {
	return ic.UsedBy != nil
}

// Admissible прогоняет проверки состояния в фиксированном
// порядке и возвращает первую нарушенную в виде причины.
// Порядок: статус -> потребление -> срок действия.
func (ic *InviteCode) Admissible(now time.Time) InviteRejection {
	if ic.Status == InviteCodeStatusUsed {
		return InviteRejectionAlreadyUsed
	}
	if ic.Status != InviteCodeStatusActive {
		return InviteRejectionInvalid
	}
	if ic.IsConsumed() {
		return InviteRejectionAlreadyUsed
	}
	if ic.IsExpired(now) {
		return InviteRejectionExpired
	}
	return InviteRejectionNone
}

// InviteRejection - причина отказа в допуске инвайт-кода
type InviteRejection int

const (
	InviteRejectionNone InviteRejection = iota
	InviteRejectionInvalid
	InviteRejectionAlreadyUsed
	InviteRejectionExpired
)
