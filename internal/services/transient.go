package services

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"hatamo_backend/internal/logger"
	"hatamo_backend/pkg/apperrors"
)

// maxTxAttempts - сколько раз транзакция повторяется при транзиентной ошибке
const maxTxAttempts = 3

// transientMarkers - фрагменты сообщений Postgres/драйвера, при которых
// повтор транзакции целиком безопасен и имеет смысл
var transientMarkers = []string{
	"deadlock detected",
	"could not serialize access",
	"lock timeout",
	"canceling statement due to lock timeout",
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
}

// isTransientError отделяет временные сбои хранилища от бизнес-ошибок
func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		// Бизнес-отказ не лечится повтором
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, gorm.ErrInvalidTransaction) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// withTxRetry выполняет fn в транзакции, повторяя ее при транзиентных
// ошибках. После исчерпания попыток возвращает SERVICE_UNAVAILABLE:
// вызывающая сторона может безопасно повторить запрос целиком.
func withTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.Transaction(fn)
		if err == nil || !isTransientError(err) {
			return err
		}
		logger.Warn("Transient database error, retrying transaction",
			"attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
	}
	return apperrors.ServiceUnavailable(err)
}
