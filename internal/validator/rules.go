package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"hatamo_backend/internal/auth"
	"hatamo_backend/internal/models"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'password': минимальные требования к паролю при регистрации
	mustRegister("password", validatePassword)

	// 'is-user-type': значение соответствует одному из типов аккаунта
	mustRegister("is-user-type", validateUserType)
}

func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения обрабатывает 'required'
	}
	return auth.ValidatePassword(value) == nil
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserType(value) {
	case models.UserTypeClient, models.UserTypeSponsor, models.UserTypeAdmin:
		return true
	default:
		return false
	}
}
