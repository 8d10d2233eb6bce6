package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	// Аутентификация и Авторизация (сквозные)
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

// Коды домена провижининга аккаунтов
const (
	// Инвайт-коды
	CodeInviteNotFound     ErrorCode = "INVITE_NOT_FOUND"
	CodeInviteInvalid      ErrorCode = "INVITE_INVALID"
	CodeInviteAlreadyUsed  ErrorCode = "INVITE_ALREADY_USED"
	CodeInviteExpired      ErrorCode = "INVITE_EXPIRED"
	CodeInviteKindMismatch ErrorCode = "INVITE_KIND_MISMATCH"

	// Пользователи
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"

	// Токены верификации email
	CodeVerificationTokenNotFound    ErrorCode = "VERIFICATION_TOKEN_NOT_FOUND"
	CodeVerificationTokenExpired     ErrorCode = "VERIFICATION_TOKEN_EXPIRED"
	CodeVerificationTokenAlreadyUsed ErrorCode = "VERIFICATION_TOKEN_ALREADY_USED"
)
