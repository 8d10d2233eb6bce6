package apperrors

import (
	"net/http"
)

/*
Этот файл содержит предопределенные ошибки домена
invite-провижининга аккаунтов.
*/

// --- Инвайт-коды ---

// ErrInviteNotFound - код не существует
var ErrInviteNotFound = New(
	CodeInviteNotFound,
	"invite",
	"Invite code not found",
	http.StatusNotFound,
)

// ErrInviteInvalid - код существует, но статус не ACTIVE (например, отключен администратором)
var ErrInviteInvalid = New(
	CodeInviteInvalid,
	"invite",
	"Invite code is not valid",
	http.StatusBadRequest,
)

// ErrInviteAlreadyUsed - код уже был потреблен другой регистрацией
var ErrInviteAlreadyUsed = New(
	CodeInviteAlreadyUsed,
	"invite",
	"Invite code has already been used",
	http.StatusBadRequest,
)

// ErrInviteExpired - срок действия кода истек (статус в БД при этом не меняется)
var ErrInviteExpired = New(
	CodeInviteExpired,
	"invite",
	"Invite code has expired",
	http.StatusBadRequest,
)

// ErrInviteKindMismatch - код выдан для другого типа аккаунта
var ErrInviteKindMismatch = New(
	CodeInviteKindMismatch,
	"invite",
	"Invite code is not intended for this account type",
	http.StatusBadRequest,
)

// --- Пользователи ---

var ErrEmailAlreadyExists = New(
	CodeEmailAlreadyExists,
	"user",
	"Email is already registered",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeUserNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrUserNotVerified = New(
	CodeUserNotVerified,
	"user",
	"Email address has not been verified",
	http.StatusForbidden,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or malformed token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

// --- Токены верификации email ---

var ErrVerificationTokenNotFound = New(
	CodeVerificationTokenNotFound,
	"verification",
	"Verification token not found",
	http.StatusNotFound,
)

var ErrVerificationTokenExpired = New(
	CodeVerificationTokenExpired,
	"verification",
	"Verification token has expired",
	http.StatusBadRequest,
)

var ErrVerificationTokenAlreadyUsed = New(
	CodeVerificationTokenAlreadyUsed,
	"verification",
	"Verification token has already been used",
	http.StatusBadRequest,
)
