package models

type UserType string
type InviteCodeStatus string

const (
	// CLIENT и SPONSOR регистрируются по инвайт-коду.
	// ADMIN создается только внешним процессом (сидинг при старте).
	UserTypeClient  UserType = "CLIENT"
	UserTypeSponsor UserType = "SPONSOR"
	UserTypeAdmin   UserType = "ADMIN"

	InviteCodeStatusActive   InviteCodeStatus = "ACTIVE"
	InviteCodeStatusUsed     InviteCodeStatus = "USED"
	InviteCodeStatusDisabled InviteCodeStatus = "DISABLED"
)

// ProvisionableUserType сообщает, можно ли создать аккаунт этого типа
// через публичную регистрацию
func ProvisionableUserType(t UserType) bool {
	return t == UserTypeClient || t == UserTypeSponsor
}
