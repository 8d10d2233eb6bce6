package models

type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null"`
	PasswordHash  string   `gorm:"not null"`
	Name          string   `gorm:"not null"`
	UserType      UserType `gorm:"type:varchar(20);not null"`
	EmailVerified bool     `gorm:"default:false;not null"`

	// Relations
	VerificationTokens []EmailVerificationToken `gorm:"foreignKey:UserID"`
}
