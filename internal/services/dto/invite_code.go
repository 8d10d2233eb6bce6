package dto

import (
	"time"

	"hatamo_backend/internal/models"
)

// IssueInviteCodeRequest - административная выдача нового инвайт-кода.
// ADMIN как целевой тип не принимается: привилегированные аккаунты
// не создаются через инвайты.
type IssueInviteCodeRequest struct {
	UserType      models.UserType `json:"userType" validate:"required,oneof=CLIENT SPONSOR"`
	ExpiresInDays int             `json:"expiresInDays" validate:"min=0,max=365"`
	Memo          string          `json:"memo" validate:"max=255"`
}

// ListInviteCodesQuery - фильтры административного списка кодов
type ListInviteCodesQuery struct {
	Status   models.InviteCodeStatus `form:"status" validate:"omitempty,oneof=ACTIVE USED DISABLED"`
	UserType models.UserType         `form:"user_type" validate:"omitempty,oneof=CLIENT SPONSOR ADMIN"`
	Page     int                     `form:"page" validate:"min=0"`
	PageSize int                     `form:"page_size" validate:"min=0,max=100"`
}

// InviteCodeResponse - представление инвайт-кода для администратора
type InviteCodeResponse struct {
	ID        string                  `json:"id"`
	Code      string                  `json:"code"`
	UserType  models.UserType         `json:"userType"`
	Status    models.InviteCodeStatus `json:"status"`
	ExpiresAt *time.Time              `json:"expiresAt,omitempty"`
	UsedBy    *string                 `json:"usedBy,omitempty"`
	UsedAt    *time.Time              `json:"usedAt,omitempty"`
	Memo      string                  `json:"memo,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NewInviteCodeResponse строит ответ из модели
func NewInviteCodeResponse(ic *models.InviteCode) *InviteCodeResponse {
	return &InviteCodeResponse{
		ID:        ic.ID,
		Code:      ic.Code,
		UserType:  ic.UserType,
		Status:    ic.Status,
		ExpiresAt: ic.ExpiresAt,
		UsedBy:    ic.UsedBy,
		UsedAt:    ic.UsedAt,
		Memo:      ic.Memo,
		CreatedAt: ic.CreatedAt,
	}
}
