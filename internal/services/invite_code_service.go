package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hatamo_backend/internal/auth"
	"hatamo_backend/internal/logger"
	"hatamo_backend/internal/models"
	"hatamo_backend/internal/repositories"
	"hatamo_backend/internal/services/dto"
	"hatamo_backend/pkg/apperrors"
)

// defaultInviteTTLDays - срок действия выдаваемого кода по умолчанию
const defaultInviteTTLDays = 30

// InviteCodeService управляет жизненным циклом инвайт-кодов:
// проверка допустимости, одноразовое потребление при регистрации
// и административные операции выдачи/отключения.
type InviteCodeService interface {
	// CheckAdmissible проверяет код по строке без каких-либо записей в БД.
	// Используется фронтендом до показа формы регистрации.
	CheckAdmissible(db *gorm.DB, code string) (*dto.InviteCodeSummary, error)

	// ClaimForUpdate блокирует строку кода внутри транзакции вызывающей
	// стороны и повторяет все проверки допустимости по свежим данным,
	// включая соответствие типа аккаунта.
	ClaimForUpdate(tx *gorm.DB, inviteID string, expected models.UserType) (*models.InviteCode, error)

	// Consume атомарно помечает код использованным. Вызывается после
	// ClaimForUpdate в той же транзакции; условное обновление - последний
	// рубеж против двойного потребления.
	Consume(tx *gorm.DB, inviteID, consumerID string, usedAt time.Time) error

	Issue(db *gorm.DB, issuerID string, req *dto.IssueInviteCodeRequest) (*dto.InviteCodeResponse, error)
	List(db *gorm.DB, query *dto.ListInviteCodesQuery) ([]*dto.InviteCodeResponse, int64, error)
	Disable(db *gorm.DB, id string) error
}

type inviteCodeService struct {
	inviteRepo repositories.InviteCodeRepository
}

// NewInviteCodeService создает новый экземпляр InviteCodeService
func NewInviteCodeService(inviteRepo repositories.InviteCodeRepository) InviteCodeService {
	return &inviteCodeService{inviteRepo: inviteRepo}
}

// rejectionError переводит причину отказа в доменную ошибку
func rejectionError(r models.InviteRejection) *apperrors.AppError {
	switch r {
	case models.InviteRejectionInvalid:
		return apperrors.ErrInviteInvalid
	case models.InviteRejectionAlreadyUsed:
		return apperrors.ErrInviteAlreadyUsed
	case models.InviteRejectionExpired:
		return apperrors.ErrInviteExpired
	default:
		return nil
	}
}

func (s *inviteCodeService) CheckAdmissible(db *gorm.DB, code string) (*dto.InviteCodeSummary, error) {
	invite, err := s.inviteRepo.FindByCode(db, code)
	if err != nil {
		if errors.Is(err, repositories.ErrInviteCodeNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if rejection := invite.Admissible(time.Now()); rejection != models.InviteRejectionNone {
		return nil, rejectionError(rejection)
	}

	return &dto.InviteCodeSummary{
		UserType:     invite.UserType,
		InviteCodeID: invite.ID,
	}, nil
}

func (s *inviteCodeService) ClaimForUpdate(tx *gorm.DB, inviteID string, expected models.UserType) (*models.InviteCode, error) {
	invite, err := s.inviteRepo.FindByIDForUpdate(tx, inviteID)
	if err != nil {
		if errors.Is(err, repositories.ErrInviteCodeNotFound) {
			return nil, apperrors.ErrInviteNotFound
		}
		return nil, err
	}

	// Проверки повторяются под блокировкой: результат предварительной
	// проверки мог устареть к моменту начала транзакции
	if rejection := invite.Admissible(time.Now()); rejection != models.InviteRejectionNone {
		return nil, rejectionError(rejection)
	}

	if invite.UserType != expected {
		return nil, apperrors.ErrInviteKindMismatch
	}

	return invite, nil
}

func (s *inviteCodeService) Consume(tx *gorm.DB, inviteID, consumerID string, usedAt time.Time) error {
	if err := s.inviteRepo.Consume(tx, inviteID, consumerID, usedAt); err != nil {
		if errors.Is(err, repositories.ErrInviteCodeConsumed) {
			return apperrors.ErrInviteAlreadyUsed
		}
		return err
	}
	return nil
}

func (s *inviteCodeService) Issue(db *gorm.DB, issuerID string, req *dto.IssueInviteCodeRequest) (*dto.InviteCodeResponse, error) {
	// Привилегированные аккаунты не создаются через инвайты
	if !models.ProvisionableUserType(req.UserType) {
		return nil, apperrors.NewBadRequestError("Invite codes cannot be issued for this account type")
	}

	days := req.ExpiresInDays
	if days <= 0 {
		days = defaultInviteTTLDays
	}
	expiresAt := time.Now().AddDate(0, 0, days)

	// Коллизия сгенерированного кода крайне маловероятна, но уникальный
	// индекс ее поймает; в этом случае генерируем заново
	var invite *models.InviteCode
	for attempt := 0; attempt < 3; attempt++ {
		code, err := auth.GenerateInviteCode()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		invite = &models.InviteCode{
			Code:      code,
			UserType:  req.UserType,
			Status:    models.InviteCodeStatusActive,
			ExpiresAt: &expiresAt,
			Memo:      req.Memo,
			CreatedBy: issuerID,
		}

		err = s.inviteRepo.Create(db, invite)
		if err == nil {
			logger.Info("Invite code issued",
				"invite_code_id", invite.ID, "user_type", invite.UserType, "issuer_id", issuerID)
			return dto.NewInviteCodeResponse(invite), nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.InternalError(err)
		}
	}

	return nil, apperrors.InternalError(errors.New("failed to generate a unique invite code"))
}

func (s *inviteCodeService) List(db *gorm.DB, query *dto.ListInviteCodesQuery) ([]*dto.InviteCodeResponse, int64, error) {
	filter := repositories.InviteCodeFilter{
		Status:   query.Status,
		UserType: query.UserType,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	codes, total, err := s.inviteRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	responses := make([]*dto.InviteCodeResponse, 0, len(codes))
	for i := range codes {
		responses = append(responses, dto.NewInviteCodeResponse(&codes[i]))
	}
	return responses, total, nil
}

func (s *inviteCodeService) Disable(db *gorm.DB, id string) error {
	if err := s.inviteRepo.Disable(db, id); err != nil {
		if errors.Is(err, repositories.ErrInviteCodeNotFound) {
			return apperrors.ErrInviteNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("Invite code disabled", "invite_code_id", id)
	return nil
}
