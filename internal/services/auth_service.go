package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"hatamo_backend/internal/auth"
	"hatamo_backend/internal/config"
	"hatamo_backend/internal/email"
	"hatamo_backend/internal/logger"
	"hatamo_backend/internal/models"
	"hatamo_backend/internal/repositories"
	"hatamo_backend/internal/services/dto"
	"hatamo_backend/internal/utils"
	"hatamo_backend/pkg/apperrors"
)

// AuthService реализует регистрацию по инвайт-коду, подтверждение
// email и выдачу сессионных токенов.
type AuthService interface {
	VerifyInviteCode(db *gorm.DB, req *dto.VerifyInviteCodeRequest) (*dto.InviteCodeSummary, error)
	RegisterClient(db *gorm.DB, req *dto.RegisterClientRequest) (*dto.RegistrationResult, error)
	RegisterSponsor(db *gorm.DB, req *dto.RegisterSponsorRequest) (*dto.RegistrationResult, error)
	VerifyEmail(db *gorm.DB, token string) (*dto.VerifyEmailResult, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	tokenRepo     repositories.VerificationTokenRepository
	inviteService InviteCodeService
	emailProvider email.Provider
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.VerificationTokenRepository,
	inviteService InviteCodeService,
	emailProvider email.Provider,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		inviteService: inviteService,
		emailProvider: emailProvider,
	}
}

func (s *authService) VerifyInviteCode(db *gorm.DB, req *dto.VerifyInviteCodeRequest) (*dto.InviteCodeSummary, error) {
	return s.inviteService.CheckAdmissible(db, strings.TrimSpace(req.Code))
}

func (s *authService) RegisterClient(db *gorm.DB, req *dto.RegisterClientRequest) (*dto.RegistrationResult, error) {
	name := strings.TrimSpace(req.LastName) + " " + strings.TrimSpace(req.FirstName)
	return s.register(db, req.InviteCodeID, models.UserTypeClient, name, req.Email, req.Password)
}

func (s *authService) RegisterSponsor(db *gorm.DB, req *dto.RegisterSponsorRequest) (*dto.RegistrationResult, error) {
	return s.register(db, req.InviteCodeID, models.UserTypeSponsor, strings.TrimSpace(req.BusinessName), req.Email, req.Password)
}

// register - общее транзакционное ядро обеих регистраций.
// Под блокировкой строки инвайт-кода: повторная проверка кода,
// уникальность email, создание пользователя, потребление кода и
// выпуск токена подтверждения. Либо все, либо ничего.
func (s *authService) register(db *gorm.DB, inviteCodeID string, userType models.UserType, name, rawEmail, password string) (*dto.RegistrationResult, error) {
	normalizedEmail := utils.NormalizeEmail(rawEmail)

	// bcrypt - чистое CPU, нет смысла держать хеширование внутри транзакции
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var user *models.User
	var verificationToken string

	err = withTxRetry(db, func(tx *gorm.DB) error {
		now := time.Now()

		if _, err := s.inviteService.ClaimForUpdate(tx, inviteCodeID, userType); err != nil {
			return err
		}

		exists, err := s.userRepo.ExistsByEmail(tx, normalizedEmail)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		user = &models.User{
			Email:         normalizedEmail,
			PasswordHash:  passwordHash,
			Name:          name,
			UserType:      userType,
			EmailVerified: false,
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			// Гонка двух регистраций с одним email: уникальный индекс
			// сработал после нашей проверки
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return err
		}

		if err := s.inviteService.Consume(tx, inviteCodeID, user.ID, now); err != nil {
			return err
		}

		token, err := auth.GenerateVerificationToken()
		if err != nil {
			return err
		}
		expiresAt := now.Add(time.Duration(config.GetConfig().Verification.TokenTTLHours) * time.Hour)
		if err := s.tokenRepo.Create(tx, &models.EmailVerificationToken{
			Token:     token,
			UserID:    user.ID,
			ExpiresAt: expiresAt,
		}); err != nil {
			return err
		}

		verificationToken = token
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("User registered",
		"user_id", user.ID, "user_type", user.UserType, "invite_code_id", inviteCodeID)

	// Письмо уходит после коммита: сбой доставки не откатывает регистрацию,
	// он только логируется
	go s.sendVerificationEmail(user.Email, verificationToken)

	return &dto.RegistrationResult{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Message:  "Registration successful. Please check your email to verify your account.",
	}, nil
}

func (s *authService) sendVerificationEmail(to, token string) {
	if err := s.emailProvider.SendVerification(to, token); err != nil {
		logger.Error("Failed to send verification email", "to", to, "error", err.Error())
	}
}

func (s *authService) VerifyEmail(db *gorm.DB, token string) (*dto.VerifyEmailResult, error) {
	var user *models.User

	err := withTxRetry(db, func(tx *gorm.DB) error {
		now := time.Now()

		vt, err := s.tokenRepo.FindByTokenForUpdate(tx, strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
				return apperrors.ErrVerificationTokenNotFound
			}
			return err
		}

		// Порядок проверок фиксирован: срок действия раньше повторного
		// использования
		if vt.IsExpired(now) {
			return apperrors.ErrVerificationTokenExpired
		}
		if vt.IsConsumed() {
			return apperrors.ErrVerificationTokenAlreadyUsed
		}

		if err := s.userRepo.MarkEmailVerified(tx, vt.UserID); err != nil {
			return err
		}
		if err := s.tokenRepo.MarkUsed(tx, vt.ID, now); err != nil {
			// Условное обновление не прошло: токен перехвачен параллельным
			// запросом между блокировкой и обновлением
			if errors.Is(err, repositories.ErrVerificationTokenNotFound) {
				return apperrors.ErrVerificationTokenAlreadyUsed
			}
			return err
		}

		user = vt.User
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	// Сессионный токен выпускается после коммита: флаг emailVerified
	// в claims должен отражать зафиксированное состояние
	accessToken, err := auth.GenerateToken(user.ID, user.Email, user.UserType, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("Email verified", "user_id", user.ID)

	return &dto.VerifyEmailResult{
		AccessToken: accessToken,
		UserID:      user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
	}, nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Не раскрываем, существует ли адрес
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Email, user.UserType, user.EmailVerified)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        newUserResponse(user),
	}, nil
}

func (s *authService) GetCurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return newUserResponse(user), nil
}

func newUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		UserType:      user.UserType,
		EmailVerified: user.EmailVerified,
	}
}
