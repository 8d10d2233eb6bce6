package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hatamo_backend/database"
	"hatamo_backend/internal/config"
	"hatamo_backend/internal/email"
	"hatamo_backend/internal/handlers"
	"hatamo_backend/internal/logger"
	"hatamo_backend/internal/middleware"
	"hatamo_backend/internal/models"
	"hatamo_backend/internal/routes"
	"hatamo_backend/internal/services"
	"hatamo_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа нет ни выдачи инвайтов, ни сидинга кодов - не запускаемся
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	if cfg.Server.Env == "development" {
		if err := seedDevInviteCodes(gormDB); err != nil {
			logger.Fatal("Failed to seed development invite codes", "error", err)
		}
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полностью сконфигурированный gin.Engine.
// Вынесен отдельно от Run, чтобы интеграционные тесты могли поднять
// сервер поверх своей тестовой БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		smtpConfig := &email.SMTPConfig{
			Host:            cfg.Email.SMTPHost,
			Port:            cfg.Email.SMTPPort,
			Username:        cfg.Email.SMTPUsername,
			Password:        cfg.Email.SMTPPassword,
			FromEmail:       cfg.Email.FromEmail,
			FromName:        cfg.Email.FromName,
			UseTLS:          cfg.Email.UseTLS,
			FrontendBaseURL: cfg.Frontend.BaseURL,
		}
		emailProvider = email.NewGomailProvider(smtpConfig, email.NewTemplateManager())
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewDisabledProvider(cfg.Frontend.BaseURL)
		logger.Warn("Email delivery is disabled, verification links will only be logged")
	}

	return services.NewServiceContainer(emailProvider)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		InviteCodeHandler: handlers.NewInviteCodeHandler(baseHandler, serviceContainer.InviteCodeService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdmin.Email
	adminPassword := cfg.FirstAdmin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:         adminEmail,
			PasswordHash:  string(hashedPassword),
			Name:          "HATAMO Administration",
			UserType:      models.UserTypeAdmin,
			EmailVerified: true,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user in database: %w", err)
		}

		logger.Info("✅ Successfully created first admin user", "email", adminEmail)
		return nil
	})
}

// seedDevInviteCodes создает фиксированный набор инвайт-кодов для
// локальной разработки: рабочие коды обоих типов плюс истекший и
// отключенный для проверки отказов. Выполняется только на пустой таблице.
func seedDevInviteCodes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.InviteCode{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var admin models.User
	if err := db.First(&admin, "user_type = ?", models.UserTypeAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("No admin user exists, skipping invite code seeding")
			return nil
		}
		return err
	}

	now := time.Now()
	future := now.AddDate(0, 0, 30)
	past := now.AddDate(0, 0, -1)

	seeds := []models.InviteCode{
		{Code: "CLIENT01", UserType: models.UserTypeClient, Status: models.InviteCodeStatusActive, ExpiresAt: &future, Memo: "dev seed", CreatedBy: admin.ID},
		{Code: "SPONSOR01", UserType: models.UserTypeSponsor, Status: models.InviteCodeStatusActive, ExpiresAt: &future, Memo: "dev seed", CreatedBy: admin.ID},
		{Code: "EXPIRED01", UserType: models.UserTypeClient, Status: models.InviteCodeStatusActive, ExpiresAt: &past, Memo: "dev seed (expired)", CreatedBy: admin.ID},
		{Code: "DISABLED01", UserType: models.UserTypeClient, Status: models.InviteCodeStatusDisabled, ExpiresAt: &future, Memo: "dev seed (disabled)", CreatedBy: admin.ID},
	}

	if err := db.Create(&seeds).Error; err != nil {
		return err
	}

	logger.Info("Development invite codes seeded", "count", len(seeds))
	return nil
}
