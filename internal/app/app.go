package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/cache"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run собирает все зависимости и запускает HTTP-сервер.
// Блокируется до SIGINT/SIGTERM.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		// gorm переводит ошибки драйвера в свои: нарушение уникальности
		// становится gorm.ErrDuplicatedKey, на этом построена обработка 409
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	if err := seedFirstAdmin(userRepo, cfg); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	var appCache cache.Cache
	if cfg.Redis.Addr != "" {
		if rc := cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); rc != nil {
			appCache = rc
			defer rc.Close()
		}
	}

	emailProvider := buildEmailProvider(cfg)
	if emailProvider != nil {
		defer emailProvider.Close()
	}

	serviceContainer := &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, refreshTokenRepo),
		JobService:         services.NewJobService(jobRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, userRepo, emailProvider),
		FavoriteService:    services.NewFavoriteService(favoriteRepo, jobRepo, userRepo),
		AdminService:       services.NewAdminService(userRepo, jobRepo, applicationRepo, appCache),
	}

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, appHandlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cleanupWorker := workers.NewTokenCleanupWorker(refreshTokenRepo, time.Hour)
	go cleanupWorker.Run(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

// seedFirstAdmin создает администратора при пустой таблице админов.
// Без настроенных ADMIN_EMAIL / ADMIN_PASSWORD ничего не делает.
func seedFirstAdmin(userRepo repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return nil
	}

	count, err := userRepo.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         cfg.Admin.Name,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("Seeded first admin user", "email", admin.Email)
	return nil
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		return nil
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Email notifications disabled", "error", err)
		return nil
	}
	return provider
}
