package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"SRP_admin_backend/internal/api"
	"SRP_admin_backend/internal/repository"
	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"SRP_admin_backend/pkg/mailer"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	}
	defer repo.Close()

	adminAuth := auth.NewAdminAuth(cfg.Auth.JWTSecret)

	var certMailer mailer.Mailer
	if cfg.Mailer.APIKey != "" {
		certMailer = mailer.NewResendClient(cfg.Mailer)
	} else {
		zapLogger.Warn("mailer api key not set, certificate email delivery disabled")
		certMailer = mailer.NewMock()
	}

	authService := service.NewAuthService(repo, adminAuth)
	userService := service.NewUserService(repo)
	submissionService := service.NewSubmissionService(repo, certMailer)
	certificateService := service.NewCertificateService(repo, certMailer)
	redemptionService := service.NewRedemptionService(repo)
	payoutService := service.NewPayoutService(repo)
	taskService := service.NewTaskService(repo)
	statsService := service.NewStatsService(repo)

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api/v1")
	api.NewAuthRoutes(a, authService)

	admin := a.Group("/admin")
	api.NewUserRoutes(admin, userService, adminAuth)
	api.NewSubmissionRoutes(admin, submissionService, adminAuth)
	api.NewCertificateRoutes(admin, certificateService, adminAuth)
	api.NewRedemptionRoutes(admin, redemptionService, adminAuth)
	api.NewPayoutRoutes(admin, payoutService, adminAuth)
	api.NewTaskRoutes(admin, taskService, adminAuth)
	api.NewDashboardRoutes(admin, statsService, adminAuth)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
