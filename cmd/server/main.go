package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"collabhub.backend/internal/config"
	"collabhub.backend/internal/infrastructure/email"
	"collabhub.backend/internal/infrastructure/repositories"
	"collabhub.backend/internal/infrastructure/storage"
	"collabhub.backend/internal/interfaces/http/handlers"
	"collabhub.backend/internal/interfaces/http/middleware"
	"collabhub.backend/internal/usecases"
	"collabhub.backend/pkg/jwt"
	"collabhub.backend/pkg/logger"
	"collabhub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	newUploader     = storage.NewUploader
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	emailVerifRepo := repositories.NewEmailVerificationRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize email sender
	mailer := email.NewSender(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Server.BaseURL)

	// Initialize the asset uploader; uploads degrade to 503 without a bucket
	var uploader handlers.AssetUploader
	if cfg.Storage.S3Bucket != "" {
		up, err := newUploader(context.Background(), cfg.Storage.S3Bucket, cfg.Storage.S3Region)
		if err != nil {
			return fmt.Errorf("failed to initialize storage uploader: %w", err)
		}
		uploader = up
	} else {
		log.Println("S3_BUCKET not set, uploads disabled")
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, emailVerifRepo, skillRepo, uow, jwtService, mailer, sessionStore, cfg.JWT.RefreshExpiry)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, applicationRepo, userRepo, notificationUsecase)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, projectRepo, userRepo, uow)
	taskUsecase := usecases.NewTaskUsecase(taskRepo, teamRepo)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, teamRepo, userRepo)
	skillUsecase := usecases.NewSkillUsecase(skillRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, projectRepo, teamRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	taskHandler := handlers.NewTaskHandler(taskUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	skillHandler := handlers.NewSkillHandler(skillUsecase)
	uploadHandler := handlers.NewUploadHandler(uploader)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		projectHandler:      projectHandler,
		teamHandler:         teamHandler,
		taskHandler:         taskHandler,
		messageHandler:      messageHandler,
		notificationHandler: notificationHandler,
		skillHandler:        skillHandler,
		uploadHandler:       uploadHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	})

	// Start server
	log.Printf("CollabHub backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
