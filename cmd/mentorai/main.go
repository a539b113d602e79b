package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mentorai/internal/api"
	"mentorai/internal/api/handlers"
	"mentorai/internal/repository"
	"mentorai/internal/service"
	"mentorai/pkg/auth"
	"mentorai/pkg/config"
	"mentorai/pkg/logger"
	"mentorai/pkg/postgres"

	"go.uber.org/zap"
)

// @title MentorAI API
// @version 1.0
// @description AI-assisted learning platform: curriculum generation, semantic content search and a gamified discussion forum
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@mentorai.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting MentorAI service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	badgeRepo := repository.NewBadgeRepository(db, appLogger)
	forumRepo := repository.NewForumRepository(db, appLogger)
	contentRepo := repository.NewContentRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	geminiService, err := service.NewGeminiService(ctx, &cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini service", zap.Error(err))
	}

	curriculumService := service.NewCurriculumService(geminiService, appLogger)
	indexService := service.NewIndexService(contentRepo, geminiService, &cfg.RAG, appLogger)
	searchService := service.NewSearchService(contentRepo, geminiService, &cfg.RAG, appLogger)
	ingestService := service.NewIngestService(&cfg.YouTube, &cfg.Ingest, appLogger)
	gamificationService := service.NewGamificationService(userRepo, badgeRepo, appLogger)
	forumService := service.NewForumService(forumRepo, gamificationService, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	curriculumHandler := handlers.NewCurriculumHandler(curriculumService, appLogger)
	contentHandler := handlers.NewContentHandler(indexService, searchService, ingestService, appLogger)
	forumHandler := handlers.NewForumHandler(forumService, appLogger)
	userHandler := handlers.NewUserHandler(authService, gamificationService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, curriculumHandler, contentHandler, forumHandler, userHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
