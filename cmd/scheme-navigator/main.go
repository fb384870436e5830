package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"scheme-navigator/internal/api"
	"scheme-navigator/internal/api/handlers"
	"scheme-navigator/internal/repository"
	"scheme-navigator/internal/service"
	"scheme-navigator/pkg/auth"
	"scheme-navigator/pkg/config"
	"scheme-navigator/pkg/logger"
	"scheme-navigator/pkg/postgres"

	"go.uber.org/zap"
)

// @title Scheme Navigator API
// @version 1.0
// @description Government welfare scheme catalog with assistant lookup and profile-based recommendations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.Logger.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("Starting scheme navigator",
		zap.String("reasoning_provider", cfg.Reasoning.Provider),
	)

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	schemeRepo := repository.NewSchemeRepository(db, appLogger)
	if err := schemeRepo.Migrate(ctx); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.Expiration)

	reasoner, err := service.NewReasoner(ctx, &cfg.Reasoning, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize reasoning collaborator", zap.Error(err))
	}
	defer reasoner.Close()

	catalogService := service.NewCatalogService(schemeRepo, appLogger)
	chatService := service.NewChatService(catalogService, reasoner, appLogger)
	recService := service.NewRecommendationService(catalogService, reasoner, appLogger)
	importService := service.NewImportService(schemeRepo, appLogger)

	app := api.SetupRouter(api.Handlers{
		Schemes:         handlers.NewSchemeHandler(catalogService, appLogger),
		Chat:            handlers.NewChatHandler(chatService, appLogger),
		Recommendations: handlers.NewRecommendationHandler(recService, appLogger),
		Admin:           handlers.NewAdminHandler(importService, cfg.Dataset.Path, appLogger),
	}, jwtManager, api.Options{
		CORSOrigins:  cfg.Server.CORSOrigins,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		AccessLog:    true,
	}, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
