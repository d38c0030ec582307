package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexipro-backend/config"
	"lexipro-backend/handlers"
	"lexipro-backend/logging"
	"lexipro-backend/provider"
	"lexipro-backend/repository"
	"lexipro-backend/service"
	"lexipro-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Development: !cfg.Release(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !foundEnv {
		logger.Info("no .env file found, using environment variables")
	}
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	ctx := context.Background()

	// Initialize repositories
	users, documents, closeDB, err := initRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize repositories", zap.Error(err))
	}
	defer closeDB()

	// Initialize storage
	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	logger.Info("storage initialized", zap.String("type", string(storage.ConfigFromEnv().Type)))

	// Initialize providers
	assistantOpts, closeProviders := initProviders(ctx, cfg, logger)
	defer closeProviders()

	// Initialize services
	assistantService := service.NewAssistantService(
		append(assistantOpts, service.WithAssistantLogger(logger))...,
	)

	authService := service.NewAuthService(
		service.WithUserStore(users),
		service.WithJWTSecret(cfg.JWTSecret),
		service.WithTokenTTL(cfg.JWTTTL),
	)
	if cfg.DatabaseURL == "" && cfg.DemoPassword != "" {
		seedDemoUsers(ctx, authService, cfg.DemoPassword, logger)
	}

	documentService := service.NewDocumentService(
		service.WithDocumentStore(documents),
		service.WithStorage(fileStorage),
		service.WithDocumentLogger(logger),
	)

	r := handlers.NewRouter(handlers.RouterConfig{
		Assistant: assistantService,
		Auth:      authService,
		Documents: documentService,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func initRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.UserStore, repository.DocumentStore, func(), error) {
	if cfg.DatabaseURL == "" {
		return repository.NewMemoryUserRepository(), repository.NewMemoryDocumentRepository(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	logger.Info("postgres connection established")
	return repository.NewUserRepository(pool), repository.NewDocumentRepository(pool), pool.Close, nil
}

// seedDemoUsers fills the in-memory user store so the dashboards can be logged into
func seedDemoUsers(ctx context.Context, auth *service.AuthService, password string, logger *zap.Logger) {
	users, err := auth.SeedDemoUsers(ctx, password)
	if err != nil {
		logger.Error("failed to seed demo accounts", zap.Error(err))
	}
	for _, u := range users {
		logger.Info("demo account ready",
			zap.String("email", u.Email),
			zap.String("role", string(u.Role)),
			zap.String("password_env", "DEMO_PASSWORD"),
		)
	}
}

// initProviders enables each AI feature whose API key is configured
func initProviders(ctx context.Context, cfg config.Config, logger *zap.Logger) ([]service.AssistantServiceOption, func()) {
	var opts []service.AssistantServiceOption
	closeFn := func() {}

	if cfg.OpenAIAPIKey != "" {
		openAI := provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.ProviderTimeout,
		})
		opts = append(opts,
			service.WithChatModel(openAI),
			service.WithStoryGenerator(openAI),
		)
		logger.Info("openai provider initialized", zap.String("model", cfg.OpenAIModel))
	}

	if cfg.GeminiAPIKey != "" {
		gemini, err := provider.NewGeminiProvider(ctx, provider.GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.ProviderTimeout,
		})
		if err != nil {
			logger.Error("failed to initialize gemini provider", zap.Error(err))
		} else {
			opts = append(opts,
				service.WithDocumentGenerator(gemini),
				service.WithPredictionGenerator(gemini),
			)
			closeFn = func() {
				if err := gemini.Close(); err != nil {
					logger.Warn("failed to close gemini client", zap.Error(err))
				}
			}
			logger.Info("gemini provider initialized", zap.String("model", cfg.GeminiModel))
		}
	}

	if cfg.HuggingFaceAPIKey != "" {
		opts = append(opts, service.WithFillMasker(provider.NewHuggingFaceProvider(provider.HuggingFaceConfig{
			APIKey:  cfg.HuggingFaceAPIKey,
			Model:   cfg.HuggingFaceModel,
			BaseURL: cfg.HuggingFaceBaseURL,
			Timeout: cfg.ProviderTimeout,
		})))
		logger.Info("hugging face provider initialized", zap.String("model", cfg.HuggingFaceModel))
	}

	return opts, closeFn
}
