package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"auditly-backend/internal/config"
	"auditly-backend/internal/database"
	"auditly-backend/internal/handlers"
	"auditly-backend/internal/logging"
	"auditly-backend/internal/middleware"
	"auditly-backend/internal/repository"
	"auditly-backend/internal/router"
	"auditly-backend/internal/services"
)

func main() {
	cfg := config.Load()

	if _, err := logging.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogFile); err != nil {
		slog.Warn("log file unavailable, logging to stderr", "error", err)
	}
	slog.Info("starting auditly chat backend", "env", cfg.Env)

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		slog.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool, "migrations"); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	reportRepo := repository.NewReportRepo(pool)

	contextSvc := services.NewReportContextService(reportRepo, nil)
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		contextSvc = services.NewReportContextService(reportRepo, redisClient)
		slog.Info("report context cache enabled")
	}

	gateway, cleanup, err := buildGateway(cfg)
	if err != nil {
		slog.Error("model gateway initialization failed", "error", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}
	if gateway == nil {
		slog.Warn("no model API key configured; chat will return setup guidance")
	}

	chatSvc := services.NewChatService(contextSvc, gateway)

	var jwtAuth *middleware.JWTAuth
	if cfg.JWTSecret != "" {
		jwtAuth = middleware.NewJWTAuth(cfg.JWTSecret)
	} else {
		slog.Warn("JWT_SECRET not set, API is open")
	}

	r := router.New(
		handlers.NewChatHandler(chatSvc),
		handlers.NewReportHandler(reportRepo),
		jwtAuth,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("auditly chat backend ready", "addr", fmt.Sprintf("http://localhost:%s", cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildGateway picks the LLM vendor. LLM_PROVIDER forces a choice; otherwise
// Gemini wins when both keys are present. A nil gateway means no key is
// configured and the orchestrator answers with setup guidance instead.
func buildGateway(cfg *config.Config) (services.Gateway, func(), error) {
	useGroq := cfg.LLMProvider == "groq" || (cfg.LLMProvider == "" && cfg.GeminiAPIKey == "")

	if useGroq && cfg.GroqAPIKey != "" {
		slog.Info("using Groq chat completions", "model", cfg.GroqModel)
		return services.NewGroqGateway(cfg.GroqAPIKey, cfg.GroqModel), nil, nil
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		slog.Info("using Gemini", "model", cfg.GeminiModel)
		return services.NewGeminiGateway(client, cfg.GeminiModel), func() { client.Close() }, nil
	}

	return nil, nil, nil
}
