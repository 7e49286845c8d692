package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/interview-practice-api/internal/config"
	"github.com/noah-isme/interview-practice-api/internal/handler"
	"github.com/noah-isme/interview-practice-api/internal/middleware"
	"github.com/noah-isme/interview-practice-api/internal/router"
	"github.com/noah-isme/interview-practice-api/internal/service"
	"github.com/noah-isme/interview-practice-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", cfg.AppName).Logger()

	var completer ai.ChatCompleter
	if cfg.AIConfigured() {
		client, err := ai.NewOpenAIClient(ai.OpenAIConfig{
			APIKey:  cfg.AIAPIKey,
			BaseURL: cfg.AIBaseURL,
			Model:   cfg.AIModel,
			Timeout: cfg.AITimeout,
			Logger:  logger,
		})
		if err != nil {
			log.Fatalf("failed to create ai client: %v", err)
		}
		completer = client
	} else {
		logger.Warn().Msg("INTERVIEW_AI_API_KEY is not configured; relay requests will fail")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	interviewService := service.NewInterviewService(completer, logger)
	interviewHandler := handler.NewInterviewHandler(interviewService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		InterviewHandler: interviewHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
