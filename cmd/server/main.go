// @title         advisor API
// @version       1.0
// @description   Place advisors: a place name goes through a two-step LLM prompt chain and comes back with a list of well known places there.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/STIWARI-IN/AI-ML/docs"

	// internal imports
	"github.com/STIWARI-IN/AI-ML/api/http"
	"github.com/STIWARI-IN/AI-ML/api/http/handlers"
	"github.com/STIWARI-IN/AI-ML/api/http/middleware"
	"github.com/STIWARI-IN/AI-ML/pkg/advisor"
	"github.com/STIWARI-IN/AI-ML/pkg/chain"
	"github.com/STIWARI-IN/AI-ML/pkg/config"
	"github.com/STIWARI-IN/AI-ML/pkg/health"
	"github.com/STIWARI-IN/AI-ML/pkg/health/checkers"
	"github.com/STIWARI-IN/AI-ML/pkg/llm/groq"
	"github.com/STIWARI-IN/AI-ML/pkg/logger"
	"github.com/STIWARI-IN/AI-ML/pkg/metrics"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// Advisors: built-in catalog unless a file is given
	advisors := advisor.DefaultCatalog()
	if cfg.AdvisorsFile != "" {
		advisors, err = advisor.LoadCatalog(cfg.AdvisorsFile)
		if err != nil {
			lg.Fatal("load advisors", zap.String("file", cfg.AdvisorsFile), zap.Error(err))
		}
	}

	llmClient := groq.New(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.LLMTimeout)

	// A template binding mismatch in any advisor stops the process here.
	advisorUC, err := advisor.NewService(llmClient, chain.Options{
		Model:    llmClient.Model,
		Observer: metrics.ObserveCompletion,
	}, advisors, lg.Named("advisor"))
	if err != nil {
		lg.Fatal("init advisors", zap.Error(err))
	}

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewLLMChecker("groq", llmClient))

	app := fiber.New(fiber.Config{AppName: cfg.AppTitle})
	app.Use(middleware.RequestLog(lg.Named("http")))

	// Register routes
	http.Register(app,
		handlers.NewPageHandler(advisorUC, cfg.AppTitle),
		handlers.NewAdvisorHandler(advisorUC),
		handlers.NewHealthHandler(readiness),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	lg.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.String("model", llmClient.Model),
		zap.Int("advisors", len(advisors)),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
