package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hrishabhb/PharmAssistAI/internal/api"
	askapi "github.com/hrishabhb/PharmAssistAI/internal/api/ask"
	sessionapi "github.com/hrishabhb/PharmAssistAI/internal/api/session"
	"github.com/hrishabhb/PharmAssistAI/internal/config"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/llm"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/pubmed"
	"github.com/hrishabhb/PharmAssistAI/internal/integration/vectorstore"
	"github.com/hrishabhb/PharmAssistAI/internal/pkg/validator"
	"github.com/hrishabhb/PharmAssistAI/internal/session"
	"github.com/hrishabhb/PharmAssistAI/internal/usecase/ask"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize external service connectors (with mock support)
	var vectorStoreConnector ask.VectorStoreConnector
	var llmConnector ask.LLMConnector
	var pubmedConnector ask.PubMedConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		vectorStoreConnector = vectorstore.NewMockConnector(logger)
		llmConnector = llm.NewMockConnector(logger)
		pubmedConnector = pubmed.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		vectorStoreConnector = vectorstore.NewConnector(cfg.VectorStoreConnectorCfg, logger)
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
		pubmedConnector = pubmed.NewConnector(cfg.PubMedConnectorCfg, logger)
	}

	// Initialize validators
	askValidator := validator.New()
	logger.Info("Validators initialized")

	// Initialize use cases
	askUC := ask.NewUsecase(
		cfg.AskCfg,
		vectorStoreConnector,
		llmConnector,
		pubmedConnector,
		logger,
	)
	logger.Info("Use cases initialized")

	// Initialize session manager on the in-memory TTL store
	sessionStorage := session.NewCacheStorage(cfg.SessionTTL)
	sessionManager := session.NewManager(sessionStorage, askUC, logger)
	logger.Info("Session manager initialized", zap.Duration("session_ttl", cfg.SessionTTL))

	// Setup API handlers
	askHandler := askapi.NewHandler(askUC, askValidator, cfg.ExampleQuestions)
	sessionHandler := sessionapi.NewHandler(sessionManager, askValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(askHandler, sessionHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
