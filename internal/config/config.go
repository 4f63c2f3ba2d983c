package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/hrishabhb/PharmAssistAI/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// External service configurations
	LLMConnectorCfg         LLMConnectorConfig         `envPrefix:"LLM_"`
	VectorStoreConnectorCfg VectorStoreConnectorConfig `envPrefix:"VECTOR_STORE_"`
	PubMedConnectorCfg      PubMedConnectorConfig      `envPrefix:"PUBMED_"`

	// Pipeline configuration
	AskCfg AskConfig `envPrefix:"ASK_"`

	// Session configuration
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Example questions offered in the UI (loaded from JSON file)
	ExampleQuestions []string

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	CompleteEndpoint string               `env:"COMPLETE_ENDPOINT" envDefault:"/complete"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type VectorStoreConnectorConfig struct {
	HTTPClientConfig
	SearchEndpoint string `env:"SEARCH_ENDPOINT" envDefault:"/search"`
	Collection     string `env:"COLLECTION" envDefault:"fda_drugs"`
}

type PubMedConnectorConfig struct {
	HTTPClientConfig
	SearchEndpoint  string               `env:"SEARCH_ENDPOINT" envDefault:"/entrez/eutils/esearch.fcgi"`
	SummaryEndpoint string               `env:"SUMMARY_ENDPOINT" envDefault:"/entrez/eutils/esummary.fcgi"`
	Email           string               `env:"ENTREZ_EMAIL,notEmpty"`
	APIKey          string               `env:"API_KEY"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// AskConfig holds the retrieval-and-synthesis pipeline knobs.
type AskConfig struct {
	TopK                 int `env:"TOP_K" envDefault:"4"`
	AnswerMaxTokens      int `env:"ANSWER_MAX_TOKENS" envDefault:"500"`
	FlashcardCount       int `env:"FLASHCARD_COUNT" envDefault:"3"`
	RelatedQuestionCount int `env:"RELATED_QUESTION_COUNT" envDefault:"3"`
	RelatedPaperCount    int `env:"RELATED_PAPER_COUNT" envDefault:"3"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"10s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"5s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"10s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

// exampleQuestions represents the structure of example_questions.json
type exampleQuestions struct {
	Questions []string `json:"questions"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Load example questions from JSON file
	if err := loadExampleQuestions(cfg); err != nil {
		return nil, fmt.Errorf("load example questions: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.AskCfg.TopK < 1 || cfg.AskCfg.TopK > 50 {
		errors = append(errors, fmt.Sprintf("ASK_TOP_K must be between 1 and 50, got %d", cfg.AskCfg.TopK))
	}

	if cfg.AskCfg.AnswerMaxTokens < 1 || cfg.AskCfg.AnswerMaxTokens > 4096 {
		errors = append(errors, fmt.Sprintf("ASK_ANSWER_MAX_TOKENS must be between 1 and 4096, got %d", cfg.AskCfg.AnswerMaxTokens))
	}

	if cfg.AskCfg.FlashcardCount < 1 || cfg.AskCfg.FlashcardCount > 10 {
		errors = append(errors, fmt.Sprintf("ASK_FLASHCARD_COUNT must be between 1 and 10, got %d", cfg.AskCfg.FlashcardCount))
	}

	if cfg.AskCfg.RelatedQuestionCount < 1 || cfg.AskCfg.RelatedQuestionCount > 10 {
		errors = append(errors, fmt.Sprintf("ASK_RELATED_QUESTION_COUNT must be between 1 and 10, got %d", cfg.AskCfg.RelatedQuestionCount))
	}

	if cfg.AskCfg.RelatedPaperCount < 1 || cfg.AskCfg.RelatedPaperCount > 10 {
		errors = append(errors, fmt.Sprintf("ASK_RELATED_PAPER_COUNT must be between 1 and 10, got %d", cfg.AskCfg.RelatedPaperCount))
	}

	if cfg.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be at least 1m, got %s", cfg.SessionTTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", errors[0])
	}

	return nil
}

var defaultExampleQuestions = []string{
	"What should I be careful of when taking Metformin?",
	"What are the contraindications of Aspirin?",
	"How does Januvia work?",
	"Can older people take beta blockers?",
	"How do beta blockers work?",
	"I am taking Aspirin, is it ok to take Glipizide?",
	"What are the side effects of Lipitor?",
	"How does insulin regulate blood sugar?",
	"What is the recommended dosage for Amoxicillin?",
	"Can pregnant women take Tylenol?",
}

func loadExampleQuestions(cfg *Config) error {
	configDir := filepath.Join("internal", "config", "example_questions.json")

	// Check if file exists
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		fmt.Printf("Warning: example questions file not found at %s, using default questions\n", configDir)
		cfg.ExampleQuestions = defaultExampleQuestions
		return nil
	}

	data, err := os.ReadFile(configDir)
	if err != nil {
		return fmt.Errorf("read example questions file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("example questions file is empty: %s", configDir)
	}

	var questionsData exampleQuestions
	if err := json.Unmarshal(data, &questionsData); err != nil {
		return fmt.Errorf("parse example questions JSON: %w", err)
	}

	if len(questionsData.Questions) == 0 {
		return fmt.Errorf("example questions file contains no questions: %s", configDir)
	}

	cfg.ExampleQuestions = questionsData.Questions

	fmt.Printf("Loaded %d example questions from %s\n", len(cfg.ExampleQuestions), configDir)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
