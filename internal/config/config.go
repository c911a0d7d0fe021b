package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"freecast/pkg/llm"
)

// Config is the runtime configuration of the forecaster, derived from
// environment variables.
type Config struct {
	TournamentID   int
	MetaculusToken string
	NewsAPIKey     string
	OpenAIKey      string
	AnthropicKey   string
	DatabaseURL    string

	MaxConcurrent        int
	PredictionsPerReport int
	PublishReports       bool
	SkipForecasted       bool

	LLM llm.Config
}

const (
	// Ollama's OpenAI-compatible API.
	defaultLLMEndpoint    = "http://localhost:11434/v1"
	defaultLLMModel       = "mistral"
	defaultLLMTemperature = 0.3
	defaultLLMTimeout     = 60 * time.Second

	defaultMaxConcurrent        = 1
	defaultPredictionsPerReport = 3
)

// Load reads configuration from environment variables, applying defaults
// when optional values are not provided.
func Load() (Config, error) {
	cfg := Config{
		MetaculusToken: os.Getenv("METACULUS_TOKEN"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		MaxConcurrent:        defaultMaxConcurrent,
		PredictionsPerReport: defaultPredictionsPerReport,
		PublishReports:       true,
		SkipForecasted:       true,

		LLM: llm.Config{
			Endpoint:    getEnv("LLM_ENDPOINT", defaultLLMEndpoint),
			Model:       getEnv("LLM_MODEL", defaultLLMModel),
			Temperature: defaultLLMTemperature,
			Timeout:     defaultLLMTimeout,
		},
	}

	tournament := os.Getenv("TOURNAMENT_ID")
	if tournament == "" {
		return Config{}, fmt.Errorf("TOURNAMENT_ID is required")
	}
	id, err := strconv.Atoi(tournament)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOURNAMENT_ID: %w", err)
	}
	cfg.TournamentID = id

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
		}
		cfg.LLM.Temperature = temp
	}

	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT_SECONDS: %w", err)
		}
		cfg.LLM.Timeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("MAX_CONCURRENT_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid MAX_CONCURRENT_QUESTIONS: %q", v)
		}
		cfg.MaxConcurrent = n
	}

	if v := os.Getenv("PREDICTIONS_PER_REPORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid PREDICTIONS_PER_REPORT: %q", v)
		}
		cfg.PredictionsPerReport = n
	}

	if v := os.Getenv("PUBLISH_REPORTS"); v != "" {
		publish, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PUBLISH_REPORTS: %w", err)
		}
		cfg.PublishReports = publish
	}

	if v := os.Getenv("SKIP_FORECASTED"); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SKIP_FORECASTED: %w", err)
		}
		cfg.SkipForecasted = skip
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
