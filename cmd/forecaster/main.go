package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"freecast/db"
	"freecast/internal/bot"
	"freecast/internal/config"
	"freecast/internal/repository"
	"freecast/pkg/llm"
	"freecast/pkg/metaculus"
	"freecast/pkg/research"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	sources := []research.Source{research.NewWikipediaClient()}
	if cfg.NewsAPIKey != "" {
		sources = append(sources, research.NewNewsAPIClient(cfg.NewsAPIKey))
	} else {
		slog.Info("NEWS_API_KEY not set, skipping news research")
	}
	fetcher := research.NewFetcher(sources...)

	var client llm.Client
	if cfg.AnthropicKey != "" {
		client = llm.NewAnthropicClient(cfg.AnthropicKey, cfg.LLM)
	} else {
		client = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.LLM)
	}

	platform := metaculus.NewClient(cfg.MetaculusToken)

	var recorder bot.Recorder
	if cfg.DatabaseURL != "" {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		recorder = repository.NewForecastRepository(db.DB)
	}

	forecaster := bot.New(platform, fetcher, client, recorder, bot.Config{
		MaxConcurrent:        cfg.MaxConcurrent,
		PredictionsPerReport: cfg.PredictionsPerReport,
		PublishReports:       cfg.PublishReports,
		SkipForecasted:       cfg.SkipForecasted,
	})

	slog.Info("starting tournament run",
		"tournament_id", cfg.TournamentID,
		"model", client.ModelName(),
		"endpoint", cfg.LLM.Endpoint)

	if err := forecaster.Run(context.Background(), cfg.TournamentID); err != nil {
		log.Fatalf("tournament run failed: %v", err)
	}

	slog.Info("tournament run complete", "tournament_id", cfg.TournamentID)
}
