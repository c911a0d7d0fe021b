package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"freecast/internal/model"
	"freecast/pkg/llm"
)

type Platform interface {
	ListOpenQuestions(ctx context.Context, tournamentID int) ([]model.Question, error)
	SubmitPrediction(ctx context.Context, questionID int64, probability float64) error
	PostComment(ctx context.Context, questionID int64, text string) error
}

type Researcher interface {
	Fetch(ctx context.Context, questionText string) (string, error)
}

// Recorder appends submitted forecasts to the forecast log. Optional;
// a nil Recorder disables recording.
type Recorder interface {
	SaveForecast(rec *model.ForecastRecord) error
}

// Config is fixed at construction time.
type Config struct {
	// MaxConcurrent caps how many questions are in flight at once.
	MaxConcurrent int
	// PredictionsPerReport is how many LLM samples are taken per research
	// blob; the median probability is published.
	PredictionsPerReport int
	PublishReports       bool
	SkipForecasted       bool
}

// Bot runs the research -> predict -> publish pipeline over every open
// question of a tournament.
type Bot struct {
	platform   Platform
	researcher Researcher
	llm        llm.Client
	recorder   Recorder
	cfg        Config

	permits chan struct{}
}

func New(platform Platform, researcher Researcher, client llm.Client, recorder Recorder, cfg Config) *Bot {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if cfg.PredictionsPerReport < 1 {
		cfg.PredictionsPerReport = 1
	}

	return &Bot{
		platform:   platform,
		researcher: researcher,
		llm:        client,
		recorder:   recorder,
		cfg:        cfg,
		permits:    make(chan struct{}, cfg.MaxConcurrent),
	}
}

// Run forecasts every eligible open question on the tournament. The first
// pipeline error cancels the remaining batch; in-flight questions drain
// before Run returns.
func (b *Bot) Run(ctx context.Context, tournamentID int) error {
	questions, err := b.platform.ListOpenQuestions(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("listing open questions: %w", err)
	}

	slog.Info("tournament questions listed", "tournament_id", tournamentID, "count", len(questions))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for _, q := range questions {
		if b.cfg.SkipForecasted && q.AlreadyForecasted {
			slog.Info("skipping previously forecasted question", "question_id", q.ID)
			continue
		}
		if q.Type != model.QuestionBinary {
			slog.Warn("unsupported question type, skipping", "question_id", q.ID, "type", q.Type)
			continue
		}

		acquired := false
		select {
		case b.permits <- struct{}{}:
			acquired = true
		case <-ctx.Done():
		}
		if !acquired {
			break
		}
		if ctx.Err() != nil {
			<-b.permits
			break
		}

		wg.Add(1)
		go func(q model.Question) {
			defer wg.Done()
			defer func() { <-b.permits }()

			if err := b.processBinary(ctx, q); err != nil {
				slog.Error("question pipeline failed", "question_id", q.ID, "error", err)
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(q)
	}

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (b *Bot) processBinary(ctx context.Context, q model.Question) error {
	slog.Info("forecasting question", "question_id", q.ID)

	research, err := b.researcher.Fetch(ctx, q.Text)
	if err != nil {
		return fmt.Errorf("research for question %d: %w", q.ID, err)
	}

	prompt := buildBinaryPrompt(q.Text, time.Now(), research)

	probs := make([]float64, 0, b.cfg.PredictionsPerReport)
	var reasoning string
	for i := 0; i < b.cfg.PredictionsPerReport; i++ {
		text, err := b.llm.Complete(ctx, prompt)
		if err != nil {
			return fmt.Errorf("llm sample %d for question %d: %w", i+1, q.ID, err)
		}

		percent, err := llm.ExtractLastPercent(text)
		if err != nil {
			return fmt.Errorf("parsing llm sample %d for question %d: %w", i+1, q.ID, err)
		}

		if reasoning == "" {
			reasoning = text
		}
		probs = append(probs, clampProbability(percent/100))
	}

	prediction := model.Prediction{
		Probability: median(probs),
		Reasoning:   reasoning,
	}

	slog.Info("prediction ready",
		"question_id", q.ID,
		"probability", prediction.Probability,
		"samples", len(probs))

	if b.cfg.PublishReports {
		if err := b.platform.SubmitPrediction(ctx, q.ID, prediction.Probability); err != nil {
			return fmt.Errorf("submitting prediction for question %d: %w", q.ID, err)
		}
		if err := b.platform.PostComment(ctx, q.ID, prediction.Reasoning); err != nil {
			return fmt.Errorf("posting reasoning for question %d: %w", q.ID, err)
		}
		slog.Info("prediction published", "question_id", q.ID)
	}

	if b.recorder != nil {
		rec := &model.ForecastRecord{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Probability:  prediction.Probability,
			Reasoning:    prediction.Reasoning,
			ModelUsed:    b.llm.ModelName(),
			Published:    b.cfg.PublishReports,
		}
		if err := b.recorder.SaveForecast(rec); err != nil {
			slog.Error("error saving forecast record", "question_id", q.ID, "error", err)
		}
	}

	return nil
}

// clampProbability keeps published fractions off the extremes, which the
// platform rejects.
func clampProbability(p float64) float64 {
	if p < 0.01 {
		return 0.01
	}
	if p > 0.99 {
		return 0.99
	}
	return p
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
