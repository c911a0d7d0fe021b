package model

import "time"

// ForecastRecord is a row in the forecast log, written after a prediction
// has been generated (and published, when publishing is enabled).
type ForecastRecord struct {
	ID           int64
	QuestionID   int64
	QuestionText string
	Probability  float64
	Reasoning    string
	ModelUsed    string
	Published    bool
	CreatedAt    time.Time
}
