package handler

type ForecastResponse struct {
	ID           int64   `json:"id"`
	QuestionID   int64   `json:"question_id"`
	QuestionText string  `json:"question_text"`
	Probability  float64 `json:"probability"`
	Reasoning    string  `json:"reasoning"`
	ModelUsed    string  `json:"model_used"`
	Published    bool    `json:"published"`
	CreatedAt    string  `json:"created_at"`
}

type ForecastsResponse struct {
	Forecasts []ForecastResponse `json:"forecasts"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
