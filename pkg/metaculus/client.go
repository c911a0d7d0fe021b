package metaculus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"freecast/internal/model"
)

const defaultBaseURL = "https://www.metaculus.com"

// Client talks to the Metaculus API: listing open tournament questions
// and publishing predictions with their reasoning.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) ListOpenQuestions(ctx context.Context, tournamentID int) ([]model.Question, error) {
	endpoint := fmt.Sprintf("%s/api2/questions/?tournaments=%d&status=open&limit=100", c.baseURL, tournamentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("metaculus request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metaculus list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("metaculus list: http %d: %s", resp.StatusCode, body)
	}

	var raw questionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("metaculus decode: %w", err)
	}

	questions := make([]model.Question, 0, len(raw.Results))
	for _, item := range raw.Results {
		questions = append(questions, model.Question{
			ID:                item.ID,
			Text:              item.Title,
			Type:              model.QuestionType(item.Question.Type),
			AlreadyForecasted: item.MyForecasts.Latest != nil,
		})
	}

	return questions, nil
}

// SubmitPrediction publishes a binary probability as a fraction in [0,1].
func (c *Client) SubmitPrediction(ctx context.Context, questionID int64, probability float64) error {
	endpoint := fmt.Sprintf("%s/api2/questions/%d/predict/", c.baseURL, questionID)
	payload := map[string]float64{"prediction": probability}

	return c.post(ctx, endpoint, payload, "metaculus predict")
}

// PostComment attaches the reasoning text to the question as a private
// comment alongside the submitted prediction.
func (c *Client) PostComment(ctx context.Context, questionID int64, text string) error {
	endpoint := fmt.Sprintf("%s/api2/comments/", c.baseURL)
	payload := map[string]interface{}{
		"on_question":               questionID,
		"text":                      text,
		"is_private":                true,
		"include_latest_prediction": true,
	}

	return c.post(ctx, endpoint, payload, "metaculus comment")
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}, label string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", label, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s request: %w", label, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s: http %d: %s", label, resp.StatusCode, respBody)
	}

	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
}

type questionsResponse struct {
	Results []struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Question struct {
			Type string `json:"type"`
		} `json:"question"`
		MyForecasts struct {
			Latest *struct {
				StartTime float64 `json:"start_time"`
			} `json:"latest"`
		} `json:"my_forecasts"`
	} `json:"results"`
}
