package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	newsAPIBaseURL = "https://newsapi.org"

	// maxHeadlines caps how many articles make it into the news section.
	maxHeadlines = 3
)

// NewsAPIClient searches recent headlines on the NewsAPI free tier.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    newsAPIBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Research(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/v2/everything?q=%s&apiKey=%s", c.baseURL, url.QueryEscape(query), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	// Quota misses and rejected queries come back non-200; treat as no news.
	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var raw newsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("newsapi decode: %w", err)
	}

	articles := raw.Articles
	if len(articles) > maxHeadlines {
		articles = articles[:maxHeadlines]
	}

	if len(articles) == 0 {
		return "", nil
	}

	lines := make([]string, 0, len(articles)+1)
	lines = append(lines, "News Headlines:")
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.Title, a.URL))
	}

	return strings.Join(lines, "\n"), nil
}

type newsResponse struct {
	Articles []newsArticle `json:"articles"`
}

type newsArticle struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
