package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	wikipediaBaseURL = "https://en.wikipedia.org"

	// summaryLimit caps how much of a page extract goes into the blob.
	summaryLimit = 1000
)

// WikipediaClient looks up a page summary via the Wikipedia REST API,
// treating the query as a page title.
type WikipediaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewWikipediaClient() *WikipediaClient {
	return &WikipediaClient{
		baseURL:    wikipediaBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *WikipediaClient) Name() string {
	return "Wikipedia"
}

func (c *WikipediaClient) Research(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("wikipedia request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("wikipedia fetch: %w", err)
	}
	defer resp.Body.Close()

	// A missing or ambiguous page is not an error, just no summary.
	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var raw wikipediaSummary
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("wikipedia decode: %w", err)
	}

	if raw.Extract == "" {
		return "", nil
	}

	summary := raw.Extract
	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryLimit])
	}

	return "Wikipedia Summary:\n" + summary, nil
}

type wikipediaSummary struct {
	Extract string `json:"extract"`
}
