package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newNewsAPITestClient(srv *httptest.Server) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestNewsAPIResearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, "Will X happen", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"articles": []map[string]interface{}{
				{"title": "X moves closer", "url": "https://example.com/1"},
				{"title": "Experts doubt X", "url": "https://example.com/2"},
			},
		})
	}))
	defer srv.Close()

	client := newNewsAPITestClient(srv)
	section, err := client.Research(context.Background(), "Will X happen")

	assert.Equal(t, nil, err)
	assert.Equal(t, "News Headlines:\n- X moves closer (https://example.com/1)\n- Experts doubt X (https://example.com/2)", section)
}

func TestNewsAPIResearchCapsHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		articles := make([]map[string]interface{}, 0, 7)
		for i := 0; i < 7; i++ {
			articles = append(articles, map[string]interface{}{
				"title": "headline",
				"url":   "https://example.com",
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"articles": articles})
	}))
	defer srv.Close()

	client := newNewsAPITestClient(srv)
	section, err := client.Research(context.Background(), "X")

	assert.Equal(t, nil, err)
	assert.Equal(t, "News Headlines:\n- headline (https://example.com)\n- headline (https://example.com)\n- headline (https://example.com)", section)
}

func TestNewsAPIResearchNon200IsSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newNewsAPITestClient(srv)
	section, err := client.Research(context.Background(), "X")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", section)
}

func TestNewsAPIResearchNoArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"articles": []interface{}{}})
	}))
	defer srv.Close()

	client := newNewsAPITestClient(srv)
	section, err := client.Research(context.Background(), "X")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", section)
}

func TestNewsAPIResearchTransportErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newNewsAPITestClient(srv)
	_, err := client.Research(context.Background(), "X")

	assert.NotEqual(t, nil, err)
}
