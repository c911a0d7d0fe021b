package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newWikipediaTestClient(srv *httptest.Server) *WikipediaClient {
	return &WikipediaClient{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestWikipediaResearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rest_v1/page/summary/Will%20X%20happen", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"title":   "X",
			"extract": "X is a thing that may happen.",
		})
	}))
	defer srv.Close()

	client := newWikipediaTestClient(srv)
	section, err := client.Research(context.Background(), "Will X happen")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Wikipedia Summary:\nX is a thing that may happen.", section)
}

func TestWikipediaResearchTruncatesSummary(t *testing.T) {
	long := strings.Repeat("x", 2500)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"extract": long})
	}))
	defer srv.Close()

	client := newWikipediaTestClient(srv)
	section, err := client.Research(context.Background(), "X")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Wikipedia Summary:\n"+strings.Repeat("x", 1000), section)
}

func TestWikipediaResearchMissingPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newWikipediaTestClient(srv)
	section, err := client.Research(context.Background(), "No Such Page")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", section)
}

func TestWikipediaResearchEmptyExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"title": "X"})
	}))
	defer srv.Close()

	client := newWikipediaTestClient(srv)
	section, err := client.Research(context.Background(), "X")

	assert.Equal(t, nil, err)
	assert.Equal(t, "", section)
}
