package research

import (
	"context"
	"fmt"
	"strings"
)

const (
	// queryLimit caps how much of the question text is used as the
	// lookup query for every source.
	queryLimit = 50

	// NoResearch is returned when no source produced a section.
	NoResearch = "No free research available"
)

// Fetcher assembles a research blob for a question by querying its
// sources in order and joining the non-empty sections with blank lines.
type Fetcher struct {
	sources []Source
}

func NewFetcher(sources ...Source) *Fetcher {
	return &Fetcher{sources: sources}
}

func (f *Fetcher) Fetch(ctx context.Context, questionText string) (string, error) {
	query := truncate(questionText, queryLimit)

	var sections []string
	for _, src := range f.sources {
		section, err := src.Research(ctx, query)
		if err != nil {
			return "", fmt.Errorf("%s research: %w", src.Name(), err)
		}
		if section != "" {
			sections = append(sections, section)
		}
	}

	if len(sections) == 0 {
		return NoResearch, nil
	}
	return strings.Join(sections, "\n\n"), nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
