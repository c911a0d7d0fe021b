package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

type fakeSource struct {
	name      string
	section   string
	err       error
	lastQuery string
}

func (f *fakeSource) Research(ctx context.Context, query string) (string, error) {
	f.lastQuery = query
	return f.section, f.err
}

func (f *fakeSource) Name() string {
	return f.name
}

func TestFetchTruncatesQuery(t *testing.T) {
	long := strings.Repeat("a", 49) + "bcdef"
	first := &fakeSource{name: "first"}
	second := &fakeSource{name: "second"}

	f := NewFetcher(first, second)
	_, err := f.Fetch(context.Background(), long)

	assert.Equal(t, nil, err)
	assert.Equal(t, 50, len(first.lastQuery))
	assert.Equal(t, 50, len(second.lastQuery))
	assert.Equal(t, strings.Repeat("a", 49)+"b", first.lastQuery)
}

func TestFetchShortQueryUnchanged(t *testing.T) {
	src := &fakeSource{name: "src"}

	f := NewFetcher(src)
	_, err := f.Fetch(context.Background(), "Will X happen by 2025?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Will X happen by 2025?", src.lastQuery)
}

func TestFetchJoinsSectionsWithBlankLine(t *testing.T) {
	wiki := &fakeSource{name: "wiki", section: "Wikipedia Summary:\nX is a thing."}
	news := &fakeSource{name: "news", section: "News Headlines:\n- headline (url)"}

	f := NewFetcher(wiki, news)
	blob, err := f.Fetch(context.Background(), "Will X happen?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Wikipedia Summary:\nX is a thing.\n\nNews Headlines:\n- headline (url)", blob)
}

func TestFetchSkipsEmptySections(t *testing.T) {
	wiki := &fakeSource{name: "wiki", section: "Wikipedia Summary:\nX is a thing."}
	news := &fakeSource{name: "news"}

	f := NewFetcher(wiki, news)
	blob, err := f.Fetch(context.Background(), "Will X happen?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Wikipedia Summary:\nX is a thing.", blob)
}

func TestFetchPlaceholderWhenNothingFound(t *testing.T) {
	f := NewFetcher(&fakeSource{name: "wiki"}, &fakeSource{name: "news"})
	blob, err := f.Fetch(context.Background(), "Will X happen?")

	assert.Equal(t, nil, err)
	assert.Equal(t, "No free research available", blob)
}

func TestFetchPropagatesSourceError(t *testing.T) {
	boom := errors.New("connection refused")
	f := NewFetcher(&fakeSource{name: "news", err: boom})

	_, err := f.Fetch(context.Background(), "Will X happen?")

	assert.Equal(t, true, errors.Is(err, boom))
}
