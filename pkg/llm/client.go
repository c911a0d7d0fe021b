package llm

import (
	"context"
	"time"
)

// Config enumerates the call parameters shared by every provider:
// endpoint address, model identifier, sampling temperature and request
// timeout.
type Config struct {
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
