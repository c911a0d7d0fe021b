package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
// With the default config this is a local Ollama server exposing /v1;
// LM Studio and hosted OpenAI work through the same client.
type OpenAIClient struct {
	client *openai.Client
	cfg    Config
}

func NewOpenAIClient(apiKey string, cfg Config) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithBaseURL(cfg.Endpoint),
		option.WithRequestTimeout(cfg.Timeout),
	}
	// Local servers ignore the key, but the SDK still sends the header.
	if apiKey == "" {
		apiKey = "none"
	}
	opts = append(opts, option.WithAPIKey(apiKey))

	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, cfg: cfg}
}

func (c *OpenAIClient) ModelName() string {
	return c.cfg.Model
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Temperature: openai.Float(c.cfg.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
