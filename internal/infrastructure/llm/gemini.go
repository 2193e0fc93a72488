// Package llm wraps the generative-language client behind the TextGenerator
// port so handlers and services never touch the vendor SDK directly.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Config captures the settings for the Gemini client.
type Config struct {
	APIKey string
	Model  string
}

// GeminiClient implements ports.TextGenerator on top of the Google generative
// AI API. Construct once at process start and share across requests.
type GeminiClient struct {
	llm *googleai.GoogleAI
}

func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{llm: client}, nil
}

// Generate sends one prompt and returns the model's textual reply. No retries
// and no timeout beyond what the underlying client applies.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return reply, nil
}
