package ai

import (
	"context"
	"fmt"

	"wanderlust/internal/config"
)

// Client issues exactly one upstream call per invocation. No retries, no
// backoff; the transport default is the only timeout.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// NewClient builds the provider selected by configuration.
func NewClient(cfg config.AIConfig) (Client, error) {
	switch cfg.Provider {
	case config.AIProviderGemini:
		return NewGeminiClient(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case config.AIProviderOpenAI:
		return NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}
