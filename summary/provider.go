package summary

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ProviderConfig selects and configures a generative text service.
type ProviderConfig struct {
	Provider   string // "openai", "gemini" or "" / "none"
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds the Client for a provider. It returns a nil Client for
// the "none" provider or when no API key is set, so the Generator falls
// back without making a request.
func NewClient(ctx context.Context, cfg ProviderConfig) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" || provider == "none" || cfg.APIKey == "" {
		return nil, nil
	}

	switch provider {
	case "openai":
		c, err := NewOpenAIClient(OpenAIConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "gemini":
		c, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: cfg.HTTPClient,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q (available: openai, gemini, none)", cfg.Provider)
	}
}
