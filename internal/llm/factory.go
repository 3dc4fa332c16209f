package llm

import (
	"context"
	"fmt"

	"github.com/mlevine/mathdash/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// logging and (when configured for more than one attempt) retry
// middleware.
func NewProvider(ctx context.Context, cfg Config, repo store.LLMRequestRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	var p Provider = base
	if repo != nil {
		p = WithLogging(p, repo)
	}
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}

	return p, nil
}

// NewProviderFromEnv builds a provider from MATHDASH_* variables,
// falling back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, repo store.LLMRequestRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, repo)
}
