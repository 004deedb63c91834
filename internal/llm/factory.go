package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware chain: caller -> retry -> logging -> base. The "mock" provider
// skips middleware entirely so tests see every call.
func NewProvider(ctx context.Context, cfg Config, recorder Recorder) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	logged := WithLogging(base, cfg.Provider, recorder)
	return WithRetry(logged, cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (want anthropic, openai, gemini, or mock)", cfg.Provider)
	}
}
