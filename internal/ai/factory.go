package ai

import (
	"StoryTutor/internal/config"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// New выбирает реализацию Generator по cfg.Provider.
func New(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return NewGeminiClient(ctx, cfg.Gemini, cfg.RequestTimeout, logger)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAI, cfg.RequestTimeout, logger), nil
	case config.ProviderStub:
		return NewStubClient(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
