package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/roster/internal/config"
)

// NewClient builds the provider named in config. Ollama is served through the
// OpenAI-compatible client pointed at the local daemon, so it needs no SDK of
// its own.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "claude":
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		// Ollama ignores the key but the client config requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
