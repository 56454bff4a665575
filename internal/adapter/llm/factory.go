package llm

import (
	"log"

	"github.com/xiaot623/tripplanner/internal/config"
)

// NewLLMClient creates an LLM client for the configured provider.
func NewLLMClient(cfg *config.Config) LLMClient {
	switch cfg.LLMProvider {
	case config.ProviderMock:
		log.Println("Mock mode detected, using mock LLM client")
		return NewMockClient()
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)
	case config.ProviderHTTP:
	default:
		log.Printf("WARN: unknown LLM provider %q, falling back to %q", cfg.LLMProvider, config.ProviderHTTP)
	}
	return NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)
}
