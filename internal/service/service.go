// Package service implements the chat backend: it admits requests through the
// policy engine, asks the LLM for a reply and extracts any inline itinerary.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/xiaot623/tripplanner/internal/adapter/llm"
	"github.com/xiaot623/tripplanner/internal/config"
	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/policy"
)

var (
	// ErrMissingAPIKey is returned when no LLM API key is configured.
	ErrMissingAPIKey = errors.New("GROQ_API_KEY environment variable is not set")
	// ErrPolicyDenied is returned when the admission policy rejects a request.
	ErrPolicyDenied = errors.New("request denied by policy")
	// ErrEmptyCompletion is returned when the LLM answers without any choice.
	ErrEmptyCompletion = errors.New("LLM returned no choices")
)

// PolicyError carries the reasons behind a policy denial.
type PolicyError struct {
	Reasons []string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPolicyDenied, e.Reasons)
}

func (e *PolicyError) Unwrap() error {
	return ErrPolicyDenied
}

// LLMError wraps a failed LLM call.
type LLMError struct {
	Err error
}

func (e *LLMError) Error() string {
	return "LLM request failed: " + e.Err.Error()
}

func (e *LLMError) Unwrap() error {
	return e.Err
}

type Service struct {
	llmClient    llm.LLMClient
	policyEngine *policy.Engine
	config       *config.Config
}

func New(llmClient llm.LLMClient, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		llmClient:    llmClient,
		policyEngine: policyEngine,
		config:       cfg,
	}
}

// Chat answers one conversation turn. It implements the orchestrator's Backend,
// so live sessions can call it in-process.
func (s *Service) Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	requestID := "chat_" + uuid.New().String()[:8]
	log.Printf("[%s] Received chat request with %d messages", requestID, len(messages))

	if s.config.RequiresAPIKey() && s.config.LLMAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	decision, err := s.policyEngine.Evaluate(ctx, messages)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		log.Printf("[%s] Policy denied request: %v", requestID, decision.Reasons)
		return nil, &PolicyError{Reasons: decision.Reasons}
	}

	temperature := s.config.LLMTemperature
	maxTokens := s.config.LLMMaxTokens
	req := &llm.ChatCompletionRequest{
		Model:       s.config.LLMModel,
		Messages:    s.buildMessages(messages),
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}

	startTime := time.Now()
	resp, err := s.llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, &LLMError{Err: err}
	}
	content, ok := resp.FirstContent()
	if !ok {
		return nil, &LLMError{Err: ErrEmptyCompletion}
	}
	log.Printf("[%s] LLM replied in %dms: %s", requestID, time.Since(startTime).Milliseconds(), preview(content, 100))

	itinerary, err := domain.ExtractItinerary(content)
	switch {
	case err == nil:
		log.Printf("[%s] Parsed itinerary for %s (%d days)", requestID, itinerary.Destination, len(itinerary.Days))
	case errors.Is(err, domain.ErrNoItinerary):
	default:
		log.Printf("WARN: [%s] failed to parse itinerary: %v", requestID, err)
	}

	return domain.NewChatResponse(content, itinerary), nil
}

// buildMessages prepends the system prompt to the conversation.
func (s *Service) buildMessages(messages []domain.Message) []llm.ChatMessage {
	out := make([]llm.ChatMessage, 0, len(messages)+1)
	out = append(out, llm.ChatMessage{Role: string(domain.RoleSystem), Content: SystemPrompt})
	return append(out, lo.Map(messages, func(m domain.Message, _ int) llm.ChatMessage {
		return llm.ChatMessage{Role: string(m.Role), Content: m.Content}
	})...)
}

func preview(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
