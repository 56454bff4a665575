package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/samber/lo"
)

// OpenAIClient serves chat completions through the official OpenAI SDK.
// Any OpenAI-compatible endpoint works through the base URL.
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient creates a new SDK-backed client.
func NewOpenAIClient(baseURL, apiKey string, timeout time.Duration) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/"))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &OpenAIClient{client: openai.NewClient(opts...)}
}

// CreateChatCompletion sends a chat completion request (non-streaming).
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: lo.Map(req.Messages, func(m ChatMessage, _ int) openai.ChatCompletionMessageParamUnion {
			switch m.Role {
			case "system":
				return openai.SystemMessage(m.Content)
			case "assistant":
				return openai.AssistantMessage(m.Content)
			default:
				return openai.UserMessage(m.Content)
			}
		}),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*req.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("LLM API error: %w", err)
	}

	return &ChatCompletionResponse{
		ID:      completion.ID,
		Object:  "chat.completion",
		Created: completion.Created,
		Model:   completion.Model,
		Choices: lo.Map(completion.Choices, func(ch openai.ChatCompletionChoice, _ int) Choice {
			return Choice{
				Index:        int(ch.Index),
				Message:      &ChatMessage{Role: "assistant", Content: ch.Message.Content},
				FinishReason: string(ch.FinishReason),
			}
		}),
		Usage: &Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}
