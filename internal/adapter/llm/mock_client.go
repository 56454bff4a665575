package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MockClient is a canned LLM used for local runs and tests.
// A last user message such as "5 days in Tokyo" produces an inline itinerary;
// anything else gets a follow-up question.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

var tripRequest = regexp.MustCompile(`(?i)(\d+)\s*days?\s+in\s+([\p{L}][\p{L} ,.'-]*)`)

// CreateChatCompletion returns a mock response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	responseContent := m.generateMockResponse(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    "assistant",
					Content: responseContent,
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(responseContent) / 4,
			TotalTokens:      m.estimateTokens(req) + len(responseContent)/4,
		},
	}, nil
}

// generateMockResponse generates a mock response based on the last user message.
func (m *MockClient) generateMockResponse(req *ChatCompletionRequest) string {
	var lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" {
			lastUserMessage = req.Messages[i].Content
			break
		}
	}

	match := tripRequest.FindStringSubmatch(lastUserMessage)
	if match == nil {
		return "[MOCK] Sounds exciting! Where would you like to go, and for how many days?"
	}

	days, err := strconv.Atoi(match[1])
	if err != nil || days <= 0 || days > 30 {
		return "[MOCK] How many days (1 to 30) should the trip last?"
	}
	destination := strings.TrimRight(strings.TrimSpace(match[2]), ".,")

	payload, _ := json.MarshalIndent(mockItinerary(destination, days), "", "  ")
	return fmt.Sprintf("[MOCK] Here is your %d-day plan for %s!\nITINERARY_START\n%s\nITINERARY_END", days, destination, payload)
}

func mockItinerary(destination string, days int) map[string]interface{} {
	plan := make([]map[string]interface{}, 0, days)
	for d := 1; d <= days; d++ {
		plan = append(plan, map[string]interface{}{
			"day": d,
			"activities": []map[string]string{
				{"time": "Morning", "activity": fmt.Sprintf("Explore %s, part %d", destination, d), "location": "City center"},
				{"time": "Evening", "activity": "Dinner at a local restaurant", "notes": "Book ahead"},
			},
		})
	}
	return map[string]interface{}{
		"destination": destination,
		"duration":    days,
		"travelerInfo": map[string]interface{}{
			"budget":      "Mid-range",
			"preferences": []string{"Food", "Culture"},
		},
		"days": plan,
	}
}

// estimateTokens provides a rough token count estimate.
func (m *MockClient) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}
