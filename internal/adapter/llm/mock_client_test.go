package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/tripplanner/internal/config"
	"github.com/xiaot623/tripplanner/internal/domain"
)

func TestMockClientProducesItinerary(t *testing.T) {
	resp, err := NewMockClient().CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Model: "mock",
		Messages: []ChatMessage{
			{Role: "system", Content: "prompt"},
			{Role: "user", Content: "I'd like 3 days in Lisbon"},
		},
	})
	require.NoError(t, err)

	content, ok := resp.FirstContent()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(domain.DisplayText(content), "[MOCK] Here is your 3-day plan for Lisbon!"))

	it, err := domain.ExtractItinerary(content)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", it.Destination)
	assert.Equal(t, 3, it.Duration)
	assert.Len(t, it.Days, 3)
}

func TestMockClientAsksFollowUp(t *testing.T) {
	resp, err := NewMockClient().CreateChatCompletion(context.Background(), &ChatCompletionRequest{
		Messages: []ChatMessage{{Role: "user", Content: "I want to travel"}},
	})
	require.NoError(t, err)

	content, _ := resp.FirstContent()
	assert.NotContains(t, content, domain.MarkerStart)
}

func TestNewLLMClient(t *testing.T) {
	_, isHTTP := NewLLMClient(&config.Config{LLMProvider: config.ProviderHTTP}).(*Client)
	assert.True(t, isHTTP)

	_, isSDK := NewLLMClient(&config.Config{LLMProvider: config.ProviderOpenAI}).(*OpenAIClient)
	assert.True(t, isSDK)

	_, isMock := NewLLMClient(&config.Config{LLMProvider: config.ProviderMock}).(*MockClient)
	assert.True(t, isMock)

	_, fallback := NewLLMClient(&config.Config{LLMProvider: "carrier-pigeon"}).(*Client)
	assert.True(t, fallback)
}
