// Package chatclient talks to the planner's chat endpoint over HTTP.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xiaot623/tripplanner/internal/domain"
)

// ChatPath is the backend route that answers a chat turn.
const ChatPath = "/api/chat"

// Client is the chat endpoint client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
// A zero timeout means requests run until the backend answers.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ErrorResponse is the error body returned by the backend.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusError is returned for any non-2xx answer.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("chat API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("chat API error [%d]: %s", e.StatusCode, e.Message)
}

// Chat posts the full conversation and returns the backend's reply.
func (c *Client) Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	body, err := json.Marshal(domain.ChatRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ChatPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Error
		}
		return nil, statusErr
	}

	var result domain.ChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}

	return &result, nil
}
