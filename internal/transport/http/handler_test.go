package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/ratelimit"
	"github.com/xiaot623/tripplanner/internal/service"
)

type chatFunc func(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error)

func (f chatFunc) Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	return f(ctx, messages)
}

type fixedCounter int

func (n fixedCounter) ConnectionCount() int { return int(n) }

const osakaJSON = `{
  "destination": "Osaka Japan",
  "duration": 2,
  "startDate": "2025-04-01",
  "endDate": "2025-04-02",
  "travelerInfo": {"budget": "Moderate", "preferences": ["Food"]},
  "days": [
    {"day": 1, "activities": [{"time": "Morning", "activity": "Osaka Castle", "location": "Chuo"}]},
    {"day": 2, "activities": [{"activity": "Dotonbori <street food>"}]}
  ]
}`

func doJSON(t *testing.T, handler echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestChat(t *testing.T) {
	var got []domain.Message
	h := NewHandler(chatFunc(func(_ context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
		got = messages
		return domain.NewChatResponse("Where to?", nil), nil
	}), nil)

	rec := doJSON(t, h.Chat, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.Message{{Role: domain.RoleUser, Content: "hi"}}, got)

	var resp domain.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Message)
	assert.Equal(t, "Where to?", *resp.Message)
	assert.Nil(t, resp.Itinerary)
}

func TestChatErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing key", service.ErrMissingAPIKey, http.StatusInternalServerError},
		{"policy", &service.PolicyError{Reasons: []string{"the last message must come from the user"}}, http.StatusBadRequest},
		{"llm", &service.LLMError{Err: errors.New("LLM API error [503]: overloaded")}, http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(chatFunc(func(context.Context, []domain.Message) (*domain.ChatResponse, error) {
				return nil, tt.err
			}), nil)

			rec := doJSON(t, h.Chat, "/api/chat", `{"messages":[]}`)
			assert.Equal(t, tt.status, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestChatMissingKeyMessage(t *testing.T) {
	h := NewHandler(chatFunc(func(context.Context, []domain.Message) (*domain.ChatResponse, error) {
		return nil, service.ErrMissingAPIKey
	}), nil)

	rec := doJSON(t, h.Chat, "/api/chat", `{"messages":[]}`)
	assert.JSONEq(t, `{"error":"GROQ_API_KEY environment variable is not set"}`, rec.Body.String())
}

func TestChatInvalidBody(t *testing.T) {
	h := NewHandler(chatFunc(func(context.Context, []domain.Message) (*domain.ChatResponse, error) {
		t.Fatal("backend must not be called")
		return nil, nil
	}), nil)

	rec := doJSON(t, h.Chat, "/api/chat", `{"messages":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewItinerary(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := doJSON(t, h.ViewItinerary, "/api/itinerary/view", osakaJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<h2>Osaka Japan</h2>")
	assert.Contains(t, body, `id="day-2-tab"`)
	assert.Contains(t, body, "Dotonbori &lt;street food&gt;")
	assert.NotContains(t, body, "<street food>")
}

func TestViewItineraryInvalid(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := doJSON(t, h.ViewItinerary, "/api/itinerary/view", `{"destination":"","duration":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "destination is required")

	rec = doJSON(t, h.ViewItinerary, "/api/itinerary/view", `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
}

func TestPrintItinerary(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := doJSON(t, h.PrintItinerary, "/api/itinerary/print", osakaJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "window.print()")
	assert.Contains(t, body, "Osaka Japan")
}

func TestDownloadItinerary(t *testing.T) {
	h := NewHandler(nil, nil)

	rec := doJSON(t, h.DownloadItinerary, "/api/itinerary/download", osakaJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=Osaka_Japan_itinerary.txt", rec.Header().Get(echo.HeaderContentDisposition))

	want := "TRAVEL ITINERARY - OSAKA JAPAN\n\n" +
		"Duration: 2 days\n" +
		"Dates: 2025-04-01 to 2025-04-02\n" +
		"Budget: Moderate\n" +
		"Preferences: Food\n\n" +
		"DAY 1\n" +
		"Morning: Osaka Castle\n" +
		"Location: Chuo\n\n\n" +
		"DAY 2\n" +
		"Dotonbori <street food>\n\n\n"
	assert.Equal(t, want, rec.Body.String())
}

func TestHealth(t *testing.T) {
	e := echo.New()
	h := NewHandler(nil, fixedCounter(3))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","connections":3}`, rec.Body.String())
}

func TestServerRoutes(t *testing.T) {
	h := NewHandler(chatFunc(func(context.Context, []domain.Message) (*domain.ChatResponse, error) {
		return domain.NewChatResponse("ok", nil), nil
	}), nil)
	e := NewServer(h, ratelimit.NewRateLimiter(60, 1), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI Travel Planner")

	chat := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}
	assert.Equal(t, http.StatusOK, chat())
	assert.Equal(t, http.StatusTooManyRequests, chat())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
