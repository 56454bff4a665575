// Package config provides configuration for the travel planner.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the planner configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Chat client settings
	BackendURL  string
	ChatTimeout time.Duration

	// LLM settings
	LLMProvider    string
	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
	LLMTimeout     time.Duration
	LLMTemperature float64
	LLMMaxTokens   int

	// Admission policy
	MaxMessageLen int

	// Rate limiting for /api/chat
	RateLimitPerMinute int
	RateLimitBurst     int

	// WebSocket settings
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	ReadTimeout    time.Duration
	MaxMessageSize int64

	// Export settings for the terminal client
	OutputDir    string
	PrintCommand []string
}

// Load reads a .env file when present, then loads configuration from environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: failed to load .env: %v", err)
	}

	port := getEnvInt("HTTP_PORT", 8080)
	provider := getEnv("LLM_PROVIDER", ProviderHTTP)
	if os.Getenv(EnvPlannerMode) == ModeMock {
		provider = ProviderMock
	}
	return &Config{
		HTTPPort:           port,
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:"+strconv.Itoa(port)),
		ChatTimeout:        time.Duration(getEnvInt("CHAT_TIMEOUT_MS", 0)) * time.Millisecond,
		LLMProvider:        provider,
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:          getEnv("GROQ_API_KEY", os.Getenv("LLM_API_KEY")),
		LLMModel:           getEnv("LLM_MODEL", "llama3-70b-8192"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		LLMTemperature:     getEnvFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:       getEnvInt("LLM_MAX_TOKENS", 4000),
		MaxMessageLen:      getEnvInt("MAX_MESSAGE_LEN", 8000),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 5),
		PingInterval:       time.Duration(getEnvInt("WS_PING_INTERVAL_MS", 30000)) * time.Millisecond,
		WriteTimeout:       time.Duration(getEnvInt("WS_WRITE_TIMEOUT_MS", 10000)) * time.Millisecond,
		ReadTimeout:        time.Duration(getEnvInt("WS_READ_TIMEOUT_MS", 60000)) * time.Millisecond,
		MaxMessageSize:     int64(getEnvInt("WS_MAX_MESSAGE_SIZE", 65536)),
		OutputDir:          getEnv("OUTPUT_DIR", "."),
		PrintCommand:       strings.Fields(getEnv("PRINT_COMMAND", "")),
	}
}

// LLM providers.
const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

const (
	// EnvPlannerMode is the environment variable name for mode selection.
	EnvPlannerMode = "PLANNER_MODE"
	// ModeMock forces the mock provider regardless of LLM_PROVIDER.
	ModeMock = "MOCK"
)

// RequiresAPIKey reports whether the configured provider needs LLMAPIKey.
func (c *Config) RequiresAPIKey() bool {
	return c.LLMProvider != ProviderMock
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
