package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaot623/tripplanner/internal/adapter/llm"
	"github.com/xiaot623/tripplanner/internal/config"
	"github.com/xiaot623/tripplanner/internal/live"
	"github.com/xiaot623/tripplanner/internal/policy"
	"github.com/xiaot623/tripplanner/internal/ratelimit"
	"github.com/xiaot623/tripplanner/internal/service"
	handler "github.com/xiaot623/tripplanner/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting travel planner...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("LLM Provider: %s", cfg.LLMProvider)
	log.Printf("LLM URL: %s", cfg.LLMBaseURL)
	log.Printf("LLM Model: %s", cfg.LLMModel)
	if cfg.LLMAPIKey == "" {
		log.Printf("WARN: GROQ_API_KEY is not set; chat requests will fail unless mock mode is enabled")
	}

	// Initialize LLM client
	llmClient := llm.NewLLMClient(cfg)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy, cfg.MaxMessageLen)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(llmClient, policyEngine, cfg)

	// Shared by /api/chat and live session turns
	limiter := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	// Initialize live sessions
	connectionHub := live.NewHub()
	go connectionHub.Run()
	wsServer := live.NewServer(cfg, connectionHub, svc, limiter)

	// Create HTTP server
	h := handler.NewHandler(svc, connectionHub)
	server := handler.NewServer(h, limiter, wsServer.HandleWebSocket)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Travel planner started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down travel planner...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Travel planner stopped")
}
