package live

import (
	"context"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/orchestrator"
	"github.com/xiaot623/tripplanner/internal/ratelimit"
)

// limitedBackend charges each turn of a session to the client's IP budget.
type limitedBackend struct {
	next     orchestrator.Backend
	limiter  *ratelimit.RateLimiter
	clientIP string
}

func (b *limitedBackend) Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error) {
	if !b.limiter.Allow(b.clientIP) {
		return nil, ratelimit.ErrLimited
	}
	return b.next.Chat(ctx, messages)
}
