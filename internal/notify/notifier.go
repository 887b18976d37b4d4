package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
)

// Notifier receives the human-readable record of every mutation. Delivery is
// fire-and-forget; callers never observe a failure.
type Notifier interface {
	Notify(ctx context.Context, title, description, severity string)
}

// Center keeps a bounded, newest-first feed of notifications for the
// dashboard bell. It is the in-process replacement for the toast layer.
type Center struct {
	mu    sync.Mutex
	feed  []domain.Notification
	limit int
	log   *zap.Logger
}

func NewCenter(limit int, log *zap.Logger) *Center {
	if limit <= 0 {
		limit = 100
	}
	return &Center{
		limit: limit,
		log:   log,
	}
}

func (c *Center) Notify(ctx context.Context, title, description, severity string) {
	n := domain.Notification{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   time.Now(),
	}

	c.mu.Lock()
	c.feed = append([]domain.Notification{n}, c.feed...)
	if len(c.feed) > c.limit {
		c.feed = c.feed[:c.limit]
	}
	c.mu.Unlock()

	c.log.Info("notification",
		zap.String("title", title),
		zap.String("description", description),
		zap.String("severity", severity),
	)
}

// Recent returns up to n notifications, newest first.
func (c *Center) Recent(n int) []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 || n > len(c.feed) {
		n = len(c.feed)
	}
	out := make([]domain.Notification, n)
	copy(out, c.feed[:n])
	return out
}

// NopNotifier discards notifications; used by the scheduler and in tests.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string, string) {}
