package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
)

func TestCenter_NewestFirst(t *testing.T) {
	c := NewCenter(10, zap.NewNop())

	c.Notify(context.Background(), "New Application Received", "first", domain.SeverityInfo)
	c.Notify(context.Background(), "CIBIL Score Calculated", "second", domain.SeveritySuccess)
	c.Notify(context.Background(), "Loan Approved", "third", domain.SeveritySuccess)

	feed := c.Recent(0)
	require.Len(t, feed, 3)
	assert.Equal(t, "Loan Approved", feed[0].Title)
	assert.Equal(t, "CIBIL Score Calculated", feed[1].Title)
	assert.Equal(t, "New Application Received", feed[2].Title)
}

func TestCenter_RecentLimitsCount(t *testing.T) {
	c := NewCenter(10, zap.NewNop())

	for i := 0; i < 5; i++ {
		c.Notify(context.Background(), fmt.Sprintf("title %d", i), "", domain.SeverityInfo)
	}

	recent := c.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "title 4", recent[0].Title)
	assert.Equal(t, "title 3", recent[1].Title)
}

func TestCenter_DropsOldestBeyondBound(t *testing.T) {
	c := NewCenter(3, zap.NewNop())

	for i := 0; i < 5; i++ {
		c.Notify(context.Background(), fmt.Sprintf("title %d", i), "", domain.SeverityInfo)
	}

	feed := c.Recent(0)
	require.Len(t, feed, 3)
	assert.Equal(t, "title 4", feed[0].Title)
	assert.Equal(t, "title 2", feed[2].Title)
}

func TestCenter_AssignsIDAndTimestamp(t *testing.T) {
	c := NewCenter(10, zap.NewNop())

	c.Notify(context.Background(), "Loan Rejected", "detail", domain.SeverityDestructive)

	feed := c.Recent(1)
	require.Len(t, feed, 1)
	assert.NotEmpty(t, feed[0].ID)
	assert.False(t, feed[0].CreatedAt.IsZero())
	assert.Equal(t, domain.SeverityDestructive, feed[0].Severity)
}
