package store

import "github.com/finveda/loan-review-engine/internal/domain"

// UnreadTracker exposes the unread subset of the collection. It has no
// mutation path of its own; marking read happens only through Store.View.
type UnreadTracker struct {
	store *Store
}

func NewUnreadTracker(store *Store) *UnreadTracker {
	return &UnreadTracker{store: store}
}

// Unread returns the applications not yet viewed, in collection order
// (newest first).
func (t *UnreadTracker) Unread() []*domain.LoanApplication {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	var out []*domain.LoanApplication
	for _, app := range t.store.apps {
		if !app.IsRead {
			out = append(out, app.Clone())
		}
	}
	return out
}

// Count returns the unread badge number for the dashboard bell.
func (t *UnreadTracker) Count() int {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	n := 0
	for _, app := range t.store.apps {
		if !app.IsRead {
			n++
		}
	}
	return n
}
