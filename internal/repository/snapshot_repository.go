package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/finveda/loan-review-engine/internal/domain"
)

type snapshotRepository struct {
	client *redis.Client
	key    string
}

// NewSnapshotRepository stores the application collection as a JSON blob
// under a single fixed key, mirroring the dashboard's original
// local-storage layout.
func NewSnapshotRepository(client *redis.Client, key string) SnapshotRepository {
	return &snapshotRepository{client: client, key: key}
}

func (r *snapshotRepository) Save(ctx context.Context, applications []*domain.LoanApplication) error {
	payload, err := json.Marshal(applications)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	// No TTL: the snapshot is the system of record for applications.
	return r.client.Set(ctx, r.key, payload, 0).Err()
}

func (r *snapshotRepository) Load(ctx context.Context) ([]*domain.LoanApplication, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var applications []*domain.LoanApplication
	if err := json.Unmarshal(payload, &applications); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	// Older snapshots predate the isRead field; json leaves it false,
	// which is exactly the required default.
	return applications, nil
}
