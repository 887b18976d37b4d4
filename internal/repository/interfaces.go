package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/finveda/loan-review-engine/internal/domain"
)

// SnapshotRepository persists the full application collection as one
// durable snapshot. Writes are last-writer-wins; the store is the only
// writer by design.
type SnapshotRepository interface {
	// Save overwrites the snapshot with the given collection
	Save(ctx context.Context, applications []*domain.LoanApplication) error

	// Load reads the snapshot back; a missing snapshot yields an empty
	// collection, not an error
	Load(ctx context.Context) ([]*domain.LoanApplication, error)
}

// MandateRepository defines the interface for mandate data operations
type MandateRepository interface {
	// Create inserts a new mandate in PENDING status
	Create(ctx context.Context, mandate *domain.Mandate) error

	// GetByID retrieves a mandate by its id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mandate, error)

	// ListByBank retrieves all mandates registered against a bank
	ListByBank(ctx context.Context, bankID string) ([]*domain.Mandate, error)

	// UpdateStatus moves a mandate to a new lifecycle status
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
