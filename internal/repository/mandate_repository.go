package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/finveda/loan-review-engine/internal/domain"
)

type mandateRepository struct {
	db *sqlx.DB
}

func NewMandateRepository(db *sqlx.DB) MandateRepository {
	return &mandateRepository{db: db}
}

func (r *mandateRepository) Create(ctx context.Context, mandate *domain.Mandate) error {
	query := `
		INSERT INTO mandates (id, bank_id, user_id, loan_id, amount, freq_type, debit_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		mandate.ID,
		mandate.BankID,
		mandate.UserID,
		mandate.LoanID,
		mandate.Amount,
		mandate.FreqType,
		mandate.DebitType,
		mandate.Status,
		mandate.CreatedAt,
		mandate.UpdatedAt,
	)

	return err
}

func (r *mandateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mandate, error) {
	query := `
		SELECT id, bank_id, user_id, loan_id, amount, freq_type, debit_type, status, created_at, updated_at
		FROM mandates
		WHERE id = $1
	`

	var mandate domain.Mandate
	err := r.db.GetContext(ctx, &mandate, query, id)
	if err != nil {
		return nil, err
	}

	return &mandate, nil
}

func (r *mandateRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.Mandate, error) {
	query := `
		SELECT id, bank_id, user_id, loan_id, amount, freq_type, debit_type, status, created_at, updated_at
		FROM mandates
		WHERE bank_id = $1
		ORDER BY created_at DESC
	`

	var mandates []*domain.Mandate
	err := r.db.SelectContext(ctx, &mandates, query, bankID)
	if err != nil {
		return nil, err
	}

	return mandates, nil
}

func (r *mandateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE mandates
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status, time.Now())
	return err
}
