package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finveda/loan-review-engine/internal/domain"
)

func newMandateRepo(t *testing.T) (MandateRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMandateRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func mandateColumns() []string {
	return []string{"id", "bank_id", "user_id", "loan_id", "amount", "freq_type", "debit_type", "status", "created_at", "updated_at"}
}

func TestMandateRepository_Create(t *testing.T) {
	repo, mock := newMandateRepo(t)

	id := uuid.New()
	now := time.Now()
	mandate := &domain.Mandate{
		ID:        id,
		BankID:    "BANK001",
		UserID:    "USER001",
		Amount:    decimal.NewFromInt(5000),
		FreqType:  "MNTH",
		DebitType: "FIXED",
		Status:    domain.MandateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO mandates").
		WithArgs(id, "BANK001", "USER001", nil, mandate.Amount, "MNTH", "FIXED", domain.MandateStatusPending, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), mandate)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMandateRepository_GetByID(t *testing.T) {
	repo, mock := newMandateRepo(t)

	id := uuid.New()
	loanID := "LOAN-MBTEST01"
	now := time.Now()

	rows := sqlmock.NewRows(mandateColumns()).
		AddRow(id, "BANK001", "USER001", loanID, "5000", "MNTH", "FIXED", domain.MandateStatusPending, now, now)

	mock.ExpectQuery("SELECT (.+) FROM mandates").
		WithArgs(id).
		WillReturnRows(rows)

	mandate, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, mandate.ID)
	assert.Equal(t, "BANK001", mandate.BankID)
	require.NotNil(t, mandate.LoanID)
	assert.Equal(t, loanID, *mandate.LoanID)
	assert.True(t, decimal.NewFromInt(5000).Equal(mandate.Amount))
	assert.Equal(t, domain.MandateStatusPending, mandate.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMandateRepository_GetByID_NoRows(t *testing.T) {
	repo, mock := newMandateRepo(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM mandates").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMandateRepository_ListByBank(t *testing.T) {
	repo, mock := newMandateRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(mandateColumns()).
		AddRow(uuid.New(), "BANK001", "USER002", nil, "12000", "QURT", "MAXIMUM", domain.MandateStatusActive, now, now).
		AddRow(uuid.New(), "BANK001", "USER001", nil, "5000", "MNTH", "FIXED", domain.MandateStatusPending, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM mandates").
		WithArgs("BANK001").
		WillReturnRows(rows)

	mandates, err := repo.ListByBank(context.Background(), "BANK001")

	require.NoError(t, err)
	require.Len(t, mandates, 2)
	assert.Equal(t, domain.MandateStatusActive, mandates[0].Status)
	assert.Nil(t, mandates[0].LoanID)
	assert.Equal(t, "USER001", mandates[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMandateRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMandateRepo(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE mandates").
		WithArgs(id, domain.MandateStatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.MandateStatusActive)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
