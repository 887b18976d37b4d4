package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finveda/loan-review-engine/internal/domain"
)

func newSnapshotRepo(t *testing.T) SnapshotRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSnapshotRepository(client, "bank-loan-applications")
}

func TestSnapshot_SaveLoadRoundTrip(t *testing.T) {
	repo := newSnapshotRepo(t)

	score := 720
	approved := true
	decidedAt := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

	apps := []*domain.LoanApplication{
		{
			ID: "LOAN-2",
			BankDetails: domain.BankDetails{
				BankName:      "ICICI Bank",
				AccountNumber: "98765432109",
				IFSCCode:      "ICIC0005678",
			},
			UserDetails: domain.UserDetails{
				FullName:      "Jane Smith",
				PANCardNumber: "FGHIJ5678K",
				Email:         "jane@example.com",
				Phone:         "9123456780",
			},
			LoanAmount:     decimal.NewFromInt(750000),
			CibilScore:     &score,
			Approved:       &approved,
			RiskAssessment: domain.RiskMedium,
			CreatedAt:      time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
			DecidedAt:      &decidedAt,
			IsRead:         true,
		},
		{
			ID: "LOAN-1",
			BankDetails: domain.BankDetails{
				BankName:      "HDFC Bank",
				AccountNumber: "12345678901",
				IFSCCode:      "HDFC0001234",
			},
			UserDetails: domain.UserDetails{
				FullName:      "John Doe",
				PANCardNumber: "ABCDE1234F",
				Phone:         "9876543210",
			},
			LoanAmount: decimal.NewFromInt(500000),
			CreatedAt:  time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.Save(context.Background(), apps))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "LOAN-2", loaded[0].ID)
	require.NotNil(t, loaded[0].CibilScore)
	assert.Equal(t, 720, *loaded[0].CibilScore)
	require.NotNil(t, loaded[0].Approved)
	assert.True(t, *loaded[0].Approved)
	assert.Equal(t, domain.RiskMedium, loaded[0].RiskAssessment)
	require.NotNil(t, loaded[0].DecidedAt)
	assert.True(t, decidedAt.Equal(*loaded[0].DecidedAt))
	assert.True(t, loaded[0].IsRead)
	assert.True(t, apps[0].LoanAmount.Equal(loaded[0].LoanAmount))

	assert.Equal(t, "LOAN-1", loaded[1].ID)
	assert.Nil(t, loaded[1].CibilScore)
	assert.Nil(t, loaded[1].Approved)
	assert.False(t, loaded[1].IsRead)
}

func TestSnapshot_MissingKey(t *testing.T) {
	repo := newSnapshotRepo(t)

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSnapshot_LegacyRecordsDefaultUnread(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// Snapshot written before the isRead field existed
	legacy := `[{
		"id": "LOAN-OLD",
		"bankDetails": {"bankName": "HDFC Bank", "accountNumber": "12345678901", "ifscCode": "HDFC0001234"},
		"userDetails": {"fullName": "John Doe", "panCardNumber": "ABCDE1234F", "phone": "9876543210"},
		"loanAmount": "500000",
		"createdAt": "2024-06-14T10:00:00Z"
	}]`
	require.NoError(t, mr.Set("bank-loan-applications", legacy))

	repo := NewSnapshotRepository(client, "bank-loan-applications")

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "LOAN-OLD", loaded[0].ID)
	assert.False(t, loaded[0].IsRead)
	assert.Nil(t, loaded[0].CibilScore)
}

func TestSnapshot_SaveOverwrites(t *testing.T) {
	repo := newSnapshotRepo(t)

	first := []*domain.LoanApplication{{ID: "LOAN-A", LoanAmount: decimal.NewFromInt(100)}}
	second := []*domain.LoanApplication{
		{ID: "LOAN-B", LoanAmount: decimal.NewFromInt(200)},
		{ID: "LOAN-A", LoanAmount: decimal.NewFromInt(100)},
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "LOAN-B", loaded[0].ID)
}
