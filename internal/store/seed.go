package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/pkg/utils"
)

// SeedDemo fills an empty collection with two unread sample applications so
// a fresh development environment has something on the dashboard. No-op when
// the collection already has records.
func (s *Store) SeedDemo(ctx context.Context) error {
	s.mu.Lock()
	if len(s.apps) > 0 {
		s.mu.Unlock()
		return nil
	}

	now := s.now()
	s.apps = []*domain.LoanApplication{
		{
			ID: utils.GenerateApplicationID(now) + "-2",
			BankDetails: domain.BankDetails{
				BankName:      "ICICI Bank",
				AccountNumber: "98765432109",
				IFSCCode:      "ICIC0002345",
			},
			UserDetails: domain.UserDetails{
				FullName:      "Jane Smith",
				PANCardNumber: "DEFPS5678G",
				Email:         "jane@example.com",
				Phone:         "8765432109",
			},
			LoanAmount: decimal.NewFromInt(750000),
			CreatedAt:  now,
			IsRead:     false,
		},
		{
			ID: utils.GenerateApplicationID(now.AddDate(0, 0, -1)) + "-1",
			BankDetails: domain.BankDetails{
				BankName:      "HDFC Bank",
				AccountNumber: "12345678901",
				IFSCCode:      "HDFC0001234",
			},
			UserDetails: domain.UserDetails{
				FullName:      "John Doe",
				PANCardNumber: "ABCPD1234F",
				Email:         "john@example.com",
				Phone:         "9876543210",
			},
			LoanAmount: decimal.NewFromInt(500000),
			CreatedAt:  now.AddDate(0, 0, -1),
			IsRead:     false,
		},
	}

	err := s.persistLocked(ctx)
	s.mu.Unlock()
	return err
}
