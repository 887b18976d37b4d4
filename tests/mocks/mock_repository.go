package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/finveda/loan-review-engine/internal/domain"
)

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, applications []*domain.LoanApplication) error {
	args := m.Called(ctx, applications)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Load(ctx context.Context) ([]*domain.LoanApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoanApplication), args.Error(1)
}

type MockMandateRepository struct {
	mock.Mock
}

func (m *MockMandateRepository) Create(ctx context.Context, mandate *domain.Mandate) error {
	args := m.Called(ctx, mandate)
	return args.Error(0)
}

func (m *MockMandateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mandate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mandate), args.Error(1)
}

func (m *MockMandateRepository) ListByBank(ctx context.Context, bankID string) ([]*domain.Mandate, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Mandate), args.Error(1)
}

func (m *MockMandateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, title, description, severity string) {
	m.Called(ctx, title, description, severity)
}
