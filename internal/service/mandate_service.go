package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/internal/repository"
	"github.com/finveda/loan-review-engine/internal/store"
	customError "github.com/finveda/loan-review-engine/pkg/errors"
)

// MandateService owns the recurring-debit mandate lifecycle:
// PENDING -> ACTIVE on approve, PENDING -> REVOKED on reject.
type MandateService struct {
	repo     repository.MandateRepository
	store    *store.Store
	notifier notify.Notifier
	validate *validator.Validate
	log      *zap.Logger
}

func NewMandateService(
	repo repository.MandateRepository,
	st *store.Store,
	notifier notify.Notifier,
	log *zap.Logger,
) *MandateService {
	return &MandateService{
		repo:     repo,
		store:    st,
		notifier: notifier,
		validate: NewValidator(),
		log:      log,
	}
}

// Create registers a new mandate in PENDING status.
func (s *MandateService) Create(ctx context.Context, req *domain.CreateMandateRequest) (*domain.Mandate, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, customError.WrapInvalidApplication(err.Error())
	}

	if !req.Amount.IsPositive() {
		return nil, customError.WrapInvalidLoanAmount(req.Amount.String())
	}

	now := time.Now()
	mandate := &domain.Mandate{
		ID:        uuid.New(),
		BankID:    req.BankID,
		UserID:    req.UserID,
		LoanID:    req.LoanID,
		Amount:    req.Amount,
		FreqType:  req.FreqType,
		DebitType: req.DebitType,
		Status:    domain.MandateStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, mandate); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	s.notifier.Notify(ctx, "New Mandate Registered",
		"A new recurring-debit mandate is awaiting review.", domain.SeverityInfo)

	return mandate, nil
}

// ListByBank returns the mandates registered against a bank, newest first.
func (s *MandateService) ListByBank(ctx context.Context, bankID string) ([]*domain.Mandate, error) {
	mandates, err := s.repo.ListByBank(ctx, bankID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return mandates, nil
}

// Get returns the mandate together with its linked loan application when
// that lookup succeeds. A broken or missing link degrades by omitting the
// loan section; the mandate itself always comes back.
func (s *MandateService) Get(ctx context.Context, id uuid.UUID) (*domain.MandateDetail, error) {
	mandate, err := s.getMandate(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.MandateDetail{Mandate: mandate}

	if mandate.LoanID != nil {
		loan, err := s.store.Get(*mandate.LoanID)
		if err != nil {
			s.log.Warn("linked loan lookup failed, omitting section",
				zap.String("mandate_id", id.String()),
				zap.String("loan_id", *mandate.LoanID),
				zap.Error(err),
			)
		} else {
			detail.Loan = loan
		}
	}

	return detail, nil
}

// Approve activates a pending mandate.
func (s *MandateService) Approve(ctx context.Context, id uuid.UUID) (*domain.Mandate, error) {
	return s.decide(ctx, id, domain.MandateStatusActive)
}

// Reject revokes a pending mandate.
func (s *MandateService) Reject(ctx context.Context, id uuid.UUID) (*domain.Mandate, error) {
	return s.decide(ctx, id, domain.MandateStatusRevoked)
}

func (s *MandateService) decide(ctx context.Context, id uuid.UUID, status string) (*domain.Mandate, error) {
	mandate, err := s.getMandate(ctx, id)
	if err != nil {
		return nil, err
	}

	if mandate.Status != domain.MandateStatusPending {
		return nil, customError.WrapMandateNotPending(id.String(), mandate.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	mandate.Status = status
	mandate.UpdatedAt = time.Now()

	if status == domain.MandateStatusActive {
		s.notifier.Notify(ctx, "Mandate Approved",
			"The mandate is now active.", domain.SeveritySuccess)
	} else {
		s.notifier.Notify(ctx, "Mandate Rejected",
			"The mandate has been revoked.", domain.SeverityDestructive)
	}

	return mandate, nil
}

func (s *MandateService) getMandate(ctx context.Context, id uuid.UUID) (*domain.Mandate, error) {
	mandate, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapMandateNotFound(id.String())
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	return mandate, nil
}
