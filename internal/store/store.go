package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/internal/repository"
	customError "github.com/finveda/loan-review-engine/pkg/errors"
	"github.com/finveda/loan-review-engine/pkg/utils"
)

// Store owns the ordered collection of loan applications (newest first) and
// the single currently-open application. Every mutation persists a full
// snapshot and emits a notification. The logical design has one writer, but
// the HTTP server is concurrent, so access is serialized with a mutex.
type Store struct {
	mu        sync.RWMutex
	apps      []*domain.LoanApplication
	current   *domain.LoanApplication
	snapshots repository.SnapshotRepository
	notifier  notify.Notifier
	log       *zap.Logger
	now       func() time.Time
}

func New(snapshots repository.SnapshotRepository, notifier notify.Notifier, log *zap.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Load hydrates the collection from the durable snapshot. Missing snapshots
// leave the collection empty; records without an isRead field come back
// unread.
func (s *Store) Load(ctx context.Context) error {
	apps, err := s.snapshots.Load(ctx)
	if err != nil {
		return customError.WrapSnapshotError(err)
	}

	s.mu.Lock()
	s.apps = apps
	s.current = nil
	s.mu.Unlock()

	s.log.Info("application collection loaded", zap.Int("count", len(apps)))
	return nil
}

// Create validates nothing itself; the caller has already run format checks.
// It assigns the id and timestamp, prepends the record and persists.
func (s *Store) Create(ctx context.Context, bank domain.BankDetails, user domain.UserDetails, amount decimal.Decimal) (*domain.LoanApplication, error) {
	now := s.now()
	app := &domain.LoanApplication{
		ID:          utils.GenerateApplicationID(now),
		BankDetails: bank,
		UserDetails: user,
		LoanAmount:  amount,
		CreatedAt:   now,
		IsRead:      false,
	}

	s.mu.Lock()
	s.apps = append([]*domain.LoanApplication{app}, s.apps...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, "New Application Received",
		"A new loan application has been received.", domain.SeverityInfo)

	return app.Clone(), nil
}

// View marks the application as read and sets it as the currently-open one.
// Marking read is idempotent; the snapshot is only rewritten on the first
// view.
func (s *Store) View(ctx context.Context, id string) (*domain.LoanApplication, error) {
	s.mu.Lock()
	app := s.findLocked(id)
	if app == nil {
		s.mu.Unlock()
		return nil, customError.WrapApplicationNotFound(id)
	}

	firstView := !app.IsRead
	app.IsRead = true
	s.current = app

	var err error
	if firstView {
		err = s.persistLocked(ctx)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return app.Clone(), nil
}

// SetScore overwrites the score, eligibility and risk bucket in one step so
// the risk-iff-score invariant cannot be broken. Re-evaluation overwrites a
// previous draw.
func (s *Store) SetScore(ctx context.Context, id string, score int, approved bool, risk string) error {
	s.mu.Lock()
	app := s.findLocked(id)
	if app == nil {
		s.mu.Unlock()
		return customError.WrapApplicationNotFound(id)
	}

	if app.CibilScore != nil {
		s.log.Info("overwriting existing credit score",
			zap.String("application_id", id),
			zap.Int("previous_score", *app.CibilScore),
			zap.Int("new_score", score),
		)
	}

	app.CibilScore = &score
	app.Approved = &approved
	app.RiskAssessment = risk

	err := s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notifier.Notify(ctx, "CIBIL Score Calculated",
		"CIBIL Score: "+strconv.Itoa(score), domain.SeveritySuccess)

	return nil
}

// SetDecision records the human approve/reject decision.
func (s *Store) SetDecision(ctx context.Context, id string, approved bool) error {
	s.mu.Lock()
	app := s.findLocked(id)
	if app == nil {
		s.mu.Unlock()
		return customError.WrapApplicationNotFound(id)
	}

	app.Approved = &approved
	decidedAt := s.now()
	app.DecidedAt = &decidedAt

	err := s.persistLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if approved {
		s.notifier.Notify(ctx, "Loan Approved",
			"The loan application has been approved.", domain.SeveritySuccess)
	} else {
		s.notifier.Notify(ctx, "Loan Rejected",
			"The loan application has been rejected.", domain.SeverityDestructive)
	}

	return nil
}

// Reset clears the currently-open application. The collection is untouched,
// so nothing is persisted.
func (s *Store) Reset() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the currently-open application, or nil.
func (s *Store) Current() *domain.LoanApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// Get returns the application with the given id without marking it read.
func (s *Store) Get(id string) (*domain.LoanApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app := s.findLocked(id)
	if app == nil {
		return nil, customError.WrapApplicationNotFound(id)
	}
	return app.Clone(), nil
}

// All returns the collection, newest first.
func (s *Store) All() []*domain.LoanApplication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.LoanApplication, len(s.apps))
	for i, app := range s.apps {
		out[i] = app.Clone()
	}
	return out
}

// Len returns the number of applications.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.apps)
}

func (s *Store) findLocked(id string) *domain.LoanApplication {
	for _, app := range s.apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	if err := s.snapshots.Save(ctx, s.apps); err != nil {
		s.log.Error("snapshot persist failed", zap.Error(err))
		return customError.WrapSnapshotError(err)
	}
	return nil
}
