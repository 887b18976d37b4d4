package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/credit"
	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/report"
	"github.com/finveda/loan-review-engine/internal/store"
	customError "github.com/finveda/loan-review-engine/pkg/errors"
	"github.com/finveda/loan-review-engine/pkg/utils"
)

// LoanService orchestrates the review flow: submission validation, the
// store, the credit evaluator and the derived views.
type LoanService struct {
	store     *store.Store
	evaluator *credit.Evaluator
	unread    *store.UnreadTracker
	reporter  *report.Reporter
	validate  *validator.Validate
	log       *zap.Logger
}

func NewLoanService(
	st *store.Store,
	evaluator *credit.Evaluator,
	log *zap.Logger,
) *LoanService {
	return &LoanService{
		store:     st,
		evaluator: evaluator,
		unread:    store.NewUnreadTracker(st),
		reporter:  report.NewReporter(st),
		validate:  NewValidator(),
		log:       log,
	}
}

// NewValidator builds the request validator with the dashboard's custom
// format tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return utils.IsValidPAN(fl.Field().String())
	})
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return utils.IsValidPhone(fl.Field().String())
	})
	return v
}

// Submit validates the raw form input and creates the application. A blocked
// submission creates no record at all.
func (s *LoanService) Submit(ctx context.Context, req *domain.SubmitApplicationRequest) (*domain.LoanApplication, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, customError.WrapInvalidApplication(err.Error())
	}

	if !req.LoanAmount.IsPositive() {
		return nil, customError.WrapInvalidLoanAmount(req.LoanAmount.String())
	}

	return s.store.Create(ctx, req.BankDetails, req.UserDetails, req.LoanAmount)
}

// List returns all applications, newest first.
func (s *LoanService) List(ctx context.Context) []*domain.LoanApplication {
	return s.store.All()
}

// View marks the application read and makes it the currently-open one.
func (s *LoanService) View(ctx context.Context, id string) (*domain.LoanApplication, error) {
	return s.store.View(ctx, id)
}

// Current returns the currently-open application.
func (s *LoanService) Current(ctx context.Context) (*domain.LoanApplication, error) {
	app := s.store.Current()
	if app == nil {
		return nil, customError.NewBusinessError(
			customError.ErrCodeNoCurrentApplication,
			"No application is currently open",
			customError.ErrNoCurrentApplication,
		)
	}
	return app, nil
}

// ResetCurrent clears the currently-open application.
func (s *LoanService) ResetCurrent(ctx context.Context) {
	s.store.Reset()
}

// Evaluate runs the credit pipeline for the application.
func (s *LoanService) Evaluate(ctx context.Context, id string) (*domain.EvaluationResponse, error) {
	return s.evaluator.Evaluate(ctx, id)
}

// Approve records a positive decision. The application must have been
// evaluated first; the dashboard only disables the button, the service
// enforces it.
func (s *LoanService) Approve(ctx context.Context, id string) error {
	return s.decide(ctx, id, true)
}

// Reject records a negative decision. Like Approve, it requires a score.
func (s *LoanService) Reject(ctx context.Context, id string) error {
	return s.decide(ctx, id, false)
}

func (s *LoanService) decide(ctx context.Context, id string, approved bool) error {
	app, err := s.store.Get(id)
	if err != nil {
		return err
	}

	if app.CibilScore == nil {
		return customError.WrapApplicationNotEvaluated(id)
	}

	return s.store.SetDecision(ctx, id, approved)
}

// Unread returns the applications not yet viewed.
func (s *LoanService) Unread(ctx context.Context) []*domain.LoanApplication {
	return s.unread.Unread()
}

// Stats returns the dashboard aggregate block for the current moment.
func (s *LoanService) Stats(ctx context.Context) domain.DashboardStats {
	return s.reporter.Stats(time.Now())
}
