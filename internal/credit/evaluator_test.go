package credit

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/notify"
	"github.com/finveda/loan-review-engine/internal/store"
	customError "github.com/finveda/loan-review-engine/pkg/errors"
	"github.com/finveda/loan-review-engine/tests/mocks"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		eligible bool
		risk     string
	}{
		{300, false, domain.RiskHigh},
		{649, false, domain.RiskHigh},
		{650, true, domain.RiskMedium},
		{700, true, domain.RiskMedium},
		{749, true, domain.RiskMedium},
		{750, true, domain.RiskLow},
		{900, true, domain.RiskLow},
	}

	for _, tt := range tests {
		eligible, risk := Classify(tt.score)
		assert.Equal(t, tt.eligible, eligible, "score %d eligibility", tt.score)
		assert.Equal(t, tt.risk, risk, "score %d risk", tt.score)
	}
}

func TestRandomSource_Range(t *testing.T) {
	source := NewRandomSource(42)

	for i := 0; i < 10000; i++ {
		score := source.Draw()
		require.GreaterOrEqual(t, score, ScoreMin)
		require.LessOrEqual(t, score, ScoreMax)
	}
}

func TestRandomSource_Deterministic(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Draw(), b.Draw())
	}
}

func newEvaluatorStore(t *testing.T) *store.Store {
	t.Helper()

	snapshots := &mocks.MockSnapshotRepository{}
	snapshots.On("Save", mock.Anything, mock.Anything).Return(nil)

	return store.New(snapshots, notify.NopNotifier{}, zap.NewNop())
}

func TestEvaluate_WritesScoreThroughStore(t *testing.T) {
	s := newEvaluatorStore(t)
	evaluator := NewEvaluator(FixedSource(720), s, zap.NewNop())

	app, err := s.Create(context.Background(),
		domain.BankDetails{BankName: "HDFC Bank", AccountNumber: "12345678901", IFSCCode: "HDFC0001234"},
		domain.UserDetails{FullName: "John Doe", PANCardNumber: "ABCDE1234F", Email: "john@example.com", Phone: "9876543210"},
		decimal.NewFromInt(500000),
	)
	require.NoError(t, err)

	result, err := evaluator.Evaluate(context.Background(), app.ID)

	require.NoError(t, err)
	assert.Equal(t, 720, result.CibilScore)
	assert.True(t, result.Eligible)
	assert.Equal(t, domain.RiskMedium, result.RiskAssessment)

	got, err := s.Get(app.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CibilScore)
	assert.Equal(t, 720, *got.CibilScore)
	assert.Equal(t, domain.RiskMedium, got.RiskAssessment)
}

func TestEvaluate_NotFound(t *testing.T) {
	s := newEvaluatorStore(t)
	evaluator := NewEvaluator(FixedSource(720), s, zap.NewNop())

	_, err := evaluator.Evaluate(context.Background(), "LOAN-MISSING")

	assert.ErrorIs(t, err, customError.ErrApplicationNotFound)
}

func TestEvaluate_RedrawOverwrites(t *testing.T) {
	s := newEvaluatorStore(t)

	app, err := s.Create(context.Background(),
		domain.BankDetails{BankName: "HDFC Bank", AccountNumber: "12345678901", IFSCCode: "HDFC0001234"},
		domain.UserDetails{FullName: "John Doe", PANCardNumber: "ABCDE1234F", Email: "john@example.com", Phone: "9876543210"},
		decimal.NewFromInt(500000),
	)
	require.NoError(t, err)

	_, err = NewEvaluator(FixedSource(620), s, zap.NewNop()).Evaluate(context.Background(), app.ID)
	require.NoError(t, err)

	result, err := NewEvaluator(FixedSource(780), s, zap.NewNop()).Evaluate(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, 780, result.CibilScore)

	got, err := s.Get(app.ID)
	require.NoError(t, err)
	assert.Equal(t, 780, *got.CibilScore)
	assert.Equal(t, domain.RiskLow, got.RiskAssessment)
}
