package credit

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/store"
)

// Scoring constants. The thresholds are inclusive lower bounds: 650 is
// medium risk and eligible, 750 is low risk.
const (
	ScoreMin          = 300
	ScoreMax          = 900
	ApprovalThreshold = 650
	LowRiskThreshold  = 750
)

// ScoreSource produces CIBIL scores. The production source is a seeded
// uniform draw; tests inject fixed sources. This is a placeholder for a real
// bureau integration.
type ScoreSource interface {
	Draw() int
}

// RandomSource draws uniformly from [ScoreMin, ScoreMax].
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) Draw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ScoreMin + s.rng.Intn(ScoreMax-ScoreMin+1)
}

// FixedSource always returns the same score; test helper.
type FixedSource int

func (f FixedSource) Draw() int { return int(f) }

// Classify maps a score to eligibility and a risk bucket.
func Classify(score int) (eligible bool, risk string) {
	eligible = score >= ApprovalThreshold

	switch {
	case score >= LowRiskThreshold:
		risk = domain.RiskLow
	case score >= ApprovalThreshold:
		risk = domain.RiskMedium
	default:
		risk = domain.RiskHigh
	}
	return eligible, risk
}

// Evaluator runs the score-and-classify pipeline for one application and
// writes the result through the store. This is the only place randomness
// enters the system.
type Evaluator struct {
	source ScoreSource
	store  *store.Store
	log    *zap.Logger
}

func NewEvaluator(source ScoreSource, store *store.Store, log *zap.Logger) *Evaluator {
	return &Evaluator{
		source: source,
		store:  store,
		log:    log,
	}
}

// Evaluate draws a fresh score for the application. Calling it again on the
// same id draws again and overwrites.
func (e *Evaluator) Evaluate(ctx context.Context, applicationID string) (*domain.EvaluationResponse, error) {
	score := e.source.Draw()
	eligible, risk := Classify(score)

	if err := e.store.SetScore(ctx, applicationID, score, eligible, risk); err != nil {
		return nil, err
	}

	e.log.Info("application evaluated",
		zap.String("application_id", applicationID),
		zap.Int("cibil_score", score),
		zap.Bool("eligible", eligible),
		zap.String("risk", risk),
	)

	return &domain.EvaluationResponse{
		ApplicationID:  applicationID,
		CibilScore:     score,
		Eligible:       eligible,
		RiskAssessment: risk,
	}, nil
}
