package report

import (
	"time"

	"github.com/finveda/loan-review-engine/internal/domain"
	"github.com/finveda/loan-review-engine/internal/store"
	"github.com/finveda/loan-review-engine/pkg/utils"
)

// Reporter derives dashboard aggregates from the application collection.
// Everything is recomputed on each call; the collection is small and the
// counts must reflect the latest mutation.
type Reporter struct {
	store *store.Store
}

func NewReporter(store *store.Store) *Reporter {
	return &Reporter{store: store}
}

// CountOnDay counts applications created on the same local calendar day as
// ref.
func (r *Reporter) CountOnDay(ref time.Time) int {
	n := 0
	for _, app := range r.store.All() {
		if utils.SameDay(app.CreatedAt, ref) {
			n++
		}
	}
	return n
}

// CountInMonth counts applications created in the same local calendar month
// as ref.
func (r *Reporter) CountInMonth(ref time.Time) int {
	n := 0
	for _, app := range r.store.All() {
		if utils.SameMonth(app.CreatedAt, ref) {
			n++
		}
	}
	return n
}

// ApprovalRate returns the rounded percentage of approved applications,
// 0 for an empty collection.
func (r *Reporter) ApprovalRate() int {
	apps := r.store.All()

	approved := 0
	for _, app := range apps {
		if app.Approved != nil && *app.Approved {
			approved++
		}
	}
	return utils.RoundPercent(approved, len(apps))
}

// Stats assembles the dashboard block in one pass.
func (r *Reporter) Stats(ref time.Time) domain.DashboardStats {
	apps := r.store.All()

	stats := domain.DashboardStats{TotalApplications: len(apps)}
	for _, app := range apps {
		if app.Approved != nil && *app.Approved {
			stats.Approved++
		}
		if utils.SameDay(app.CreatedAt, ref) {
			stats.DailyMandates++
		}
		if utils.SameMonth(app.CreatedAt, ref) {
			stats.MonthlyMandates++
		}
	}
	stats.ApprovalRate = utils.RoundPercent(stats.Approved, stats.TotalApplications)
	return stats
}
