// Package facade orchestrates the cached read paths for dashboards and
// alerts and the cache invalidation on the mutation path.
package facade

import (
	"context"
	"time"

	"github.com/finvue/backend/internal/cache"
	"github.com/finvue/backend/internal/config"
	"github.com/finvue/backend/internal/insight"
	"github.com/finvue/backend/internal/report"
	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Facade serves dashboard and alert reads through the cache and owns the
// invalidation that the transaction mutation path triggers.
type Facade struct {
	cache    *cache.Cache
	insights *insight.Client

	dashboardTTL time.Duration
	alertsTTL    time.Duration

	// now is replaced in tests to pin the reference month.
	now func() time.Time
}

// New builds a facade from its collaborators and the configured TTLs.
func New(c *cache.Cache, insights *insight.Client, cfg config.Config) *Facade {
	return &Facade{
		cache:        c,
		insights:     insights,
		dashboardTTL: cfg.DashboardTTL,
		alertsTTL:    cfg.AlertsTTL,
		now:          time.Now,
	}
}

// currentMonth is the reference month for all reads and invalidations.
func (f *Facade) currentMonth() types.Month {
	return types.MonthOf(f.now().In(time.UTC))
}

// Dashboard returns the dashboard summary of the user for the current
// month, cached for the configured TTL.
func (f *Facade) Dashboard(userID uuid.UUID) (report.DashboardSummary, error) {
	month := f.currentMonth()

	return cache.ReadThrough(f.cache, cache.DashboardKey(userID, month), f.dashboardTTL, func() (report.DashboardSummary, error) {
		return report.Summary(userID, month)
	})
}

// Alerts returns the alerts of the user, cached for the configured TTL:
// the rule based alerts first, then whatever the external insight source
// contributed. A failing insight source contributes nothing, its failure
// never surfaces.
func (f *Facade) Alerts(ctx context.Context, userID uuid.UUID) (report.AlertsResult, error) {
	return cache.ReadThrough(f.cache, cache.AlertsKey(userID), f.alertsTTL, func() (report.AlertsResult, error) {
		alerts, err := report.RuleBasedAlerts(userID, f.currentMonth())
		if err != nil {
			return report.AlertsResult{}, err
		}

		external := f.insights.Fetch(ctx, userID)
		if external.Err != nil {
			log.Debug().Str("user", userID.String()).Err(external.Err).Msg("insight source failed, continuing without it")
		}

		return report.AlertsResult{Alerts: append(alerts, external.Messages...)}, nil
	})
}

// InvalidateUser removes the cached dashboard of the current month and the
// cached alerts of the user. The transaction creation path calls this
// after its store write and before the response is returned, so a read
// that follows a write never sees a summary that predates the write.
func (f *Facade) InvalidateUser(userID uuid.UUID) {
	f.cache.Invalidate(
		cache.DashboardKey(userID, f.currentMonth()),
		cache.AlertsKey(userID),
	)
}
