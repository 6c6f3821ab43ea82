package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/core/stats"
	"github.com/grantops/grantdesk/internal/state"
)

// DeadlineWindow is how far ahead the summary looks for upcoming RFP
// deadlines.
const DeadlineWindow = 30 * 24 * time.Hour

// Dashboard runs the fetch-and-aggregate refresh cycle. Every cycle
// replaces the stored summary wholesale; partial failures degrade the
// affected collection to demo data and the cycle still completes.
type Dashboard struct {
	rfps        ports.RFPGateway
	boilerplate ports.BoilerplateGateway
	plans       ports.PlanGateway
	remote      ports.DashboardGateway
	store       *state.Store
	demo        ports.DemoData
	metrics     Metrics
	logger      *slog.Logger
	now         func() time.Time
}

func NewDashboard(
	rfps ports.RFPGateway,
	boilerplate ports.BoilerplateGateway,
	plans ports.PlanGateway,
	remote ports.DashboardGateway,
	store *state.Store,
	demo ports.DemoData,
	metrics Metrics,
	logger *slog.Logger,
) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		rfps:        rfps,
		boilerplate: boilerplate,
		plans:       plans,
		remote:      remote,
		store:       store,
		demo:        demo,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Refresh fetches every collection, resolves each against the demo
// fallback, recomputes the aggregates, and installs the new summary.
func (s *Dashboard) Refresh(ctx context.Context) *domain.DashboardSummary {
	start := s.now()
	s.store.SetLoading("dashboard", true)
	defer s.store.SetLoading("dashboard", false)

	sectionsRaw, sectionsErr := s.boilerplate.ListSections(ctx)
	sections, sectionSource := resolveList(sectionsRaw, sectionsErr, payload.BoilerplateFrom, s.demo.Boilerplate, "sections")
	countFallback(s.metrics, "boilerplate", sectionSource)
	s.store.SetBoilerplate(sections, sectionSource)

	rfpsRaw, rfpsErr := s.rfps.ListRFPs(ctx)
	rfps, rfpSource := resolveList(rfpsRaw, rfpsErr, payload.RFPFrom, s.demo.RFPs, "rfps")
	countFallback(s.metrics, "rfps", rfpSource)
	s.store.SetRFPs(rfps, rfpSource)

	plansRaw, plansErr := s.plans.ListPlans(ctx)
	plans, planSource := resolveList(plansRaw, plansErr, payload.PlanFrom, s.demo.Plans, "plans")
	countFallback(s.metrics, "plans", planSource)
	s.store.SetPlans(plans, planSource)

	fundersRaw, fundersErr := s.remote.FunderBreakdown(ctx)
	funders, funderSource := resolveList(fundersRaw, fundersErr, payload.FunderFrom, s.demo.Funders, "funders")
	countFallback(s.metrics, "funders", funderSource)

	activityRaw, activityErr := s.remote.ActivityFeed(ctx)
	activity, activitySource := resolveList(activityRaw, activityErr, payload.ActivityFrom, s.demo.Activity, "activities")
	countFallback(s.metrics, "activity", activitySource)

	crosswalks, _ := s.store.Crosswalks()
	if len(crosswalks) == 0 {
		// No RFP selected yet; risk and alignment figures come from the
		// demo mappings of the first demo RFP so the charts never render
		// empty.
		for _, rfp := range s.demo.RFPs() {
			if demo := s.demo.CrosswalksFor(rfp.ID); len(demo) > 0 {
				crosswalks = demo
				break
			}
		}
	}

	summary := &domain.DashboardSummary{
		TotalBoilerplateSections: len(sections),
		ActiveRFPs:               stats.ActiveRFPs(rfps),
		PendingCrosswalks:        stats.PendingCount(crosswalks),
		PlansGenerated:           len(plans),
		AverageAlignment:         stats.MeanAlignment(crosswalks),
		OverallRisk:              stats.OverallRisk(crosswalks),
		RiskDistribution:         stats.RiskDistribution(crosswalks),
		Funding:                  s.fundingTotals(ctx, funders),
		RecentRFPs:               recentRFPs(rfps, 5),
		UpcomingDeadlines:        stats.UpcomingDeadlines(rfps, s.now(), DeadlineWindow),
		ActivityFeed:             activity,
		GeneratedAt:              s.now(),
	}
	s.store.SetDashboard(summary)

	s.logger.Info("dashboard_refreshed",
		"duration", s.now().Sub(start),
		"rfp_source", rfpSource,
		"boilerplate_source", sectionSource,
		"plan_source", planSource,
		"funder_source", funderSource,
		"activity_source", activitySource,
	)
	return summary
}

// fundingTotals prefers the server's authoritative roll-up and falls back
// to summing the funder breakdown client-side.
func (s *Dashboard) fundingTotals(ctx context.Context, funders []domain.FunderRecord) domain.FundingTotals {
	if record, err := s.remote.Summary(ctx); err == nil {
		if totals, ok := payload.FundingTotalsFrom(record); ok {
			return totals
		}
	}
	return stats.FunderTotals(funders)
}

// recentRFPs returns up to limit RFPs, newest upload first.
func recentRFPs(rfps []domain.RFP, limit int) []domain.RFP {
	sorted := append([]domain.RFP(nil), rfps...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].UploadDate.After(sorted[j-1].UploadDate); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
