package view

import (
	"testing"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/state"
)

func TestBuildWithNoSummaryStillRenders(t *testing.T) {
	store := state.New()
	model := Build(store)

	if model.ApprovedPercent != NoValue {
		t.Fatalf("ApprovedPercent = %q, zero-of-zero must render %q", model.ApprovedPercent, NoValue)
	}
	if len(model.Cards) != 0 || model.ShowingDemoData {
		t.Fatalf("empty store produced %+v", model)
	}
}

func TestBuildFormatsSummary(t *testing.T) {
	store := state.New()
	store.SelectRFP("rfp-1")
	store.CommitCrosswalks("rfp-1", []domain.CrosswalkMapping{
		{ID: "cw-1", AlignmentScore: 100, RiskLevel: domain.RiskGreen, Status: domain.CrosswalkApproved},
		{ID: "cw-2", AlignmentScore: 50, RiskLevel: domain.RiskYellow, Status: domain.CrosswalkPending},
		{ID: "cw-3", AlignmentScore: 0, RiskLevel: domain.RiskRed, Status: domain.CrosswalkPending},
	}, domain.SourceRemote)

	deadline := time.Date(2026, 9, 30, 23, 59, 0, 0, time.UTC)
	store.SetDashboard(&domain.DashboardSummary{
		TotalBoilerplateSections: 4,
		ActiveRFPs:               3,
		PendingCrosswalks:        2,
		PlansGenerated:           2,
		AverageAlignment:         50,
		OverallRisk:              domain.RiskRed,
		RiskDistribution: []domain.RiskBucket{
			{Label: "Green", Count: 1, Color: "#10B981"},
			{Label: "Yellow", Count: 1, Color: "#F59E0B"},
			{Label: "Red", Count: 1, Color: "#EF4444"},
		},
		Funding:           domain.FundingTotals{Awarded: 850000, Pending: 1250000, Pipeline: 2100000},
		UpcomingDeadlines: []domain.DeadlineAlert{{RFPTitle: "Alpha", Deadline: deadline, DaysRemaining: 34}},
		GeneratedAt:       time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
	})

	model := Build(store)

	if len(model.Cards) != 6 {
		t.Fatalf("got %d cards", len(model.Cards))
	}
	if model.Cards[4].Value != "50%" || model.Cards[4].Hint != "red" {
		t.Fatalf("alignment card = %+v", model.Cards[4])
	}
	if model.Cards[5].Value != "$2.1M" {
		t.Fatalf("funding card = %+v", model.Cards[5])
	}
	if model.ApprovedPercent != "33%" {
		t.Fatalf("ApprovedPercent = %q, want rounded 1/3", model.ApprovedPercent)
	}
	if len(model.RiskChart) != 3 || model.RiskChart[2].Color != "#EF4444" {
		t.Fatalf("risk chart = %+v", model.RiskChart)
	}
	if len(model.AlignmentChart) != 4 || model.AlignmentChart[0].Label != "strong" || model.AlignmentChart[0].Value != 1 {
		t.Fatalf("alignment chart = %+v", model.AlignmentChart)
	}
	if len(model.Deadlines) != 1 || model.Deadlines[0].Deadline != "Sep 30, 2026" {
		t.Fatalf("deadlines = %+v", model.Deadlines)
	}
}

func TestCrosswalkRows(t *testing.T) {
	store := state.New()
	store.SelectRFP("rfp-1")
	store.CommitCrosswalks("rfp-1", []domain.CrosswalkMapping{
		{ID: "cw-1", RequirementText: "Track record", MatchedSections: []string{"History", "Outcomes"}, RiskLevel: domain.RiskGreen, AlignmentScore: 100, Status: domain.CrosswalkApproved},
		{ID: "cw-2", RequirementText: "Staffing plan", RiskLevel: domain.RiskRed, AlignmentScore: 0, Status: domain.CrosswalkPending, Notes: "missing"},
	}, domain.SourceRemote)

	rows := CrosswalkRows(store)
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Matched != "History, Outcomes" || rows[0].Alignment != "100%" || rows[0].RiskColor != "#10B981" {
		t.Fatalf("row = %+v", rows[0])
	}
	if rows[1].Matched != NoValue {
		t.Fatalf("unmatched requirement must render %q, got %q", NoValue, rows[1].Matched)
	}
}

func TestBuildFlagsDemoData(t *testing.T) {
	store := state.New()
	store.SetRFPs([]domain.RFP{{ID: "demo-rfp-1"}}, domain.SourceFallback)
	store.SetDashboard(&domain.DashboardSummary{})

	model := Build(store)
	if !model.ShowingDemoData {
		t.Fatalf("fallback-sourced view must carry the demo-data flag")
	}
}

func TestBuildRedirectAfterSessionTeardown(t *testing.T) {
	store := state.New()
	store.ClearSession()

	if model := Build(store); !model.RedirectToLogin {
		t.Fatalf("cleared session must redirect to login")
	}
}
