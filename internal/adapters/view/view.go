// Package view builds the render-ready models the dashboard UI consumes.
// Everything here is derived, never stored: each build reads the current
// store snapshot and formats it.
package view

import (
	"fmt"
	"strings"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/stats"
	"github.com/grantops/grantdesk/internal/state"
)

// NoValue is rendered wherever a percentage is undefined because its
// denominator is zero. Never "0%": zero-of-zero is not zero percent.
const NoValue = "—"

type MetricCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

type ChartSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color,omitempty"`
}

type DeadlineRow struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	DaysLeft int    `json:"days_left"`
}

// Model is one render-ready dashboard frame.
type Model struct {
	Cards              []MetricCard          `json:"cards"`
	RiskChart          []ChartSlice          `json:"risk_chart"`
	AlignmentChart     []ChartSlice          `json:"alignment_chart"`
	ApprovedPercent    string                `json:"approved_percent"`
	Deadlines          []DeadlineRow         `json:"deadlines"`
	RecentRFPs         []domain.RFP          `json:"recent_rfps"`
	Notifications      []domain.Notification `json:"notifications"`
	ShowingDemoData    bool                  `json:"showing_demo_data"`
	RedirectToLogin    bool                  `json:"redirect_to_login"`
	Loading            bool                  `json:"loading"`
	GeneratedAtDisplay string                `json:"generated_at"`
}

// CrosswalkRow is one line of the requirement-to-content table.
type CrosswalkRow struct {
	Requirement string `json:"requirement"`
	Matched     string `json:"matched"`
	Risk        string `json:"risk"`
	RiskColor   string `json:"risk_color,omitempty"`
	Alignment   string `json:"alignment"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// CrosswalkRows renders the currently selected RFP's mappings as table
// rows.
func CrosswalkRows(store *state.Store) []CrosswalkRow {
	mappings, _ := store.Crosswalks()
	rows := make([]CrosswalkRow, 0, len(mappings))
	for _, m := range mappings {
		matched := strings.Join(m.MatchedSections, ", ")
		if matched == "" {
			matched = NoValue
		}
		rows = append(rows, CrosswalkRow{
			Requirement: m.RequirementText,
			Matched:     matched,
			Risk:        string(m.RiskLevel),
			RiskColor:   stats.RiskColor(m.RiskLevel),
			Alignment:   fmt.Sprintf("%d%%", m.AlignmentScore),
			Status:      string(m.Status),
			Notes:       m.Notes,
		})
	}
	return rows
}

// Build assembles the dashboard frame from the current store snapshot.
// A nil summary yields an empty, still-renderable model.
func Build(store *state.Store) Model {
	model := Model{
		ApprovedPercent: NoValue,
		RedirectToLogin: store.Session().RedirectToLogin,
		Loading:         store.IsLoading("dashboard"),
		Notifications:   store.Notifications(),
	}

	_, rfpSource := store.RFPs()
	_, sectionSource := store.Boilerplate()
	crosswalks, crosswalkSource := store.Crosswalks()
	_, planSource := store.Plans()
	for _, source := range []domain.DataSource{rfpSource, sectionSource, crosswalkSource, planSource} {
		if source == domain.SourceFallback {
			model.ShowingDemoData = true
		}
	}

	summary := store.Dashboard()
	if summary == nil {
		return model
	}

	model.Cards = []MetricCard{
		{Label: "Boilerplate Sections", Value: fmt.Sprintf("%d", summary.TotalBoilerplateSections)},
		{Label: "Active RFPs", Value: fmt.Sprintf("%d", summary.ActiveRFPs)},
		{Label: "Pending Crosswalks", Value: fmt.Sprintf("%d", summary.PendingCrosswalks)},
		{Label: "Plans Generated", Value: fmt.Sprintf("%d", summary.PlansGenerated)},
		{Label: "Average Alignment", Value: fmt.Sprintf("%d%%", summary.AverageAlignment), Hint: string(summary.OverallRisk)},
		{Label: "Funding Pipeline", Value: stats.FormatMoney(summary.Funding.Pipeline), Hint: "awarded " + stats.FormatMoney(summary.Funding.Awarded)},
	}

	for _, bucket := range summary.RiskDistribution {
		model.RiskChart = append(model.RiskChart, ChartSlice{Label: bucket.Label, Value: bucket.Count, Color: bucket.Color})
	}

	breakdown := stats.AlignmentBreakdown(crosswalks)
	for _, label := range []domain.AlignmentLabel{domain.AlignmentStrong, domain.AlignmentPartial, domain.AlignmentWeak, domain.AlignmentNone} {
		model.AlignmentChart = append(model.AlignmentChart, ChartSlice{Label: string(label), Value: breakdown[label]})
	}

	approved := 0
	for _, m := range crosswalks {
		if m.Status == domain.CrosswalkApproved {
			approved++
		}
	}
	if percent, ok := stats.Percent(approved, len(crosswalks)); ok {
		model.ApprovedPercent = fmt.Sprintf("%d%%", percent)
	}

	for _, alert := range summary.UpcomingDeadlines {
		model.Deadlines = append(model.Deadlines, DeadlineRow{
			Title:    alert.RFPTitle,
			Deadline: alert.Deadline.Format("Jan 2, 2006"),
			DaysLeft: alert.DaysRemaining,
		})
	}

	model.RecentRFPs = summary.RecentRFPs
	model.GeneratedAtDisplay = summary.GeneratedAt.Format("Jan 2, 2006 15:04 MST")
	return model
}
