// Package stats computes the derived figures the dashboard renders:
// risk-bucket counts, alignment means, percentage shares, and monetary
// roll-ups. Percentage rounding is half away from zero, matching the
// Math.round semantics the views were built against.
package stats

import (
	"math"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
)

// Chart colors for the three risk buckets, in display order.
var riskColors = map[domain.RiskLevel]string{
	domain.RiskGreen:  "#10B981",
	domain.RiskYellow: "#F59E0B",
	domain.RiskRed:    "#EF4444",
}

// RiskColor returns the chart color for a risk level, empty for unknown
// levels.
func RiskColor(level domain.RiskLevel) string {
	return riskColors[level]
}

// RiskCounts buckets mappings by risk level. Unknown levels count as
// yellow so no item is dropped from the distribution.
func RiskCounts(mappings []domain.CrosswalkMapping) (green, yellow, red int) {
	for _, m := range mappings {
		switch m.RiskLevel {
		case domain.RiskGreen:
			green++
		case domain.RiskRed:
			red++
		default:
			yellow++
		}
	}
	return green, yellow, red
}

// RiskDistribution returns the three buckets in fixed chart order.
func RiskDistribution(mappings []domain.CrosswalkMapping) []domain.RiskBucket {
	green, yellow, red := RiskCounts(mappings)
	return []domain.RiskBucket{
		{Label: "Green", Count: green, Color: riskColors[domain.RiskGreen]},
		{Label: "Yellow", Count: yellow, Color: riskColors[domain.RiskYellow]},
		{Label: "Red", Count: red, Color: riskColors[domain.RiskRed]},
	}
}

// OverallRisk escalates: any red mapping makes the whole view red, else
// any yellow makes it yellow.
func OverallRisk(mappings []domain.CrosswalkMapping) domain.RiskLevel {
	_, yellow, red := RiskCounts(mappings)
	switch {
	case red > 0:
		return domain.RiskRed
	case yellow > 0:
		return domain.RiskYellow
	default:
		return domain.RiskGreen
	}
}

// MeanAlignment is the rounded mean of alignment scores, 0 for an empty
// list. Never divides by zero.
func MeanAlignment(mappings []domain.CrosswalkMapping) int {
	if len(mappings) == 0 {
		return 0
	}
	sum := 0
	for _, m := range mappings {
		sum += m.AlignmentScore
	}
	return int(math.Round(float64(sum) / float64(len(mappings))))
}

// Percent returns the rounded share of part against total. ok is false
// when the total is zero; callers must render no numeric percentage then.
func Percent(part, total int) (int, bool) {
	if total == 0 {
		return 0, false
	}
	return int(math.Round(float64(part) / float64(total) * 100)), true
}

// LabelForScore maps a 0-100 alignment score back onto the qualitative
// labels used by the alignment breakdown chart.
func LabelForScore(score int) domain.AlignmentLabel {
	switch {
	case score >= 75:
		return domain.AlignmentStrong
	case score >= 40:
		return domain.AlignmentPartial
	case score >= 1:
		return domain.AlignmentWeak
	default:
		return domain.AlignmentNone
	}
}

// AlignmentBreakdown counts mappings per qualitative label.
func AlignmentBreakdown(mappings []domain.CrosswalkMapping) map[domain.AlignmentLabel]int {
	breakdown := map[domain.AlignmentLabel]int{
		domain.AlignmentStrong:  0,
		domain.AlignmentPartial: 0,
		domain.AlignmentWeak:    0,
		domain.AlignmentNone:    0,
	}
	for _, m := range mappings {
		breakdown[LabelForScore(m.AlignmentScore)]++
	}
	return breakdown
}

// PendingCount counts crosswalk mappings still awaiting review.
func PendingCount(mappings []domain.CrosswalkMapping) int {
	pending := 0
	for _, m := range mappings {
		if m.Status == domain.CrosswalkPending {
			pending++
		}
	}
	return pending
}

// FunderTotals rolls up awarded, pending, and denied amounts across
// funder records.
func FunderTotals(funders []domain.FunderRecord) domain.FundingTotals {
	var totals domain.FundingTotals
	for _, f := range funders {
		totals.Awarded += f.Awarded
		totals.Pending += f.Pending
		totals.Denied += f.Denied
	}
	totals.Pipeline = totals.Awarded + totals.Pending + totals.Denied
	return totals
}

// ActiveRFPs counts every RFP that is not archived.
func ActiveRFPs(rfps []domain.RFP) int {
	active := 0
	for _, r := range rfps {
		if r.Status != domain.RFPStatusArchived {
			active++
		}
	}
	return active
}

// UpcomingDeadlines lists RFPs whose deadline falls within the window,
// soonest first.
func UpcomingDeadlines(rfps []domain.RFP, now time.Time, window time.Duration) []domain.DeadlineAlert {
	var alerts []domain.DeadlineAlert
	for _, r := range rfps {
		if r.Deadline == nil || !r.Deadline.After(now) || r.Deadline.Sub(now) > window {
			continue
		}
		alerts = append(alerts, domain.DeadlineAlert{
			RFPTitle:      r.Title,
			Deadline:      *r.Deadline,
			DaysRemaining: int(r.Deadline.Sub(now).Hours() / 24),
		})
	}
	for i := 1; i < len(alerts); i++ {
		for j := i; j > 0 && alerts[j].Deadline.Before(alerts[j-1].Deadline); j-- {
			alerts[j], alerts[j-1] = alerts[j-1], alerts[j]
		}
	}
	return alerts
}
