package stats

import (
	"testing"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
)

func mappingsWithRisks(levels ...domain.RiskLevel) []domain.CrosswalkMapping {
	out := make([]domain.CrosswalkMapping, len(levels))
	for i, level := range levels {
		out[i] = domain.CrosswalkMapping{ID: "m", RiskLevel: level}
	}
	return out
}

func TestRiskCountsSumToInputLength(t *testing.T) {
	mappings := mappingsWithRisks(
		domain.RiskGreen, domain.RiskGreen, domain.RiskYellow,
		domain.RiskRed, domain.RiskLevel("unknown"),
	)
	green, yellow, red := RiskCounts(mappings)
	if green+yellow+red != len(mappings) {
		t.Fatalf("buckets must sum to input length: %d+%d+%d != %d", green, yellow, red, len(mappings))
	}
	if green != 2 || yellow != 2 || red != 1 {
		t.Fatalf("unexpected buckets: green=%d yellow=%d red=%d", green, yellow, red)
	}
}

func TestRiskDistributionOrderAndColors(t *testing.T) {
	buckets := RiskDistribution(mappingsWithRisks(domain.RiskRed))
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Green" || buckets[1].Label != "Yellow" || buckets[2].Label != "Red" {
		t.Fatalf("unexpected bucket order: %+v", buckets)
	}
	for _, b := range buckets {
		if b.Color == "" {
			t.Fatalf("bucket %s has no color", b.Label)
		}
	}
}

func TestOverallRiskEscalation(t *testing.T) {
	if got := OverallRisk(mappingsWithRisks(domain.RiskGreen, domain.RiskRed)); got != domain.RiskRed {
		t.Fatalf("any red must escalate to red, got %q", got)
	}
	if got := OverallRisk(mappingsWithRisks(domain.RiskGreen, domain.RiskYellow)); got != domain.RiskYellow {
		t.Fatalf("yellow without red must be yellow, got %q", got)
	}
	if got := OverallRisk(nil); got != domain.RiskGreen {
		t.Fatalf("empty input must be green, got %q", got)
	}
}

func TestMeanAlignmentEmptyIsZero(t *testing.T) {
	if got := MeanAlignment(nil); got != 0 {
		t.Fatalf("mean of empty list must be 0, got %d", got)
	}
}

func TestMeanAlignmentRoundsHalfAwayFromZero(t *testing.T) {
	mappings := []domain.CrosswalkMapping{
		{AlignmentScore: 50},
		{AlignmentScore: 51},
	}
	// 50.5 rounds up, not to even.
	if got := MeanAlignment(mappings); got != 51 {
		t.Fatalf("expected 51, got %d", got)
	}
}

func TestMeanAlignmentWithinHalfOfTrueMean(t *testing.T) {
	mappings := []domain.CrosswalkMapping{
		{AlignmentScore: 10}, {AlignmentScore: 33}, {AlignmentScore: 97},
	}
	exact := float64(10+33+97) / 3
	got := MeanAlignment(mappings)
	if diff := float64(got) - exact; diff > 0.5 || diff < -0.5 {
		t.Fatalf("mean %d deviates more than 0.5 from %f", got, exact)
	}
	if got < 0 || got > 100 {
		t.Fatalf("mean must stay in [0,100], got %d", got)
	}
}

func TestPercentZeroTotalHasNoValue(t *testing.T) {
	if _, ok := Percent(5, 0); ok {
		t.Fatalf("percent with zero total must report no value")
	}
	got, ok := Percent(1, 3)
	if !ok || got != 33 {
		t.Fatalf("expected 33%%, got %d (ok=%v)", got, ok)
	}
	got, ok = Percent(1, 2)
	if !ok || got != 50 {
		t.Fatalf("expected 50%%, got %d", got)
	}
}

func TestAlignmentBreakdownCoversAllMappings(t *testing.T) {
	mappings := []domain.CrosswalkMapping{
		{AlignmentScore: 100}, {AlignmentScore: 75}, {AlignmentScore: 50},
		{AlignmentScore: 25}, {AlignmentScore: 0},
	}
	breakdown := AlignmentBreakdown(mappings)
	total := 0
	for _, n := range breakdown {
		total += n
	}
	if total != len(mappings) {
		t.Fatalf("breakdown must cover all mappings: %d != %d", total, len(mappings))
	}
	if breakdown[domain.AlignmentStrong] != 2 || breakdown[domain.AlignmentNone] != 1 {
		t.Fatalf("unexpected breakdown: %+v", breakdown)
	}
}

func TestPendingCount(t *testing.T) {
	mappings := []domain.CrosswalkMapping{
		{Status: domain.CrosswalkPending},
		{Status: domain.CrosswalkApproved},
		{Status: domain.CrosswalkPending},
		{Status: domain.CrosswalkRejected},
	}
	if got := PendingCount(mappings); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestFunderTotals(t *testing.T) {
	totals := FunderTotals([]domain.FunderRecord{
		{Awarded: 100000, Pending: 50000},
		{Awarded: 25000, Denied: 10000},
	})
	if totals.Awarded != 125000 || totals.Pending != 50000 || totals.Denied != 10000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.Pipeline != 185000 {
		t.Fatalf("expected pipeline 185000, got %v", totals.Pipeline)
	}
}

func TestActiveRFPsExcludesArchived(t *testing.T) {
	rfps := []domain.RFP{
		{Status: domain.RFPStatusAnalyzed},
		{Status: domain.RFPStatusArchived},
		{Status: domain.RFPStatusUploaded},
	}
	if got := ActiveRFPs(rfps); got != 2 {
		t.Fatalf("expected 2 active RFPs, got %d", got)
	}
}

func TestUpcomingDeadlinesWindowAndOrder(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in10 := now.AddDate(0, 0, 10)
	in3 := now.AddDate(0, 0, 3)
	in45 := now.AddDate(0, 0, 45)
	past := now.AddDate(0, 0, -2)

	rfps := []domain.RFP{
		{Title: "Later", Deadline: &in10},
		{Title: "Soon", Deadline: &in3},
		{Title: "Too far", Deadline: &in45},
		{Title: "Past", Deadline: &past},
		{Title: "No deadline"},
	}
	alerts := UpcomingDeadlines(rfps, now, 30*24*time.Hour)
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}
	if alerts[0].RFPTitle != "Soon" || alerts[1].RFPTitle != "Later" {
		t.Fatalf("expected soonest first, got %+v", alerts)
	}
	if alerts[0].DaysRemaining != 3 {
		t.Fatalf("expected 3 days remaining, got %d", alerts[0].DaysRemaining)
	}
}
