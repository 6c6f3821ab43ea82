package usecase

import (
	"context"
	"testing"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
	"github.com/grantops/grantdesk/internal/state"
)

func TestSelectRFPCommitsResolvedMappings(t *testing.T) {
	gw := &fakeCrosswalkGateway{listBody: []byte(`{"mappings": [
		{"id": "cw-1", "requirement_text": "Track record", "risk_level": "GREEN", "alignment_score": "strong"},
		{"id": "cw-2", "requirement_text": "Staffing", "risk_level": "red", "alignment_score": 0, "status": "pending"}
	]}`)}
	store := state.New()
	svc := NewCrosswalks(gw, store, demoDataset(), nil, nil)

	mappings, source := svc.SelectRFP(context.Background(), "rfp-1")
	if source != domain.SourceRemote || len(mappings) != 2 {
		t.Fatalf("got %d mappings from %s", len(mappings), source)
	}
	if mappings[0].RiskLevel != domain.RiskGreen || mappings[0].AlignmentScore != 100 {
		t.Fatalf("normalization failed: %+v", mappings[0])
	}
	if mappings[0].Status != domain.CrosswalkPending {
		t.Fatalf("missing status must default to pending, got %s", mappings[0].Status)
	}

	stored, _ := store.Crosswalks()
	if len(stored) != 2 {
		t.Fatalf("store holds %d mappings", len(stored))
	}
}

func TestStaleCrosswalkResponseIsDiscarded(t *testing.T) {
	store := state.New()
	metrics := newFakeMetrics()
	demo := demoDataset()

	gwA := &fakeCrosswalkGateway{listBody: []byte(`[{"id": "cw-a", "risk_level": "green", "alignment_score": 100}]`)}
	gwB := &fakeCrosswalkGateway{listBody: []byte(`[{"id": "cw-b", "risk_level": "red", "alignment_score": 0}]`)}

	svcA := NewCrosswalks(gwA, store, demo, metrics, nil)
	svcB := NewCrosswalks(gwB, store, demo, metrics, nil)

	// The user selects A, then B before A's fetch lands. B's result
	// commits first; A's late commit must be discarded.
	store.SelectRFP("rfp-a")
	store.SelectRFP("rfp-b")

	committed, _ := svcB.commit("rfp-b", gwB.listBody, nil)
	if len(committed) != 1 || committed[0].ID != "cw-b" {
		t.Fatalf("B's commit = %+v", committed)
	}

	late, lateSource := svcA.commit("rfp-a", gwA.listBody, nil)
	if late != nil || lateSource != "" {
		t.Fatalf("stale commit returned %+v from %q, want discard", late, lateSource)
	}

	stored, _ := store.Crosswalks()
	if len(stored) != 1 || stored[0].ID != "cw-b" {
		t.Fatalf("store = %+v, stale response overwrote newer selection", stored)
	}
	if metrics.stale["crosswalks"] != 1 {
		t.Fatalf("stale discards = %d", metrics.stale["crosswalks"])
	}
}

func TestSelectRFPFallsBackToDemoMappings(t *testing.T) {
	gw := &fakeCrosswalkGateway{listErr: domain.WrapError(domain.ErrNetwork, "crosswalk.list", context.DeadlineExceeded)}
	store := state.New()
	metrics := newFakeMetrics()
	svc := NewCrosswalks(gw, store, demoDataset(), metrics, nil)

	mappings, source := svc.SelectRFP(context.Background(), "rfp-a")
	if source != domain.SourceFallback || len(mappings) != 1 || mappings[0].ID != "demo-cw-a" {
		t.Fatalf("got %+v from %s, want per-RFP demo mappings", mappings, source)
	}
	if metrics.fallbacks["crosswalks"] != 1 {
		t.Fatalf("fallback count = %d", metrics.fallbacks["crosswalks"])
	}
}

func TestApproveMirrorsStatusLocally(t *testing.T) {
	gw := &fakeCrosswalkGateway{}
	store := state.New()
	store.SelectRFP("rfp-1")
	store.CommitCrosswalks("rfp-1", []domain.CrosswalkMapping{
		{ID: "cw-1", Status: domain.CrosswalkPending},
		{ID: "cw-2", Status: domain.CrosswalkPending},
	}, domain.SourceRemote)

	svc := NewCrosswalks(gw, store, demoDataset(), nil, nil)
	if err := svc.Approve(context.Background(), "cw-2"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	stored, _ := store.Crosswalks()
	if stored[0].Status != domain.CrosswalkPending || stored[1].Status != domain.CrosswalkApproved {
		t.Fatalf("statuses = %s/%s", stored[0].Status, stored[1].Status)
	}
	if len(gw.approved) != 1 || gw.approved[0] != "cw-2" {
		t.Fatalf("approved = %v", gw.approved)
	}
}

func TestUpdateMirrorsConfirmedMapping(t *testing.T) {
	gw := &fakeCrosswalkGateway{updateResp: payload.Record{
		"id": "cw-1", "risk_level": "yellow", "alignment_score": float64(60), "notes": "needs sources",
	}}
	store := state.New()
	store.SelectRFP("rfp-1")
	store.CommitCrosswalks("rfp-1", []domain.CrosswalkMapping{
		{ID: "cw-1", RiskLevel: domain.RiskRed, AlignmentScore: 0},
	}, domain.SourceRemote)

	svc := NewCrosswalks(gw, store, demoDataset(), nil, nil)
	err := svc.Update(context.Background(), domain.CrosswalkMapping{ID: "cw-1", RiskLevel: domain.RiskYellow, AlignmentScore: 60})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, _ := store.Crosswalks()
	if stored[0].RiskLevel != domain.RiskYellow || stored[0].AlignmentScore != 60 || stored[0].Notes != "needs sources" {
		t.Fatalf("stored = %+v, want server-confirmed record", stored[0])
	}
}

func TestApproveFailureLeavesStateUntouched(t *testing.T) {
	gw := &fakeCrosswalkGateway{approveErr: domain.WrapError(domain.ErrServer, "crosswalk.approve", context.DeadlineExceeded)}
	store := state.New()
	store.SelectRFP("rfp-1")
	store.CommitCrosswalks("rfp-1", []domain.CrosswalkMapping{{ID: "cw-1", Status: domain.CrosswalkPending}}, domain.SourceRemote)

	svc := NewCrosswalks(gw, store, demoDataset(), nil, nil)
	if err := svc.Approve(context.Background(), "cw-1"); err == nil {
		t.Fatalf("Approve must surface the gateway error")
	}

	stored, _ := store.Crosswalks()
	if stored[0].Status != domain.CrosswalkPending {
		t.Fatalf("status changed despite server failure")
	}
}
