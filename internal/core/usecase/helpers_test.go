package usecase

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

// Hand-rolled gateway fakes. Each fake returns canned raw bodies or
// errors so resolver behavior can be driven precisely.

type fakeRFPGateway struct {
	listBody []byte
	listErr  error
}

func (f *fakeRFPGateway) ListRFPs(context.Context) (json.RawMessage, error) {
	return f.listBody, f.listErr
}
func (f *fakeRFPGateway) GetRFP(context.Context, string) (payload.Record, error) { return nil, nil }
func (f *fakeRFPGateway) UploadRFP(context.Context, string, io.Reader, domain.RFPUploadMeta) (payload.Record, error) {
	return nil, nil
}
func (f *fakeRFPGateway) UpdateRFP(context.Context, string, map[string]any) (payload.Record, error) {
	return nil, nil
}
func (f *fakeRFPGateway) DeleteRFP(context.Context, string) error { return nil }
func (f *fakeRFPGateway) ListRequirements(context.Context, string) (json.RawMessage, error) {
	return nil, nil
}

type fakeBoilerplateGateway struct {
	listBody   []byte
	listErr    error
	createResp payload.Record
	createErr  error
	updateResp payload.Record
	updateErr  error
	deleteErr  error
	updated    []domain.BoilerplateSection
}

func (f *fakeBoilerplateGateway) ListSections(context.Context) (json.RawMessage, error) {
	return f.listBody, f.listErr
}
func (f *fakeBoilerplateGateway) SearchSections(context.Context, string) (json.RawMessage, error) {
	return f.listBody, f.listErr
}
func (f *fakeBoilerplateGateway) CreateSection(_ context.Context, s domain.BoilerplateSection) (payload.Record, error) {
	return f.createResp, f.createErr
}
func (f *fakeBoilerplateGateway) UpdateSection(_ context.Context, s domain.BoilerplateSection) (payload.Record, error) {
	f.updated = append(f.updated, s)
	return f.updateResp, f.updateErr
}
func (f *fakeBoilerplateGateway) DeleteSection(context.Context, string) error { return f.deleteErr }

type fakeCrosswalkGateway struct {
	listBody    []byte
	listErr     error
	generated   []byte
	generateErr error
	updateResp  payload.Record
	updateErr   error
	approveErr  error
	approved    []string
}

func (f *fakeCrosswalkGateway) ListCrosswalks(context.Context, string) (json.RawMessage, error) {
	return f.listBody, f.listErr
}
func (f *fakeCrosswalkGateway) GenerateCrosswalks(context.Context, string) (json.RawMessage, error) {
	return f.generated, f.generateErr
}
func (f *fakeCrosswalkGateway) UpdateCrosswalk(context.Context, domain.CrosswalkMapping) (payload.Record, error) {
	return f.updateResp, f.updateErr
}
func (f *fakeCrosswalkGateway) ApproveCrosswalk(_ context.Context, id string) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	f.approved = append(f.approved, id)
	return nil
}

type fakePlanGateway struct {
	listBody     []byte
	listErr      error
	generateResp payload.Record
	generateErr  error
}

func (f *fakePlanGateway) ListPlans(context.Context) (json.RawMessage, error) {
	return f.listBody, f.listErr
}
func (f *fakePlanGateway) GeneratePlan(context.Context, string) (payload.Record, error) {
	return f.generateResp, f.generateErr
}
func (f *fakePlanGateway) UpdatePlan(context.Context, domain.Plan) (payload.Record, error) {
	return nil, nil
}
func (f *fakePlanGateway) DeletePlan(context.Context, string) error { return nil }

type fakeDashboardGateway struct {
	summary     payload.Record
	summaryErr  error
	funders     []byte
	fundersErr  error
	activity    []byte
	activityErr error
}

func (f *fakeDashboardGateway) Summary(context.Context) (payload.Record, error) {
	return f.summary, f.summaryErr
}
func (f *fakeDashboardGateway) FunderBreakdown(context.Context) (json.RawMessage, error) {
	return f.funders, f.fundersErr
}
func (f *fakeDashboardGateway) ActivityFeed(context.Context) (json.RawMessage, error) {
	return f.activity, f.activityErr
}

type fakeAuthGateway struct {
	session  domain.Session
	loginErr error
	logouts  int
}

func (f *fakeAuthGateway) Login(context.Context, string, string) (domain.Session, error) {
	return f.session, f.loginErr
}
func (f *fakeAuthGateway) Me(context.Context) (domain.Session, error) {
	return f.session, f.loginErr
}
func (f *fakeAuthGateway) Logout(context.Context) error {
	f.logouts++
	return nil
}

// fakeDemo is a small in-memory demo dataset.
type fakeDemo struct {
	rfps        []domain.RFP
	boilerplate []domain.BoilerplateSection
	crosswalks  map[string][]domain.CrosswalkMapping
	plans       []domain.Plan
	funders     []domain.FunderRecord
	activity    []domain.ActivityEntry
}

func (f *fakeDemo) RFPs() []domain.RFP                         { return f.rfps }
func (f *fakeDemo) Boilerplate() []domain.BoilerplateSection   { return f.boilerplate }
func (f *fakeDemo) CrosswalksFor(id string) []domain.CrosswalkMapping {
	return f.crosswalks[id]
}
func (f *fakeDemo) Plans() []domain.Plan             { return f.plans }
func (f *fakeDemo) Funders() []domain.FunderRecord   { return f.funders }
func (f *fakeDemo) Activity() []domain.ActivityEntry { return f.activity }

type fakeMetrics struct {
	fallbacks map[string]int
	stale     map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{fallbacks: make(map[string]int), stale: make(map[string]int)}
}

func (f *fakeMetrics) FallbackActivated(view string)      { f.fallbacks[view]++ }
func (f *fakeMetrics) StaleResponseDiscarded(view string) { f.stale[view]++ }

func demoDataset() *fakeDemo {
	deadline := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	return &fakeDemo{
		rfps: []domain.RFP{
			{ID: "demo-rfp-1", Title: "Demo RFP", Status: domain.RFPStatusAnalyzed, Deadline: &deadline},
		},
		boilerplate: []domain.BoilerplateSection{
			{ID: "demo-bp-1", Title: "Demo Section", Version: 1},
		},
		crosswalks: map[string][]domain.CrosswalkMapping{
			"demo-rfp-1": {
				{ID: "demo-cw-1", RiskLevel: domain.RiskYellow, AlignmentScore: 50, Status: domain.CrosswalkPending},
			},
			"rfp-a": {
				{ID: "demo-cw-a", RiskLevel: domain.RiskGreen, AlignmentScore: 100, Status: domain.CrosswalkApproved},
			},
		},
		plans: []domain.Plan{
			{ID: "demo-plan-1", Title: "Demo Plan", Status: domain.PlanDraft},
		},
		funders: []domain.FunderRecord{
			{Name: "Demo Fund", Awarded: 100000, Pending: 50000},
		},
		activity: []domain.ActivityEntry{
			{ID: "demo-act-1", Kind: "rfp_uploaded", Message: "Demo activity"},
		},
	}
}
