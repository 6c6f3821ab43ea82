package ports

import (
	"context"
	"encoding/json"
	"io"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

// List-shaped gateway operations return the raw body: the backend wraps
// collections inconsistently and the fallback-merge resolver owns envelope
// probing and normalization.

// AuthGateway drives the login session against the backend.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Me(ctx context.Context) (domain.Session, error)
	Logout(ctx context.Context) error
}

// RFPGateway covers the RFP entity family, including multipart upload.
type RFPGateway interface {
	ListRFPs(ctx context.Context) (json.RawMessage, error)
	GetRFP(ctx context.Context, id string) (payload.Record, error)
	UploadRFP(ctx context.Context, filename string, file io.Reader, meta domain.RFPUploadMeta) (payload.Record, error)
	UpdateRFP(ctx context.Context, id string, fields map[string]any) (payload.Record, error)
	DeleteRFP(ctx context.Context, id string) error
	ListRequirements(ctx context.Context, rfpID string) (json.RawMessage, error)
}

// BoilerplateGateway covers reusable content sections.
type BoilerplateGateway interface {
	ListSections(ctx context.Context) (json.RawMessage, error)
	SearchSections(ctx context.Context, query string) (json.RawMessage, error)
	CreateSection(ctx context.Context, section domain.BoilerplateSection) (payload.Record, error)
	UpdateSection(ctx context.Context, section domain.BoilerplateSection) (payload.Record, error)
	DeleteSection(ctx context.Context, id string) error
}

// CrosswalkGateway covers requirement-to-boilerplate mappings.
type CrosswalkGateway interface {
	ListCrosswalks(ctx context.Context, rfpID string) (json.RawMessage, error)
	GenerateCrosswalks(ctx context.Context, rfpID string) (json.RawMessage, error)
	UpdateCrosswalk(ctx context.Context, mapping domain.CrosswalkMapping) (payload.Record, error)
	ApproveCrosswalk(ctx context.Context, id string) error
}

// PlanGateway covers grant plans.
type PlanGateway interface {
	ListPlans(ctx context.Context) (json.RawMessage, error)
	GeneratePlan(ctx context.Context, rfpID string) (payload.Record, error)
	UpdatePlan(ctx context.Context, plan domain.Plan) (payload.Record, error)
	DeletePlan(ctx context.Context, id string) error
}

// DashboardGateway covers server-side aggregates the client blends with
// its own.
type DashboardGateway interface {
	Summary(ctx context.Context) (payload.Record, error)
	FunderBreakdown(ctx context.Context) (json.RawMessage, error)
	ActivityFeed(ctx context.Context) (json.RawMessage, error)
}

// ExportGateway downloads a server-rendered export blob.
type ExportGateway interface {
	Download(ctx context.Context, resource, id, format string) (io.ReadCloser, error)
}

// DownloadStore lands export blobs on local disk.
type DownloadStore interface {
	Save(ctx context.Context, key string, data io.Reader) (string, error)
}

// DemoData supplies the embedded datasets used when a remote collection
// is unavailable or empty.
type DemoData interface {
	RFPs() []domain.RFP
	Boilerplate() []domain.BoilerplateSection
	CrosswalksFor(rfpID string) []domain.CrosswalkMapping
	Plans() []domain.Plan
	Funders() []domain.FunderRecord
	Activity() []domain.ActivityEntry
}

// CrosswalkRenderer renders a crosswalk workbook locally when the
// server-side export is unavailable.
type CrosswalkRenderer interface {
	RenderCrosswalks(w io.Writer, rfp domain.RFP, mappings []domain.CrosswalkMapping) error
}

// Notifier raises non-blocking user-visible notifications. The gateway is
// the only layer that classifies failures into these.
type Notifier interface {
	Notify(level domain.NotificationLevel, message string)
}

// SessionController is invoked on authentication-class failures to tear
// down local session state.
type SessionController interface {
	ClearSession()
}
