package ports

import (
	"context"

	"github.com/grantops/grantdesk/internal/core/domain"
)

// DashboardService is the inbound contract for the fetch-and-aggregate
// refresh cycle.
type DashboardService interface {
	Refresh(ctx context.Context) *domain.DashboardSummary
}

// CrosswalkService handles RFP selection and its dependent crosswalk
// fetch.
type CrosswalkService interface {
	SelectRFP(ctx context.Context, rfpID string) ([]domain.CrosswalkMapping, domain.DataSource)
	Generate(ctx context.Context, rfpID string) ([]domain.CrosswalkMapping, domain.DataSource)
	Update(ctx context.Context, mapping domain.CrosswalkMapping) error
	Approve(ctx context.Context, id string) error
}

// BoilerplateService is the inbound contract for boilerplate CRUD with
// optimistic local state.
type BoilerplateService interface {
	List(ctx context.Context) ([]domain.BoilerplateSection, domain.DataSource)
	Search(ctx context.Context, query string) ([]domain.BoilerplateSection, domain.DataSource)
	Create(ctx context.Context, draft domain.BoilerplateSection) (domain.BoilerplateSection, error)
	Update(ctx context.Context, section domain.BoilerplateSection) (domain.BoilerplateSection, error)
	Delete(ctx context.Context, id string) error
}

// PlanService is the inbound contract for grant plan operations.
type PlanService interface {
	List(ctx context.Context) ([]domain.Plan, domain.DataSource)
	Generate(ctx context.Context, rfpID string) (domain.Plan, error)
	Update(ctx context.Context, plan domain.Plan) (domain.Plan, error)
	Delete(ctx context.Context, id string) error
}

// SessionService drives login state. Restore revalidates a token carried
// over from a previous run.
type SessionService interface {
	Login(ctx context.Context, email, password string) error
	Restore(ctx context.Context) error
	Logout(ctx context.Context)
}

// ExportService renders or downloads exports of dashboard data.
type ExportService interface {
	ExportCrosswalks(ctx context.Context, rfpID, format string) (string, error)
}
