package usecase

import (
	"context"
	"log/slog"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/state"
)

// Plans lists and generates grant plans.
type Plans struct {
	gateway ports.PlanGateway
	store   *state.Store
	demo    ports.DemoData
	metrics Metrics
	logger  *slog.Logger
}

func NewPlans(
	gateway ports.PlanGateway,
	store *state.Store,
	demo ports.DemoData,
	metrics Metrics,
	logger *slog.Logger,
) *Plans {
	if logger == nil {
		logger = slog.Default()
	}
	return &Plans{gateway: gateway, store: store, demo: demo, metrics: metrics, logger: logger}
}

func (s *Plans) List(ctx context.Context) ([]domain.Plan, domain.DataSource) {
	raw, err := s.gateway.ListPlans(ctx)
	plans, source := resolveList(raw, err, payload.PlanFrom, s.demo.Plans, "plans")
	countFallback(s.metrics, "plans", source)
	s.store.SetPlans(plans, source)
	return plans, source
}

// Update pushes plan edits and mirrors the confirmed record in place.
func (s *Plans) Update(ctx context.Context, plan domain.Plan) (domain.Plan, error) {
	record, err := s.gateway.UpdatePlan(ctx, plan)
	if err != nil {
		return domain.Plan{}, err
	}

	confirmed := payload.PlanFrom(record)
	if confirmed.ID == "" {
		confirmed = plan
	}
	plans, source := s.store.Plans()
	for i := range plans {
		if plans[i].ID == plan.ID {
			plans[i] = confirmed
		}
	}
	s.store.SetPlans(plans, source)
	return confirmed, nil
}

// Delete removes a plan remotely and locally. Like boilerplate, a 404
// still removes the local copy.
func (s *Plans) Delete(ctx context.Context, id string) error {
	err := s.gateway.DeletePlan(ctx, id)
	if err != nil && !domain.IsKind(err, domain.ErrNotFound) {
		return err
	}
	plans, source := s.store.Plans()
	for i := range plans {
		if plans[i].ID == id {
			plans = append(plans[:i], plans[i+1:]...)
			break
		}
	}
	s.store.SetPlans(plans, source)
	return nil
}

// Generate requests a new plan for the RFP. Generation has no local
// fallback: a plan the server never produced does not exist.
func (s *Plans) Generate(ctx context.Context, rfpID string) (domain.Plan, error) {
	record, err := s.gateway.GeneratePlan(ctx, rfpID)
	if err != nil {
		return domain.Plan{}, err
	}

	plan := payload.PlanFrom(record)
	plans, source := s.store.Plans()
	s.store.SetPlans(append(plans, plan), source)
	return plan, nil
}
