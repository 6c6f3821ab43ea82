package usecase

import (
	"context"
	"log/slog"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/state"
)

// Crosswalks handles RFP selection and the dependent crosswalk fetch.
// Selection follows last-write-wins: a response that arrives after the
// user has moved to a different RFP is discarded, never stored.
type Crosswalks struct {
	gateway ports.CrosswalkGateway
	store   *state.Store
	demo    ports.DemoData
	metrics Metrics
	logger  *slog.Logger
}

func NewCrosswalks(
	gateway ports.CrosswalkGateway,
	store *state.Store,
	demo ports.DemoData,
	metrics Metrics,
	logger *slog.Logger,
) *Crosswalks {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crosswalks{gateway: gateway, store: store, demo: demo, metrics: metrics, logger: logger}
}

// SelectRFP records the selection and fetches its crosswalks. The
// returned slice is whatever was committed; a stale result returns nil.
func (s *Crosswalks) SelectRFP(ctx context.Context, rfpID string) ([]domain.CrosswalkMapping, domain.DataSource) {
	s.store.SelectRFP(rfpID)

	raw, err := s.gateway.ListCrosswalks(ctx, rfpID)
	return s.commit(rfpID, raw, err)
}

// Generate asks the backend to rebuild the crosswalk matrix for the
// given RFP and commits the result under the same staleness rules.
func (s *Crosswalks) Generate(ctx context.Context, rfpID string) ([]domain.CrosswalkMapping, domain.DataSource) {
	raw, err := s.gateway.GenerateCrosswalks(ctx, rfpID)
	return s.commit(rfpID, raw, err)
}

func (s *Crosswalks) commit(rfpID string, raw []byte, err error) ([]domain.CrosswalkMapping, domain.DataSource) {
	mappings, source := resolveList(raw, err, payload.CrosswalkFrom,
		func() []domain.CrosswalkMapping { return s.demo.CrosswalksFor(rfpID) }, "mappings")
	countFallback(s.metrics, "crosswalks", source)

	if !s.store.CommitCrosswalks(rfpID, mappings, source) {
		if s.metrics != nil {
			s.metrics.StaleResponseDiscarded("crosswalks")
		}
		s.logger.Debug("stale_crosswalk_response_discarded", "rfp_id", rfpID, "selected", s.store.SelectedRFP())
		return nil, ""
	}
	return mappings, source
}

// Update pushes an edited mapping to the server and mirrors the
// confirmed record locally on success.
func (s *Crosswalks) Update(ctx context.Context, mapping domain.CrosswalkMapping) error {
	record, err := s.gateway.UpdateCrosswalk(ctx, mapping)
	if err != nil {
		return err
	}

	confirmed := payload.CrosswalkFrom(record)
	if confirmed.ID == "" {
		confirmed = mapping
	}
	mappings, source := s.store.Crosswalks()
	for i := range mappings {
		if mappings[i].ID == mapping.ID {
			mappings[i] = confirmed
		}
	}
	s.store.CommitCrosswalks(s.store.SelectedRFP(), mappings, source)
	return nil
}

// Approve marks one mapping approved on the server and mirrors the new
// status locally on success.
func (s *Crosswalks) Approve(ctx context.Context, id string) error {
	if err := s.gateway.ApproveCrosswalk(ctx, id); err != nil {
		return err
	}

	mappings, source := s.store.Crosswalks()
	for i := range mappings {
		if mappings[i].ID == id {
			mappings[i].Status = domain.CrosswalkApproved
		}
	}
	s.store.CommitCrosswalks(s.store.SelectedRFP(), mappings, source)
	return nil
}
