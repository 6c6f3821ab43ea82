package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/state"
)

// Exports downloads server-rendered export files, falling back to a
// locally rendered workbook from current state when the backend cannot
// serve one.
type Exports struct {
	gateway   ports.ExportGateway
	downloads ports.DownloadStore
	renderer  ports.CrosswalkRenderer
	store     *state.Store
	metrics   Metrics
	logger    *slog.Logger
}

func NewExports(
	gateway ports.ExportGateway,
	downloads ports.DownloadStore,
	renderer ports.CrosswalkRenderer,
	store *state.Store,
	metrics Metrics,
	logger *slog.Logger,
) *Exports {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exports{gateway: gateway, downloads: downloads, renderer: renderer, store: store, metrics: metrics, logger: logger}
}

// ExportCrosswalks saves the crosswalk export for the RFP and returns the
// local file path.
func (s *Exports) ExportCrosswalks(ctx context.Context, rfpID, format string) (string, error) {
	if format == "" {
		format = "xlsx"
	}
	filename := fmt.Sprintf("crosswalk-%s.%s", rfpID, format)

	blob, err := s.gateway.Download(ctx, "crosswalk", rfpID, format)
	if err == nil {
		defer blob.Close()
		return s.downloads.Save(ctx, filename, blob)
	}

	if format != "xlsx" || s.renderer == nil {
		return "", err
	}

	s.logger.Warn("server_export_unavailable_rendering_locally", "rfp_id", rfpID, "error", err)
	countFallback(s.metrics, "export", domain.SourceFallback)

	mappings, _ := s.store.Crosswalks()
	rfp := s.findRFP(rfpID)

	var buf bytes.Buffer
	if err := s.renderer.RenderCrosswalks(&buf, rfp, mappings); err != nil {
		return "", err
	}
	return s.downloads.Save(ctx, filename, &buf)
}

func (s *Exports) findRFP(id string) domain.RFP {
	rfps, _ := s.store.RFPs()
	for _, rfp := range rfps {
		if rfp.ID == id {
			return rfp
		}
	}
	return domain.RFP{ID: id}
}
