package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/state"
)

// Boilerplate implements section CRUD with optimistic local state: a
// write the server rejects or never receives is still applied locally and
// marked LocalOnly, so the user's edit is never silently lost.
type Boilerplate struct {
	gateway ports.BoilerplateGateway
	store   *state.Store
	demo    ports.DemoData
	metrics Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewBoilerplate(
	gateway ports.BoilerplateGateway,
	store *state.Store,
	demo ports.DemoData,
	metrics Metrics,
	logger *slog.Logger,
) *Boilerplate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Boilerplate{gateway: gateway, store: store, demo: demo, metrics: metrics, logger: logger, now: time.Now}
}

func (s *Boilerplate) List(ctx context.Context) ([]domain.BoilerplateSection, domain.DataSource) {
	raw, err := s.gateway.ListSections(ctx)
	sections, source := resolveList(raw, err, payload.BoilerplateFrom, s.demo.Boilerplate, "sections")
	countFallback(s.metrics, "boilerplate", source)
	s.store.SetBoilerplate(sections, source)
	return sections, source
}

// Search queries the server-side index. Search never overwrites the
// stored list; an unreachable backend filters the local snapshot instead.
func (s *Boilerplate) Search(ctx context.Context, query string) ([]domain.BoilerplateSection, domain.DataSource) {
	raw, err := s.gateway.SearchSections(ctx, query)
	return resolveList(raw, err, payload.BoilerplateFrom, func() []domain.BoilerplateSection {
		return filterSections(s.localSections(), query)
	}, "sections")
}

func (s *Boilerplate) localSections() []domain.BoilerplateSection {
	if sections, _ := s.store.Boilerplate(); len(sections) > 0 {
		return sections
	}
	return s.demo.Boilerplate()
}

func filterSections(sections []domain.BoilerplateSection, query string) []domain.BoilerplateSection {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return sections
	}
	var matched []domain.BoilerplateSection
	for _, section := range sections {
		haystack := strings.ToLower(section.Title + " " + section.Category + " " + section.Content + " " + strings.Join(section.Tags, " "))
		if strings.Contains(haystack, needle) {
			matched = append(matched, section)
		}
	}
	return matched
}

// Create sends the draft to the server; version starts at 1 regardless of
// outcome. A failed call produces a locally-identified section instead.
func (s *Boilerplate) Create(ctx context.Context, draft domain.BoilerplateSection) (domain.BoilerplateSection, error) {
	section := draft
	section.Version = 1
	section.LastUpdated = s.now()

	record, err := s.gateway.CreateSection(ctx, section)
	if err != nil {
		section.ID = uuid.NewString()
		section.LocalOnly = true
		s.logger.Warn("boilerplate_create_kept_local", "id", section.ID, "error", err)
	} else {
		confirmed := payload.BoilerplateFrom(record)
		if confirmed.ID == "" {
			confirmed = section
			confirmed.ID = uuid.NewString()
		}
		if confirmed.Version < 1 {
			confirmed.Version = 1
		}
		section = confirmed
	}

	s.store.PrependBoilerplate(section)
	return section, nil
}

// Update bumps the version by exactly 1 and refreshes LastUpdated. When
// the server confirms, its record wins; otherwise the bumped local copy is
// kept and flagged LocalOnly.
func (s *Boilerplate) Update(ctx context.Context, section domain.BoilerplateSection) (domain.BoilerplateSection, error) {
	current, ok := s.store.BoilerplateByID(section.ID)
	if !ok {
		current = section
	}

	next := section
	next.Version = current.Version + 1
	next.LastUpdated = s.now()

	record, err := s.gateway.UpdateSection(ctx, next)
	if err != nil {
		next.LocalOnly = true
		s.logger.Warn("boilerplate_update_kept_local", "id", next.ID, "version", next.Version, "error", err)
	} else {
		confirmed := payload.BoilerplateFrom(record)
		if confirmed.ID == "" {
			confirmed = next
		}
		// Version never decreases, even if the server echoes an older one.
		if confirmed.Version < next.Version {
			confirmed.Version = next.Version
		}
		next = confirmed
	}

	if !s.store.UpdateBoilerplate(next) {
		s.store.PrependBoilerplate(next)
	}
	return next, nil
}

// Delete removes the section remotely and locally. A 404 still removes
// the local copy; the record is already gone server-side.
func (s *Boilerplate) Delete(ctx context.Context, id string) error {
	err := s.gateway.DeleteSection(ctx, id)
	if err != nil && !domain.IsKind(err, domain.ErrNotFound) {
		return err
	}
	s.store.RemoveBoilerplate(id)
	return nil
}
