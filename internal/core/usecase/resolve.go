// Package usecase implements the dashboard's application services: the
// refresh cycle, RFP selection with its dependent crosswalk fetch,
// boilerplate CRUD with optimistic local state, plans, sessions, and
// exports. Every remote fetch runs through the fallback-merge resolver so
// a failed or empty backend response degrades to the embedded demo data
// instead of an empty view.
package usecase

import (
	"encoding/json"

	"github.com/grantops/grantdesk/internal/core/domain"
	"github.com/grantops/grantdesk/internal/core/payload"
)

// Metrics counts resolver and selection outcomes. A nil implementation
// disables counting.
type Metrics interface {
	FallbackActivated(view string)
	StaleResponseDiscarded(view string)
}

// resolveList applies the fallback-merge rules to one list fetch: a
// failed call, an unrecognizable body, or an empty collection all yield
// the demo dataset tagged SourceFallback; anything else is normalized
// record by record and tagged SourceRemote.
func resolveList[T any](
	raw json.RawMessage,
	err error,
	normalize func(payload.Record) T,
	demo func() []T,
	preferredKeys ...string,
) ([]T, domain.DataSource) {
	if err != nil {
		return demo(), domain.SourceFallback
	}
	records, ok := payload.Items(raw, preferredKeys...)
	if !ok || len(records) == 0 {
		return demo(), domain.SourceFallback
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, normalize(rec))
	}
	return out, domain.SourceRemote
}

func countFallback(metrics Metrics, view string, source domain.DataSource) {
	if metrics != nil && source == domain.SourceFallback {
		metrics.FallbackActivated(view)
	}
}
