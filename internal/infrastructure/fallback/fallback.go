// Package fallback ships the demo datasets shown when the backend is
// unreachable or returns an empty collection. The data is embedded so the
// dashboard never renders a blank screen in offline demos.
package fallback

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/grantops/grantdesk/internal/core/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Dataset holds one immutable copy of every demo collection. Accessors
// return fresh slices so callers can mutate store state freely.
type Dataset struct {
	rfps        []domain.RFP
	boilerplate []domain.BoilerplateSection
	crosswalks  map[string][]domain.CrosswalkMapping
	plans       []domain.Plan
	funders     []domain.FunderRecord
	activity    []domain.ActivityEntry
}

func Load() (*Dataset, error) {
	ds := &Dataset{}

	if err := decode("data/rfps.yaml", &ds.rfps); err != nil {
		return nil, err
	}
	if err := decode("data/boilerplate.yaml", &ds.boilerplate); err != nil {
		return nil, err
	}
	if err := decode("data/crosswalks.yaml", &ds.crosswalks); err != nil {
		return nil, err
	}
	if err := decode("data/plans.yaml", &ds.plans); err != nil {
		return nil, err
	}
	if err := decode("data/funders.yaml", &ds.funders); err != nil {
		return nil, err
	}
	if err := decode("data/activity.yaml", &ds.activity); err != nil {
		return nil, err
	}
	return ds, nil
}

func decode(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read demo dataset %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode demo dataset %s: %w", name, err)
	}
	return nil
}

func (d *Dataset) RFPs() []domain.RFP {
	return append([]domain.RFP(nil), d.rfps...)
}

func (d *Dataset) Boilerplate() []domain.BoilerplateSection {
	return append([]domain.BoilerplateSection(nil), d.boilerplate...)
}

// CrosswalksFor returns the demo mappings for the given RFP, or an empty
// slice when the demo data has none. Demo crosswalks are keyed per RFP so
// selecting a different RFP offline still shows coherent mappings.
func (d *Dataset) CrosswalksFor(rfpID string) []domain.CrosswalkMapping {
	return append([]domain.CrosswalkMapping(nil), d.crosswalks[rfpID]...)
}

func (d *Dataset) Plans() []domain.Plan {
	return append([]domain.Plan(nil), d.plans...)
}

func (d *Dataset) Funders() []domain.FunderRecord {
	return append([]domain.FunderRecord(nil), d.funders...)
}

func (d *Dataset) Activity() []domain.ActivityEntry {
	return append([]domain.ActivityEntry(nil), d.activity...)
}
