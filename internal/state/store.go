// Package state holds every entity the client presents during one
// session. The store is the single shared mutable resource: it is created
// at startup, reset by ClearAll, and torn down with the process. The
// backend stays the system of record; nothing here persists.
package state

import (
	"sync"

	"github.com/grantops/grantdesk/internal/core/domain"
)

type Store struct {
	mu sync.Mutex

	session domain.Session

	rfps        []domain.RFP
	rfpSource   domain.DataSource
	selectedRFP string

	boilerplate       []domain.BoilerplateSection
	boilerplateSource domain.DataSource

	crosswalks      []domain.CrosswalkMapping
	crosswalkSource domain.DataSource

	plans      []domain.Plan
	planSource domain.DataSource

	dashboard *domain.DashboardSummary

	notifications []domain.Notification

	activeView string
	loading    map[string]bool
}

func New() *Store {
	return &Store{loading: make(map[string]bool)}
}

func (s *Store) SetSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// ClearSession tears down authentication state and flags the UI to
// navigate to the login view. Used on logout and on any 401 response.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{RedirectToLogin: true}
}

func (s *Store) SetRFPs(rfps []domain.RFP, source domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rfps = append([]domain.RFP(nil), rfps...)
	s.rfpSource = source
}

func (s *Store) RFPs() ([]domain.RFP, domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.RFP(nil), s.rfps...), s.rfpSource
}

// SelectRFP records the current selection. Any crosswalk fetch already in
// flight for a previous selection becomes stale and will be discarded by
// CommitCrosswalks.
func (s *Store) SelectRFP(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedRFP = id
	s.crosswalks = nil
	s.crosswalkSource = ""
}

func (s *Store) SelectedRFP() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedRFP
}

// CommitCrosswalks stores a resolved crosswalk result, unless the
// selection has moved on since the fetch was issued. Last selection wins;
// a stale response must never overwrite a newer selection's data.
func (s *Store) CommitCrosswalks(forRFP string, mappings []domain.CrosswalkMapping, source domain.DataSource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if forRFP != s.selectedRFP {
		return false
	}
	s.crosswalks = append([]domain.CrosswalkMapping(nil), mappings...)
	s.crosswalkSource = source
	return true
}

func (s *Store) Crosswalks() ([]domain.CrosswalkMapping, domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CrosswalkMapping(nil), s.crosswalks...), s.crosswalkSource
}

func (s *Store) SetBoilerplate(sections []domain.BoilerplateSection, source domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boilerplate = append([]domain.BoilerplateSection(nil), sections...)
	s.boilerplateSource = source
}

func (s *Store) Boilerplate() ([]domain.BoilerplateSection, domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.BoilerplateSection(nil), s.boilerplate...), s.boilerplateSource
}

func (s *Store) BoilerplateByID(id string) (domain.BoilerplateSection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, section := range s.boilerplate {
		if section.ID == id {
			return section, true
		}
	}
	return domain.BoilerplateSection{}, false
}

// PrependBoilerplate puts a freshly created section at the head of the
// list; everything else keeps insertion order.
func (s *Store) PrependBoilerplate(section domain.BoilerplateSection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boilerplate = append([]domain.BoilerplateSection{section}, s.boilerplate...)
}

// UpdateBoilerplate replaces the section with a matching ID in place,
// preserving its position.
func (s *Store) UpdateBoilerplate(section domain.BoilerplateSection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.boilerplate {
		if s.boilerplate[i].ID == section.ID {
			s.boilerplate[i] = section
			return true
		}
	}
	return false
}

func (s *Store) RemoveBoilerplate(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.boilerplate {
		if s.boilerplate[i].ID == id {
			s.boilerplate = append(s.boilerplate[:i], s.boilerplate[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) SetPlans(plans []domain.Plan, source domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans = append([]domain.Plan(nil), plans...)
	s.planSource = source
}

func (s *Store) Plans() ([]domain.Plan, domain.DataSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Plan(nil), s.plans...), s.planSource
}

// SetDashboard replaces the summary wholesale; it is never mutated in
// place.
func (s *Store) SetDashboard(summary *domain.DashboardSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard = summary
}

func (s *Store) Dashboard() *domain.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

func (s *Store) PushNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]domain.Notification{n}, s.notifications...)
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...)
}

func (s *Store) SetActiveView(view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeView = view
}

func (s *Store) ActiveView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeView
}

func (s *Store) SetLoading(view string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading[view] = loading
}

func (s *Store) IsLoading(view string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[view]
}

// ClearAll resets every slice to its empty value. The store itself stays
// usable; this is the logout / session-end reset.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	s.rfps = nil
	s.rfpSource = ""
	s.selectedRFP = ""
	s.boilerplate = nil
	s.boilerplateSource = ""
	s.crosswalks = nil
	s.crosswalkSource = ""
	s.plans = nil
	s.planSource = ""
	s.dashboard = nil
	s.notifications = nil
	s.activeView = ""
	s.loading = make(map[string]bool)
}
