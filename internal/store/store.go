// Package store is the in-memory fallback behind the data facade. It keeps
// the UI usable when the remote backend is unreachable or its tables do not
// exist yet. The store is an explicit value constructed once at startup and
// injected wherever it is needed, so tests can build isolated instances.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/eburon/crm-service/internal/models"
)

type Store struct {
	mu sync.RWMutex

	profiles     map[string]*models.User
	leads        []*models.Lead
	properties   []*models.Property
	listings     []*models.Listing
	tickets      []*models.Ticket
	tasks        []*models.Task
	agents       []*models.AgentPersona
	interactions []*models.Interaction
	reservations []*models.Reservation
}

// Seed primes a new store. Any field may be nil.
type Seed struct {
	Leads      []*models.Lead
	Properties []*models.Property
	Listings   []*models.Listing
	Agents     []*models.AgentPersona
}

func New(seed Seed) *Store {
	s := &Store{profiles: make(map[string]*models.User)}
	s.leads = append(s.leads, seed.Leads...)
	s.properties = append(s.properties, seed.Properties...)
	s.listings = append(s.listings, seed.Listings...)
	s.agents = append(s.agents, seed.Agents...)
	return s
}

/* ------------------------------------------------------------------
   Profiles
------------------------------------------------------------------ */

func (s *Store) GetProfile(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[id], nil
}

func (s *Store) UpsertProfile(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.profiles[u.ID] = &cp
	return nil
}

/* ------------------------------------------------------------------
   Leads
------------------------------------------------------------------ */

// ListLeads returns leads newest first, matching the remote ordering.
func (s *Store) ListLeads(_ context.Context) ([]*models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Lead, len(s.leads))
	copy(out, s.leads)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetLead returns a copy so callers never observe later in-place updates
// such as AppendLeadNote.
func (s *Store) GetLead(_ context.Context, id string) (*models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l := s.findLead(id)
	if l == nil {
		return nil, nil
	}
	cp := *l
	cp.Notes = append([]models.NoteEntry(nil), l.Notes...)
	return &cp, nil
}

func (s *Store) findLead(id string) *models.Lead {
	for _, l := range s.leads {
		if l.ID == id {
			return l
		}
	}
	return nil
}

func (s *Store) CreateLead(_ context.Context, l *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.leads = append(s.leads, &cp)
	return nil
}

func (s *Store) UpsertLead(_ context.Context, l *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.leads {
		if existing.ID == l.ID {
			cp := *l
			s.leads[i] = &cp
			return nil
		}
	}
	cp := *l
	s.leads = append(s.leads, &cp)
	return nil
}

// AppendLeadNote appends one entry to the lead's note log. The append is
// atomic under the store lock, so concurrent appends never lose an entry.
func (s *Store) AppendLeadNote(_ context.Context, entry models.NoteEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l := s.findLead(entry.LeadID); l != nil {
		l.Notes = append(l.Notes, entry)
	}
	return nil
}

func (s *Store) SetLeadLastActivity(_ context.Context, leadID, activity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l := s.findLead(leadID); l != nil {
		l.LastActivity = activity
	}
	return nil
}

/* ------------------------------------------------------------------
   Properties
------------------------------------------------------------------ */

func (s *Store) ListProperties(_ context.Context) ([]*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

func (s *Store) CreateProperty(_ context.Context, p *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.properties = append(s.properties, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Listings
------------------------------------------------------------------ */

// SearchListings applies the same predicate set and sort rules as the
// remote query path, so the caller cannot tell which store answered.
func (s *Store) SearchListings(_ context.Context, filters models.ListingFilters) ([]*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Listing
	for _, l := range s.listings {
		if filters.Matches(l) {
			out = append(out, l)
		}
	}
	models.SortListings(out, filters.SortBy)
	return out, nil
}

func (s *Store) GetListing(_ context.Context, id string) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateListing(_ context.Context, l *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *l
	s.listings = append(s.listings, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Tickets
------------------------------------------------------------------ */

func (s *Store) ListTickets(_ context.Context) ([]*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) GetTicket(_ context.Context, id string) (*models.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateTicket(_ context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.tickets = append(s.tickets, &cp)
	return nil
}

func (s *Store) UpsertTicket(_ context.Context, t *models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tickets {
		if existing.ID == t.ID {
			cp := *t
			s.tickets[i] = &cp
			return nil
		}
	}
	cp := *t
	s.tickets = append(s.tickets, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Tasks
------------------------------------------------------------------ */

// ListTasks returns tasks soonest-due first, matching the remote ordering.
func (s *Store) ListTasks(_ context.Context) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Task, len(s.tasks))
	copy(out, s.tasks)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (s *Store) CreateTask(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *t
	s.tasks = append(s.tasks, &cp)
	return nil
}

func (s *Store) UpsertTask(_ context.Context, t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == t.ID {
			cp := *t
			s.tasks[i] = &cp
			return nil
		}
	}
	cp := *t
	s.tasks = append(s.tasks, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Agents
------------------------------------------------------------------ */

func (s *Store) ListAgents(_ context.Context) ([]*models.AgentPersona, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.AgentPersona, len(s.agents))
	copy(out, s.agents)
	return out, nil
}

func (s *Store) UpsertAgent(_ context.Context, a *models.AgentPersona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.agents {
		if existing.ID == a.ID {
			cp := *a
			s.agents[i] = &cp
			return nil
		}
	}
	cp := *a
	s.agents = append(s.agents, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Interactions
------------------------------------------------------------------ */

func (s *Store) ListInteractionsByLead(_ context.Context, leadID string) ([]*models.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Interaction
	for _, i := range s.interactions {
		if leadID == "" || i.LeadID == leadID {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *Store) CreateInteraction(_ context.Context, i *models.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *i
	s.interactions = append(s.interactions, &cp)
	return nil
}

/* ------------------------------------------------------------------
   Reservations
------------------------------------------------------------------ */

func (s *Store) CreateReservation(_ context.Context, res *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *res
	s.reservations = append(s.reservations, &cp)
	return nil
}

func (s *Store) ListReservations(_ context.Context) ([]*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}
