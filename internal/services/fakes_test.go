package services

import (
	"context"
	"errors"
	"sync"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

// In-memory repository fakes. Setting err makes every method fail with it,
// which is how the fallback policy paths get exercised.

func errUnreachable(table string) error {
	return &postgrest.FetchError{Kind: postgrest.Unreachable, Table: table, Err: errors.New("connection refused")}
}

func errSchemaMismatch(table string) error {
	return &postgrest.FetchError{Kind: postgrest.SchemaMismatch, Table: table, Err: errors.New("relation does not exist")}
}

/* ------------------------------------------------------------------
   Leads
------------------------------------------------------------------ */

type fakeLeadRepo struct {
	mu  sync.Mutex
	err error

	leads      []*models.Lead
	notes      []models.NoteEntry
	activities map[string]string
}

func (f *fakeLeadRepo) List(context.Context) ([]*models.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.leads, nil
}

func (f *fakeLeadRepo) GetByID(_ context.Context, id string) (*models.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, &postgrest.FetchError{Kind: postgrest.NotFound, Table: "leads"}
}

func (f *fakeLeadRepo) Create(_ context.Context, l *models.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.leads = append(f.leads, l)
	return nil
}

func (f *fakeLeadRepo) Upsert(_ context.Context, l *models.Lead) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.leads {
		if existing.ID == l.ID {
			f.leads[i] = l
			return nil
		}
	}
	f.leads = append(f.leads, l)
	return nil
}

func (f *fakeLeadRepo) AppendNote(_ context.Context, entry models.NoteEntry) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, entry)
	return nil
}

func (f *fakeLeadRepo) SetLastActivity(_ context.Context, leadID, activity string) error {
	if f.err != nil {
		return f.err
	}
	if f.activities == nil {
		f.activities = make(map[string]string)
	}
	f.activities[leadID] = activity
	return nil
}

/* ------------------------------------------------------------------
   Listings & properties
------------------------------------------------------------------ */

type fakeListingRepo struct {
	err      error
	listings []*models.Listing
}

func (f *fakeListingRepo) Search(_ context.Context, filters models.ListingFilters) ([]*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Listing
	for _, l := range f.listings {
		if filters.Matches(l) {
			out = append(out, l)
		}
	}
	models.SortListings(out, filters.SortBy)
	return out, nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*models.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, &postgrest.FetchError{Kind: postgrest.NotFound, Table: "listings"}
}

func (f *fakeListingRepo) Create(_ context.Context, l *models.Listing) error {
	if f.err != nil {
		return f.err
	}
	f.listings = append(f.listings, l)
	return nil
}

type fakePropertyRepo struct {
	err        error
	properties []*models.Property
}

func (f *fakePropertyRepo) List(context.Context) ([]*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.properties, nil
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	if f.err != nil {
		return f.err
	}
	f.properties = append(f.properties, p)
	return nil
}

/* ------------------------------------------------------------------
   Tickets
------------------------------------------------------------------ */

type fakeTicketRepo struct {
	err     error
	tickets []*models.Ticket
	upserts int
}

func (f *fakeTicketRepo) List(context.Context) ([]*models.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tickets, nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id string) (*models.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, &postgrest.FetchError{Kind: postgrest.NotFound, Table: "tickets"}
}

func (f *fakeTicketRepo) Create(_ context.Context, t *models.Ticket) error {
	if f.err != nil {
		return f.err
	}
	f.tickets = append(f.tickets, t)
	return nil
}

func (f *fakeTicketRepo) Upsert(_ context.Context, t *models.Ticket) error {
	if f.err != nil {
		return f.err
	}
	f.upserts++
	for i, existing := range f.tickets {
		if existing.ID == t.ID {
			f.tickets[i] = t
			return nil
		}
	}
	f.tickets = append(f.tickets, t)
	return nil
}

/* ------------------------------------------------------------------
   Agents
------------------------------------------------------------------ */

type fakeAgentRepo struct {
	err    error
	agents []*models.AgentPersona
}

func (f *fakeAgentRepo) List(context.Context) ([]*models.AgentPersona, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agents, nil
}

func (f *fakeAgentRepo) Upsert(_ context.Context, a *models.AgentPersona) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.agents {
		if existing.ID == a.ID {
			f.agents[i] = a
			return nil
		}
	}
	f.agents = append(f.agents, a)
	return nil
}

/* ------------------------------------------------------------------
   Profiles & interactions
------------------------------------------------------------------ */

type fakeProfileRepo struct {
	err      error
	profiles map[string]*models.User
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, u *models.User) error {
	if f.err != nil {
		return f.err
	}
	if f.profiles == nil {
		f.profiles = make(map[string]*models.User)
	}
	f.profiles[u.ID] = u
	return nil
}

type fakeInteractionRepo struct {
	err          error
	interactions []*models.Interaction
}

func (f *fakeInteractionRepo) ListByLead(_ context.Context, leadID string) ([]*models.Interaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Interaction
	for _, i := range f.interactions {
		if leadID == "" || i.LeadID == leadID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) Create(_ context.Context, i *models.Interaction) error {
	if f.err != nil {
		return f.err
	}
	f.interactions = append(f.interactions, i)
	return nil
}

type fakeReservationRepo struct {
	err          error
	reservations []*models.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *models.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.reservations = append(f.reservations, res)
	return nil
}
