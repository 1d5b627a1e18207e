package repositories

import (
	"context"
	"time"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type LeadRepository interface {
	List(ctx context.Context) ([]*models.Lead, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	Create(ctx context.Context, l *models.Lead) error
	Upsert(ctx context.Context, l *models.Lead) error

	// AppendNote inserts one entry into the append-only note log. Entries
	// never overwrite each other, so two concurrent appends both survive.
	AppendNote(ctx context.Context, entry models.NoteEntry) error
	SetLastActivity(ctx context.Context, leadID, activity string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

// leadRow is the wire shape of the leads table: the note log lives in its
// own lead_notes table and is attached after the fetch.
type leadRow struct {
	ID           string              `json:"id"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Status       models.LeadStatus   `json:"status"`
	Interest     models.LeadInterest `json:"interest"`
	LastActivity string              `json:"lastActivity"`
	Recordings   []models.Recording  `json:"recordings"`
	CreatedAt    time.Time           `json:"created_at"`
}

func toLeadRow(l *models.Lead) leadRow {
	return leadRow{
		ID:           l.ID,
		FirstName:    l.FirstName,
		LastName:     l.LastName,
		Phone:        l.Phone,
		Email:        l.Email,
		Status:       l.Status,
		Interest:     l.Interest,
		LastActivity: l.LastActivity,
		Recordings:   l.Recordings,
		CreatedAt:    l.CreatedAt,
	}
}

func (row leadRow) toLead(notes []models.NoteEntry) *models.Lead {
	return &models.Lead{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Phone:        row.Phone,
		Email:        row.Email,
		Status:       row.Status,
		Interest:     row.Interest,
		LastActivity: row.LastActivity,
		Notes:        notes,
		Recordings:   row.Recordings,
		CreatedAt:    row.CreatedAt,
	}
}

type leadRepo struct {
	db *postgrest.Client
}

func NewLeadRepository(db *postgrest.Client) LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) List(ctx context.Context) ([]*models.Lead, error) {
	var rows []leadRow
	if err := r.db.From("leads").Order("created_at", false).Select(ctx, &rows); err != nil {
		return nil, err
	}

	var entries []models.NoteEntry
	if err := r.db.From("lead_notes").Order("created_at", true).Select(ctx, &entries); err != nil {
		return nil, err
	}
	byLead := make(map[string][]models.NoteEntry)
	for _, e := range entries {
		byLead[e.LeadID] = append(byLead[e.LeadID], e)
	}

	out := make([]*models.Lead, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toLead(byLead[row.ID]))
	}
	return out, nil
}

func (r *leadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var row leadRow
	err := r.db.From("leads").Eq("id", id).Single().Select(ctx, &row)
	if err != nil {
		if kind, ok := postgrest.KindOf(err); ok && kind == postgrest.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.NoteEntry
	if err := r.db.From("lead_notes").Eq("leadId", id).Order("created_at", true).Select(ctx, &entries); err != nil {
		return nil, err
	}
	return row.toLead(entries), nil
}

func (r *leadRepo) Create(ctx context.Context, l *models.Lead) error {
	if err := r.db.From("leads").Insert(ctx, toLeadRow(l)); err != nil {
		return err
	}
	for _, entry := range l.Notes {
		if err := r.AppendNote(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *leadRepo) Upsert(ctx context.Context, l *models.Lead) error {
	return r.db.From("leads").Upsert(ctx, toLeadRow(l))
}

func (r *leadRepo) AppendNote(ctx context.Context, entry models.NoteEntry) error {
	return r.db.From("lead_notes").Insert(ctx, entry)
}

func (r *leadRepo) SetLastActivity(ctx context.Context, leadID, activity string) error {
	row, err := r.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if row == nil {
		return nil
	}
	row.LastActivity = activity
	return r.Upsert(ctx, row)
}
