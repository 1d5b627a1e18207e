package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type TicketRepository interface {
	List(ctx context.Context) ([]*models.Ticket, error)
	GetByID(ctx context.Context, id string) (*models.Ticket, error)
	Create(ctx context.Context, t *models.Ticket) error
	Upsert(ctx context.Context, t *models.Ticket) error
}

type ticketRepo struct {
	db *postgrest.Client
}

func NewTicketRepository(db *postgrest.Client) TicketRepository {
	return &ticketRepo{db: db}
}

func (r *ticketRepo) List(ctx context.Context) ([]*models.Ticket, error) {
	var out []*models.Ticket
	if err := r.db.From("tickets").Order("created_at", false).Select(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ticketRepo) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	var t models.Ticket
	err := r.db.From("tickets").Eq("id", id).Single().Select(ctx, &t)
	if err != nil {
		if kind, ok := postgrest.KindOf(err); ok && kind == postgrest.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *ticketRepo) Create(ctx context.Context, t *models.Ticket) error {
	return r.db.From("tickets").Insert(ctx, t)
}

func (r *ticketRepo) Upsert(ctx context.Context, t *models.Ticket) error {
	return r.db.From("tickets").Upsert(ctx, t)
}
