package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type InteractionRepository interface {
	// ListByLead returns the audit log for one lead, oldest first. An empty
	// leadID lists the whole log. The lead reference is weak: a dangling
	// leadId simply yields an empty list.
	ListByLead(ctx context.Context, leadID string) ([]*models.Interaction, error)
	Create(ctx context.Context, i *models.Interaction) error
}

type interactionRepo struct {
	db *postgrest.Client
}

func NewInteractionRepository(db *postgrest.Client) InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) ListByLead(ctx context.Context, leadID string) ([]*models.Interaction, error) {
	var out []*models.Interaction
	q := r.db.From("interactions")
	if leadID != "" {
		q = q.Eq("leadId", leadID)
	}
	err := q.Order("timestamp", true).Select(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *interactionRepo) Create(ctx context.Context, i *models.Interaction) error {
	return r.db.From("interactions").Insert(ctx, i)
}
