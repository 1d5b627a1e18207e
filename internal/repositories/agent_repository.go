package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type AgentRepository interface {
	List(ctx context.Context) ([]*models.AgentPersona, error)
	// Upsert keys on the persona id: persona definitions are edited in
	// place, never duplicated.
	Upsert(ctx context.Context, a *models.AgentPersona) error
}

type agentRepo struct {
	db *postgrest.Client
}

func NewAgentRepository(db *postgrest.Client) AgentRepository {
	return &agentRepo{db: db}
}

func (r *agentRepo) List(ctx context.Context) ([]*models.AgentPersona, error) {
	var out []*models.AgentPersona
	if err := r.db.From("agents").Select(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *agentRepo) Upsert(ctx context.Context, a *models.AgentPersona) error {
	return r.db.From("agents").Upsert(ctx, a)
}
