package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, u *models.User) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type profileRepo struct {
	db *postgrest.Client
}

func NewProfileRepository(db *postgrest.Client) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := r.db.From("profiles").Eq("id", id).Single().Select(ctx, &u)
	if err != nil {
		if kind, ok := postgrest.KindOf(err); ok && kind == postgrest.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *profileRepo) Upsert(ctx context.Context, u *models.User) error {
	return r.db.From("profiles").Upsert(ctx, u)
}
