package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type PropertyRepository interface {
	List(ctx context.Context) ([]*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
}

type propertyRepo struct {
	db *postgrest.Client
}

func NewPropertyRepository(db *postgrest.Client) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	var out []*models.Property
	if err := r.db.From("properties").Select(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	return r.db.From("properties").Insert(ctx, p)
}
