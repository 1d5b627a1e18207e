package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type TaskRepository interface {
	List(ctx context.Context) ([]*models.Task, error)
	Create(ctx context.Context, t *models.Task) error
	Upsert(ctx context.Context, t *models.Task) error
}

type taskRepo struct {
	db *postgrest.Client
}

func NewTaskRepository(db *postgrest.Client) TaskRepository {
	return &taskRepo{db: db}
}

// List returns tasks soonest-due first.
func (r *taskRepo) List(ctx context.Context) ([]*models.Task, error) {
	var out []*models.Task
	if err := r.db.From("tasks").Order("due_date", true).Select(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) Create(ctx context.Context, t *models.Task) error {
	return r.db.From("tasks").Insert(ctx, t)
}

func (r *taskRepo) Upsert(ctx context.Context, t *models.Task) error {
	return r.db.From("tasks").Upsert(ctx, t)
}
