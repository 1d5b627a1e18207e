package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
}

type reservationRepo struct {
	db *postgrest.Client
}

func NewReservationRepository(db *postgrest.Client) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	return r.db.From("reservations").Insert(ctx, res)
}
