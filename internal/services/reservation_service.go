package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

type ReservationService interface {
	// CreateReservation records the stay request. The write is best-effort:
	// a failed backend insert is logged and the guest still gets a
	// confirmation, with the row kept in the local store.
	CreateReservation(ctx context.Context, res *models.Reservation)
}

type reservationService struct {
	remote repositories.ReservationRepository
	local  *store.Store
}

func NewReservationService(remote repositories.ReservationRepository, local *store.Store) ReservationService {
	return &reservationService{remote: remote, local: local}
}

func (s *reservationService) CreateReservation(ctx context.Context, res *models.Reservation) {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}

	_ = s.local.CreateReservation(ctx, res)
	if err := s.remote.Create(ctx, res); err != nil {
		utils.Logger.WithError(err).Warn("reservation save failed, kept locally")
	}
}
