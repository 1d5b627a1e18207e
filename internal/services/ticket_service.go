package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

type TicketService interface {
	GetTickets(ctx context.Context) ([]*models.Ticket, error)
	CreateTicket(ctx context.Context, t *models.Ticket) error

	// UpdateTicket enforces the OPEN → SCHEDULED → COMPLETED progression:
	// a backwards move is rejected with an invalid_transition AppError
	// before anything is written.
	UpdateTicket(ctx context.Context, t *models.Ticket) error
}

type ticketService struct {
	remote repositories.TicketRepository
	local  *store.Store
}

func NewTicketService(remote repositories.TicketRepository, local *store.Store) TicketService {
	return &ticketService{remote: remote, local: local}
}

func (s *ticketService) GetTickets(ctx context.Context) ([]*models.Ticket, error) {
	tickets, err := s.remote.List(ctx)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListTickets(ctx)
		}
		utils.Logger.WithError(err).Error("fetch tickets failed")
		return []*models.Ticket{}, nil
	}
	return tickets, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, t *models.Ticket) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.TicketOpen
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	_ = s.local.CreateTicket(ctx, t)
	if err := s.remote.Create(ctx, t); err != nil {
		utils.Logger.WithError(err).Error("create ticket failed")
		return err
	}
	return nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, t *models.Ticket) error {
	current, err := s.currentTicket(ctx, t.ID)
	if err != nil {
		return err
	}
	if current != nil && !current.Status.CanTransitionTo(t.Status) {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeInvalidTransition,
			Message:    "ticket cannot move from " + string(current.Status) + " to " + string(t.Status),
			Err:        utils.ErrInvalidTransition,
		}
	}

	_ = s.local.UpsertTicket(ctx, t)
	if err := s.remote.Upsert(ctx, t); err != nil {
		utils.Logger.WithError(err).Error("update ticket failed")
		return err
	}
	return nil
}

func (s *ticketService) currentTicket(ctx context.Context, id string) (*models.Ticket, error) {
	current, err := s.remote.GetByID(ctx, id)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.GetTicket(ctx, id)
		}
		return nil, err
	}
	return current, nil
}
