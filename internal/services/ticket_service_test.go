package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

func TestCreateTicketDefaults(t *testing.T) {
	remote := &fakeTicketRepo{}
	local := store.New(store.Seed{})
	svc := NewTicketService(remote, local)

	tk := &models.Ticket{Title: "Leaking tap"}
	require.NoError(t, svc.CreateTicket(ctx, tk))

	require.NotEmpty(t, tk.ID)
	require.Equal(t, models.TicketOpen, tk.Status)
	require.False(t, tk.CreatedAt.IsZero())
	require.Len(t, remote.tickets, 1)
}

func TestUpdateTicketForwardTransition(t *testing.T) {
	remote := &fakeTicketRepo{tickets: []*models.Ticket{{ID: "t1", Status: models.TicketOpen}}}
	local := store.New(store.Seed{})
	svc := NewTicketService(remote, local)

	err := svc.UpdateTicket(ctx, &models.Ticket{ID: "t1", Status: models.TicketScheduled})
	require.NoError(t, err)
	require.Equal(t, 1, remote.upserts)
}

func TestUpdateTicketRejectsBackwardsTransition(t *testing.T) {
	remote := &fakeTicketRepo{tickets: []*models.Ticket{{ID: "t1", Status: models.TicketCompleted}}}
	local := store.New(store.Seed{})
	svc := NewTicketService(remote, local)

	err := svc.UpdateTicket(ctx, &models.Ticket{ID: "t1", Status: models.TicketOpen})
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)
	require.Equal(t, utils.ErrCodeInvalidTransition, appErr.Code)

	// Nothing was written on either side.
	require.Equal(t, 0, remote.upserts)
	got, gerr := local.GetTicket(ctx, "t1")
	require.NoError(t, gerr)
	require.Nil(t, got)
}

func TestUpdateTicketChecksLocalStateWhenRemoteDown(t *testing.T) {
	remote := &fakeTicketRepo{err: errUnreachable("tickets")}
	local := store.New(store.Seed{})
	require.NoError(t, local.CreateTicket(ctx, &models.Ticket{ID: "t1", Status: models.TicketScheduled}))
	svc := NewTicketService(remote, local)

	err := svc.UpdateTicket(ctx, &models.Ticket{ID: "t1", Status: models.TicketOpen})
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, utils.ErrCodeInvalidTransition, appErr.Code)
}

func TestGetTicketsFallsBack(t *testing.T) {
	remote := &fakeTicketRepo{err: errUnreachable("tickets")}
	local := store.New(store.Seed{})
	require.NoError(t, local.CreateTicket(ctx, &models.Ticket{ID: "t1"}))
	svc := NewTicketService(remote, local)

	tickets, err := svc.GetTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
}
