package controllers

import (
	"net/http"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type ReservationController struct {
	svc services.ReservationService
}

func NewReservationController(svc services.ReservationService) *ReservationController {
	return &ReservationController{svc: svc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/reservations
// -----------------------------------------------------------------------------
// Booking is best-effort: the guest always gets a confirmation, even when the
// backend write failed and the row lives only in the local store.
func (c *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := &models.Reservation{
		ListingID:  req.ListingID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
	}
	c.svc.CreateReservation(r.Context(), res)
	utils.RespondWithJSON(w, http.StatusAccepted, res)
}
