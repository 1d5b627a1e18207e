package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type TicketController struct {
	svc services.TicketService
}

func NewTicketController(svc services.TicketService) *TicketController {
	return &TicketController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/tickets
// -----------------------------------------------------------------------------
func (c *TicketController) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.svc.GetTickets(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tickets)
}

// -----------------------------------------------------------------------------
// POST /api/v1/tickets
// -----------------------------------------------------------------------------
func (c *TicketController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	priority, err := models.ParseTicketPriority(req.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}

	ticket := &models.Ticket{
		Title:           req.Title,
		Description:     req.Description,
		Status:          models.TicketOpen,
		Priority:        priority,
		PropertyID:      req.PropertyID,
		PropertyAddress: req.PropertyAddress,
		CreatedBy:       req.CreatedBy,
		AssignedTo:      req.AssignedTo,
	}
	if err := c.svc.CreateTicket(r.Context(), ticket); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ticket)
}

// -----------------------------------------------------------------------------
// PUT /api/v1/tickets/{id}
// -----------------------------------------------------------------------------
func (c *TicketController) Update(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateTicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	status, err := models.ParseTicketStatus(req.Status)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
		return
	}
	priority, err := models.ParseTicketPriority(req.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}

	ticket := &models.Ticket{
		ID:              mux.Vars(r)["id"],
		Title:           req.Title,
		Description:     req.Description,
		Status:          status,
		Priority:        priority,
		PropertyID:      req.PropertyID,
		PropertyAddress: req.PropertyAddress,
		CreatedBy:       req.CreatedBy,
		AssignedTo:      req.AssignedTo,
	}
	if err := c.svc.UpdateTicket(r.Context(), ticket); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ticket)
}
