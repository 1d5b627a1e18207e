package controllers

import (
	"net/http"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type InteractionController struct {
	svc services.InteractionService
}

func NewInteractionController(svc services.InteractionService) *InteractionController {
	return &InteractionController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/interactions?leadId=
// -----------------------------------------------------------------------------
func (c *InteractionController) List(w http.ResponseWriter, r *http.Request) {
	leadID := r.URL.Query().Get("leadId")
	interactions, err := c.svc.GetInteractions(r.Context(), leadID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, interactions)
}

// -----------------------------------------------------------------------------
// POST /api/v1/interactions
// -----------------------------------------------------------------------------
// Interaction creation is best-effort telemetry: the response is always 202
// even when the backend write failed, because losing an audit row must not
// fail the action that produced it.
func (c *InteractionController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateInteractionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	interactionType, err := models.ParseInteractionType(req.Type)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
		return
	}

	interaction := &models.Interaction{
		Type:      interactionType,
		Direction: models.InteractionDirection(req.Direction),
		LeadID:    req.LeadID,
		Content:   req.Content,
		Metadata:  req.Metadata,
	}
	c.svc.CreateInteraction(r.Context(), interaction)
	utils.RespondWithJSON(w, http.StatusAccepted, interaction)
}
