package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type LeadController struct {
	svc services.LeadService
}

func NewLeadController(svc services.LeadService) *LeadController {
	return &LeadController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/leads
// -----------------------------------------------------------------------------
func (c *LeadController) List(w http.ResponseWriter, r *http.Request) {
	leads, err := c.svc.GetLeads(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, leads)
}

// -----------------------------------------------------------------------------
// GET /api/v1/leads/{id}
// -----------------------------------------------------------------------------
func (c *LeadController) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := c.svc.GetLead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if lead == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Lead not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, lead)
}

// -----------------------------------------------------------------------------
// POST /api/v1/leads
// -----------------------------------------------------------------------------
func (c *LeadController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lead := leadFromCreateRequest(&req)
	if err := c.svc.CreateLead(r.Context(), lead); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, lead)
}

// -----------------------------------------------------------------------------
// PUT /api/v1/leads/{id}
// -----------------------------------------------------------------------------
func (c *LeadController) Update(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := mux.Vars(r)["id"]
	existing, err := c.svc.GetLead(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if existing == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Lead not found", nil)
		return
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Phone = req.Phone
	existing.Email = req.Email
	if status, err := models.ParseLeadStatus(req.Status); err == nil {
		existing.Status = status
	}
	if interest, err := models.ParseLeadInterest(req.Interest); err == nil {
		existing.Interest = interest
	}
	if req.LastActivity != "" {
		existing.LastActivity = req.LastActivity
	}

	if err := c.svc.UpdateLead(r.Context(), existing); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, existing)
}

// -----------------------------------------------------------------------------
// POST /api/v1/leads/{id}/notes
// -----------------------------------------------------------------------------
func (c *LeadController) AppendNotes(w http.ResponseWriter, r *http.Request) {
	var req dtos.AppendNotesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	id := mux.Vars(r)["id"]
	if err := c.svc.AppendLeadNotes(r.Context(), id, req.Note, req.ActivityLabel); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "appended"})
}

// -----------------------------------------------------------------------------
// POST /api/v1/leads/voice
// -----------------------------------------------------------------------------
// The voice channel never gets a validation rejection: missing fields are
// replaced with placeholders downstream.
func (c *LeadController) CreateFromVoice(w http.ResponseWriter, r *http.Request) {
	var req dtos.VoiceLeadRequest
	if !decodeJSONLenient(w, r, &req) {
		return
	}

	lead, err := c.svc.SaveLeadFromVoice(r.Context(), services.VoiceLeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Interest:  req.Interest,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, lead)
}

func leadFromCreateRequest(req *dtos.CreateLeadRequest) *models.Lead {
	status, err := models.ParseLeadStatus(req.Status)
	if err != nil {
		status = models.LeadStatusNew
	}
	interest, err := models.ParseLeadInterest(req.Interest)
	if err != nil {
		interest = models.InterestBuying
	}

	lead := &models.Lead{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Email:      req.Email,
		Status:     status,
		Interest:   interest,
		Recordings: []models.Recording{},
	}
	if req.Notes != "" {
		lead.Notes = []models.NoteEntry{{Body: req.Notes}}
	}
	return lead
}
