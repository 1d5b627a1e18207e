package controllers

import (
	"net/http"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type CallController struct {
	svc services.CallService
}

func NewCallController(svc services.CallService) *CallController {
	return &CallController{svc: svc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/calls
// -----------------------------------------------------------------------------
func (c *CallController) StartCall(w http.ResponseWriter, r *http.Request) {
	var req dtos.OutboundCallRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.svc.StartOutboundCall(r.Context(), req.Number, req.AssistantID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.OutboundCallResponse{ID: result.ID})
}

// -----------------------------------------------------------------------------
// POST /api/v1/leads/capture
// -----------------------------------------------------------------------------
// The lead persisting and the call starting are independent: a failed call
// after a successful save comes back as callStatus "failed" with the lead
// included, not as an error response.
func (c *CallController) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req dtos.CaptureLeadRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.svc.CaptureLead(r.Context(), services.CaptureLeadInput{
		ListingID: req.ListingID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Interest:  req.Interest,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, result)
}

// -----------------------------------------------------------------------------
// POST /api/v1/calls/report
// -----------------------------------------------------------------------------
func (c *CallController) Report(w http.ResponseWriter, r *http.Request) {
	var req dtos.CallReportRequest
	if !decodeJSONLenient(w, r, &req) {
		return
	}

	c.svc.ProcessCallReport(r.Context(), services.CallReport{
		LeadID:         req.LeadID,
		CallID:         req.CallID,
		Summary:        req.Summary,
		Transcript:     req.Transcript,
		StructuredData: req.StructuredData,
	})
	utils.RespondWithJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
}
