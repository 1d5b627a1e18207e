package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eburon/crm-service/internal/config"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/utils"
)

// Call-status values for the lead-capture flow. The lead persisting and the
// call starting are independent operations: a failed call after a saved
// lead is a partial success, not a blanket failure.
const (
	CallStarted = "started"
	CallFailed  = "failed"
	CallSkipped = "skipped"
)

type CallResult struct {
	ID  string         `json:"id"`
	Raw map[string]any `json:"-"`
}

type CaptureLeadInput struct {
	ListingID string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Interest  string
	Notes     string
}

type CaptureLeadResult struct {
	Lead       *models.Lead `json:"lead"`
	CallStatus string       `json:"callStatus"`
	CallID     string       `json:"callId,omitempty"`
	CallError  string       `json:"callError,omitempty"`
}

// CallReport is the end-of-call payload the voice provider posts back:
// analysis summary, transcript and any structured output the assistant
// extracted during the conversation.
type CallReport struct {
	LeadID         string         `json:"leadId,omitempty"`
	CallID         string         `json:"callId,omitempty"`
	Summary        string         `json:"summary"`
	Transcript     string         `json:"transcript,omitempty"`
	StructuredData map[string]any `json:"structuredData,omitempty"`
}

type CallService interface {
	// StartOutboundCall triggers one call through the voice provider.
	// assistantIDOverride may be empty to use the configured default.
	StartOutboundCall(ctx context.Context, customerNumber, assistantIDOverride string) (*CallResult, error)

	// CaptureLead saves a lead from a listing inquiry and then tries to
	// start a callback. The save failing is an error; the call failing
	// afterwards is reported in the result instead.
	CaptureLead(ctx context.Context, in CaptureLeadInput) (*CaptureLeadResult, error)

	// ProcessCallReport persists the audit trail of a finished call. It is
	// best-effort end to end and never fails the provider's webhook.
	ProcessCallReport(ctx context.Context, report CallReport)
}

type callService struct {
	cfg          *config.Config
	http         *http.Client
	leads        LeadService
	listings     ListingService
	interactions InteractionService
}

func NewCallService(
	cfg *config.Config,
	leads LeadService,
	listings ListingService,
	interactions InteractionService,
) CallService {
	return &callService{
		cfg:          cfg,
		http:         &http.Client{Timeout: 30 * time.Second},
		leads:        leads,
		listings:     listings,
		interactions: interactions,
	}
}

func (s *callService) StartOutboundCall(ctx context.Context, customerNumber, assistantIDOverride string) (*CallResult, error) {
	if !s.cfg.VoiceConfigured() {
		return nil, &utils.AppError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       utils.ErrCodeNotConfigured,
			Message:    "Missing Eburon call configuration.",
			Err:        utils.ErrNotConfigured,
		}
	}

	assistantID := assistantIDOverride
	if assistantID == "" {
		assistantID = s.cfg.EburonAssistantID
	}

	payload, err := json.Marshal(map[string]any{
		"assistantId":   assistantID,
		"phoneNumberId": s.cfg.EburonPhoneNumberID,
		"customer":      map[string]string{"number": customerNumber},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.cfg.EburonAPIURL, "/")+"/call", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.EburonAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeCallFailed,
			Message:    "Call could not be started",
			Err:        fmt.Errorf("eburon call failed: %w", err),
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeCallFailed,
			Message:    "Call could not be started",
			Err:        fmt.Errorf("eburon call failed: %d %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("eburon call failed: malformed response: %w", err)
	}
	result := &CallResult{Raw: raw}
	if id, ok := raw["id"].(string); ok {
		result.ID = id
	}
	return result, nil
}

func (s *callService) CaptureLead(ctx context.Context, in CaptureLeadInput) (*CaptureLeadResult, error) {
	listing, err := s.listings.GetListing(ctx, in.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusNotFound,
			Code:       utils.ErrCodeNotFound,
			Message:    "listing not found",
			Err:        utils.ErrListingNotFound,
		}
	}

	interest, err := models.ParseLeadInterest(in.Interest)
	if err != nil {
		interest = models.InterestBuying
	}

	baseNotes := fmt.Sprintf("Requested callback for %s (%s).", listing.Name, listing.Address)
	combined := baseNotes
	if userNotes := strings.TrimSpace(in.Notes); userNotes != "" {
		combined = baseNotes + "\n\n" + userNotes
	}

	lead := &models.Lead{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Email:        in.Email,
		Status:       models.LeadStatusNew,
		Interest:     interest,
		LastActivity: "Listing inquiry: " + listing.Name,
		Recordings:   []models.Recording{},
		CreatedAt:    time.Now().UTC(),
	}
	lead.Notes = []models.NoteEntry{{
		ID:        uuid.NewString(),
		LeadID:    lead.ID,
		Body:      combined,
		CreatedAt: time.Now().UTC(),
	}}

	if err := s.leads.CreateLead(ctx, lead); err != nil {
		return nil, err
	}

	result := &CaptureLeadResult{Lead: lead, CallStatus: CallSkipped}
	if !s.cfg.VoiceConfigured() {
		return result, nil
	}

	call, callErr := s.StartOutboundCall(ctx, lead.Phone, s.cfg.AssistantFor(string(interest)))
	if callErr != nil {
		result.CallStatus = CallFailed
		result.CallError = callErr.Error()
		return result, nil
	}
	result.CallStatus = CallStarted
	result.CallID = call.ID
	return result, nil
}

func (s *callService) ProcessCallReport(ctx context.Context, report CallReport) {
	summary := report.Summary
	if summary == "" {
		summary = "No summary available."
	}

	s.interactions.CreateInteraction(ctx, &models.Interaction{
		Type:      models.InteractionVoiceCall,
		Direction: models.DirectionOutbound,
		LeadID:    report.LeadID,
		Content:   summary,
		Metadata: map[string]any{
			"transcript":     report.Transcript,
			"eburonCallId":   report.CallID,
			"structuredData": report.StructuredData,
		},
	})

	if report.LeadID == "" {
		return
	}

	structuredText := "No structured output."
	if len(report.StructuredData) > 0 {
		if pretty, err := json.MarshalIndent(report.StructuredData, "", "  "); err == nil {
			structuredText = string(pretty)
		}
	}
	note := fmt.Sprintf("[%s] Call Summary\n%s\n\nStructured Output\n%s",
		time.Now().Format("1/2/2006, 3:04:05 PM"), summary, structuredText)

	if err := s.leads.AppendLeadNotes(ctx, report.LeadID, note, "Call summary saved"); err != nil {
		utils.Logger.WithError(err).Error("error processing call report")
	}
}
