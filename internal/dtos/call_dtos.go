package dtos

type OutboundCallRequest struct {
	Number      string `json:"number" validate:"required"`
	AssistantID string `json:"assistantId"`
}

type OutboundCallResponse struct {
	ID string `json:"id"`
}

// CaptureLeadRequest is the lead-capture form attached to a listing: save
// the lead, then try to start a callback.
type CaptureLeadRequest struct {
	ListingID string `json:"listingId" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Interest  string `json:"interest"`
	Notes     string `json:"notes"`
}

type CallReportRequest struct {
	LeadID         string         `json:"leadId"`
	CallID         string         `json:"callId"`
	Summary        string         `json:"summary"`
	Transcript     string         `json:"transcript"`
	StructuredData map[string]any `json:"structuredData"`
}

type CreateInteractionRequest struct {
	Type      string         `json:"type" validate:"required,oneof=VOICE_CALL EMAIL SMS"`
	Direction string         `json:"direction" validate:"required,oneof=INBOUND OUTBOUND"`
	LeadID    string         `json:"leadId"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
}
