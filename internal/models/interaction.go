package models

import (
	"fmt"
	"time"
)

type InteractionType string

const (
	InteractionVoiceCall InteractionType = "VOICE_CALL"
	InteractionEmail     InteractionType = "EMAIL"
	InteractionSMS       InteractionType = "SMS"
)

func ParseInteractionType(s string) (InteractionType, error) {
	switch InteractionType(s) {
	case InteractionVoiceCall, InteractionEmail, InteractionSMS:
		return InteractionType(s), nil
	default:
		return "", fmt.Errorf("invalid interaction type: %q", s)
	}
}

type InteractionDirection string

const (
	DirectionInbound  InteractionDirection = "INBOUND"
	DirectionOutbound InteractionDirection = "OUTBOUND"
)

// Interaction is an append-only audit-log entry for a contact event.
// LeadID is a weak reference: lookups must tolerate a dangling or missing
// lead. Rows are never mutated after creation.
type Interaction struct {
	ID        string               `json:"id"`
	Type      InteractionType      `json:"type"`
	Direction InteractionDirection `json:"direction"`
	LeadID    string               `json:"leadId,omitempty"`
	Content   string               `json:"content"`
	Metadata  map[string]any       `json:"metadata,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}
