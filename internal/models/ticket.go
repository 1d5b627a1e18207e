package models

import (
	"fmt"
	"time"
)

// ------------------------------------------------------------------------
// TicketStatus with an enforced OPEN → SCHEDULED → COMPLETED progression.
// ------------------------------------------------------------------------
type TicketStatus string

const (
	TicketOpen      TicketStatus = "OPEN"
	TicketScheduled TicketStatus = "SCHEDULED"
	TicketCompleted TicketStatus = "COMPLETED"
)

func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case TicketOpen, TicketScheduled, TicketCompleted:
		return TicketStatus(s), nil
	default:
		return "", fmt.Errorf("invalid ticket status: %q", s)
	}
}

// CanTransitionTo reports whether moving to next is allowed. Staying on the
// same status is a no-op and always allowed; moving backwards is not.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TicketOpen:
		return next == TicketScheduled || next == TicketCompleted
	case TicketScheduled:
		return next == TicketCompleted
	default:
		return false
	}
}

type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
)

func ParseTicketPriority(s string) (TicketPriority, error) {
	switch TicketPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TicketPriority(s), nil
	default:
		return "", fmt.Errorf("invalid ticket priority: %q", s)
	}
}

type Ticket struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Status          TicketStatus   `json:"status"`
	Priority        TicketPriority `json:"priority"`
	PropertyID      string         `json:"propertyId,omitempty"`
	PropertyAddress string         `json:"propertyAddress,omitempty"`
	CreatedBy       string         `json:"createdBy"`
	AssignedTo      string         `json:"assignedTo,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
