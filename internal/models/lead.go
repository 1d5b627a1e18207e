package models

import (
	"fmt"
	"strings"
	"time"
)

// ------------------------------------------------------------------------
// LeadStatus enumerates the pipeline stage of a lead.
// ------------------------------------------------------------------------
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "New"
	LeadStatusContacted LeadStatus = "Contacted"
	LeadStatusQualified LeadStatus = "Qualified"
	LeadStatusLost      LeadStatus = "Lost"
)

func ParseLeadStatus(s string) (LeadStatus, error) {
	switch LeadStatus(s) {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return LeadStatus(s), nil
	default:
		return "", fmt.Errorf("invalid lead status: %q", s)
	}
}

// ------------------------------------------------------------------------
// LeadInterest enumerates what the lead came in for.
// ------------------------------------------------------------------------
type LeadInterest string

const (
	InterestBuying     LeadInterest = "Buying"
	InterestRenting    LeadInterest = "Renting"
	InterestSelling    LeadInterest = "Selling"
	InterestManagement LeadInterest = "Management"
)

func ParseLeadInterest(s string) (LeadInterest, error) {
	switch LeadInterest(s) {
	case InterestBuying, InterestRenting, InterestSelling, InterestManagement:
		return LeadInterest(s), nil
	default:
		return "", fmt.Errorf("invalid lead interest: %q", s)
	}
}

// NoteEntry is one append-only note on a lead. Notes are stored as an
// ordered log of timestamped entries so concurrent appends never collide.
type NoteEntry struct {
	ID            string    `json:"id"`
	LeadID        string    `json:"leadId"`
	Body          string    `json:"body"`
	ActivityLabel string    `json:"activityLabel,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Recording is a call-outcome record attached to a lead.
type Recording struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int       `json:"duration"`
	Outcome   string    `json:"outcome"`
}

type Lead struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Status       LeadStatus   `json:"status"`
	Interest     LeadInterest `json:"interest"`
	LastActivity string       `json:"lastActivity"`
	Notes        []NoteEntry  `json:"notes"`
	Recordings   []Recording  `json:"recordings"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (l *Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// NotesText renders the note log as the single blank-line-separated string
// the CRM views display.
func (l *Lead) NotesText() string {
	parts := make([]string, 0, len(l.Notes))
	for _, n := range l.Notes {
		parts = append(parts, n.Body)
	}
	return strings.Join(parts, "\n\n")
}
