package models

import "time"

// Property is the CRM-side view of a unit. A listing created through the
// public form also produces a mirrored property row (same id and address)
// so CRM dashboards surface it; the two are independently stored copies
// with no foreign-key enforcement.
type Property struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Price     string    `json:"price"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"created_at"`
}
