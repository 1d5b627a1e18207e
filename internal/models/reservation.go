package models

import "time"

// Reservation is a stay request for a listing. Persistence is best-effort:
// the booking flow confirms to the guest even when the backend write failed,
// so rows may exist only in the local store.
type Reservation struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listingId"`
	GuestName  string    `json:"guestName,omitempty"`
	GuestEmail string    `json:"guestEmail,omitempty"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	CreatedAt  time.Time `json:"createdAt"`
}
