package models

import "fmt"

// MirrorProperty derives the CRM property row for a listing. The two rows
// share the listing's id and address so CRM views surface the unit; they
// are kept consistent at creation time only.
func MirrorProperty(l *Listing) *Property {
	return &Property{
		ID:        l.ID,
		Address:   l.Address,
		Price:     fmt.Sprintf("€%.0f/mo", l.Price),
		Type:      l.Type,
		Status:    "Available",
		ImageURL:  l.PrimaryImage(),
		CreatedAt: l.CreatedAt,
	}
}
