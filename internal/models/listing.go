package models

import "time"

type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Price       float64   `json:"price"`
	ImageUrls   []string  `json:"imageUrls"`
	EnergyClass string    `json:"energyClass"`
	Type        string    `json:"type"`
	Size        float64   `json:"size"`
	Bedrooms    int       `json:"bedrooms"`
	PetsAllowed bool      `json:"petsAllowed"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PrimaryImage is the first image URL, or "" when none were uploaded.
func (l *Listing) PrimaryImage() string {
	if len(l.ImageUrls) == 0 {
		return ""
	}
	return l.ImageUrls[0]
}

// ListingSortKey selects the client-side ordering applied after a search.
type ListingSortKey string

const (
	SortDefault    ListingSortKey = "default"
	SortPriceAsc   ListingSortKey = "price_asc"
	SortPriceDesc  ListingSortKey = "price_desc"
	SortSize       ListingSortKey = "size"
	SortEnergyAsc  ListingSortKey = "energy_asc"
	SortEnergyDesc ListingSortKey = "energy_desc"
)

// ListingFilters holds the recognized search predicates. A nil field means
// "no constraint", never "match empty/false".
type ListingFilters struct {
	City        string         `json:"city,omitempty"`
	MinPrice    *float64       `json:"minPrice,omitempty"`
	MaxPrice    *float64       `json:"maxPrice,omitempty"`
	MinSize     *float64       `json:"minSize,omitempty"`
	Bedrooms    *int           `json:"bedrooms,omitempty"`
	Type        string         `json:"type,omitempty"`
	PetsAllowed *bool          `json:"petsAllowed,omitempty"`
	SortBy      ListingSortKey `json:"sortBy,omitempty"`
}

// Matches reports whether the listing satisfies every present predicate.
// It is the single definition of the filter semantics: the fallback store
// evaluates it directly and the remote query builder mirrors it clause for
// clause, so both paths answer identically.
func (f ListingFilters) Matches(l *Listing) bool {
	if f.City != "" && !containsFold(l.Address, f.City) {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.MinSize != nil && l.Size < *f.MinSize {
		return false
	}
	if f.Bedrooms != nil && l.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.PetsAllowed != nil && l.PetsAllowed != *f.PetsAllowed {
		return false
	}
	return true
}
