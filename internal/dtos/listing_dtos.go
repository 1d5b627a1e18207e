package dtos

type CreateListingRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	ImageUrls   []string `json:"imageUrls" validate:"min=1"`
	EnergyClass string   `json:"energyClass"`
	Type        string   `json:"type" validate:"required"`
	Size        float64  `json:"size"`
	Bedrooms    int      `json:"bedrooms"`
	PetsAllowed bool     `json:"petsAllowed"`
	Description string   `json:"description"`
	OwnerID     string   `json:"ownerId"`
}
