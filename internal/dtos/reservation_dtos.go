package dtos

type CreateReservationRequest struct {
	ListingID  string `json:"listingId" validate:"required"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail" validate:"omitempty,email"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}
