package dtos

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=BROKER OWNER RENTER CONTRACTOR"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=BROKER OWNER RENTER CONTRACTOR"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
