package dtos

type CreateTicketRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Priority        string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	PropertyID      string `json:"propertyId"`
	PropertyAddress string `json:"propertyAddress"`
	CreatedBy       string `json:"createdBy" validate:"required"`
	AssignedTo      string `json:"assignedTo"`
}

type UpdateTicketRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Status          string `json:"status" validate:"required,oneof=OPEN SCHEDULED COMPLETED"`
	Priority        string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	PropertyID      string `json:"propertyId"`
	PropertyAddress string `json:"propertyAddress"`
	CreatedBy       string `json:"createdBy"`
	AssignedTo      string `json:"assignedTo"`
}
