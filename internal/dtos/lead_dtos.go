package dtos

// CreateLeadRequest mirrors the manual lead form: the same fields the form
// marks required are required here.
type CreateLeadRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Status    string `json:"status"`
	Interest  string `json:"interest"`
	Notes     string `json:"notes"`
}

type UpdateLeadRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Status       string `json:"status" validate:"required"`
	Interest     string `json:"interest" validate:"required"`
	LastActivity string `json:"lastActivity"`
}

type AppendNotesRequest struct {
	Note          string `json:"note" validate:"required"`
	ActivityLabel string `json:"activityLabel"`
}

// VoiceLeadRequest carries a partial lead from a voice-agent tool call.
// Nothing is required: the voice channel cannot be blocked on validation.
type VoiceLeadRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Interest  string `json:"interest"`
	Notes     string `json:"notes"`
}
