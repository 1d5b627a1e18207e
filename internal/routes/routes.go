package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthSignUp = "/api/v1/auth/signup"
	AuthSignIn = "/api/v1/auth/signin"

	// Profiles
	Me = "/api/v1/me"

	// Leads
	Leads      = "/api/v1/leads"
	Lead       = "/api/v1/leads/{id}"
	LeadNotes  = "/api/v1/leads/{id}/notes"
	VoiceLead  = "/api/v1/leads/voice"
	LeadIntake = "/api/v1/leads/capture"

	// Properties & listings
	Properties = "/api/v1/properties"
	Listings   = "/api/v1/listings"
	Listing    = "/api/v1/listings/{id}"

	// Reservations
	Reservations = "/api/v1/reservations"

	// Tickets & tasks
	Tickets = "/api/v1/tickets"
	Ticket  = "/api/v1/tickets/{id}"
	Tasks   = "/api/v1/tasks"
	Task    = "/api/v1/tasks/{id}"

	// Voice agents
	Agents = "/api/v1/agents"
	Voices = "/api/v1/voices"

	// Interactions & calls
	Interactions = "/api/v1/interactions"
	Calls        = "/api/v1/calls"
	CallReport   = "/api/v1/calls/report"
)
