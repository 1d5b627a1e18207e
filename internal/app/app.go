package app

import (
	"github.com/eburon/crm-service/internal/config"
	"github.com/eburon/crm-service/internal/postgrest"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/seed"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

// App struct holds references to config & services.
type App struct {
	Config   *config.Config
	Fallback *store.Store

	ProfileService     services.ProfileService
	LeadService        services.LeadService
	ListingService     services.ListingService
	PropertyService    services.PropertyService
	TicketService      services.TicketService
	TaskService        services.TaskService
	AgentService       services.AgentService
	InteractionService services.InteractionService
	ReservationService services.ReservationService
	CallService        services.CallService
	AuthService        services.AuthService
}

// NewApp sets up the core application context: one backend client, one
// seeded fallback store, and the per-entity facade services around them.
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing crm-service App")

	db := postgrest.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	fallback := seed.Store()

	profileSvc := services.NewProfileService(repositories.NewProfileRepository(db), fallback)
	leadSvc := services.NewLeadService(repositories.NewLeadRepository(db), fallback)
	listingSvc := services.NewListingService(
		repositories.NewListingRepository(db),
		repositories.NewPropertyRepository(db),
		fallback,
	)
	ticketSvc := services.NewTicketService(repositories.NewTicketRepository(db), fallback)
	taskSvc := services.NewTaskService(repositories.NewTaskRepository(db), fallback)
	agentSvc := services.NewAgentService(repositories.NewAgentRepository(db), fallback, seed.Voices())
	interactionSvc := services.NewInteractionService(repositories.NewInteractionRepository(db), fallback)

	return &App{
		Config:             cfg,
		Fallback:           fallback,
		ProfileService:     profileSvc,
		LeadService:        leadSvc,
		ListingService:     listingSvc,
		PropertyService:    listingSvc,
		TicketService:      ticketSvc,
		TaskService:        taskSvc,
		AgentService:       agentSvc,
		InteractionService: interactionSvc,
		ReservationService: services.NewReservationService(repositories.NewReservationRepository(db), fallback),
		CallService:        services.NewCallService(cfg, leadSvc, listingSvc, interactionSvc),
		AuthService:        services.NewAuthService(cfg, profileSvc),
	}
}

func (a *App) Close() {
	utils.Logger.Info("crm-service app shutting down.")
}
