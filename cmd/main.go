package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/eburon/crm-service/internal/app"
	"github.com/eburon/crm-service/internal/config"
	"github.com/eburon/crm-service/internal/controllers"
	"github.com/eburon/crm-service/internal/routes"
	"github.com/eburon/crm-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatal("Configuration error: ", err)
	}

	// 2) Core application (services, etc.)
	application := app.NewApp(cfg)
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController()
	authCtrl := controllers.NewAuthController(application.AuthService, application.ProfileService)
	leadCtrl := controllers.NewLeadController(application.LeadService)
	listingCtrl := controllers.NewListingController(application.ListingService, application.PropertyService)
	ticketCtrl := controllers.NewTicketController(application.TicketService)
	taskCtrl := controllers.NewTaskController(application.TaskService)
	agentCtrl := controllers.NewAgentController(application.AgentService)
	interactionCtrl := controllers.NewInteractionController(application.InteractionService)
	reservationCtrl := controllers.NewReservationController(application.ReservationService)
	callCtrl := controllers.NewCallController(application.CallService)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.AuthSignUp, authCtrl.SignUp).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthSignIn, authCtrl.SignIn).Methods(http.MethodPost)

	authed := router.PathPrefix("/").Subrouter()
	authed.Use(controllers.AuthMiddleware(cfg.SupabaseJWTSecret))
	authed.HandleFunc(routes.Me, authCtrl.Me).Methods(http.MethodGet)

	router.HandleFunc(routes.Leads, leadCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Leads, leadCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.VoiceLead, leadCtrl.CreateFromVoice).Methods(http.MethodPost)
	router.HandleFunc(routes.LeadIntake, callCtrl.CaptureLead).Methods(http.MethodPost)
	router.HandleFunc(routes.Lead, leadCtrl.Get).Methods(http.MethodGet)
	router.HandleFunc(routes.Lead, leadCtrl.Update).Methods(http.MethodPut)
	router.HandleFunc(routes.LeadNotes, leadCtrl.AppendNotes).Methods(http.MethodPost)

	router.HandleFunc(routes.Properties, listingCtrl.Properties).Methods(http.MethodGet)
	router.HandleFunc(routes.Listings, listingCtrl.Search).Methods(http.MethodGet)
	router.HandleFunc(routes.Listings, listingCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.Listing, listingCtrl.Get).Methods(http.MethodGet)
	router.HandleFunc(routes.Reservations, reservationCtrl.Create).Methods(http.MethodPost)

	router.HandleFunc(routes.Tickets, ticketCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Tickets, ticketCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.Ticket, ticketCtrl.Update).Methods(http.MethodPut)
	router.HandleFunc(routes.Tasks, taskCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Tasks, taskCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.Task, taskCtrl.Update).Methods(http.MethodPut)

	router.HandleFunc(routes.Agents, agentCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Agents, agentCtrl.Save).Methods(http.MethodPost)
	router.HandleFunc(routes.Voices, agentCtrl.Voices).Methods(http.MethodGet)

	router.HandleFunc(routes.Interactions, interactionCtrl.List).Methods(http.MethodGet)
	router.HandleFunc(routes.Interactions, interactionCtrl.Create).Methods(http.MethodPost)
	router.HandleFunc(routes.Calls, callCtrl.StartCall).Methods(http.MethodPost)
	router.HandleFunc(routes.CallReport, callCtrl.Report).Methods(http.MethodPost)

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
