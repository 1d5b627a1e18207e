package controllers

import (
	"net/http"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type AgentController struct {
	svc services.AgentService
}

func NewAgentController(svc services.AgentService) *AgentController {
	return &AgentController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/agents
// -----------------------------------------------------------------------------
func (c *AgentController) List(w http.ResponseWriter, r *http.Request) {
	agents, err := c.svc.GetAgents(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, agents)
}

// -----------------------------------------------------------------------------
// POST /api/v1/agents (upsert by id)
// -----------------------------------------------------------------------------
func (c *AgentController) Save(w http.ResponseWriter, r *http.Request) {
	var req dtos.SaveAgentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	persona := &models.AgentPersona{
		ID:            req.ID,
		Name:          req.Name,
		Role:          req.Role,
		Tone:          req.Tone,
		LanguageStyle: req.LanguageStyle,
		Objectives:    req.Objectives,
		SystemPrompt:  req.SystemPrompt,
		FirstSentence: req.FirstSentence,
		VoiceID:       req.VoiceID,
		VoiceSpeed:    req.VoiceSpeed,
	}
	if err := c.svc.SaveAgent(r.Context(), persona); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, persona)
}

// -----------------------------------------------------------------------------
// GET /api/v1/voices
// -----------------------------------------------------------------------------
func (c *AgentController) Voices(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.svc.Voices())
}
