package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

type AgentService interface {
	GetAgents(ctx context.Context) ([]*models.AgentPersona, error)
	SaveAgent(ctx context.Context, a *models.AgentPersona) error
	Voices() []models.VoiceOption
}

type agentService struct {
	remote repositories.AgentRepository
	local  *store.Store
	voices []models.VoiceOption
}

func NewAgentService(remote repositories.AgentRepository, local *store.Store, voices []models.VoiceOption) AgentService {
	return &agentService{remote: remote, local: local, voices: voices}
}

func (s *agentService) GetAgents(ctx context.Context) ([]*models.AgentPersona, error) {
	agents, err := s.remote.List(ctx)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListAgents(ctx)
		}
		utils.Logger.WithError(err).Error("fetch agents failed")
		return []*models.AgentPersona{}, nil
	}
	return agents, nil
}

func (s *agentService) SaveAgent(ctx context.Context, a *models.AgentPersona) error {
	// Personas saved without an explicit prompt get the generated one, so
	// the dialer never hands the assistant an empty instruction.
	a.SystemPrompt = BuildSystemPrompt(a)

	_ = s.local.UpsertAgent(ctx, a)
	if err := s.remote.Upsert(ctx, a); err != nil {
		utils.Logger.WithError(err).Error("agent save failed")
		return err
	}
	return nil
}

func (s *agentService) Voices() []models.VoiceOption {
	return s.voices
}

// BuildSystemPrompt returns the persona's own prompt when set, otherwise a
// generated one from its descriptive fields.
func BuildSystemPrompt(p *models.AgentPersona) string {
	if p.SystemPrompt != "" {
		return p.SystemPrompt
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are **%s**.\n\n", p.Name)
	fmt.Fprintf(&b, "Role: %s\n", p.Role)
	fmt.Fprintf(&b, "Tone: %s\n", p.Tone)
	fmt.Fprintf(&b, "Language Style: %s\n\n", p.LanguageStyle)
	if len(p.Objectives) > 0 {
		b.WriteString("Objectives:\n")
		for _, o := range p.Objectives {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	return b.String()
}
