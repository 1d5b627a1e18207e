package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/seed"
)

func TestGetAgentsFallsBackToSeedPersonas(t *testing.T) {
	svc := NewAgentService(&fakeAgentRepo{err: errSchemaMismatch("agents")}, seed.Store(), seed.Voices())

	agents, err := svc.GetAgents(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, agents)
}

func TestSaveAgentUpserts(t *testing.T) {
	remote := &fakeAgentRepo{}
	svc := NewAgentService(remote, seed.Store(), seed.Voices())

	a := &models.AgentPersona{ID: "laurent", Name: "Laurent"}
	require.NoError(t, svc.SaveAgent(ctx, a))
	a2 := &models.AgentPersona{ID: "laurent", Name: "Laurent v2"}
	require.NoError(t, svc.SaveAgent(ctx, a2))

	require.Len(t, remote.agents, 1)
	require.Equal(t, "Laurent v2", remote.agents[0].Name)
}

func TestSaveAgentFillsGeneratedPrompt(t *testing.T) {
	remote := &fakeAgentRepo{}
	svc := NewAgentService(remote, seed.Store(), seed.Voices())

	a := &models.AgentPersona{ID: "sarah", Name: "Sarah", Role: "Sales agent", Tone: "Warm"}
	require.NoError(t, svc.SaveAgent(ctx, a))

	require.Contains(t, remote.agents[0].SystemPrompt, "**Sarah**")
	require.Contains(t, remote.agents[0].SystemPrompt, "Role: Sales agent")
}

func TestSaveAgentKeepsExplicitPrompt(t *testing.T) {
	remote := &fakeAgentRepo{}
	svc := NewAgentService(remote, seed.Store(), seed.Voices())

	a := &models.AgentPersona{ID: "laurent", Name: "Laurent", SystemPrompt: "You are Laurent."}
	require.NoError(t, svc.SaveAgent(ctx, a))

	require.Equal(t, "You are Laurent.", remote.agents[0].SystemPrompt)
}

func TestVoicesCatalogIsStatic(t *testing.T) {
	svc := NewAgentService(&fakeAgentRepo{}, seed.Store(), seed.Voices())
	require.Equal(t, seed.Voices(), svc.Voices())
}

func TestBuildSystemPromptPrefersExplicitPrompt(t *testing.T) {
	p := &models.AgentPersona{Name: "Laurent", SystemPrompt: "You are Laurent."}
	require.Equal(t, "You are Laurent.", BuildSystemPrompt(p))
}

func TestBuildSystemPromptGeneratesFromFields(t *testing.T) {
	p := &models.AgentPersona{
		Name:          "Sarah",
		Role:          "Sales agent",
		Tone:          "Warm",
		LanguageStyle: "Concise",
		Objectives:    []string{"Qualify the lead", "Book a viewing"},
	}
	prompt := BuildSystemPrompt(p)
	require.Contains(t, prompt, "**Sarah**")
	require.Contains(t, prompt, "Role: Sales agent")
	require.Contains(t, prompt, "- Qualify the lead")
	require.Contains(t, prompt, "- Book a viewing")
}
