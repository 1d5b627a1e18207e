package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setBackendEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
}

func TestLoadRequiresBackendCredentials(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	_, err := Load()
	require.ErrorIs(t, err, SetupError)
}

func TestLoadDefaults(t *testing.T) {
	setBackendEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "*", cfg.AppURL)
	require.Equal(t, "https://api.vapi.ai", cfg.EburonAPIURL)
	require.False(t, cfg.VoiceConfigured())
}

func TestVoiceConfigured(t *testing.T) {
	setBackendEnv(t)
	t.Setenv("EBURON_API_KEY", "key")
	t.Setenv("EBURON_ASSISTANT_ID", "assistant")
	t.Setenv("EBURON_PHONE_NUMBER_ID", "phone")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.VoiceConfigured())
}

func TestAssistantFor(t *testing.T) {
	cfg := &Config{EburonAssistantID: "broker", EburonPMAssistantID: "pm"}
	require.Equal(t, "pm", cfg.AssistantFor("Management"))
	require.Equal(t, "broker", cfg.AssistantFor("Buying"))
	require.Equal(t, "broker", cfg.AssistantFor(""))

	// Management falls back to the broker assistant when no PM assistant
	// is configured.
	cfg = &Config{EburonAssistantID: "broker"}
	require.Equal(t, "broker", cfg.AssistantFor("Management"))
}
