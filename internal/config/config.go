package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const AppName = "crm-service"

type Config struct {
	AppPort string `envconfig:"app_port" default:"8080"`
	AppURL  string `envconfig:"app_url" default:"*"`

	// Backend credentials. These two are the only mandatory values: without
	// them the data facade is unusable and startup must stop at a setup
	// error instead of attempting any call.
	SupabaseURL     string `envconfig:"supabase_url"`
	SupabaseAnonKey string `envconfig:"supabase_anon_key"`

	// Optional: enables signature verification on bearer tokens.
	SupabaseJWTSecret string `envconfig:"supabase_jwt_secret"`

	// Optional voice-call integration; absence degrades the dialer rather
	// than crashing the app.
	EburonAPIURL        string `envconfig:"eburon_api_url" default:"https://api.vapi.ai"`
	EburonAPIKey        string `envconfig:"eburon_api_key"`
	EburonAssistantID   string `envconfig:"eburon_assistant_id"`
	EburonPMAssistantID string `envconfig:"eburon_property_manager_assistant_id"`
	EburonPhoneNumberID string `envconfig:"eburon_phone_number_id"`

	SiteURL string `envconfig:"site_url"`
}

// SetupError means the mandatory backend credentials are missing. The
// caller is expected to render a setup screen rather than serve traffic.
var SetupError = errors.New("SUPABASE_URL and SUPABASE_ANON_KEY are required")

func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.WithStack(err)
	}
	if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
		return nil, SetupError
	}
	return &c, nil
}

// VoiceConfigured reports whether outbound calling has full credentials.
func (c *Config) VoiceConfigured() bool {
	return c.EburonAPIKey != "" && c.EburonAssistantID != "" && c.EburonPhoneNumberID != ""
}

// AssistantFor routes management inquiries to the property-manager
// assistant when one is configured; everything else goes to the broker.
func (c *Config) AssistantFor(interest string) string {
	if interest == "Management" && c.EburonPMAssistantID != "" {
		return c.EburonPMAssistantID
	}
	return c.EburonAssistantID
}
