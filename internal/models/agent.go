package models

// AgentPersona is the configuration for one voice-agent identity. Personas
// are effectively static: the UI upserts edits by id rather than creating
// new rows.
type AgentPersona struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Tone          string   `json:"tone"`
	LanguageStyle string   `json:"languageStyle"`
	Objectives    []string `json:"objectives"`
	SystemPrompt  string   `json:"systemPrompt"`
	FirstSentence string   `json:"firstSentence,omitempty"`
	VoiceID       string   `json:"voiceId"`
	VoiceSpeed    float64  `json:"voiceSpeed,omitempty"`
}

// VoiceOption is one entry of the static voice catalog.
type VoiceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
