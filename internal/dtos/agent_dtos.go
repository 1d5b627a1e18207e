package dtos

type SaveAgentRequest struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Role          string   `json:"role"`
	Tone          string   `json:"tone"`
	LanguageStyle string   `json:"languageStyle"`
	Objectives    []string `json:"objectives"`
	SystemPrompt  string   `json:"systemPrompt"`
	FirstSentence string   `json:"firstSentence"`
	VoiceID       string   `json:"voiceId" validate:"required"`
	VoiceSpeed    float64  `json:"voiceSpeed"`
}
