package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

// Placeholder values used when the voice channel hands over an incomplete
// lead. A mid-call tool invocation cannot be blocked waiting for
// clarification, so missing fields are filled in rather than rejected.
const (
	voiceFirstName    = "Voice"
	voiceLastName     = "User"
	voicePhone        = "Unknown"
	voiceEmail        = "unknown@example.com"
	voiceLastActivity = "Voice Search Interaction"
	voiceDefaultNote  = "Generated from Homie voice search"
)

// VoiceLeadInput is the partially-filled lead a voice-agent tool call
// produces. Every field may be empty.
type VoiceLeadInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Interest  string
	Notes     string
}

type LeadService interface {
	GetLeads(ctx context.Context) ([]*models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	CreateLead(ctx context.Context, l *models.Lead) error
	UpdateLead(ctx context.Context, l *models.Lead) error

	// AppendLeadNotes adds one timestamped entry to the lead's note log and,
	// when activityLabel is non-empty, updates the lead's last activity.
	AppendLeadNotes(ctx context.Context, leadID, note, activityLabel string) error

	// SaveLeadFromVoice normalizes a partial lead from the voice channel and
	// stores it. It never rejects the input.
	SaveLeadFromVoice(ctx context.Context, in VoiceLeadInput) (*models.Lead, error)
}

type leadService struct {
	remote repositories.LeadRepository
	local  *store.Store
}

func NewLeadService(remote repositories.LeadRepository, local *store.Store) LeadService {
	return &leadService{remote: remote, local: local}
}

func (s *leadService) GetLeads(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.remote.List(ctx)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListLeads(ctx)
		}
		utils.Logger.WithError(err).Error("fetch leads failed")
		return []*models.Lead{}, nil
	}
	return leads, nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	l, err := s.remote.GetByID(ctx, id)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.GetLead(ctx, id)
		}
		utils.Logger.WithError(err).Error("fetch lead failed")
		return nil, nil
	}
	return l, nil
}

func (s *leadService) CreateLead(ctx context.Context, l *models.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	for i := range l.Notes {
		if l.Notes[i].ID == "" {
			l.Notes[i].ID = uuid.NewString()
		}
		l.Notes[i].LeadID = l.ID
		if l.Notes[i].CreatedAt.IsZero() {
			l.Notes[i].CreatedAt = time.Now().UTC()
		}
	}
	_ = s.local.CreateLead(ctx, l)
	if err := s.remote.Create(ctx, l); err != nil {
		utils.Logger.WithError(err).Error("create lead failed")
		return err
	}
	return nil
}

func (s *leadService) UpdateLead(ctx context.Context, l *models.Lead) error {
	_ = s.local.UpsertLead(ctx, l)
	if err := s.remote.Upsert(ctx, l); err != nil {
		utils.Logger.WithError(err).Error("update lead failed")
		return err
	}
	return nil
}

func (s *leadService) AppendLeadNotes(ctx context.Context, leadID, note, activityLabel string) error {
	entry := models.NoteEntry{
		ID:            uuid.NewString(),
		LeadID:        leadID,
		Body:          note,
		ActivityLabel: activityLabel,
		CreatedAt:     time.Now().UTC(),
	}

	_ = s.local.AppendLeadNote(ctx, entry)
	if err := s.remote.AppendNote(ctx, entry); err != nil {
		utils.Logger.WithError(err).Error("append lead note failed")
		return err
	}

	if activityLabel != "" {
		_ = s.local.SetLeadLastActivity(ctx, leadID, activityLabel)
		if err := s.remote.SetLastActivity(ctx, leadID, activityLabel); err != nil {
			utils.Logger.WithError(err).Error("update lead activity failed")
			return err
		}
	}
	return nil
}

func (s *leadService) SaveLeadFromVoice(ctx context.Context, in VoiceLeadInput) (*models.Lead, error) {
	interest, err := models.ParseLeadInterest(in.Interest)
	if err != nil {
		interest = models.InterestRenting
	}
	note := in.Notes
	if note == "" {
		note = voiceDefaultNote
	}

	lead := &models.Lead{
		ID:           "voice-" + uuid.NewString(),
		FirstName:    orDefault(in.FirstName, voiceFirstName),
		LastName:     orDefault(in.LastName, voiceLastName),
		Phone:        orDefault(in.Phone, voicePhone),
		Email:        orDefault(in.Email, voiceEmail),
		Status:       models.LeadStatusNew,
		Interest:     interest,
		LastActivity: voiceLastActivity,
		Notes: []models.NoteEntry{{
			ID:        uuid.NewString(),
			Body:      note,
			CreatedAt: time.Now().UTC(),
		}},
		Recordings: []models.Recording{},
		CreatedAt:  time.Now().UTC(),
	}
	lead.Notes[0].LeadID = lead.ID

	if err := s.CreateLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
