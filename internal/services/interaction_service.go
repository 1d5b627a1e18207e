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

type InteractionService interface {
	GetInteractions(ctx context.Context, leadID string) ([]*models.Interaction, error)

	// CreateInteraction is best-effort telemetry: a lost audit row must
	// never block the primary action that produced it, so failures are
	// logged and swallowed.
	CreateInteraction(ctx context.Context, i *models.Interaction)
}

type interactionService struct {
	remote repositories.InteractionRepository
	local  *store.Store
}

func NewInteractionService(remote repositories.InteractionRepository, local *store.Store) InteractionService {
	return &interactionService{remote: remote, local: local}
}

func (s *interactionService) GetInteractions(ctx context.Context, leadID string) ([]*models.Interaction, error) {
	interactions, err := s.remote.ListByLead(ctx, leadID)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListInteractionsByLead(ctx, leadID)
		}
		utils.Logger.WithError(err).Error("fetch interactions failed")
		return []*models.Interaction{}, nil
	}
	return interactions, nil
}

func (s *interactionService) CreateInteraction(ctx context.Context, i *models.Interaction) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now().UTC()
	}

	_ = s.local.CreateInteraction(ctx, i)
	if err := s.remote.Create(ctx, i); err != nil {
		utils.Logger.WithError(err).Warn("interaction log failed")
	}
}
