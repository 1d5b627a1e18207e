package services

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/repositories"
	"github.com/eburon/crm-service/internal/store"
	"github.com/eburon/crm-service/internal/utils"
)

type ProfileService interface {
	// GetUserProfile returns nil (not an error) when the profile is missing
	// or the backend cannot be reached; callers synthesize a fallback.
	GetUserProfile(ctx context.Context, id string) (*models.User, error)
	CreateUserProfile(ctx context.Context, u *models.User) error
}

type profileService struct {
	remote repositories.ProfileRepository
	local  *store.Store
}

func NewProfileService(remote repositories.ProfileRepository, local *store.Store) ProfileService {
	return &profileService{remote: remote, local: local}
}

func (s *profileService) GetUserProfile(ctx context.Context, id string) (*models.User, error) {
	u, err := s.remote.GetByID(ctx, id)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.GetProfile(ctx, id)
		}
		utils.Logger.WithError(err).Warn("profile fetch failed")
		return nil, nil
	}
	return u, nil
}

func (s *profileService) CreateUserProfile(ctx context.Context, u *models.User) error {
	_ = s.local.UpsertProfile(ctx, u)
	if err := s.remote.Upsert(ctx, u); err != nil {
		utils.Logger.WithError(err).Error("profile creation failed")
		return err
	}
	return nil
}
