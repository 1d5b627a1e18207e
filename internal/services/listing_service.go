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

type ListingService interface {
	SearchListings(ctx context.Context, filters models.ListingFilters) ([]*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)

	// CreateListing stores the listing and mirrors a CRM property row with
	// the same id and address, so broker dashboards surface the new unit.
	CreateListing(ctx context.Context, l *models.Listing) error
}

type PropertyService interface {
	GetProperties(ctx context.Context) ([]*models.Property, error)
}

type listingService struct {
	listings   repositories.ListingRepository
	properties repositories.PropertyRepository
	local      *store.Store
}

func NewListingService(
	listings repositories.ListingRepository,
	properties repositories.PropertyRepository,
	local *store.Store,
) *listingService {
	return &listingService{listings: listings, properties: properties, local: local}
}

// NewPropertyService exposes the read-mostly property view over the same
// wiring as the listing service.
func NewPropertyService(
	listings repositories.ListingRepository,
	properties repositories.PropertyRepository,
	local *store.Store,
) PropertyService {
	return NewListingService(listings, properties, local)
}

func (s *listingService) SearchListings(ctx context.Context, filters models.ListingFilters) ([]*models.Listing, error) {
	results, err := s.listings.Search(ctx, filters)
	if err != nil {
		if shouldFallBack(err) {
			utils.Logger.Debug("using local listings filter")
			return s.local.SearchListings(ctx, filters)
		}
		utils.Logger.WithError(err).Error("listing search failed")
		return []*models.Listing{}, nil
	}
	return results, nil
}

func (s *listingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.GetListing(ctx, id)
		}
		utils.Logger.WithError(err).Error("fetch listing failed")
		return nil, nil
	}
	return l, nil
}

func (s *listingService) CreateListing(ctx context.Context, l *models.Listing) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	mirror := models.MirrorProperty(l)

	_ = s.local.CreateListing(ctx, l)
	_ = s.local.CreateProperty(ctx, mirror)

	if err := s.listings.Create(ctx, l); err != nil {
		utils.Logger.WithError(err).Error("create listing failed")
		return err
	}
	if err := s.properties.Create(ctx, mirror); err != nil {
		utils.Logger.WithError(err).Error("mirror property failed")
		return err
	}
	return nil
}

func (s *listingService) GetProperties(ctx context.Context) ([]*models.Property, error) {
	props, err := s.properties.List(ctx)
	if err != nil {
		if shouldFallBack(err) {
			return s.local.ListProperties(ctx)
		}
		utils.Logger.WithError(err).Error("fetch properties failed")
		return []*models.Property{}, nil
	}
	return props, nil
}
