package repositories

import (
	"context"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/postgrest"
)

type ListingRepository interface {
	// Search builds one server-side query: every present filter is ANDed,
	// an absent field means "no constraint". Sorting happens client-side
	// after the fetch.
	Search(ctx context.Context, filters models.ListingFilters) ([]*models.Listing, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, l *models.Listing) error
}

type listingRepo struct {
	db *postgrest.Client
}

func NewListingRepository(db *postgrest.Client) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Search(ctx context.Context, filters models.ListingFilters) ([]*models.Listing, error) {
	q := r.db.From("listings")

	if filters.City != "" {
		q = q.Ilike("address", filters.City)
	}
	if filters.MinPrice != nil {
		q = q.Gte("price", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Lte("price", *filters.MaxPrice)
	}
	if filters.MinSize != nil {
		q = q.Gte("size", *filters.MinSize)
	}
	if filters.Bedrooms != nil {
		q = q.Gte("bedrooms", *filters.Bedrooms)
	}
	if filters.Type != "" {
		q = q.Eq("type", filters.Type)
	}
	if filters.PetsAllowed != nil {
		q = q.Eq("petsAllowed", *filters.PetsAllowed)
	}

	var out []*models.Listing
	if err := q.Select(ctx, &out); err != nil {
		return nil, err
	}
	models.SortListings(out, filters.SortBy)
	return out, nil
}

func (r *listingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var l models.Listing
	err := r.db.From("listings").Eq("id", id).Single().Select(ctx, &l)
	if err != nil {
		if kind, ok := postgrest.KindOf(err); ok && kind == postgrest.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) Create(ctx context.Context, l *models.Listing) error {
	return r.db.From("listings").Insert(ctx, l)
}
