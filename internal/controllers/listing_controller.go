package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type ListingController struct {
	listings   services.ListingService
	properties services.PropertyService
}

func NewListingController(listings services.ListingService, properties services.PropertyService) *ListingController {
	return &ListingController{listings: listings, properties: properties}
}

// -----------------------------------------------------------------------------
// GET /api/v1/listings?city=&minPrice=&maxPrice=&minSize=&bedrooms=&type=&petsAllowed=&sortBy=
// -----------------------------------------------------------------------------
// An absent query parameter means "no constraint", never "match empty".
func (c *ListingController) Search(w http.ResponseWriter, r *http.Request) {
	filters, err := filtersFromQuery(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, err)
		return
	}

	results, err := c.listings.SearchListings(r.Context(), filters)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, results)
}

// -----------------------------------------------------------------------------
// GET /api/v1/listings/{id}
// -----------------------------------------------------------------------------
func (c *ListingController) Get(w http.ResponseWriter, r *http.Request) {
	listing, err := c.listings.GetListing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if listing == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Listing not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// -----------------------------------------------------------------------------
// POST /api/v1/listings
// -----------------------------------------------------------------------------
func (c *ListingController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateListingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	listing := &models.Listing{
		Name:        req.Name,
		Address:     req.Address,
		Price:       req.Price,
		ImageUrls:   req.ImageUrls,
		EnergyClass: req.EnergyClass,
		Type:        req.Type,
		Size:        req.Size,
		Bedrooms:    req.Bedrooms,
		PetsAllowed: req.PetsAllowed,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}
	if err := c.listings.CreateListing(r.Context(), listing); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, listing)
}

// -----------------------------------------------------------------------------
// GET /api/v1/properties
// -----------------------------------------------------------------------------
func (c *ListingController) Properties(w http.ResponseWriter, r *http.Request) {
	props, err := c.properties.GetProperties(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

func filtersFromQuery(r *http.Request) (models.ListingFilters, error) {
	q := r.URL.Query()
	filters := models.ListingFilters{
		City:   q.Get("city"),
		Type:   q.Get("type"),
		SortBy: models.ListingSortKey(q.Get("sortBy")),
	}

	if v := q.Get("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.MinPrice = &f
	}
	if v := q.Get("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.MaxPrice = &f
	}
	if v := q.Get("minSize"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.MinSize = &f
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filters, err
		}
		filters.Bedrooms = &n
	}
	if v := q.Get("petsAllowed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filters, err
		}
		filters.PetsAllowed = &b
	}
	return filters, nil
}
