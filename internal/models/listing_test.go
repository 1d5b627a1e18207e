package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func bptr(b bool) *bool       { return &b }

func sampleListings() []*Listing {
	return []*Listing{
		{ID: "a", Name: "Canal View Loft", Address: "Korenlei 8, Ghent", Price: 1200, Type: "loft", Size: 95, Bedrooms: 1, PetsAllowed: true, EnergyClass: "B"},
		{ID: "b", Name: "Dansaert Apartment", Address: "Rue Antoine Dansaert 45, Brussels", Price: 1450, Type: "apartment", Size: 80, Bedrooms: 2, PetsAllowed: false, EnergyClass: "A"},
		{ID: "c", Name: "Zurenborg House", Address: "Cogels-Osylei 12, Antwerp", Price: 2100, Type: "house", Size: 180, Bedrooms: 4, PetsAllowed: true, EnergyClass: "C"},
	}
}

func TestListingFiltersMatches(t *testing.T) {
	ls := sampleListings()

	// City match is a case-insensitive substring on the address.
	f := ListingFilters{City: "ghent"}
	require.True(t, f.Matches(ls[0]))
	require.False(t, f.Matches(ls[1]))

	f = ListingFilters{MinPrice: fptr(1300), MaxPrice: fptr(1500)}
	require.False(t, f.Matches(ls[0]))
	require.True(t, f.Matches(ls[1]))
	require.False(t, f.Matches(ls[2]))

	f = ListingFilters{MinSize: fptr(90), Bedrooms: iptr(1)}
	require.True(t, f.Matches(ls[0]))
	require.False(t, f.Matches(ls[1]))
	require.True(t, f.Matches(ls[2]))

	f = ListingFilters{Type: "loft"}
	require.True(t, f.Matches(ls[0]))
	require.False(t, f.Matches(ls[2]))

	f = ListingFilters{PetsAllowed: bptr(false)}
	require.False(t, f.Matches(ls[0]))
	require.True(t, f.Matches(ls[1]))

	// Empty filter matches everything.
	f = ListingFilters{}
	for _, l := range ls {
		require.True(t, f.Matches(l))
	}
}

func TestSortListings(t *testing.T) {
	order := func(ls []*Listing) []string {
		ids := make([]string, len(ls))
		for i, l := range ls {
			ids[i] = l.ID
		}
		return ids
	}

	ls := sampleListings()
	SortListings(ls, SortPriceAsc)
	require.Equal(t, []string{"a", "b", "c"}, order(ls))

	SortListings(ls, SortPriceDesc)
	require.Equal(t, []string{"c", "b", "a"}, order(ls))

	SortListings(ls, SortSize)
	require.Equal(t, []string{"c", "a", "b"}, order(ls))

	SortListings(ls, SortEnergyAsc)
	require.Equal(t, []string{"b", "a", "c"}, order(ls))

	// Default keeps whatever order the source produced.
	ls = sampleListings()
	SortListings(ls, SortDefault)
	require.Equal(t, []string{"a", "b", "c"}, order(ls))
}

func TestSortListingsStable(t *testing.T) {
	ls := []*Listing{
		{ID: "x", Price: 1000},
		{ID: "y", Price: 1000},
		{ID: "z", Price: 900},
	}
	SortListings(ls, SortPriceAsc)
	require.Equal(t, "z", ls[0].ID)
	require.Equal(t, "x", ls[1].ID)
	require.Equal(t, "y", ls[2].ID)
}

func TestMirrorProperty(t *testing.T) {
	l := &Listing{
		ID:        "seed-korenlei-loft",
		Name:      "Canal View Loft",
		Address:   "Korenlei 8, Ghent",
		Price:     1200,
		Type:      "loft",
		ImageUrls: []string{"https://img.example/loft-1.jpg", "https://img.example/loft-2.jpg"},
	}
	p := MirrorProperty(l)
	require.Equal(t, l.ID, p.ID)
	require.Equal(t, l.Address, p.Address)
	require.Equal(t, "€1200/mo", p.Price)
	require.Equal(t, "Available", p.Status)
	require.Equal(t, "https://img.example/loft-1.jpg", p.ImageURL)
}
