package models

import (
	"sort"
	"strings"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SortListings orders listings in place by the given key. SortDefault leaves
// the input order untouched. Sorting is stable so equal keys keep their
// relative order.
func SortListings(listings []*Listing, key ListingSortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price > listings[j].Price })
	case SortSize:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Size > listings[j].Size })
	case SortEnergyAsc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].EnergyClass < listings[j].EnergyClass })
	case SortEnergyDesc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].EnergyClass > listings[j].EnergyClass })
	}
}
