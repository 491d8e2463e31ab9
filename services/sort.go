package services

import (
	"sort"

	"property-search/models"
)

// Sort returns a reordered copy of records. The sort is stable; an empty or
// unknown key keeps the input order.
func Sort(records []models.Property, key models.SortKey) []models.Property {
	out := make([]models.Property, len(records))
	copy(out, records)

	less := comparator(key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func comparator(key models.SortKey) func(a, b models.Property) bool {
	switch key {
	case models.SortPriceLow:
		return func(a, b models.Property) bool { return a.Price < b.Price }
	case models.SortPriceHigh:
		return func(a, b models.Property) bool { return a.Price > b.Price }
	case models.SortAreaLarge:
		return func(a, b models.Property) bool { return a.Area > b.Area }
	case models.SortAreaSmall:
		return func(a, b models.Property) bool { return a.Area < b.Area }
	case models.SortNewest:
		// ids are assigned in listing order
		return func(a, b models.Property) bool { return a.ID > b.ID }
	default:
		return nil
	}
}

// KnownSortKey reports whether key selects an ordering.
func KnownSortKey(key models.SortKey) bool {
	return comparator(key) != nil
}
