package models

import "strconv"

// SortKey selects the ordering applied to a search result.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortAreaLarge SortKey = "area-large"
	SortAreaSmall SortKey = "area-small"
	SortNewest    SortKey = "newest"
)

// PriceRange is the coarse price bracket picked from the search form.
// When Unbounded is set Max is ignored.
type PriceRange struct {
	Min       float64
	Max       float64
	Unbounded bool
}

// Contains reports whether price falls inside the range, bounds inclusive.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	return r.Unbounded || price <= r.Max
}

// String encodes the range the way the search form submits it:
// "min-max" or "min+" for an open upper bound.
func (r PriceRange) String() string {
	if r.Unbounded {
		return formatAmount(r.Min) + "+"
	}
	return formatAmount(r.Min) + "-" + formatAmount(r.Max)
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FilterCriteria is one search request. Zero values and nil pointers mean
// "no constraint" for that field.
type FilterCriteria struct {
	PropertyType PropertyType
	// Location is a location key such as "beverly-hills", not display text.
	Location   string
	Bedrooms   *int
	PriceRange *PriceRange
	MinPrice   *float64
	MaxPrice   *float64
	MinArea    *float64
	MaxArea    *float64
	Amenities  []string
	SortKey    SortKey
}

// IsEmpty reports whether the criteria impose no filter at all.
func (c FilterCriteria) IsEmpty() bool {
	return c.PropertyType == "" && c.Location == "" && c.Bedrooms == nil &&
		c.PriceRange == nil && c.MinPrice == nil && c.MaxPrice == nil &&
		c.MinArea == nil && c.MaxArea == nil && len(c.Amenities) == 0
}
