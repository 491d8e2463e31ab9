package services

import (
	"strings"

	"property-search/models"
)

// locationNames maps the location keys offered by the search form to the
// text that must appear in a record's location.
var locationNames = map[string]string{
	"beverly-hills": "Beverly Hills",
	"manhattan":     "Manhattan",
	"miami":         "Miami",
	"san-francisco": "San Francisco",
	"chicago":       "Chicago",
}

// LocationName returns the display text for a location key.
func LocationName(key string) (string, bool) {
	name, ok := locationNames[key]
	return name, ok
}

// Filter returns the records that satisfy every supplied criterion, in input
// order. It does not sort and does not modify records.
func Filter(records []models.Property, c models.FilterCriteria) []models.Property {
	out := make([]models.Property, 0, len(records))
	for _, r := range records {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Property, c models.FilterCriteria) bool {
	if c.PropertyType != "" && r.Type != c.PropertyType {
		return false
	}

	if c.Location != "" {
		// An unknown key matches nothing.
		name, ok := locationNames[c.Location]
		if !ok || !strings.Contains(r.Location, name) {
			return false
		}
	}

	if c.Bedrooms != nil && r.Bedrooms < *c.Bedrooms {
		return false
	}

	if c.PriceRange != nil && !c.PriceRange.Contains(r.Price) {
		return false
	}

	if c.MinPrice != nil && r.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && r.Price > *c.MaxPrice {
		return false
	}
	if c.MinArea != nil && r.Area < *c.MinArea {
		return false
	}
	if c.MaxArea != nil && r.Area > *c.MaxArea {
		return false
	}

	// Amenities: records carry no amenity data, so the criterion is a no-op.
	return true
}

// SearchKeyword returns records whose title or location contains keyword,
// ignoring case, in input order.
func SearchKeyword(records []models.Property, keyword string) []models.Property {
	term := strings.ToLower(strings.TrimSpace(keyword))
	out := make([]models.Property, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), term) ||
			strings.Contains(strings.ToLower(r.Location), term) {
			out = append(out, r)
		}
	}
	return out
}
