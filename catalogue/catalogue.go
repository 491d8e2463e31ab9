// Package catalogue holds the read-only set of property records for a process.
package catalogue

import (
	"fmt"
	"strings"

	"property-search/models"
)

// Catalogue is an immutable, insertion-ordered set of properties.
type Catalogue struct {
	records []models.Property
	index   map[int]int
}

// New validates records and returns a Catalogue that owns a copy of them.
func New(records []models.Property) (*Catalogue, error) {
	c := &Catalogue{
		records: make([]models.Property, 0, len(records)),
		index:   make(map[int]int, len(records)),
	}

	for i, r := range records {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("catalogue: record %d: %w", i, err)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("catalogue: record %d: duplicate id %d: %w", i, r.ID, models.ErrInvalidRecord)
		}
		c.index[r.ID] = len(c.records)
		c.records = append(c.records, r)
	}

	return c, nil
}

func validate(r models.Property) error {
	switch {
	case r.ID <= 0:
		return fmt.Errorf("id must be positive, got %d: %w", r.ID, models.ErrInvalidRecord)
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("id %d: empty title: %w", r.ID, models.ErrInvalidRecord)
	case strings.TrimSpace(r.Location) == "":
		return fmt.Errorf("id %d: empty location: %w", r.ID, models.ErrInvalidRecord)
	case r.Price < 0:
		return fmt.Errorf("id %d: negative price: %w", r.ID, models.ErrInvalidRecord)
	case r.Area <= 0:
		return fmt.Errorf("id %d: area must be positive: %w", r.ID, models.ErrInvalidRecord)
	case r.Bedrooms < 0 || r.Bathrooms < 0:
		return fmt.Errorf("id %d: negative room count: %w", r.ID, models.ErrInvalidRecord)
	case r.Status != models.StatusSale && r.Status != models.StatusRent:
		return fmt.Errorf("id %d: unknown status %q: %w", r.ID, r.Status, models.ErrInvalidRecord)
	}
	return nil
}

// All returns every record in insertion order.
func (c *Catalogue) All() []models.Property {
	out := make([]models.Property, len(c.records))
	copy(out, c.records)
	return out
}

// ByID looks a record up by id.
func (c *Catalogue) ByID(id int) (models.Property, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Property{}, fmt.Errorf("catalogue: id %d: %w", id, models.ErrNotFound)
	}
	return c.records[i], nil
}

// Featured returns the featured records in insertion order.
func (c *Catalogue) Featured() []models.Property {
	var out []models.Property
	for _, r := range c.records {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// ByType returns the records of type t in insertion order.
func (c *Catalogue) ByType(t models.PropertyType) []models.Property {
	var out []models.Property
	for _, r := range c.records {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalogue) Len() int {
	return len(c.records)
}
