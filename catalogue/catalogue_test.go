package catalogue

import (
	"errors"
	"testing"

	"property-search/models"
)

func TestDefaultCatalogueOrder(t *testing.T) {
	c := Default()
	all := c.All()
	if len(all) != 6 {
		t.Fatalf("len: got %d, want 6", len(all))
	}
	for i, p := range all {
		if p.ID != i+1 {
			t.Errorf("All()[%d].ID: got %d, want %d", i, p.ID, i+1)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Title = "mutated"

	p, err := c.ByID(1)
	if err != nil {
		t.Fatalf("ByID(1): %v", err)
	}
	if p.Title != "Luxury Modern Villa" {
		t.Errorf("catalogue was mutated through All(): title %q", p.Title)
	}
}

func TestByID(t *testing.T) {
	c := Default()

	p, err := c.ByID(4)
	if err != nil {
		t.Fatalf("ByID(4): %v", err)
	}
	if p.Title != "Modern Family Home" {
		t.Errorf("ByID(4).Title: got %q", p.Title)
	}

	_, err = c.ByID(99)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("ByID(99): got %v, want ErrNotFound", err)
	}
}

func TestFeaturedAndByType(t *testing.T) {
	c := Default()

	featured := c.Featured()
	if len(featured) != 3 {
		t.Errorf("Featured len: got %d, want 3", len(featured))
	}

	houses := c.ByType(models.TypeHouse)
	if len(houses) != 2 || houses[0].ID != 1 || houses[1].ID != 4 {
		t.Errorf("ByType(house): got %+v", houses)
	}
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	valid := models.Property{ID: 1, Title: "A", Location: "B", Price: 1, Area: 10, Status: models.StatusSale}

	tests := []struct {
		name    string
		records []models.Property
	}{
		{"duplicate id", []models.Property{valid, valid}},
		{"zero id", []models.Property{{Title: "A", Location: "B", Area: 1, Status: models.StatusSale}}},
		{"empty title", []models.Property{{ID: 2, Location: "B", Area: 1, Status: models.StatusSale}}},
		{"negative price", []models.Property{{ID: 2, Title: "A", Location: "B", Price: -1, Area: 1, Status: models.StatusSale}}},
		{"zero area", []models.Property{{ID: 2, Title: "A", Location: "B", Status: models.StatusSale}}},
		{"bad status", []models.Property{{ID: 2, Title: "A", Location: "B", Area: 1, Status: "lease"}}},
	}

	for _, tt := range tests {
		_, err := New(tt.records)
		if !errors.Is(err, models.ErrInvalidRecord) {
			t.Errorf("%s: got %v, want ErrInvalidRecord", tt.name, err)
		}
	}
}

func TestLoadValidatesSchema(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing status", `[{"id":1,"title":"A","location":"B","price":1,"type":"house","bedrooms":1,"bathrooms":1,"area":10}]`},
		{"string price", `[{"id":1,"title":"A","location":"B","price":"1","type":"house","bedrooms":1,"bathrooms":1,"area":10,"status":"sale"}]`},
		{"not an array", `{"id":1}`},
	}

	for _, tt := range tests {
		if _, err := Load([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	c, err := Load([]byte(`[{"id":7,"title":"Lot","location":"Austin, Texas","price":90000,"type":"land","bedrooms":0,"bathrooms":0,"area":8000,"status":"sale"}]`))
	if err != nil {
		t.Fatalf("valid document: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len: got %d, want 1", c.Len())
	}
}
