package services

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"property-search/catalogue"
	"property-search/models"
)

func newTestController() *SearchController {
	return NewSearchController(catalogue.Default(), newTestLogger())
}

func TestSearchQuery(t *testing.T) {
	s := newTestController()
	values, _ := url.ParseQuery("propertyType=house&sort=price-low&bedrooms=lots")

	res := s.SearchQuery(values)
	if !equalIDs(ids(res.Properties), []int{4, 1}) {
		t.Errorf("Properties: got %v, want [4 1]", ids(res.Properties))
	}
	if res.Count != 2 || res.Summary.Total != 2 {
		t.Errorf("Count/Summary.Total: got %d/%d, want 2/2", res.Count, res.Summary.Total)
	}
	if len(res.Ignored) != 1 || !strings.Contains(res.Ignored[0], "bedrooms") {
		t.Errorf("Ignored: got %v", res.Ignored)
	}
}

func TestSearchNoMatchesIsEmptyNotNil(t *testing.T) {
	s := newTestController()
	res := s.Search(models.FilterCriteria{Location: "atlantis"})
	if res.Properties == nil || res.Count != 0 {
		t.Errorf("got %+v, want an empty non-nil result", res)
	}
}

func TestSearchByKeyword(t *testing.T) {
	s := newTestController()
	res := s.SearchByKeyword("manhattan")
	if !equalIDs(ids(res.Properties), []int{2, 6}) {
		t.Errorf("SearchByKeyword: got %v, want [2 6]", ids(res.Properties))
	}
}

func TestPropertyLookup(t *testing.T) {
	s := newTestController()

	if p, err := s.Property(3); err != nil || p.Title != "Waterfront Luxury Condo" {
		t.Errorf("Property(3): got %q, %v", p.Title, err)
	}
	if _, err := s.Property(99); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Property(99): got %v, want ErrNotFound", err)
	}

	got := ids(s.Properties([]int{6, 99, 1}))
	if !equalIDs(got, []int{6, 1}) {
		t.Errorf("Properties: got %v, want [6 1]", got)
	}
}

func TestFeaturedAndPrint(t *testing.T) {
	s := newTestController()
	res := s.Featured()
	if res.Count != 3 {
		t.Fatalf("Featured: got %d, want 3", res.Count)
	}

	var buf bytes.Buffer
	s.Print(&buf, res)
	if !strings.Contains(buf.String(), "3 properties found") {
		t.Errorf("Print output missing the result count:\n%s", buf.String())
	}
}
