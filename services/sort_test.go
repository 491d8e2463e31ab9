package services

import (
	"testing"

	"property-search/models"
)

func TestSortPriceLowIsAscending(t *testing.T) {
	got := Sort(sampleProperties(), models.SortPriceLow)
	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Errorf("price-low: %v before %v", got[i-1].Price, got[i].Price)
		}
	}
	if !equalIDs(ids(got), []int{3, 6, 5, 4, 2, 1}) {
		t.Errorf("price-low: got %v", ids(got))
	}
}

func TestSortPriceHighReversesPriceLow(t *testing.T) {
	low := ids(Sort(sampleProperties(), models.SortPriceLow))
	high := ids(Sort(sampleProperties(), models.SortPriceHigh))
	for i := range low {
		if low[i] != high[len(high)-1-i] {
			t.Fatalf("price-high %v is not the reverse of price-low %v", high, low)
		}
	}
}

func TestSortKeys(t *testing.T) {
	tests := []struct {
		key  models.SortKey
		want []int
	}{
		{models.SortAreaLarge, []int{6, 1, 2, 4, 3, 5}},
		{models.SortAreaSmall, []int{5, 3, 4, 2, 1, 6}},
		{models.SortNewest, []int{6, 5, 4, 3, 2, 1}},
		{models.SortNone, []int{1, 2, 3, 4, 5, 6}},
		{"bogus", []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		got := ids(Sort(sampleProperties(), tt.key))
		if !equalIDs(got, tt.want) {
			t.Errorf("Sort(%q): got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestSortIsStableAndPure(t *testing.T) {
	in := []models.Property{
		{ID: 1, Price: 100},
		{ID: 2, Price: 50},
		{ID: 3, Price: 100},
		{ID: 4, Price: 50},
	}
	got := ids(Sort(in, models.SortPriceLow))
	if !equalIDs(got, []int{2, 4, 1, 3}) {
		t.Errorf("stable price-low: got %v, want [2 4 1 3]", got)
	}
	if !equalIDs(ids(in), []int{1, 2, 3, 4}) {
		t.Errorf("input reordered: %v", ids(in))
	}
}
