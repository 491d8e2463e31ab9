package services

import (
	"property-search/catalogue"
	"property-search/models"
	"property-search/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func sampleProperties() []models.Property {
	return catalogue.Default().All()
}

func ids(props []models.Property) []int {
	out := make([]int, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }
