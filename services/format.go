package services

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"property-search/models"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders a dollar amount with thousands separators, e.g. "$2,450,000".
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return printer.Sprintf("$%d", int64(amount))
	}
	return printer.Sprintf("$%.2f", amount)
}

// FormatPrice renders a card price; rentals are monthly.
func FormatPrice(p models.Property) string {
	if p.IsRental() {
		return FormatAmount(p.Price) + "/mo"
	}
	return FormatAmount(p.Price)
}

// FormatArea renders square footage, e.g. "3,500 sq ft".
func FormatArea(area float64) string {
	return printer.Sprintf("%d sq ft", int64(math.Round(area)))
}

// BadgeLabel is the ribbon shown on a card.
func BadgeLabel(p models.Property) string {
	switch {
	case p.Featured:
		return "Featured"
	case p.Status == models.StatusRent:
		return "For Rent"
	default:
		return "For Sale"
	}
}

// ResultCountLabel is the heading above a result list.
func ResultCountLabel(n int) string {
	if n == 1 {
		return "1 property found"
	}
	return printer.Sprintf("%d properties found", n)
}
