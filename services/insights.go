package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"property-search/models"
	"property-search/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the summary shown above a result list.
func (s *InsightService) Generate(properties []models.Property) *models.ResultSummary {
	report := &models.ResultSummary{
		ListingsByLocation: make(map[string]int),
	}

	if len(properties) == 0 {
		return report
	}

	report.Total = len(properties)

	var priced []models.Property
	for _, p := range properties {
		switch p.Status {
		case models.StatusSale:
			report.ForSale++
		case models.StatusRent:
			report.ForRent++
		}
		if p.Featured {
			report.Featured++
		}
		if p.Price > 0 {
			priced = append(priced, p)
		}
		report.ListingsByLocation[locationGroup(p.Location)]++
	}

	// Price stats (only properties with price > 0)
	if len(priced) > 0 {
		mostExpensive := priced[0]
		report.MinPrice = priced[0].Price
		report.MaxPrice = priced[0].Price
		var total float64
		for _, p := range priced {
			total += p.Price
			if p.Price < report.MinPrice {
				report.MinPrice = p.Price
			}
			if p.Price > report.MaxPrice {
				report.MaxPrice = p.Price
				mostExpensive = p
			}
		}
		report.MostExpensive = &mostExpensive
		report.AveragePrice = round2(total / float64(len(priced)))
	}

	return report
}

// locationGroup reduces "Manhattan, New York" to "Manhattan".
func locationGroup(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

// Print renders a result list and its summary for the terminal.
func (s *InsightService) Print(w io.Writer, properties []models.Property, r *models.ResultSummary) {
	sep := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  %s\033[0m\n", ResultCountLabel(r.Total))
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	for _, p := range properties {
		fmt.Fprintf(w, "  \033[1m#%-3d\033[0m %-34s %-10s \033[1;32m%s\033[0m\n",
			p.ID, truncate(p.Title, 32), BadgeLabel(p), FormatPrice(p))
		fmt.Fprintf(w, "       %s · %d bd · %d ba · %s\n",
			p.Location, p.Bedrooms, p.Bathrooms, FormatArea(p.Area))
	}
	if len(properties) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\033[1;33m  Summary\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  For sale : %d | For rent : %d | Featured : %d\n", r.ForSale, r.ForRent, r.Featured)
	if r.MostExpensive != nil {
		fmt.Fprintf(w, "  Price range   : %s – %s\n", FormatAmount(r.MinPrice), FormatAmount(r.MaxPrice))
		fmt.Fprintf(w, "  Average price : %s\n", FormatAmount(r.AveragePrice))
		fmt.Fprintf(w, "  Most expensive: %s (%s)\n", truncate(r.MostExpensive.Title, 40), FormatPrice(*r.MostExpensive))
	}

	if len(r.ListingsByLocation) > 0 {
		type locCount struct {
			loc   string
			count int
		}
		var locs []locCount
		for loc, cnt := range r.ListingsByLocation {
			locs = append(locs, locCount{loc, cnt})
		}
		// count descending, then name for a stable print
		sort.Slice(locs, func(i, j int) bool {
			if locs[i].count != locs[j].count {
				return locs[i].count > locs[j].count
			}
			return locs[i].loc < locs[j].loc
		})
		fmt.Fprintln(w)
		for _, lc := range locs {
			bar := strings.Repeat("█", lc.count)
			fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(lc.loc, 28), bar, lc.count)
		}
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
