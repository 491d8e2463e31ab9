package services

import (
	"io"
	"net/url"

	"property-search/catalogue"
	"property-search/models"
	"property-search/utils"
)

// SearchResult is what the rendering layer receives for one search.
type SearchResult struct {
	Properties []models.Property
	Count      int
	Summary    *models.ResultSummary
	// Criteria is what was applied, after invalid values were dropped.
	Criteria models.FilterCriteria
	// Ignored lists criteria values that did not parse and were skipped.
	Ignored []string
}

// SearchController runs searches against one catalogue. It holds no mutable
// state and is safe for concurrent use.
type SearchController struct {
	catalogue *catalogue.Catalogue
	insights  *InsightService
	logger    *utils.Logger
}

func NewSearchController(cat *catalogue.Catalogue, logger *utils.Logger) *SearchController {
	return &SearchController{
		catalogue: cat,
		insights:  NewInsightService(logger),
		logger:    logger,
	}
}

// Search filters the whole catalogue by c and orders the matches by c.SortKey.
func (s *SearchController) Search(c models.FilterCriteria) SearchResult {
	if len(c.Amenities) > 0 {
		s.logger.Debug("[search] Amenities %v ignored: catalogue has no amenity data", c.Amenities)
	}
	if c.SortKey != models.SortNone && !KnownSortKey(c.SortKey) {
		s.logger.Debug("[search] Unknown sort key %q, keeping catalogue order", c.SortKey)
	}

	res := s.result(Sort(Filter(s.catalogue.All(), c), c.SortKey))
	res.Criteria = c
	return res
}

// SearchQuery parses URL query values into criteria and runs Search.
// Unparseable values are dropped and logged.
func (s *SearchController) SearchQuery(values url.Values) SearchResult {
	c, errs := ParseCriteria(values)

	var ignored []string
	for _, err := range errs {
		s.logger.Warn("[search] Ignoring criteria value: %v", err)
		ignored = append(ignored, err.Error())
	}

	res := s.Search(c)
	res.Ignored = ignored
	return res
}

// SearchByKeyword matches keyword against titles and locations.
func (s *SearchController) SearchByKeyword(keyword string) SearchResult {
	return s.result(SearchKeyword(s.catalogue.All(), keyword))
}

// Property looks a single record up by id.
func (s *SearchController) Property(id int) (models.Property, error) {
	return s.catalogue.ByID(id)
}

// Properties resolves ids to records, skipping unknown ids. Used to render
// the favorites and comparison drawers.
func (s *SearchController) Properties(ids []int) []models.Property {
	out := make([]models.Property, 0, len(ids))
	for _, id := range ids {
		p, err := s.catalogue.ByID(id)
		if err != nil {
			s.logger.Debug("[search] Skipping unknown id %d", id)
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the featured properties in catalogue order.
func (s *SearchController) Featured() SearchResult {
	return s.result(s.catalogue.Featured())
}

// Suggest returns autocomplete suggestions for a partial query.
func (s *SearchController) Suggest(query string) []string {
	return Suggest(s.catalogue.All(), query)
}

// Print writes a result to the terminal.
func (s *SearchController) Print(w io.Writer, res SearchResult) {
	s.insights.Print(w, res.Properties, res.Summary)
}

func (s *SearchController) result(props []models.Property) SearchResult {
	if props == nil {
		props = []models.Property{}
	}
	return SearchResult{
		Properties: props,
		Count:      len(props),
		Summary:    s.insights.Generate(props),
	}
}
