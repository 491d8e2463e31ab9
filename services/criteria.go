package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"property-search/models"
)

// Query parameter names shared by the search form and the URL.
const (
	ParamPropertyType = "propertyType"
	ParamLocation     = "location"
	ParamBedrooms     = "bedrooms"
	ParamPriceRange   = "priceRange"
	ParamMinPrice     = "minPrice"
	ParamMaxPrice     = "maxPrice"
	ParamMinArea      = "minArea"
	ParamMaxArea      = "maxArea"
	ParamAmenities    = "amenities"
	ParamSort         = "sort"
)

var (
	// amountRegexp captures a signed numeric amount, allowing thousands separators
	amountRegexp = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)
	// countRegexp captures a signed whole number
	countRegexp = regexp.MustCompile(`-?\d+`)
)

// ParseCriteria turns query-string values into FilterCriteria. Absent or empty
// parameters impose no constraint. A value that does not parse is skipped and
// reported in the returned error list; the rest of the criteria still apply.
func ParseCriteria(values url.Values) (models.FilterCriteria, []error) {
	var (
		c    models.FilterCriteria
		errs []error
	)

	get := func(name string) string {
		return strings.TrimSpace(values.Get(name))
	}
	fail := func(name, raw string, err error) {
		errs = append(errs, fmt.Errorf("%s=%q: %w", name, raw, err))
	}
	amount := func(name string) *float64 {
		raw := get(name)
		if raw == "" {
			return nil
		}
		v, err := parseAmount(raw)
		if err != nil {
			fail(name, raw, err)
			return nil
		}
		return &v
	}

	c.PropertyType = models.PropertyType(get(ParamPropertyType))
	c.Location = get(ParamLocation)

	if raw := get(ParamBedrooms); raw != "" {
		n, err := parseCount(raw)
		if err != nil {
			fail(ParamBedrooms, raw, err)
		} else {
			c.Bedrooms = &n
		}
	}

	if raw := get(ParamPriceRange); raw != "" {
		r, err := ParsePriceRange(raw)
		if err != nil {
			fail(ParamPriceRange, raw, err)
		} else {
			c.PriceRange = &r
		}
	}

	c.MinPrice = amount(ParamMinPrice)
	c.MaxPrice = amount(ParamMaxPrice)
	c.MinArea = amount(ParamMinArea)
	c.MaxArea = amount(ParamMaxArea)

	for _, v := range values[ParamAmenities] {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				c.Amenities = append(c.Amenities, a)
			}
		}
	}

	c.SortKey = models.SortKey(get(ParamSort))
	return c, errs
}

// EncodeCriteria is the inverse of ParseCriteria: only constrained fields are
// written, so decoding the result yields equivalent criteria.
func EncodeCriteria(c models.FilterCriteria) url.Values {
	v := url.Values{}
	amount := func(name string, f *float64) {
		if f != nil {
			v.Set(name, strconv.FormatFloat(*f, 'f', -1, 64))
		}
	}

	if c.PropertyType != "" {
		v.Set(ParamPropertyType, string(c.PropertyType))
	}
	if c.Location != "" {
		v.Set(ParamLocation, c.Location)
	}
	if c.Bedrooms != nil {
		v.Set(ParamBedrooms, strconv.Itoa(*c.Bedrooms))
	}
	if c.PriceRange != nil {
		v.Set(ParamPriceRange, c.PriceRange.String())
	}
	amount(ParamMinPrice, c.MinPrice)
	amount(ParamMaxPrice, c.MaxPrice)
	amount(ParamMinArea, c.MinArea)
	amount(ParamMaxArea, c.MaxArea)
	for _, a := range c.Amenities {
		v.Add(ParamAmenities, a)
	}
	if c.SortKey != models.SortNone {
		v.Set(ParamSort, string(c.SortKey))
	}
	return v
}

// ParsePriceRange parses the search form's price bracket. Accepted forms:
//
//	"1000000-2000000"  closed range
//	"2000000-+"        open upper bound
//	"2000000+"         open upper bound
//	"2000000"          open upper bound
func ParsePriceRange(raw string) (models.PriceRange, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)

	lo, err := parseAmount(strings.TrimSuffix(strings.TrimSpace(parts[0]), "+"))
	if err != nil {
		return models.PriceRange{}, err
	}

	if len(parts) == 1 {
		return models.PriceRange{Min: lo, Unbounded: true}, nil
	}

	upper := strings.TrimSpace(parts[1])
	if strings.Contains(upper, "+") {
		return models.PriceRange{Min: lo, Unbounded: true}, nil
	}
	hi, err := parseAmount(upper)
	if err != nil {
		return models.PriceRange{}, err
	}
	return models.PriceRange{Min: lo, Max: hi}, nil
}

// parseAmount extracts the first numeric amount from raw, so "$1,200,000"
// and "1200000" give the same value.
func parseAmount(raw string) (float64, error) {
	match := amountRegexp.FindString(raw)
	if match == "" {
		return 0, models.ErrInvalidCriteriaValue
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, models.ErrInvalidCriteriaValue)
	}
	return v, nil
}

func parseCount(raw string) (int, error) {
	match := countRegexp.FindString(raw)
	if match == "" {
		return 0, models.ErrInvalidCriteriaValue
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, models.ErrInvalidCriteriaValue)
	}
	return n, nil
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
