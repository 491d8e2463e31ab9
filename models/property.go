package models

// PropertyType is the kind of building a listing describes.
type PropertyType string

const (
	TypeHouse      PropertyType = "house"
	TypeApartment  PropertyType = "apartment"
	TypeCondo      PropertyType = "condo"
	TypeVilla      PropertyType = "villa"
	TypeCommercial PropertyType = "commercial"
	TypeLand       PropertyType = "land"
)

// Status tells whether Price is a sale price or a monthly rent.
type Status string

const (
	StatusSale Status = "sale"
	StatusRent Status = "rent"
)

// Property is one catalogue record. Records are created once at load time
// and never mutated afterwards.
type Property struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	Location  string       `json:"location"`
	Price     float64      `json:"price"`
	Type      PropertyType `json:"type"`
	Bedrooms  int          `json:"bedrooms"`
	Bathrooms int          `json:"bathrooms"`
	Area      float64      `json:"area"`
	Image     string       `json:"image,omitempty"`
	Featured  bool         `json:"featured"`
	Status    Status       `json:"status"`
}

// IsRental reports whether the price is a monthly rent.
func (p Property) IsRental() bool {
	return p.Status == StatusRent
}

// ResultSummary holds the figures computed over one search result.
type ResultSummary struct {
	Total              int            `json:"total"`
	ForSale            int            `json:"for_sale"`
	ForRent            int            `json:"for_rent"`
	Featured           int            `json:"featured"`
	AveragePrice       float64        `json:"average_price"`
	MinPrice           float64        `json:"min_price"`
	MaxPrice           float64        `json:"max_price"`
	MostExpensive      *Property      `json:"most_expensive,omitempty"`
	ListingsByLocation map[string]int `json:"listings_by_location"`
}
