package models

type Availability string

const (
	AvailabilityAll        Availability = "all"
	AvailabilityInStock    Availability = "inStock"
	AvailabilityOutOfStock Availability = "outOfStock"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAll, AvailabilityInStock, AvailabilityOutOfStock:
		return true
	}
	return false
}

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceLow  SortKey = "price-low"
	SortByPriceHigh SortKey = "price-high"
	SortByRating    SortKey = "rating"
	SortByNewest    SortKey = "newest"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPriceLow, SortByPriceHigh, SortByRating, SortByNewest:
		return true
	}
	return false
}

// Filter est un état de requête éphémère, jamais persisté
type Filter struct {
	Brands       []string     `json:"brands"`
	PriceRange   [2]float64   `json:"priceRange"`
	Availability Availability `json:"availability"`
	Rating       float64      `json:"rating"`
	SortBy       SortKey      `json:"sortBy"`
}

func DefaultFilter() Filter {
	return Filter{
		PriceRange:   [2]float64{0, 1000},
		Availability: AvailabilityAll,
		SortBy:       SortByName,
	}
}
