package models

// ShopRecord is the flat wire shape of a shop as upstream records carry it:
// a free-text comma-joined address and taxonomy entries that may be either
// bare names or embedded objects.
type ShopRecord struct {
	ID                    uint              `json:"id"`
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	PriceRange            string            `json:"price_range"`
	AveragePricePerPerson float64           `json:"average_price_per_person"`
	Latitude              float64           `json:"latitude"`
	Longitude             float64           `json:"longitude"`
	Address               string            `json:"address"`
	PhoneNumber           string            `json:"phone_number"`
	Types                 []TaxonomyRef     `json:"types"`
	Cuisines              []TaxonomyRef     `json:"cuisines"`
	OpeningHours          []FormOpeningHour `json:"openingHours"`
	Images                []string          `json:"images"`
	HasAirPurifier        bool              `json:"has_air_purifier"`
	HasAirVentilator      bool              `json:"has_air_ventilator"`
	Status                ShopStatus        `json:"status"`
}
