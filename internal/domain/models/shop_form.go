package models

// FormAddress is the structured address shape edited in the console form.
// It is derived from Shop.Address by a best-effort parse and rebuilt into the
// flat string on save.
type FormAddress struct {
	HouseNumber string `json:"house_number"`
	Moo         string `json:"moo"`
	Soi         string `json:"soi"`
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
}

// FormLocation is the coordinate pair of the form
type FormLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FormOpeningHour mirrors OpeningHour without persistence fields
type FormOpeningHour struct {
	DayOfWeek int    `json:"day_of_week"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// ShopForm is the structured shape the console edits. IsApproved is the
// inverse encoding of Shop.Status (active <-> true). AddressAmbiguous is set
// when the address parse had to guess (see ParseShopAddress).
type ShopForm struct {
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	PriceRange            string            `json:"price_range"`
	AveragePricePerPerson float64           `json:"average_price_per_person"`
	Location              FormLocation      `json:"location"`
	Address               FormAddress       `json:"address"`
	AddressAmbiguous      bool              `json:"address_ambiguous"`
	Phone                 string            `json:"phone"`
	Images                []string          `json:"images"`
	Types                 []uint            `json:"types"`
	Cuisines              []uint            `json:"cuisines"`
	OpeningHours          []FormOpeningHour `json:"opening_hours"`
	HasAirPurifier        bool              `json:"has_air_purifier"`
	HasFreshAirSystem     bool              `json:"has_fresh_air_system"`
	IsApproved            bool              `json:"is_approved"`
}
