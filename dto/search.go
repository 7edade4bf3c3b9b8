package dto

import "time"

// SearchFilters is the typed query for property search. It is parsed once
// per request and passed by value; the previous request's filters can be
// merged in from the session cache.
type SearchFilters struct {
	Query    string
	City     string
	Country  string
	Category string
	PriceMin *int
	PriceMax *int
	People   *int
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	Limit    int
}

// AvailabilityQuery is the typed query for the booking-search endpoint.
type AvailabilityQuery struct {
	PropertyID uint
	FromDate   time.Time
	ToDate     time.Time
}

// SpecialDealResponse is a promotion overlapping the searched range.
type SpecialDealResponse struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discountPercentage"`
	FromDate           string  `json:"fromDate"`
	ToDate             string  `json:"toDate"`
}

// BookingSearchResponse is the availability report plus overlapping deals.
type BookingSearchResponse struct {
	SpecialDeals []SpecialDealResponse `json:"specialDeals"`
	RoomDetails  []RoomAvailability    `json:"roomDetails"`
}

// RoomAvailability is one category row of the availability report.
type RoomAvailability struct {
	ID             uint   `json:"id"`
	Category       string `json:"category"`
	AvailableCount int    `json:"availableCount"`
}
