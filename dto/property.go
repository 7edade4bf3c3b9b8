package dto

import (
	"encoding/json"
	"time"
)

type CreatePropertyRequest struct {
	Name         string          `json:"name" binding:"required"`
	Address      string          `json:"address" binding:"required"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Continent    string          `json:"continent"`
	Description  string          `json:"description"`
	Img          json.RawMessage `json:"img"`
	Avatar       string          `json:"avatar"`
	TimeCheckIn  string          `json:"timeCheckIn"`
	TimeCheckOut string          `json:"timeCheckOut"`
	Longitude    float64         `json:"longitude"`
	Latitude     float64         `json:"latitude"`
}

type UpdatePropertyRequest struct {
	ID uint `json:"id" binding:"required"`
	CreatePropertyRequest
}

type PropertyResponse struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Continent    string         `json:"continent"`
	Avatar       string         `json:"avatar"`
	TimeCheckIn  string         `json:"timeCheckIn"`
	TimeCheckOut string         `json:"timeCheckOut"`
	Status       int            `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Rooms        []RoomResponse `json:"rooms,omitempty"`
}

type PropertyStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// ScoredProperty pairs a property with its fuzzy-search relevance score.
type ScoredProperty struct {
	Property PropertyResponse `json:"property"`
	Score    int              `json:"score"`
}

// CountryPropertyCount is one row of the home-page country listing.
type CountryPropertyCount struct {
	Location     string `json:"location"`
	Continent    string `json:"continent,omitempty"`
	NoOfProperty int    `json:"noOfProperty"`
}
