package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Property is an owner-managed accommodation with categorized room inventory.
type Property struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"userId"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Country      string          `json:"country"`
	Continent    string          `json:"continent"`
	Description  string          `json:"description"`
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	Avatar       string          `json:"avatar"`
	TimeCheckIn  string          `json:"timeCheckIn"`
	TimeCheckOut string          `json:"timeCheckOut"`
	Longitude    float64         `json:"longitude"`
	Latitude     float64         `json:"latitude"`
	Status       int             `json:"status"`
	IsDeleted    bool            `json:"isDeleted" gorm:"default:false"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	User         User            `json:"user" gorm:"foreignKey:UserID"`
	Rooms        []Room          `json:"rooms" gorm:"foreignKey:PropertyID"`
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be 0 or 1", p.Status)
	}
	return nil
}
