package models

import "time"

// RoomPricing overrides a room category's nightly price for a date range.
type RoomPricing struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"propertyId" gorm:"index"`
	RoomID     uint      `json:"roomId"`
	FromDate   time.Time `json:"fromDate" gorm:"type:date"`
	ToDate     time.Time `json:"toDate" gorm:"type:date"`
	Price      int       `json:"price"`
	IsDeleted  bool      `json:"isDeleted" gorm:"default:false"`
	CreatedBy  uint      `json:"createdBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Room       Room      `json:"-" gorm:"foreignKey:RoomID"`
}

// SpecialDeal is an owner promotion surfaced by availability search when
// its window overlaps the searched range.
type SpecialDeal struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	PropertyID         uint      `json:"propertyId" gorm:"index"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discountPercentage"`
	FromDate           time.Time `json:"fromDate" gorm:"type:date"`
	ToDate             time.Time `json:"toDate" gorm:"type:date"`
	IsDeleted          bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
