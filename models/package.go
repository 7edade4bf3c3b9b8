package models

import (
	"encoding/json"
	"time"
)

// Package is a bundled stay offer (room nights plus inclusions) sold at a
// fixed per-person price.
type Package struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	PropertyID  uint            `json:"propertyId" gorm:"index"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Inclusions  json.RawMessage `json:"inclusions" gorm:"type:json"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	IsDeleted   bool            `json:"isDeleted" gorm:"default:false"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Property    Property        `json:"-" gorm:"foreignKey:PropertyID"`
}

// PackageBooking books a package for a party over a date range. It follows
// the same payment-status lifecycle as Booking.
type PackageBooking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PackageID     uint      `json:"packageId" gorm:"index"`
	UserID        *uint     `json:"userId"`
	FromDate      time.Time `json:"fromDate" gorm:"type:date"`
	ToDate        time.Time `json:"toDate" gorm:"type:date"`
	NoOfPeople    int       `json:"noOfPeople"`
	PaymentStatus string    `json:"paymentStatus" gorm:"default:Draft"`
	PaidAmount    float64   `json:"paidAmount"`
	TotalAmount   float64   `json:"totalAmount"`
	GuestName     string    `json:"guestName,omitempty"`
	GuestEmail    string    `json:"guestEmail,omitempty"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	Cancelled     bool      `json:"cancelled" gorm:"default:false"`
	IsDeleted     bool      `json:"isDeleted" gorm:"default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Package       Package   `json:"package" gorm:"foreignKey:PackageID"`
	User          *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
