package dto

import (
	"encoding/json"
	"time"
)

type CreatePackageRequest struct {
	PropertyID  uint            `json:"propertyId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" binding:"required"`
	Inclusions  json.RawMessage `json:"inclusions"`
	Img         json.RawMessage `json:"img"`
}

type UpdatePackageRequest struct {
	ID uint `json:"id" binding:"required"`
	CreatePackageRequest
}

type PackageResponse struct {
	ID          uint            `json:"id"`
	PropertyID  uint            `json:"propertyId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Inclusions  json.RawMessage `json:"inclusions"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type CreatePackageBookingRequest struct {
	PackageID  uint   `json:"packageId" binding:"required"`
	UserID     uint   `json:"userId"`
	FromDate   string `json:"fromDate" binding:"required"`
	ToDate     string `json:"toDate" binding:"required"`
	NoOfPeople int    `json:"noOfPeople" binding:"required"`
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`
}

type UpdatePackageBookingRequest struct {
	FromDate   string `json:"fromDate" binding:"required"`
	ToDate     string `json:"toDate" binding:"required"`
	NoOfPeople int    `json:"noOfPeople" binding:"required"`
}

type PackageBookingResponse struct {
	ID            uint      `json:"id"`
	PackageID     uint      `json:"packageId"`
	PackageName   string    `json:"packageName"`
	FromDate      string    `json:"fromDate"`
	ToDate        string    `json:"toDate"`
	NoOfPeople    int       `json:"noOfPeople"`
	PaymentStatus string    `json:"paymentStatus"`
	TotalAmount   float64   `json:"totalAmount"`
	PaidAmount    float64   `json:"paidAmount"`
	Cancelled     bool      `json:"cancelled"`
	CreatedAt     time.Time `json:"createdAt"`
}
