package dto

import "time"

// BookingLineItemRequest is one category claim inside a booking request.
type BookingLineItemRequest struct {
	RoomID       uint     `json:"roomId" binding:"required"`
	NoOfRooms    int      `json:"noOfRooms" binding:"required"`
	RoomNumbers  []string `json:"roomNumbers"`
	NoOfAdults   int      `json:"noOfAdults"`
	NoOfChildren int      `json:"noOfChildren"`
}

type CreateBookingRequest struct {
	PropertyID   uint                     `json:"propertyId" binding:"required"`
	UserID       uint                     `json:"userId"`
	CheckinDate  string                   `json:"checkinDate" binding:"required"`
	CheckoutDate string                   `json:"checkoutDate" binding:"required"`
	LineItems    []BookingLineItemRequest `json:"lineItems" binding:"required"`
	GuestName    string                   `json:"guestName,omitempty"`
	GuestEmail   string                   `json:"guestEmail,omitempty"`
	GuestPhone   string                   `json:"guestPhone,omitempty"`
}

type UpdateBookingRequest struct {
	CheckinDate  string                   `json:"checkinDate" binding:"required"`
	CheckoutDate string                   `json:"checkoutDate" binding:"required"`
	LineItems    []BookingLineItemRequest `json:"lineItems" binding:"required"`
	GuestName    string                   `json:"guestName,omitempty"`
	GuestEmail   string                   `json:"guestEmail,omitempty"`
	GuestPhone   string                   `json:"guestPhone,omitempty"`
}

// ExtendCheckoutRequest moves a booking's checkout date.
type ExtendCheckoutRequest struct {
	CheckoutDate string `json:"checkoutDate" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	ID            uint    `json:"id" binding:"required"`
	PaymentStatus string  `json:"paymentStatus" binding:"required"`
	PaidAmount    float64 `json:"paidAmount"`
}

type BookingLineItemResponse struct {
	RoomID        uint     `json:"roomId"`
	Category      string   `json:"category"`
	NoOfRooms     int      `json:"noOfRooms"`
	AssignedRooms []string `json:"assignedRooms"`
	NoOfAdults    int      `json:"noOfAdults"`
	NoOfChildren  int      `json:"noOfChildren"`
	Price         float64  `json:"price"`
}

type BookingResponse struct {
	ID            uint                      `json:"id"`
	Code          string                    `json:"code"`
	PropertyID    uint                      `json:"propertyId"`
	PropertyName  string                    `json:"propertyName"`
	CheckinDate   string                    `json:"checkinDate"`
	CheckoutDate  string                    `json:"checkoutDate"`
	PaymentStatus string                    `json:"paymentStatus"`
	PaidAmount    float64                   `json:"paidAmount"`
	TotalAmount   float64                   `json:"totalAmount"`
	GSTAmount     float64                   `json:"gstAmount"`
	GuestName     string                    `json:"guestName,omitempty"`
	GuestEmail    string                    `json:"guestEmail,omitempty"`
	GuestPhone    string                    `json:"guestPhone,omitempty"`
	Cancelled     bool                      `json:"cancelled"`
	CreatedAt     time.Time                 `json:"createdAt"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
	LineItems     []BookingLineItemResponse `json:"lineItems"`
}
