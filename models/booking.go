package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"stayhub/constants"
)

// Booking holds a date range [CheckinDate, CheckoutDate) against a
// property's room inventory. Only non-Draft, non-cancelled, non-deleted
// bookings count toward occupancy.
type Booking struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Code          string          `json:"code" gorm:"uniqueIndex"`
	PropertyID    uint            `json:"propertyId" gorm:"index"`
	UserID        *uint           `json:"userId"`
	CheckinDate   time.Time       `json:"checkinDate" gorm:"type:date;index"`
	CheckoutDate  time.Time       `json:"checkoutDate" gorm:"type:date;index"`
	PaymentStatus string          `json:"paymentStatus" gorm:"default:Draft"`
	PaidAmount    float64         `json:"paidAmount"`
	TotalAmount   float64         `json:"totalAmount"`
	GSTAmount     float64         `json:"gstAmount"`
	GuestName     string          `json:"guestName,omitempty"`
	GuestEmail    string          `json:"guestEmail,omitempty"`
	GuestPhone    string          `json:"guestPhone,omitempty"`
	Cancelled     bool            `json:"cancelled" gorm:"default:false"`
	IsDeleted     bool            `json:"isDeleted" gorm:"default:false"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Property      Property        `json:"property" gorm:"foreignKey:PropertyID"`
	User          *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Details       []BookingDetail `json:"details" gorm:"foreignKey:BookingID"`
}

// BookingDetail is one line item: a number of rooms of one category,
// optionally pinned to explicit room numbers at check-in time.
type BookingDetail struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	BookingID     uint           `json:"bookingId" gorm:"index"`
	RoomID        uint           `json:"roomId"`
	NoOfRooms     int            `json:"noOfRooms"`
	AssignedRooms pq.StringArray `json:"assignedRooms" gorm:"type:text[]"`
	NoOfAdults    int            `json:"noOfAdults"`
	NoOfChildren  int            `json:"noOfChildren"`
	Price         float64        `json:"price"`
	Room          Room           `json:"room" gorm:"foreignKey:RoomID"`
}

// Active reports whether the booking counts toward occupancy.
func (b *Booking) Active() bool {
	return b.PaymentStatus != constants.PaymentStatusDraft && !b.Cancelled && !b.IsDeleted
}

func (b *Booking) ValidatePaymentStatus() error {
	if !constants.IsValidPaymentStatus(b.PaymentStatus) {
		return fmt.Errorf("invalid payment status: %s", b.PaymentStatus)
	}
	return nil
}
