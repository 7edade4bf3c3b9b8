package models

import "time"

// PaymentTransaction records a payment attempt against a booking. Gateway
// calls happen elsewhere; only the outcome is stored here.
type PaymentTransaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId" gorm:"index"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	Booking   Booking   `json:"-" gorm:"foreignKey:BookingID"`
}
