package builders

import (
	"time"

	"stayhub/constants"
	"stayhub/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder returns a builder with a Draft booking.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			PaymentStatus: constants.PaymentStatusDraft,
		},
	}
}

// WithCode sets the public booking code.
func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.booking.Code = code
	return b
}

// WithProperty sets the property the booking belongs to.
func (b *BookingBuilder) WithProperty(propertyID uint) *BookingBuilder {
	b.booking.PropertyID = propertyID
	return b
}

// WithUser sets the booking owner, nil for walk-in guests.
func (b *BookingBuilder) WithUser(userID *uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithDates sets the stay range.
func (b *BookingBuilder) WithDates(checkin, checkout time.Time) *BookingBuilder {
	b.booking.CheckinDate = checkin
	b.booking.CheckoutDate = checkout
	return b
}

// WithGuestInfo sets the guest contact details.
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithPaymentStatus overrides the default Draft status.
func (b *BookingBuilder) WithPaymentStatus(status string) *BookingBuilder {
	b.booking.PaymentStatus = status
	return b
}

// WithAmounts sets the total and GST amounts.
func (b *BookingBuilder) WithAmounts(total, gst float64) *BookingBuilder {
	b.booking.TotalAmount = total
	b.booking.GSTAmount = gst
	return b
}

// WithDetails sets the per-category line items.
func (b *BookingBuilder) WithDetails(details []models.BookingDetail) *BookingBuilder {
	b.booking.Details = details
	return b
}

// Build returns the assembled booking.
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
