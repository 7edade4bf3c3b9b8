package builders

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/models"
)

func TestBookingBuilder(t *testing.T) {
	checkin := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	userID := uint(7)

	booking := NewBookingBuilder().
		WithCode("BK-ABCD1234").
		WithProperty(3).
		WithUser(&userID).
		WithDates(checkin, checkout).
		WithGuestInfo("Jordan Lee", "5551234567", "jordan@example.com").
		WithAmounts(452.0, 52.0).
		WithDetails([]models.BookingDetail{{RoomID: 9, NoOfRooms: 2}}).
		Build()

	if booking.Code != "BK-ABCD1234" {
		t.Errorf("Code = %q", booking.Code)
	}
	if booking.PropertyID != 3 {
		t.Errorf("PropertyID = %d", booking.PropertyID)
	}
	if booking.UserID == nil || *booking.UserID != 7 {
		t.Errorf("UserID = %v", booking.UserID)
	}
	if !booking.CheckinDate.Equal(checkin) || !booking.CheckoutDate.Equal(checkout) {
		t.Errorf("dates = %v..%v", booking.CheckinDate, booking.CheckoutDate)
	}
	if booking.TotalAmount != 452.0 || booking.GSTAmount != 52.0 {
		t.Errorf("amounts = %v / %v", booking.TotalAmount, booking.GSTAmount)
	}
	if len(booking.Details) != 1 || booking.Details[0].NoOfRooms != 2 {
		t.Errorf("details = %+v", booking.Details)
	}
}

func TestBookingBuilderDefaultsToDraft(t *testing.T) {
	booking := NewBookingBuilder().Build()
	if booking.PaymentStatus != constants.PaymentStatusDraft {
		t.Errorf("PaymentStatus = %q, want Draft", booking.PaymentStatus)
	}
	if booking.Active() {
		t.Error("a fresh Draft booking must not count toward occupancy")
	}
}
