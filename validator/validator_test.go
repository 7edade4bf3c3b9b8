package validator

import (
	"testing"
	"time"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestParseDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		from, to, err := ParseDateRange(futureDate(1), futureDate(3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !to.After(from) {
			t.Errorf("expected to > from, got %v..%v", from, to)
		}
	})

	t.Run("past start rejected", func(t *testing.T) {
		_, _, err := ParseDateRange("2020-01-01", futureDate(3))
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidDateRange {
			t.Fatalf("expected INVALID_DATE_RANGE, got %v", err)
		}
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, _, err := ParseDateRange(futureDate(5), futureDate(2))
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidDateRange {
			t.Fatalf("expected INVALID_DATE_RANGE, got %v", err)
		}
	})

	t.Run("bad format rejected", func(t *testing.T) {
		_, _, err := ParseDateRange("01/06/2024", futureDate(3))
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidFormat {
			t.Fatalf("expected INVALID_FORMAT, got %v", err)
		}
	})
}

func TestParseBookingDates(t *testing.T) {
	// same-day checkin/checkout is not a stay
	_, _, err := ParseBookingDates(futureDate(1), futureDate(1))
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidDateRange {
		t.Fatalf("expected INVALID_DATE_RANGE for zero-night booking, got %v", err)
	}

	if _, _, err := ParseBookingDates(futureDate(1), futureDate(2)); err != nil {
		t.Fatalf("one-night booking should be valid: %v", err)
	}
}

func TestValidateBookingRequest(t *testing.T) {
	req := &dto.CreateBookingRequest{
		PropertyID: 1,
		LineItems: []dto.BookingLineItemRequest{
			{RoomID: 1, NoOfRooms: 2, NoOfAdults: 2},
		},
	}
	if err := ValidateBookingRequest(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.LineItems[0].NoOfRooms = 0
	if err := ValidateBookingRequest(req); err == nil {
		t.Fatal("expected error for zero rooms")
	}

	req.LineItems = nil
	if err := ValidateBookingRequest(req); err == nil {
		t.Fatal("expected error for empty line items")
	}
}

func TestValidateUser(t *testing.T) {
	user := &models.User{
		Email:       "guest@example.com",
		Password:    "secret1",
		PhoneNumber: "9800000001",
	}
	if err := ValidateUser(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("bad email", func(t *testing.T) {
		u := *user
		u.Email = "not-an-email"
		appErr := errors.GetAppError(ValidateUser(&u))
		if appErr == nil || appErr.Code != errors.ErrCodeInvalidEmail {
			t.Fatalf("expected INVALID_EMAIL, got %v", appErr)
		}
	})

	t.Run("short password", func(t *testing.T) {
		u := *user
		u.Password = "abc"
		if err := ValidateUser(&u); err == nil {
			t.Fatal("expected error for short password")
		}
	})
}
