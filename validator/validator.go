package validator

import (
	"regexp"
	"time"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

const dateLayout = "2006-01-02"

// ValidateUser checks a user record before creation.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number is required", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}

	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}

	return nil
}

// ParseDateRange parses and validates a from/to date pair. The start date
// must not lie in the past and the end must not precede the start.
func ParseDateRange(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid from date, expected YYYY-MM-DD", err)
	}

	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid to date, expected YYYY-MM-DD", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if fromDate.Before(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "From date should not accept past dates", nil)
	}
	if toDate.Before(fromDate) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "To date should not be before from date", nil)
	}

	return fromDate, toDate, nil
}

// ParseDate parses a single YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date, expected YYYY-MM-DD", err)
	}
	return parsed, nil
}

// ParseBookingDates parses checkin/checkout and additionally requires at
// least one night.
func ParseBookingDates(checkin, checkout string) (time.Time, time.Time, error) {
	checkinDate, checkoutDate, err := ParseDateRange(checkin, checkout)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkoutDate.After(checkinDate) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Checkout date must be after checkin date", nil)
	}
	return checkinDate, checkoutDate, nil
}

// ValidateBookingRequest checks the request shape before any snapshot work.
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Property ID is required", nil)
	}
	if len(req.LineItems) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one line item is required", nil)
	}
	for _, item := range req.LineItems {
		if item.NoOfRooms <= 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Number of rooms must be positive", nil)
		}
		if item.NoOfAdults < 0 || item.NoOfChildren < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Occupant counts must not be negative", nil)
		}
	}
	return nil
}

// ValidateUnavailabilityRequest checks the request shape; room-number
// membership and capacity are validated against the snapshot afterwards.
func ValidateUnavailabilityRequest(req *dto.CreateUnavailabilityRequest) error {
	if req.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Property ID is required", nil)
	}
	if req.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type is required", nil)
	}
	if len(req.RoomNumbers) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room numbers are required", nil)
	}
	return nil
}

// isValidEmail reports whether email looks like an address.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone reports whether phone is a plausible number.
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,15}$`)
	return phoneRegex.MatchString(phone)
}
