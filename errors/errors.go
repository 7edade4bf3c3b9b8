package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Availability errors
	ErrCodeInvalidRoomNumber        ErrorCode = "INVALID_ROOM_NUMBER"
	ErrCodeCategoryFullyBooked      ErrorCode = "CATEGORY_FULLY_BOOKED"
	ErrCodeInsufficientAvailability ErrorCode = "INSUFFICIENT_AVAILABILITY"
	ErrCodePropertyNotFound         ErrorCode = "PROPERTY_NOT_FOUND"
	ErrCodeInvalidDateRange         ErrorCode = "INVALID_DATE_RANGE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeLockContention   ErrorCode = "LOCK_CONTENTION"
)

// AppError is the application error carried through services and controllers.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from err, or nil.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// AvailabilityError is the typed rejection returned by the availability
// validator. Remaining is only meaningful for INSUFFICIENT_AVAILABILITY,
// where it reports how many rooms of the category are actually free.
type AvailabilityError struct {
	Code      ErrorCode
	Category  string
	Remaining int
}

func (e *AvailabilityError) Error() string {
	switch e.Code {
	case ErrCodeInvalidRoomNumber:
		return fmt.Sprintf("invalid room number for category %s", e.Category)
	case ErrCodeCategoryFullyBooked:
		return "all the rooms are already booked for the selected date range"
	case ErrCodeInsufficientAvailability:
		return fmt.Sprintf("only %d rooms of category %s are available for the selected date range", e.Remaining, e.Category)
	case ErrCodePropertyNotFound:
		return "property not found"
	case ErrCodeInvalidDateRange:
		return "invalid date range"
	}
	return string(e.Code)
}

// GetAvailabilityError extracts an AvailabilityError from err, or nil.
func GetAvailabilityError(err error) *AvailabilityError {
	var availErr *AvailabilityError
	if errors.As(err, &availErr) {
		return availErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingInvalid   = errors.New("invalid booking")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrBookingDeleted   = errors.New("booking already deleted")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")

	// Locking errors
	ErrPropertyLocked = errors.New("property is locked by another booking attempt")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
