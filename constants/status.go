package constants

// User roles
const (
	RoleGuest = 0
	RoleOwner = 1
	RoleAdmin = 2
)

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// Booking payment status. Draft bookings never count toward occupancy.
const (
	PaymentStatusDraft    = "Draft"
	PaymentStatusPartial  = "Partial"
	PaymentStatusPaid     = "Paid"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

// Room categories
const (
	CategorySingle = "Single"
	CategoryDouble = "Double"
	CategoryDeluxe = "Deluxe"
)

// Categories lists every supported room category.
var Categories = []string{CategorySingle, CategoryDouble, CategoryDeluxe}

// Payment transaction status
const (
	TransactionSuccess = "success"
	TransactionFailure = "failure"
)

// Property status
const (
	PropertyStatusHidden  = 0
	PropertyStatusVisible = 1
)

// IsValidCategory reports whether category is one of the supported tiers.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidPaymentStatus reports whether status is a known booking payment status.
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusDraft, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
