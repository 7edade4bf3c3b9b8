package services

import (
	"sort"
	"time"

	"stayhub/errors"
)

// DateRange is an inclusive pair of dates. Callers guarantee From <= To;
// NewDateRange enforces it for external input.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a DateRange, rejecting inverted pairs.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if to.Before(from) {
		return DateRange{}, &errors.AvailabilityError{Code: errors.ErrCodeInvalidDateRange}
	}
	return DateRange{From: from, To: to}, nil
}

// Overlaps reports whether two ranges overlap. Boundaries are inclusive on
// both ends: a checkout date equal to another booking's checkin date counts
// as a conflict, so same-day turnover is treated conservatively.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.From.After(o.To) && !o.From.After(r.To)
}

// CategoryInventory is the declared room-number set for one category.
type CategoryInventory struct {
	Category    string
	RoomNumbers []string
}

// BookingHold is an active booking's claim on a category: quantity rooms
// over a date range. BookingID lets updates exclude their own prior hold.
type BookingHold struct {
	BookingID uint
	Category  string
	Quantity  int
	Range     DateRange
}

// UnavailabilityWindow withdraws explicit room numbers of one category for
// a date range.
type UnavailabilityWindow struct {
	Category    string
	RoomNumbers []string
	Range       DateRange
}

// Snapshot is the in-memory view of a property's inventory and current
// claims that the availability computations run against. It is loaded once
// per request and never mutated by the engine.
type Snapshot struct {
	PropertyID     uint
	Inventory      []CategoryInventory
	Holds          []BookingHold
	Unavailability []UnavailabilityWindow
}

// CategoryCount aggregates one category's state over a date range.
type CategoryCount struct {
	Category         string
	TotalRooms       int
	BookedCount      int
	UnavailableRooms []string
}

// Available is the number of free rooms, clamped at zero: overbooking past
// zero reports zero, never a negative number.
func (c CategoryCount) Available() int {
	n := c.TotalRooms - c.BookedCount - len(c.UnavailableRooms)
	if n < 0 {
		return 0
	}
	return n
}

// roomNumbers returns the declared set for category. A category absent from
// the inventory yields an empty set, which callers treat as zero capacity.
func (s *Snapshot) roomNumbers(category string) []string {
	var numbers []string
	for _, inv := range s.Inventory {
		if inv.Category == category {
			numbers = append(numbers, inv.RoomNumbers...)
		}
	}
	return numbers
}

// Count aggregates the booked quantity and withdrawn room numbers for one
// category over r. Holds belonging to excludeBookingID are skipped so that
// an update never counts its own prior reservation against itself.
func (s *Snapshot) Count(category string, r DateRange, excludeBookingID uint) CategoryCount {
	declared := s.roomNumbers(category)
	count := CategoryCount{
		Category:   category,
		TotalRooms: len(declared),
	}

	for _, hold := range s.Holds {
		if hold.Category != category {
			continue
		}
		if excludeBookingID != 0 && hold.BookingID == excludeBookingID {
			continue
		}
		if hold.Range.Overlaps(r) {
			count.BookedCount += hold.Quantity
		}
	}

	declaredSet := make(map[string]bool, len(declared))
	for _, n := range declared {
		declaredSet[n] = true
	}
	withdrawn := make(map[string]bool)
	for _, window := range s.Unavailability {
		if window.Category != category || !window.Range.Overlaps(r) {
			continue
		}
		for _, n := range window.RoomNumbers {
			if declaredSet[n] {
				withdrawn[n] = true
			}
		}
	}
	for n := range withdrawn {
		count.UnavailableRooms = append(count.UnavailableRooms, n)
	}
	sort.Strings(count.UnavailableRooms)

	return count
}

// CategoryAvailability is one row of an availability report.
type CategoryAvailability struct {
	Category       string `json:"category"`
	AvailableCount int    `json:"availableCount"`
}

// Report computes the free-room count for every category in the inventory
// over r. An empty inventory yields an empty report, not an error.
func (s *Snapshot) Report(r DateRange) []CategoryAvailability {
	seen := make(map[string]bool)
	var report []CategoryAvailability
	for _, inv := range s.Inventory {
		if seen[inv.Category] {
			continue
		}
		seen[inv.Category] = true
		count := s.Count(inv.Category, r, 0)
		report = append(report, CategoryAvailability{
			Category:       inv.Category,
			AvailableCount: count.Available(),
		})
	}
	return report
}

// LineItem is one category claim inside a booking or unavailability request.
type LineItem struct {
	Category    string
	RoomNumbers []string
	Quantity    int
}

// AvailabilityRequest is a proposed mutation to validate against the
// snapshot. ExcludeBookingID is set on updates so the record being updated
// does not conflict with itself.
type AvailabilityRequest struct {
	Range            DateRange
	LineItems        []LineItem
	ExcludeBookingID uint
}

// Validate accepts or rejects a proposed booking or unavailability
// declaration. It surfaces the first failing category's reason and has no
// side effects; persisting an accepted request is the caller's job.
func (s *Snapshot) Validate(req AvailabilityRequest) error {
	for _, item := range req.LineItems {
		declared := s.roomNumbers(item.Category)
		declaredSet := make(map[string]bool, len(declared))
		for _, n := range declared {
			declaredSet[n] = true
		}
		for _, n := range item.RoomNumbers {
			if !declaredSet[n] {
				return &errors.AvailabilityError{
					Code:     errors.ErrCodeInvalidRoomNumber,
					Category: item.Category,
				}
			}
		}

		count := s.Count(item.Category, req.Range, req.ExcludeBookingID)
		if count.BookedCount == count.TotalRooms {
			return &errors.AvailabilityError{
				Code:     errors.ErrCodeCategoryFullyBooked,
				Category: item.Category,
			}
		}
		remaining := count.TotalRooms - count.BookedCount
		if remaining < item.Quantity {
			if remaining < 0 {
				remaining = 0
			}
			return &errors.AvailabilityError{
				Code:      errors.ErrCodeInsufficientAvailability,
				Category:  item.Category,
				Remaining: remaining,
			}
		}
	}
	return nil
}
