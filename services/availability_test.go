package services

import (
	"testing"
	"time"

	"stayhub/constants"
	"stayhub/errors"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dr(from, to string) DateRange {
	return DateRange{From: date(from), To: date(to)}
}

func singleSnapshot() *Snapshot {
	return &Snapshot{
		PropertyID: 1,
		Inventory: []CategoryInventory{
			{Category: constants.CategorySingle, RoomNumbers: []string{"1", "2", "3"}},
		},
		Holds: []BookingHold{
			{BookingID: 10, Category: constants.CategorySingle, Quantity: 2, Range: dr("2024-06-01", "2024-06-05")},
		},
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"contained", dr("2024-06-02", "2024-06-03"), dr("2024-06-01", "2024-06-05"), true},
		{"left overlap", dr("2024-05-30", "2024-06-02"), dr("2024-06-01", "2024-06-05"), true},
		{"right overlap", dr("2024-06-04", "2024-06-08"), dr("2024-06-01", "2024-06-05"), true},
		{"identical", dr("2024-06-01", "2024-06-05"), dr("2024-06-01", "2024-06-05"), true},
		{"touching boundary conflicts", dr("2024-06-05", "2024-06-08"), dr("2024-06-01", "2024-06-05"), true},
		{"disjoint before", dr("2024-05-01", "2024-05-10"), dr("2024-06-01", "2024-06-05"), false},
		{"disjoint after", dr("2024-06-06", "2024-06-10"), dr("2024-06-01", "2024-06-05"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// overlap is symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestNewDateRange(t *testing.T) {
	if _, err := NewDateRange(date("2024-06-05"), date("2024-06-01")); err == nil {
		t.Fatal("expected error for inverted range")
	} else if availErr := errors.GetAvailabilityError(err); availErr == nil || availErr.Code != errors.ErrCodeInvalidDateRange {
		t.Fatalf("expected INVALID_DATE_RANGE, got %v", err)
	}
	if _, err := NewDateRange(date("2024-06-01"), date("2024-06-01")); err != nil {
		t.Fatalf("single-day range should be valid: %v", err)
	}
}

func TestCountMidRangeQuery(t *testing.T) {
	// Single has total=3 {1,2,3}; one active booking holds quantity=2 for
	// 2024-06-01..2024-06-05; a query for 2024-06-03..2024-06-04 reports 1.
	snap := singleSnapshot()
	count := snap.Count(constants.CategorySingle, dr("2024-06-03", "2024-06-04"), 0)
	if count.TotalRooms != 3 {
		t.Errorf("TotalRooms = %d, want 3", count.TotalRooms)
	}
	if count.BookedCount != 2 {
		t.Errorf("BookedCount = %d, want 2", count.BookedCount)
	}
	if got := count.Available(); got != 1 {
		t.Errorf("Available() = %d, want 1", got)
	}
}

func TestCountUnknownCategory(t *testing.T) {
	snap := singleSnapshot()
	count := snap.Count(constants.CategoryDeluxe, dr("2024-06-01", "2024-06-05"), 0)
	if count.TotalRooms != 0 || count.BookedCount != 0 || len(count.UnavailableRooms) != 0 {
		t.Errorf("unknown category should aggregate to zero capacity, got %+v", count)
	}
	if count.Available() != 0 {
		t.Errorf("Available() = %d, want 0", count.Available())
	}
}

func TestAvailableNeverNegative(t *testing.T) {
	snap := singleSnapshot()
	snap.Holds = append(snap.Holds, BookingHold{
		BookingID: 11, Category: constants.CategorySingle, Quantity: 5,
		Range: dr("2024-06-01", "2024-06-05"),
	})
	snap.Unavailability = []UnavailabilityWindow{
		{Category: constants.CategorySingle, RoomNumbers: []string{"1", "2"}, Range: dr("2024-06-01", "2024-06-10")},
	}
	count := snap.Count(constants.CategorySingle, dr("2024-06-02", "2024-06-03"), 0)
	if got := count.Available(); got != 0 {
		t.Errorf("overbooked category must report 0 available, got %d", got)
	}
}

func TestUnavailableRoomsIntersectDeclaredSet(t *testing.T) {
	snap := singleSnapshot()
	snap.Unavailability = []UnavailabilityWindow{
		{Category: constants.CategorySingle, RoomNumbers: []string{"3", "99"}, Range: dr("2024-06-01", "2024-06-10")},
		{Category: constants.CategorySingle, RoomNumbers: []string{"3"}, Range: dr("2024-06-02", "2024-06-04")},
	}
	count := snap.Count(constants.CategorySingle, dr("2024-06-03", "2024-06-04"), 0)
	if len(count.UnavailableRooms) != 1 || count.UnavailableRooms[0] != "3" {
		t.Errorf("UnavailableRooms = %v, want [3] (deduplicated, declared only)", count.UnavailableRooms)
	}
}

func TestValidateInvalidRoomNumber(t *testing.T) {
	snap := singleSnapshot()
	err := snap.Validate(AvailabilityRequest{
		Range: dr("2024-07-01", "2024-07-03"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, RoomNumbers: []string{"7"}, Quantity: 1},
		},
	})
	availErr := errors.GetAvailabilityError(err)
	if availErr == nil || availErr.Code != errors.ErrCodeInvalidRoomNumber {
		t.Fatalf("expected INVALID_ROOM_NUMBER, got %v", err)
	}
}

func TestValidateInsufficientAvailability(t *testing.T) {
	// Room 3 withdrawn for 2024-06-01..2024-06-10 plus the existing
	// quantity-2 booking: a request for quantity=2 is rejected and the
	// remaining count reflects the rooms still unbooked.
	snap := singleSnapshot()
	snap.Unavailability = []UnavailabilityWindow{
		{Category: constants.CategorySingle, RoomNumbers: []string{"3"}, Range: dr("2024-06-01", "2024-06-10")},
	}
	err := snap.Validate(AvailabilityRequest{
		Range: dr("2024-06-02", "2024-06-06"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, Quantity: 2},
		},
	})
	availErr := errors.GetAvailabilityError(err)
	if availErr == nil || availErr.Code != errors.ErrCodeInsufficientAvailability {
		t.Fatalf("expected INSUFFICIENT_AVAILABILITY, got %v", err)
	}
	if availErr.Remaining != 1 {
		t.Errorf("Remaining = %d, want 1", availErr.Remaining)
	}
}

func TestValidateCategoryFullyBooked(t *testing.T) {
	snap := singleSnapshot()
	snap.Holds = append(snap.Holds, BookingHold{
		BookingID: 12, Category: constants.CategorySingle, Quantity: 1,
		Range: dr("2024-06-01", "2024-06-05"),
	})
	err := snap.Validate(AvailabilityRequest{
		Range: dr("2024-06-03", "2024-06-04"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, Quantity: 1},
		},
	})
	availErr := errors.GetAvailabilityError(err)
	if availErr == nil || availErr.Code != errors.ErrCodeCategoryFullyBooked {
		t.Fatalf("expected CATEGORY_FULLY_BOOKED, got %v", err)
	}
}

func TestValidateAccepts(t *testing.T) {
	snap := singleSnapshot()
	req := AvailabilityRequest{
		Range: dr("2024-06-03", "2024-06-04"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, RoomNumbers: []string{"1"}, Quantity: 1},
		},
	}
	if err := snap.Validate(req); err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
	// validation is read-only: the same request validates identically twice
	if err := snap.Validate(req); err != nil {
		t.Fatalf("second validation differed: %v", err)
	}
}

func TestValidateSelfUpdateExclusion(t *testing.T) {
	// A booking updated to the very values it already holds must not be
	// blocked by its own prior reservation.
	snap := &Snapshot{
		PropertyID: 1,
		Inventory: []CategoryInventory{
			{Category: constants.CategorySingle, RoomNumbers: []string{"1", "2"}},
		},
		Holds: []BookingHold{
			{BookingID: 20, Category: constants.CategorySingle, Quantity: 2, Range: dr("2024-06-01", "2024-06-05")},
		},
	}
	req := AvailabilityRequest{
		Range: dr("2024-06-01", "2024-06-05"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, Quantity: 2},
		},
		ExcludeBookingID: 20,
	}
	if err := snap.Validate(req); err != nil {
		t.Fatalf("self-update must not conflict with itself: %v", err)
	}

	// without the exclusion the same request is rejected
	req.ExcludeBookingID = 0
	if err := snap.Validate(req); err == nil {
		t.Fatal("expected rejection without self-exclusion")
	}
}

func TestValidateTouchingBoundaryConflicts(t *testing.T) {
	snap := &Snapshot{
		PropertyID: 1,
		Inventory: []CategoryInventory{
			{Category: constants.CategorySingle, RoomNumbers: []string{"1"}},
		},
		Holds: []BookingHold{
			{BookingID: 30, Category: constants.CategorySingle, Quantity: 1, Range: dr("2024-06-01", "2024-06-05")},
		},
	}
	// checkin on the existing booking's checkout date still conflicts
	err := snap.Validate(AvailabilityRequest{
		Range: dr("2024-06-05", "2024-06-08"),
		LineItems: []LineItem{
			{Category: constants.CategorySingle, Quantity: 1},
		},
	})
	if err == nil {
		t.Fatal("same-day turnover must be treated as a conflict")
	}
}

func TestValidateAcceptThenCommitDecreasesAvailability(t *testing.T) {
	snap := singleSnapshot()
	r := dr("2024-06-02", "2024-06-04")
	before := snap.Count(constants.CategorySingle, r, 0).Available()

	req := AvailabilityRequest{
		Range: r,
		LineItems: []LineItem{
			{Category: constants.CategorySingle, Quantity: 1},
		},
	}
	if err := snap.Validate(req); err != nil {
		t.Fatalf("expected accept: %v", err)
	}
	if before < 1 {
		t.Fatalf("accepted a request with %d available", before)
	}

	// commit the accepted hold and recount
	snap.Holds = append(snap.Holds, BookingHold{
		BookingID: 40, Category: constants.CategorySingle, Quantity: 1, Range: r,
	})
	after := snap.Count(constants.CategorySingle, r, 0).Available()
	if after != before-1 {
		t.Errorf("availability after commit = %d, want %d", after, before-1)
	}
}

func TestReport(t *testing.T) {
	snap := &Snapshot{
		PropertyID: 1,
		Inventory: []CategoryInventory{
			{Category: constants.CategorySingle, RoomNumbers: []string{"1", "2", "3"}},
			{Category: constants.CategoryDouble, RoomNumbers: []string{"10", "11"}},
		},
		Holds: []BookingHold{
			{BookingID: 10, Category: constants.CategorySingle, Quantity: 2, Range: dr("2024-06-01", "2024-06-05")},
		},
		Unavailability: []UnavailabilityWindow{
			{Category: constants.CategoryDouble, RoomNumbers: []string{"10"}, Range: dr("2024-06-01", "2024-06-10")},
		},
	}
	report := snap.Report(dr("2024-06-02", "2024-06-04"))
	if len(report) != 2 {
		t.Fatalf("report rows = %d, want 2", len(report))
	}
	got := map[string]int{}
	for _, row := range report {
		got[row.Category] = row.AvailableCount
	}
	if got[constants.CategorySingle] != 1 {
		t.Errorf("Single available = %d, want 1", got[constants.CategorySingle])
	}
	if got[constants.CategoryDouble] != 1 {
		t.Errorf("Double available = %d, want 1", got[constants.CategoryDouble])
	}
}
