package services

import (
	"strings"
	"testing"
)

// Every cached report key must fall under its property's prefix, and no
// property's prefix may cover another property's keys, or invalidating
// one property would evict (or miss) another's reports.
func TestBookingSearchCacheKeyUnderPrefix(t *testing.T) {
	key := BookingSearchCacheKey(42, "2024-06-01", "2024-06-05")
	if !strings.HasPrefix(key, BookingSearchCachePrefix(42)) {
		t.Errorf("key %q not under prefix %q", key, BookingSearchCachePrefix(42))
	}
}

func TestBookingSearchCachePrefixIsolation(t *testing.T) {
	key12 := BookingSearchCacheKey(12, "2024-06-01", "2024-06-05")
	if strings.HasPrefix(key12, BookingSearchCachePrefix(1)) {
		t.Errorf("property 1 prefix matches property 12 key %q", key12)
	}
}
