package services

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// BookingSearchCacheKey is the cache key for one property's availability
// report over a date range.
func BookingSearchCacheKey(propertyID uint, from, to string) string {
	return fmt.Sprintf("%s%s:%s", BookingSearchCachePrefix(propertyID), from, to)
}

// BookingSearchCachePrefix covers every cached report for a property,
// whatever the range. Invalidation deletes by this prefix.
func BookingSearchCachePrefix(propertyID uint) string {
	return fmt.Sprintf("booking_search:%d:", propertyID)
}

// DeleteByPrefix drops every key under prefix, scanning in batches.
func DeleteByPrefix(ctx context.Context, rdb *redis.Client, prefix string) error {
	iter := rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}

// InvalidateBookingSearchCache drops a property's cached availability
// reports. Called after any mutation that changes its occupancy: booking
// commits, cancellations, payment confirmations and unavailability
// declarations.
func InvalidateBookingSearchCache(ctx context.Context, rdb *redis.Client, propertyID uint) error {
	if rdb == nil {
		return nil
	}
	return DeleteByPrefix(ctx, rdb, BookingSearchCachePrefix(propertyID))
}
