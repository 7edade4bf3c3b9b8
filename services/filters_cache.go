package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stayhub/dto"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters fills gaps in the new request from the previous one so a
// follow-up search keeps its earlier constraints.
func MergeFilters(old *dto.SearchFilters, next *dto.SearchFilters) *dto.SearchFilters {
	next.Query = orString(next.Query, old.Query)
	next.City = orString(next.City, old.City)
	next.Country = orString(next.Country, old.Country)
	next.Category = orString(next.Category, old.Category)
	next.People = orIntPointer(next.People, old.People)
	next.FromDate = orTimePointer(next.FromDate, old.FromDate)
	next.ToDate = orTimePointer(next.ToDate, old.ToDate)

	// a re-entered bound can invalidate the remembered opposite bound
	if next.PriceMin != nil && old.PriceMax != nil && *next.PriceMin > *old.PriceMax {
		next.PriceMax = nil
	} else {
		next.PriceMax = orIntPointer(next.PriceMax, old.PriceMax)
	}

	if next.PriceMax != nil && old.PriceMin != nil && *next.PriceMax < *old.PriceMin {
		next.PriceMin = nil
	} else {
		next.PriceMin = orIntPointer(next.PriceMin, old.PriceMin)
	}
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orTimePointer(newVal, oldVal *time.Time) *time.Time {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
