package services

import (
	"testing"
	"time"

	"stayhub/dto"
)

func intPtr(n int) *int { return &n }

func TestMergeFilters(t *testing.T) {
	t.Run("new values win over old", func(t *testing.T) {
		old := &dto.SearchFilters{City: "Toronto", Country: "Canada"}
		next := &dto.SearchFilters{City: "Vancouver"}

		merged := MergeFilters(old, next)
		if merged.City != "Vancouver" {
			t.Errorf("City = %q, want Vancouver", merged.City)
		}
		if merged.Country != "Canada" {
			t.Errorf("Country = %q, want Canada carried over", merged.Country)
		}
	})

	t.Run("old values fill gaps", func(t *testing.T) {
		from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		old := &dto.SearchFilters{Category: "Deluxe", People: intPtr(2), FromDate: &from}
		next := &dto.SearchFilters{}

		merged := MergeFilters(old, next)
		if merged.Category != "Deluxe" {
			t.Errorf("Category = %q, want Deluxe", merged.Category)
		}
		if merged.People == nil || *merged.People != 2 {
			t.Errorf("People = %v, want 2", merged.People)
		}
		if merged.FromDate == nil || !merged.FromDate.Equal(from) {
			t.Errorf("FromDate = %v, want %v", merged.FromDate, from)
		}
	})

	t.Run("re-entered min above old max drops the max", func(t *testing.T) {
		old := &dto.SearchFilters{PriceMax: intPtr(100)}
		next := &dto.SearchFilters{PriceMin: intPtr(150)}

		merged := MergeFilters(old, next)
		if merged.PriceMax != nil {
			t.Errorf("PriceMax = %v, want nil", *merged.PriceMax)
		}
		if merged.PriceMin == nil || *merged.PriceMin != 150 {
			t.Errorf("PriceMin = %v, want 150", merged.PriceMin)
		}
	})

	t.Run("re-entered max below old min drops the min", func(t *testing.T) {
		old := &dto.SearchFilters{PriceMin: intPtr(200)}
		next := &dto.SearchFilters{PriceMax: intPtr(100)}

		merged := MergeFilters(old, next)
		if merged.PriceMin != nil {
			t.Errorf("PriceMin = %v, want nil", *merged.PriceMin)
		}
	})

	t.Run("compatible bounds are both kept", func(t *testing.T) {
		old := &dto.SearchFilters{PriceMin: intPtr(50), PriceMax: intPtr(300)}
		next := &dto.SearchFilters{}

		merged := MergeFilters(old, next)
		if merged.PriceMin == nil || *merged.PriceMin != 50 {
			t.Errorf("PriceMin = %v, want 50", merged.PriceMin)
		}
		if merged.PriceMax == nil || *merged.PriceMax != 300 {
			t.Errorf("PriceMax = %v, want 300", merged.PriceMax)
		}
	})
}
