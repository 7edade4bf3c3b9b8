package controllers

import (
	"testing"

	"stayhub/models"
)

func TestAverageStars(t *testing.T) {
	t.Run("plain average", func(t *testing.T) {
		ratings := []models.Rating{{Stars: 5}, {Stars: 3}, {Stars: 4}}
		if got := averageStars(ratings); got != 4.0 {
			t.Errorf("averageStars = %v, want 4.0", got)
		}
	})

	t.Run("soft-deleted ratings drop out", func(t *testing.T) {
		ratings := []models.Rating{{Stars: 5}, {Stars: 1, IsDeleted: true}}
		if got := averageStars(ratings); got != 5.0 {
			t.Errorf("averageStars = %v, want 5.0", got)
		}
	})

	t.Run("no ratings", func(t *testing.T) {
		if got := averageStars(nil); got != 0 {
			t.Errorf("averageStars(nil) = %v, want 0", got)
		}
	})
}

func TestRatingValidateStars(t *testing.T) {
	for _, stars := range []int{1, 3, 5} {
		r := models.Rating{Stars: stars}
		if err := r.ValidateStars(); err != nil {
			t.Errorf("ValidateStars(%d) = %v, want nil", stars, err)
		}
	}
	for _, stars := range []int{0, 6, -1} {
		r := models.Rating{Stars: stars}
		if err := r.ValidateStars(); err == nil {
			t.Errorf("ValidateStars(%d) = nil, want error", stars)
		}
	}
}
