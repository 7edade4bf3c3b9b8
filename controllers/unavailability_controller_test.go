package controllers

import (
	"testing"

	"github.com/lib/pq"

	"stayhub/constants"
	"stayhub/models"
)

func TestSameRoomSet(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"identical", []string{"1", "2"}, []string{"1", "2"}, true},
		{"order ignored", []string{"2", "1"}, []string{"1", "2"}, true},
		{"repeats ignored", []string{"1", "1", "2"}, []string{"1", "2"}, true},
		{"different rooms", []string{"1", "2"}, []string{"1", "3"}, false},
		{"subset", []string{"1"}, []string{"1", "2"}, false},
		{"both empty", nil, nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sameRoomSet(tc.a, tc.b); got != tc.want {
				t.Errorf("sameRoomSet(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestHasDuplicateDeclaration(t *testing.T) {
	existing := []models.RoomUnavailability{
		{ID: 7, RoomType: constants.CategorySingle, RoomNumbers: pq.StringArray{"1", "2"}},
		{ID: 9, RoomType: constants.CategorySingle, RoomNumbers: pq.StringArray{"3"}},
	}

	t.Run("same rooms again is a duplicate", func(t *testing.T) {
		if !hasDuplicateDeclaration(existing, []string{"2", "1"}, 0) {
			t.Error("expected duplicate for the same room set")
		}
	})

	t.Run("different rooms are not", func(t *testing.T) {
		if hasDuplicateDeclaration(existing, []string{"1", "3"}, 0) {
			t.Error("did not expect a duplicate for a different room set")
		}
	})

	t.Run("updates skip the record being rewritten", func(t *testing.T) {
		if hasDuplicateDeclaration(existing, []string{"1", "2"}, 7) {
			t.Error("an update must not collide with its own record")
		}
	})

	t.Run("but still collide with other records", func(t *testing.T) {
		if !hasDuplicateDeclaration(existing, []string{"3"}, 7) {
			t.Error("expected duplicate against another record")
		}
	})
}
