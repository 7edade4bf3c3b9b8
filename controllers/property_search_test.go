package controllers

import (
	"testing"
	"time"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/services"

	"github.com/lib/pq"
)

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Montréal  ", "montreal"},
		{"SÃO PAULO", "sao paulo"},
		{"deluxe", "deluxe"},
	}
	for _, tc := range cases {
		if got := normalizeInput(tc.in); got != tc.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("hotel", "hotel"); got != 1.0 {
		t.Errorf("identical strings = %v, want 1.0", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("empty strings = %v, want 1.0", got)
	}
	if got := calculateSimilarity("deluxe", "deluxx"); got <= 0.7 {
		t.Errorf("one edit apart = %v, want > 0.7", got)
	}
	if got := calculateSimilarity("abc", "xyz"); got != 0.0 {
		t.Errorf("disjoint strings = %v, want 0.0", got)
	}
}

func TestParseCategoryFromQuery(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"deluxe room in kathmandu", "Deluxe"},
		{"luxury suite downtown", "Deluxe"},
		{"double room for a couple", "Double"},
		{"single room near airport", "Single"},
		{"somewhere by the lake", ""},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			if got := parseCategoryFromQuery(tc.query); got != tc.want {
				t.Errorf("parseCategoryFromQuery(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestExtractPeopleFromQuery(t *testing.T) {
	if got := extractPeopleFromQuery("room for 4 people"); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if got := extractPeopleFromQuery("2 adults near the beach"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	if got := extractPeopleFromQuery("quiet place"); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func searchFixtureProperty() models.Property {
	return models.Property{
		ID:      1,
		Name:    "Lakeside Lodge",
		City:    "Pokhara",
		Country: "Nepal",
		Rooms: []models.Room{
			{Category: "Single", RoomNumbers: pq.StringArray{"1", "2"}, Price: 80, Accommodates: 1},
			{Category: "Deluxe", RoomNumbers: pq.StringArray{"10"}, Price: 250, Accommodates: 4},
		},
	}
}

func TestIsPropertyMatch(t *testing.T) {
	p := searchFixtureProperty()

	t.Run("city filter", func(t *testing.T) {
		if !isPropertyMatch(p, &dto.SearchFilters{City: "pokhara"}) {
			t.Error("expected match on city")
		}
		if isPropertyMatch(p, &dto.SearchFilters{City: "kathmandu"}) {
			t.Error("expected no match on wrong city")
		}
	})

	t.Run("category filter", func(t *testing.T) {
		if !isPropertyMatch(p, &dto.SearchFilters{Category: "Deluxe"}) {
			t.Error("expected match on Deluxe")
		}
		if isPropertyMatch(p, &dto.SearchFilters{Category: "Double"}) {
			t.Error("expected no match on absent category")
		}
	})

	t.Run("price bounds apply per room", func(t *testing.T) {
		min := 200
		if !isPropertyMatch(p, &dto.SearchFilters{PriceMin: &min}) {
			t.Error("Deluxe room at 250 should satisfy min 200")
		}
		max := 50
		if isPropertyMatch(p, &dto.SearchFilters{PriceMax: &max}) {
			t.Error("no room is at or under 50")
		}
	})

	t.Run("people capacity", func(t *testing.T) {
		people := 3
		if !isPropertyMatch(p, &dto.SearchFilters{People: &people}) {
			t.Error("Deluxe accommodates 4, should match 3 people")
		}
		people = 5
		if isPropertyMatch(p, &dto.SearchFilters{People: &people}) {
			t.Error("no room accommodates 5")
		}
	})
}

func TestHasFreeRoom(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}
	r := services.DateRange{From: day("2024-06-01"), To: day("2024-06-05")}
	snapshot := &services.Snapshot{
		PropertyID: 1,
		Inventory: []services.CategoryInventory{
			{Category: "Single", RoomNumbers: []string{"1", "2"}},
			{Category: "Deluxe", RoomNumbers: []string{"10"}},
		},
		Holds: []services.BookingHold{
			{BookingID: 3, Category: "Deluxe", Quantity: 1, Range: r},
		},
	}

	t.Run("any category free", func(t *testing.T) {
		if !hasFreeRoom(snapshot, r, "") {
			t.Error("Single rooms are free, expected availability")
		}
	})

	t.Run("booked-out category filtered", func(t *testing.T) {
		if hasFreeRoom(snapshot, r, "Deluxe") {
			t.Error("the only Deluxe room is held, expected no availability")
		}
	})

	t.Run("free category filtered", func(t *testing.T) {
		if !hasFreeRoom(snapshot, r, "Single") {
			t.Error("expected Single availability")
		}
	})
}

func TestPrepareUniqueList(t *testing.T) {
	properties := []models.Property{
		{City: "Pokhara"},
		{City: "pokhara"},
		{City: "Kathmandu"},
		{City: ""},
	}
	list := prepareUniqueList(properties, "city")
	if len(list) != 2 {
		t.Fatalf("got %d unique cities, want 2: %v", len(list), list)
	}
}
