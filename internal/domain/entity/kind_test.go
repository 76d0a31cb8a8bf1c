package entity_test

import (
	"testing"

	"turismo-api/internal/domain/entity"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    entity.Kind
		wantErr bool
	}{
		{"place", entity.KindPlace, false},
		{"restaurant", entity.KindRestaurant, false},
		{"Place", "", true},
		{"lugares", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := entity.ParseKind(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): want error, got %v", c.in, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
	}
}

func TestKind_tableNames(t *testing.T) {
	if got := entity.KindPlace.JunctionTable(); got != "place_reviews" {
		t.Errorf("place junction = %q", got)
	}
	if got := entity.KindRestaurant.JunctionTable(); got != "restaurant_reviews" {
		t.Errorf("restaurant junction = %q", got)
	}
	if got := entity.KindPlace.ForeignKey(); got != "place_id" {
		t.Errorf("place fk = %q", got)
	}
	if got := entity.KindRestaurant.ForeignKey(); got != "restaurant_id" {
		t.Errorf("restaurant fk = %q", got)
	}
}

func TestZeroStats(t *testing.T) {
	s := entity.ZeroStats()
	if s.Count != 0 || s.Average != 0 {
		t.Fatalf("zero stats = %+v", s)
	}
	if len(s.Distribution) != 5 {
		t.Fatalf("distribution must carry all 5 rating keys, got %v", s.Distribution)
	}
	for r := entity.MinRating; r <= entity.MaxRating; r++ {
		if s.Distribution[r] != 0 {
			t.Errorf("distribution[%d] = %d, want 0", r, s.Distribution[r])
		}
	}
}
