package entity

import "fmt"

// Kind enumerates the reviewable venue kinds. Each kind owns its junction
// table and foreign-key column; every piece of SQL that touches a junction
// table must go through these accessors so the naming stays canonical.
type Kind string

const (
	KindPlace      Kind = "place"
	KindRestaurant Kind = "restaurant"
)

// ParseKind validates and returns a Kind from its wire representation.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlace, KindRestaurant:
		return Kind(s), nil
	}
	return "", fmt.Errorf("invalid kind: %q (must be place or restaurant)", s)
}

// JunctionTable returns the junction table linking reviews to venues of this kind.
func (k Kind) JunctionTable() string {
	if k == KindRestaurant {
		return "restaurant_reviews"
	}
	return "place_reviews"
}

// ForeignKey returns the venue foreign-key column inside the junction table.
func (k Kind) ForeignKey() string {
	if k == KindRestaurant {
		return "restaurant_id"
	}
	return "place_id"
}

// Valid reports whether the kind is one of the known enum values.
func (k Kind) Valid() bool {
	return k == KindPlace || k == KindRestaurant
}

// Kinds lists every known kind, in a stable order.
func Kinds() []Kind {
	return []Kind{KindPlace, KindRestaurant}
}
