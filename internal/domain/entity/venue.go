// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Venue and Review, along with
// their validation rules and domain-specific errors.
package entity

// Venue represents a reviewable subject in the system: a place or a restaurant.
// The identifier is store-assigned and immutable; Kind decides which junction
// table links the venue to its reviews.
type Venue struct {
	ID          int64
	Kind        Kind
	Name        string
	Category    string
	Description string
	// Schedule is the free-text opening-hours string shown to users.
	Schedule string
}
