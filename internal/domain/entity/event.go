package entity

import "time"

// Event represents a tourism event tied to a destination city.
type Event struct {
	ID            int64
	DestinationID int64
	Name          string
	EventType     string
	StartsAt      time.Time
}

// Destination represents the city an event takes place in.
type Destination struct {
	ID      int64
	City    string
	Country string
}
