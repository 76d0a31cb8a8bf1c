package entity

import "time"

// Review ratings are integers from MinRating to MaxRating inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a star-rated review. Text carries the packed
// title/body string (see usecase/review encoding); AuthoredOn is a
// calendar date with no time-of-day semantics. A review may exist with no
// venue linked to it; that is a valid, if useless, terminal state.
type Review struct {
	ID       int64
	Rating   int
	Text     string
	// AuthoredOn is stored at date precision; any time-of-day supplied by
	// callers is truncated on write.
	AuthoredOn time.Time
	// AuthorID is nullable; the mobile client never reliably populates it.
	AuthorID *int64
}

// ValidRating reports whether r is inside the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// RatingStats holds the derived statistics for one venue. Distribution
// always carries a key for every rating value, absent ratings count as 0.
// Stats are recomputed from the current link and review sets on every
// read; nothing here is persisted.
type RatingStats struct {
	Count        int
	Average      float64
	Distribution map[int]int
}

// ZeroStats returns the statistics for a venue with no linked reviews.
func ZeroStats() RatingStats {
	dist := make(map[int]int, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		dist[r] = 0
	}
	return RatingStats{Count: 0, Average: 0, Distribution: dist}
}
