// Package event provides read-only use cases for browsing events and their
// destinations.
package event

import "errors"

// ErrBlankQuery indicates an empty search keyword.
var ErrBlankQuery = errors.New("search query is empty")
