package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/venues/\d+$`), template: "/venues/:id"},
	{pattern: regexp.MustCompile(`^/reviews/\d+$`), template: "/reviews/:id"},
	{pattern: regexp.MustCompile(`^/events/\d+$`), template: "/events/:id"},
}

// NormalizePath normalizes dynamic URL paths so metrics labels stay bounded:
// every /venues/<id> request maps to one "/venues/:id" label instead of one
// label per venue. Static paths and search endpoints pass through unchanged,
// as does anything unrecognized.
//
// Query parameters and trailing slashes are stripped first:
//
//	NormalizePath("/venues/123?page=1")  // "/venues/:id"
//	NormalizePath("/reviews/45/")        // "/reviews/:id"
//	NormalizePath("/reviews/stats")      // "/reviews/stats" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	return path
}
