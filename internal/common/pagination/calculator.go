package pagination

// CalculateOffset calculates the slice offset for a 1-based page number.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. An empty result set still has 1 page.
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 25, Limit 10 -> 3 pages
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ClampPage forces page into [1, totalPages]. A request for a page past the
// end lands on the last page rather than returning an empty window.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the window of items for the given 1-based page. The page is
// assumed to be clamped already; an offset past the end yields an empty slice.
func Slice[T any](items []T, page, limit int) []T {
	offset := CalculateOffset(page, limit)
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
