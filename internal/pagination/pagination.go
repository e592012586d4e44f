package pagination

// PageSize is the number of items returned per page.
const PageSize = 10

// Slice returns the 1-based page of items. Pages below 1 are treated as
// page 1 and out-of-range pages yield an empty slice. The input is never
// mutated.
func Slice[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
