package paginationutil

// Page returns items[skip : skip+take] clamped to the slice, and whether items remain
// after the page. Negative arguments count as zero.
func Page[T any](items []T, skip, take int) ([]T, bool) {
	skip = max(skip, 0)
	take = max(take, 0)

	start := min(skip, len(items))
	end := min(start+take, len(items))
	return items[start:end], skip+take < len(items)
}
