package normalize

import "go.jacobcolvin.com/clargs/clargserr"

// Array applies uniqueness (preserving first occurrence) and then the limit
// check to items, per spec.md §4.4. It is generic over the element type so
// the same logic serves both [schema.KindStrings] and [schema.KindNumbers]
// options.
func Array[T comparable](unique bool, limit int, items []T) ([]T, error) {
	if unique {
		seen := make(map[T]struct{}, len(items))
		deduped := items[:0:0]

		for _, item := range items {
			if _, ok := seen[item]; ok {
				continue
			}

			seen[item] = struct{}{}

			deduped = append(deduped, item)
		}

		items = deduped
	}

	if limit > 0 && len(items) > limit {
		return items, clargserr.Newf(clargserr.ArrayOptionLimit,
			"invalid parameter count %d: expected at most %d", len(items), limit)
	}

	return items, nil
}
