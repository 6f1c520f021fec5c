package content

import "math"

// Deduplicate collapses items sharing an identity key. The survivor has the
// lowest order hint (absent counts as +Inf); ties go to the lexically smallest
// directory name. Survivors keep the position of the first item seen with
// their key, so the result is stable and Deduplicate is idempotent. Items
// with an empty key are never merged.
func Deduplicate[T Item](items []T) []T {
	if len(items) < 2 {
		return append([]T(nil), items...)
	}

	out := make([]T, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		key := item.Meta().IdentityKey
		if key == "" {
			out = append(out, item)
			continue
		}
		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, item)
			continue
		}
		if preferred(item.Meta(), out[at].Meta()) {
			out[at] = item
		}
	}
	return out
}

// preferred reports whether candidate should replace current.
func preferred(candidate, current Entity) bool {
	ch, kh := hintValue(candidate), hintValue(current)
	if ch != kh {
		return ch < kh
	}
	return candidate.Dir < current.Dir
}

func hintValue(e Entity) float64 {
	if e.OrderHint == nil {
		return math.Inf(1)
	}
	return *e.OrderHint
}
