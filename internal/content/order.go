package content

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// Compare implements the display order: order hint ascending with absent
// hints last, then title by English collation, then raw title bytes, then
// directory name. Distinct directories never compare equal.
func Compare[T Item](a, b T) int {
	return CompareEntities(a.Meta(), b.Meta())
}

func CompareEntities(a, b Entity) int {
	switch {
	case a.OrderHint != nil && b.OrderHint == nil:
		return -1
	case a.OrderHint == nil && b.OrderHint != nil:
		return 1
	case a.OrderHint != nil && b.OrderHint != nil && *a.OrderHint != *b.OrderHint:
		if *a.OrderHint < *b.OrderHint {
			return -1
		}
		return 1
	}
	if c := compareTitles(a.Title, b.Title); c != 0 {
		return c
	}
	if c := strings.Compare(a.Title, b.Title); c != 0 {
		return c
	}
	return strings.Compare(a.Dir, b.Dir)
}

// Sort orders items in place.
func Sort[T Item](items []T) {
	slices.SortStableFunc(items, Compare[T])
}

func compareTitles(a, b string) int {
	// collate.Collator keeps scratch buffers and is not safe for concurrent use
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}
