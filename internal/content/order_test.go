package content

import (
	"slices"
	"testing"
)

func TestSortOrdersByHintThenTitle(t *testing.T) {
	items := []testItem{
		item("d", "Delta", "", nil),
		item("b", "Bravo", "", hint(2)),
		item("a", "alpha", "", nil),
		item("c", "Charlie", "", hint(1)),
		item("e", "Echo", "", hint(-1)),
		item("f", "Foxtrot", "", hint(2)),
	}

	Sort(items)

	want := []string{"e", "c", "b", "f", "a", "d"}
	if !slices.Equal(dirs(items), want) {
		t.Fatalf("expected %v, got %v", want, dirs(items))
	}
}

func TestCompareUsesCollationBeforeBytes(t *testing.T) {
	lower := item("x", "apple", "", nil)
	upper := item("y", "Banana", "", nil)

	if Compare(lower, upper) >= 0 {
		t.Fatal("expected apple before Banana regardless of case")
	}
}

func TestCompareIsTotalOnDistinctDirectories(t *testing.T) {
	a := item("a", "Same", "", hint(1))
	b := item("b", "Same", "", hint(1))

	if Compare(a, b) >= 0 || Compare(b, a) <= 0 {
		t.Fatal("expected directory name to break full ties")
	}
	if Compare(a, a) != 0 {
		t.Fatal("expected an item to equal itself")
	}

	caseOnly := item("c", "same", "", hint(1))
	if Compare(a, caseOnly) == 0 {
		t.Fatal("expected byte comparison to separate case-only differences")
	}
}

func TestCompareAbsentHintsSortLast(t *testing.T) {
	withHint := item("z", "Zulu", "", hint(1000))
	without := item("a", "Alpha", "", nil)
	if Compare(withHint, without) >= 0 {
		t.Fatal("expected any explicit hint before an absent one")
	}
}
