package content

import (
	"slices"
	"testing"
)

func TestDeduplicateKeepsLowestOrderHint(t *testing.T) {
	items := []testItem{
		item("a", "X", "g/x", hint(2)),
		item("b", "X", "g/x", hint(1)),
	}

	got := Deduplicate(items)
	if len(got) != 1 || got[0].Dir != "b" {
		t.Fatalf("expected only b to survive, got %v", dirs(got))
	}
}

func TestDeduplicateAbsentHintLoses(t *testing.T) {
	items := []testItem{
		item("stub", "Nuwa", "nuwa", nil),
		item("full", "Nuwa", "nuwa", hint(10)),
	}
	got := Deduplicate(items)
	if len(got) != 1 || got[0].Dir != "full" {
		t.Fatalf("expected explicit hint to win, got %v", dirs(got))
	}
}

func TestDeduplicateTieBreaksOnDirectoryName(t *testing.T) {
	forward := []testItem{item("m", "X", "x", hint(1)), item("c", "X", "x", hint(1))}
	reverse := []testItem{item("c", "X", "x", hint(1)), item("m", "X", "x", hint(1))}

	if got := Deduplicate(forward); got[0].Dir != "c" {
		t.Fatalf("expected c, got %v", dirs(got))
	}
	if got := Deduplicate(reverse); got[0].Dir != "c" {
		t.Fatalf("expected c regardless of input order, got %v", dirs(got))
	}

	bothAbsent := []testItem{item("z", "X", "x", nil), item("y", "X", "x", nil)}
	if got := Deduplicate(bothAbsent); got[0].Dir != "y" {
		t.Fatalf("expected y, got %v", dirs(got))
	}
}

func TestDeduplicateIsIdempotentAndKeepsFirstSeenOrder(t *testing.T) {
	items := []testItem{
		item("p1", "One", "one", hint(3)),
		item("p2", "Two", "two", nil),
		item("p3", "One", "one", hint(1)),
		item("p4", "Three", "three", hint(2)),
		item("p5", "Two", "two", hint(5)),
	}

	once := Deduplicate(items)
	twice := Deduplicate(once)

	want := []string{"p3", "p5", "p4"}
	if !slices.Equal(dirs(once), want) {
		t.Fatalf("expected %v, got %v", want, dirs(once))
	}
	if !slices.Equal(dirs(twice), dirs(once)) {
		t.Fatalf("expected idempotence, got %v then %v", dirs(once), dirs(twice))
	}
	if len(items) != 5 || items[0].Dir != "p1" {
		t.Fatal("expected input slice to be left untouched")
	}
}

func TestDeduplicateNeverMergesEmptyKeys(t *testing.T) {
	items := []testItem{item("a", "", "", nil), item("b", "", "", nil)}
	if got := Deduplicate(items); len(got) != 2 {
		t.Fatalf("expected both keyless items, got %v", dirs(got))
	}
}
