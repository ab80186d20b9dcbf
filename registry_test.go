package payrun

import (
	"slices"
	"testing"
)

func TestRegistry_MarkAndHas(t *testing.T) {
	r := NewRegistry()

	if r.Has(7) {
		t.Error("fresh registry should be empty")
	}
	r.Mark(7)
	r.Mark(0)
	r.Mark(65535)
	r.Mark(7) // idempotent

	for _, id := range []ClientID{0, 7, 65535} {
		if !r.Has(id) {
			t.Errorf("id %d should be marked", id)
		}
	}
	if r.Has(8) {
		t.Error("id 8 should not be marked")
	}
	if got := r.Count(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
}

func TestRegistry_AllAscending(t *testing.T) {
	r := NewRegistry()
	for _, id := range []ClientID{500, 3, 65535, 0, 1000} {
		r.Mark(id)
	}

	got := slices.Collect(r.All())

	want := []ClientID{0, 3, 500, 1000, 65535}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}

	// The sequence restarts by calling All again.
	again := slices.Collect(r.All())
	if !slices.Equal(again, want) {
		t.Errorf("second All() = %v, want %v", again, want)
	}
}

func TestRegistry_AllEarlyStop(t *testing.T) {
	r := NewRegistry()
	r.Mark(1)
	r.Mark(2)
	r.Mark(3)

	var got []ClientID
	for id := range r.All() {
		got = append(got, id)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []ClientID{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}
