package utils

import "testing"

func TestOrderedMapKeepsInsertionOrder(t *testing.T) {
	om := NewOrderedMap[int, string]()
	om.Set(30, "c")
	om.Set(10, "a")
	om.Set(20, "b")
	om.Set(10, "a2") // re-set must not move the key

	values := om.Values()
	want := []string{"c", "a2", "b"}
	if len(values) != len(want) {
		t.Fatalf("expected %d values got %d", len(want), len(values))
	}
	for i := range want {
		if values[i] != want[i] {
			t.Fatalf("position %d: expected %s got %s", i, want[i], values[i])
		}
	}
	if om.Len() != 3 {
		t.Fatalf("expected len 3 got %d", om.Len())
	}
}
