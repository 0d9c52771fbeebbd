//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package optimizer

import (
	"testing"
)

func TestBindingsSet(t *testing.T) {
	b := NewBindings()
	b.Set("a", 0)

	id, ok := b.Get("a")
	if !ok {
		t.Errorf("binding for 'a' not found")
	}
	if id != 0 {
		t.Errorf("binding for 'a' = %d, expected 0", id)
	}
	_, ok = b.Get("b")
	if ok {
		t.Errorf("non-existing binding for 'b' found")
	}

	// Last write wins.
	b.Set("a", 3)
	id, _ = b.Get("a")
	if id != 3 {
		t.Errorf("rebinding for 'a' = %d, expected 3", id)
	}
}

func TestBindingsValues(t *testing.T) {
	b := NewBindings()
	b.Set("a", 5)
	b.Set("b", 1)
	b.Set("c", 5)
	b.Set("d", 3)

	values := b.Values()
	expected := []int{1, 3, 5}
	if len(values) != len(expected) {
		t.Fatalf("got %d values, expected %d", len(values), len(expected))
	}
	for idx, id := range values {
		if id != expected[idx] {
			t.Errorf("values[%d] = %d, expected %d", idx, id, expected[idx])
		}
	}
}
