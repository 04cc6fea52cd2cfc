package tree24

import (
	"strings"
	"testing"
)

func TestIteratorDebugStrings(t *testing.T) {
	leaf := newLeaf(3, 7)
	cases := []struct {
		it       Iterator[int]
		expected string
	}{
		{Iterator[int]{}, "<iterator: null>"},
		{Iterator[int]{node: leaf, index: -1}, "<iterator: before begin of [3, 7]>"},
		{Iterator[int]{node: leaf, index: leaf.keyCount()}, "<iterator: end of [3, 7]>"},
		{Iterator[int]{node: leaf, index: 1}, "<iterator: [3, 7] @1>"},
	}
	for _, c := range cases {
		if got := c.it.String(); got != c.expected {
			t.Errorf("expected %q, got %q", c.expected, got)
		}
	}
}

func TestIteratorAscending(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{6, 2, 9, 4, 1, 8, 10, 3, 5, 7} {
		tree.Insert(key)
	}
	var keys []int
	for it := tree.Begin(); ; it = it.Next() {
		key, ok := it.Key()
		if !ok {
			if !strings.Contains(it.String(), "end") {
				t.Errorf("expected end iterator after last key, got %s", it)
			}
			break
		}
		keys = append(keys, key)
	}
	if len(keys) != 10 {
		t.Fatalf("expected 10 keys, got %d: %v", len(keys), keys)
	}
	for i, key := range keys {
		if key != i+1 {
			t.Fatalf("traversal not ascending: %v", keys)
		}
	}
}

func TestIteratorDescending(t *testing.T) {
	tree := New[int]()
	for key := 1; key <= 10; key++ {
		tree.Insert(key)
	}
	var keys []int
	it := tree.End()
	for {
		it = it.Prev()
		key, ok := it.Key()
		if !ok {
			if !strings.Contains(it.String(), "before begin") {
				t.Errorf("expected before-begin iterator, got %s", it)
			}
			break
		}
		keys = append(keys, key)
	}
	if len(keys) != 10 {
		t.Fatalf("expected 10 keys, got %d: %v", len(keys), keys)
	}
	for i, key := range keys {
		if key != 10-i {
			t.Fatalf("traversal not descending: %v", keys)
		}
	}
}

func TestIteratorSaturates(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	end := tree.End()
	if next := end.Next(); next != end {
		t.Errorf("expected Next at end to saturate, got %s", next)
	}
	before := tree.Begin().Prev()
	if _, ok := before.Key(); ok {
		t.Fatalf("expected no key before begin")
	}
	if prev := before.Prev(); prev != before {
		t.Errorf("expected Prev before begin to saturate, got %s", prev)
	}
	if key, ok := before.Next().Key(); !ok || key != 1 {
		t.Errorf("expected Next from before-begin to reach the first key")
	}
}

func TestNullIteratorStaysNull(t *testing.T) {
	var it Iterator[int]
	if it.Next() != it || it.Prev() != it {
		t.Errorf("expected null iterator to stay null")
	}
	if _, ok := it.Key(); ok {
		t.Errorf("expected no key under the null iterator")
	}
}
