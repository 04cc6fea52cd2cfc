package tree24

import "testing"

func TestLabelFormatting(t *testing.T) {
	if got := newLeaf(3, 7, 9).label(); got != "[3, 7, 9]" {
		t.Errorf("expected label \"[3, 7, 9]\", got %q", got)
	}
	if got := newLeaf[int]().label(); got != "[]" {
		t.Errorf("expected label \"[]\" for empty node, got %q", got)
	}
	if got := newLeaf(5).label(); got != "[5]" {
		t.Errorf("expected label \"[5]\", got %q", got)
	}
}

func TestLabelOrNone(t *testing.T) {
	if got := labelOrNone[int](nil); got != "none" {
		t.Errorf("expected \"none\" for nil node, got %q", got)
	}
	if got := labelOrNone(newLeaf(1, 2)); got != "[1, 2]" {
		t.Errorf("expected \"[1, 2]\", got %q", got)
	}
}

func TestKeyInsertionShifts(t *testing.T) {
	n := newLeaf(3, 9)
	n.insertKeyAt(1, 7)
	if n.keyCount() != 3 {
		t.Fatalf("expected 3 keys, got %d", n.keyCount())
	}
	if n.keyAt(0) != 3 || n.keyAt(1) != 7 || n.keyAt(2) != 9 {
		t.Errorf("unexpected key order: %s", n.label())
	}
	n.removeKeyAt(0)
	if n.label() != "[7, 9]" {
		t.Errorf("expected \"[7, 9]\" after removal, got %q", n.label())
	}
}

func TestChildSlotShifts(t *testing.T) {
	p := newLeaf(5, 10)
	a, b, c := newLeaf(1), newLeaf(7), newLeaf(12)
	p.setChild(0, a)
	p.setChild(1, c)
	p.insertChildAt(1, b)
	if p.childAt(0) != a || p.childAt(1) != b || p.childAt(2) != c {
		t.Fatalf("unexpected child slots after insertChildAt")
	}
	if b.parent != p {
		t.Errorf("expected inserted child to point back to parent")
	}
	if b.slot() != 1 {
		t.Errorf("expected slot 1 for middle child, got %d", b.slot())
	}
	p.removeChildAt(0)
	if p.childAt(0) != b || p.childAt(1) != c || p.childAt(2) != nil {
		t.Errorf("unexpected child slots after removeChildAt")
	}
}

func TestLeafTest(t *testing.T) {
	n := newLeaf(5)
	if !n.isLeaf() {
		t.Errorf("expected node without children to be a leaf")
	}
	n.setChild(1, newLeaf(7))
	if n.isLeaf() {
		t.Errorf("expected node with any child to be internal")
	}
}

func TestSubtreeMinMax(t *testing.T) {
	root := newLeaf(7)
	root.setChild(0, newLeaf(3, 5))
	root.setChild(1, newLeaf(9, 12))
	if min, ok := root.minKey(); !ok || min != 3 {
		t.Errorf("expected subtree min 3, got %d (ok=%v)", min, ok)
	}
	if max, ok := root.maxKey(); !ok || max != 12 {
		t.Errorf("expected subtree max 12, got %d (ok=%v)", max, ok)
	}
	if _, ok := newLeaf[int]().minKey(); ok {
		t.Errorf("expected no min for an empty node")
	}
}
