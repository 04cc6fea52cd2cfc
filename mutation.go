package tree24

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Insert adds key to the tree. It reports false, leaving the tree
// unchanged, if the key is already present.
//
// Insertion is single-pass top-down: any full node on the search path is
// split before it is entered, so every split has a non-full parent to
// receive the promoted middle key.
func (t *Tree[K]) Insert(key K) bool {
	if t.root == nil {
		t.root = newLeaf(key)
		t.size++
		return true
	}
	if t.root.keyCount() == maxKeys {
		root := &node[K]{}
		root.setChild(0, t.root)
		t.root = root
		t.splitChild(root, 0)
	}
	n := t.root
	for {
		i, found := t.search(n, key)
		if found {
			return false
		}
		if n.isLeaf() {
			n.insertKeyAt(i, key)
			t.size++
			return true
		}
		child := n.childAt(i)
		assert(child != nil, "insert descent hit an empty child slot")
		if child.keyCount() == maxKeys {
			t.splitChild(n, i)
			// re-decide against the key promoted into slot i
			switch c := t.cfg.Compare(key, n.keyAt(i)); {
			case c == 0:
				return false
			case c > 0:
				i++
			}
			child = n.childAt(i)
		}
		n = child
	}
}

// splitChild splits the full child in p's slot into two one-key nodes and
// moves the middle key up into p. p must not be full.
func (t *Tree[K]) splitChild(p *node[K], slot int) {
	child := p.childAt(slot)
	assert(child != nil && child.keyCount() == maxKeys, "splitChild expects a full child")
	mid := child.keyAt(1)
	right := &node[K]{}
	right.appendKey(child.keyAt(2))
	if !child.isLeaf() {
		right.setChild(0, child.childAt(2))
		right.setChild(1, child.childAt(3))
		child.clearChild(2)
		child.clearChild(3)
	}
	child.truncateKeys(1)
	p.insertKeyAt(slot, mid)
	p.insertChildAt(slot + 1, right)
}

// Delete removes key from the tree. It reports false if the key is not
// present.
//
// A key found in an internal node is first swapped with its in-order
// predecessor, so removal always happens at a leaf; a resulting underflow
// is repaired bottom-up.
func (t *Tree[K]) Delete(key K) bool {
	if t == nil || t.root == nil {
		return false
	}
	n, at := t.root, 0
	for {
		i, found := t.search(n, key)
		if found {
			at = i
			break
		}
		if n.isLeaf() {
			return false
		}
		n = n.childAt(i)
		if n == nil {
			return false
		}
	}
	if !n.isLeaf() {
		// replace with the in-order predecessor and delete that instead
		pred := n.childAt(at)
		for !pred.isLeaf() {
			pred = pred.childAt(pred.keyCount())
		}
		n.setKeyAt(at, pred.keyAt(pred.keyCount() - 1))
		n, at = pred, pred.keyCount()-1
	}
	n.removeKeyAt(at)
	t.size--
	t.repairUnderflow(n)
	return true
}

// repairUnderflow restores the at-least-one-key invariant for n, rotating
// from an adjacent sibling when one can spare a key and merging around the
// separating parent key otherwise. Merging may underflow the parent in
// turn, so repair walks upward until a node is full enough or the root
// collapses.
func (t *Tree[K]) repairUnderflow(n *node[K]) {
	for n.keyCount() == 0 {
		if n == t.root {
			if n.isLeaf() {
				t.root = nil
			} else {
				t.root = n.childAt(0)
				t.root.parent = nil
			}
			return
		}
		p, slot := n.parent, n.slot()
		assert(p != nil && slot >= 0, "underflow repair lost the parent link")
		if left := p.childAt(slot - 1); left != nil && left.keyCount() > 1 {
			t.rotateFromLeft(p, slot)
			return
		}
		if right := p.childAt(slot + 1); slot < p.keyCount() && right != nil && right.keyCount() > 1 {
			t.rotateFromRight(p, slot)
			return
		}
		n = t.mergeAround(p, slot)
	}
}

// rotateFromLeft moves p's separator down into the underflowed child and
// the left sibling's last key up into p.
func (t *Tree[K]) rotateFromLeft(p *node[K], slot int) {
	n, left := p.childAt(slot), p.childAt(slot - 1)
	n.insertKeyAt(0, p.keyAt(slot - 1))
	p.setKeyAt(slot - 1, left.keyAt(left.keyCount() - 1))
	if !left.isLeaf() {
		moved := left.childAt(left.keyCount())
		left.clearChild(left.keyCount())
		n.insertChildAt(0, moved)
	}
	left.truncateKeys(left.keyCount() - 1)
}

// rotateFromRight mirrors rotateFromLeft for the right sibling.
func (t *Tree[K]) rotateFromRight(p *node[K], slot int) {
	n, right := p.childAt(slot), p.childAt(slot + 1)
	n.appendKey(p.keyAt(slot))
	p.setKeyAt(slot, right.keyAt(0))
	if !right.isLeaf() {
		moved := right.childAt(0)
		right.removeChildAt(0)
		n.setChild(n.keyCount(), moved)
	}
	right.removeKeyAt(0)
}

// mergeAround merges the underflowed child in p's slot with an adjacent
// one-key sibling and the separating parent key, and returns p for further
// repair.
func (t *Tree[K]) mergeAround(p *node[K], slot int) *node[K] {
	if slot > 0 {
		n, left := p.childAt(slot), p.childAt(slot - 1)
		left.appendKey(p.keyAt(slot - 1))
		if !n.isLeaf() {
			left.setChild(left.keyCount(), n.childAt(0))
		}
		p.removeKeyAt(slot - 1)
		p.removeChildAt(slot)
		return p
	}
	n, right := p.childAt(0), p.childAt(1)
	n.appendKey(p.keyAt(0))
	n.appendKey(right.keyAt(0))
	if !n.isLeaf() {
		n.setChild(1, right.childAt(0))
		n.setChild(2, right.childAt(1))
	}
	p.removeKeyAt(0)
	p.removeChildAt(1)
	return p
}
