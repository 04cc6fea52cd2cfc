package tree24

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Iterator is a position in a tree: a node reference plus a key index
// within that node. The zero value is the null iterator.
//
// Besides normal positions an iterator has three degenerate states, each
// rendered distinctly by String: null (no node), before-begin (index -1)
// and end (index equal to the node's key count).
type Iterator[K cmp.Ordered] struct {
	node  *node[K]
	index int
}

// Begin returns an iterator on the smallest key, or the null iterator for
// an empty tree.
func (t *Tree[K]) Begin() Iterator[K] {
	if t == nil || t.root == nil {
		return Iterator[K]{}
	}
	return minimumOf(t.root)
}

// End returns the one-past-the-last iterator, or the null iterator for an
// empty tree.
func (t *Tree[K]) End() Iterator[K] {
	if t == nil || t.root == nil {
		return Iterator[K]{}
	}
	n := t.root
	for !n.isLeaf() {
		n = n.childAt(n.keyCount())
	}
	return Iterator[K]{node: n, index: n.keyCount()}
}

// Key returns the key under the iterator, if it is positioned on one.
func (it Iterator[K]) Key() (K, bool) {
	if it.node == nil || it.index < 0 || it.index >= it.node.keyCount() {
		var zero K
		return zero, false
	}
	return it.node.keyAt(it.index), true
}

// Next advances to the in-order successor position. It saturates at the
// end state; a null iterator stays null.
func (it Iterator[K]) Next() Iterator[K] {
	n := it.node
	if n == nil {
		return it
	}
	if it.index < 0 {
		return minimumOf(n)
	}
	if !n.isLeaf() {
		if c := n.childAt(it.index + 1); c != nil {
			return minimumOf(c)
		}
	}
	if it.index+1 < n.keyCount() {
		return Iterator[K]{node: n, index: it.index + 1}
	}
	// climb to the first ancestor entered from a left subtree
	child, p := n, n.parent
	for p != nil {
		if s := child.slot(); s >= 0 && s < p.keyCount() {
			return Iterator[K]{node: p, index: s}
		}
		child, p = p, p.parent
	}
	return Iterator[K]{node: n, index: n.keyCount()} // end
}

// Prev retreats to the in-order predecessor position. It saturates at the
// before-begin state; a null iterator stays null.
func (it Iterator[K]) Prev() Iterator[K] {
	n := it.node
	if n == nil || it.index < 0 {
		return it
	}
	if !n.isLeaf() {
		if c := n.childAt(it.index); c != nil {
			return maximumOf(c)
		}
	}
	if it.index > 0 {
		return Iterator[K]{node: n, index: it.index - 1}
	}
	// climb to the first ancestor entered from a right subtree
	child, p := n, n.parent
	for p != nil {
		if s := child.slot(); s > 0 {
			return Iterator[K]{node: p, index: s - 1}
		}
		child, p = p, p.parent
	}
	return Iterator[K]{node: n, index: -1} // before begin
}

// String renders a debug description of the iterator position.
func (it Iterator[K]) String() string {
	switch {
	case it.node == nil:
		return "<iterator: null>"
	case it.index == -1:
		return fmt.Sprintf("<iterator: before begin of %s>", it.node.label())
	case it.index == it.node.keyCount():
		return fmt.Sprintf("<iterator: end of %s>", it.node.label())
	}
	return fmt.Sprintf("<iterator: %s @%d>", it.node.label(), it.index)
}

// minimumOf positions on the first key of the leftmost leaf under n.
func minimumOf[K cmp.Ordered](n *node[K]) Iterator[K] {
	for !n.isLeaf() {
		c := n.childAt(0)
		if c == nil {
			break
		}
		n = c
	}
	return Iterator[K]{node: n}
}

// maximumOf positions on the last key of the rightmost leaf under n.
func maximumOf[K cmp.Ordered](n *node[K]) Iterator[K] {
	for !n.isLeaf() {
		c := n.childAt(n.keyCount())
		if c == nil {
			break
		}
		n = c
	}
	return Iterator[K]{node: n, index: n.keyCount() - 1}
}
