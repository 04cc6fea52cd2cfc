package tree24

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"
)

const (
	// maxKeys is the fixed key capacity per node: order 4 means at most
	// 3 keys and 4 children.
	maxKeys     = 3
	maxChildren = maxKeys + 1
)

// node is a single 2-4 tree node. Keys live in fixed inline storage with a
// dynamic-length view over the occupied prefix; child ownership lives in
// fixed slots, where an empty slot is nil. The parent link is a non-owning
// back reference and nil at the root.
type node[K cmp.Ordered] struct {
	parent   *node[K]
	keyStore [maxKeys]K
	// keys is a dynamic-length view over keyStore and must satisfy:
	// len(keys) == key count, cap(keys) == len(keyStore), keys backed by keyStore.
	keys       []K
	childStore [maxChildren]*node[K]
}

func newLeaf[K cmp.Ordered](keys ...K) *node[K] {
	n := &node[K]{}
	assert(len(keys) <= maxKeys, "newLeaf exceeds fixed key capacity")
	copy(n.keyStore[:], keys)
	n.keys = n.keyStore[:len(keys)]
	return n
}

// isLeaf reports whether n holds no children at all.
func (n *node[K]) isLeaf() bool {
	for _, c := range n.childStore {
		if c != nil {
			return false
		}
	}
	return true
}

func (n *node[K]) keyCount() int { return len(n.keys) }

func (n *node[K]) keyAt(i int) K { return n.keys[i] }

func (n *node[K]) setKeyAt(i int, key K) { n.keys[i] = key }

// childAt returns the child in slot i, or nil for an empty or out-of-range
// slot.
func (n *node[K]) childAt(i int) *node[K] {
	if i < 0 || i >= maxChildren {
		return nil
	}
	return n.childStore[i]
}

// slot returns n's slot index in its parent, or -1 if n is the root or the
// parent does not own n (a broken back reference).
func (n *node[K]) slot() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.childStore {
		if c == n {
			return i
		}
	}
	return -1
}

// setChild stores c in slot i and fixes the back reference.
func (n *node[K]) setChild(i int, c *node[K]) {
	n.childStore[i] = c
	if c != nil {
		c.parent = n
	}
}

func (n *node[K]) clearChild(i int) { n.childStore[i] = nil }

// insertKeyAt shifts keys right to make room at index i.
func (n *node[K]) insertKeyAt(i int, key K) {
	count := len(n.keys)
	assert(count < maxKeys, "insertKeyAt on a full node")
	n.keys = n.keyStore[:count+1]
	copy(n.keys[i+1:], n.keys[i:count])
	n.keys[i] = key
}

func (n *node[K]) appendKey(key K) { n.insertKeyAt(len(n.keys), key) }

func (n *node[K]) removeKeyAt(i int) {
	count := len(n.keys)
	copy(n.keys[i:], n.keys[i+1:count])
	n.keys = n.keyStore[:count-1]
}

func (n *node[K]) truncateKeys(count int) { n.keys = n.keyStore[:count] }

// insertChildAt shifts child slots right from i on, then stores c at i.
func (n *node[K]) insertChildAt(i int, c *node[K]) {
	assert(n.childStore[maxChildren-1] == nil, "insertChildAt on a full node")
	copy(n.childStore[i+1:], n.childStore[i:maxChildren-1])
	n.setChild(i, c)
}

// removeChildAt drops slot i and shifts the remaining slots left.
func (n *node[K]) removeChildAt(i int) {
	copy(n.childStore[i:], n.childStore[i+1:])
	n.childStore[maxChildren-1] = nil
}

// minKey returns the smallest key in n's subtree, descending along the
// lowest occupied child slot. It tolerates malformed shapes and reports
// false for an empty node.
func (n *node[K]) minKey() (K, bool) {
	for {
		var next *node[K]
		for i := 0; i < maxChildren; i++ {
			if n.childStore[i] != nil {
				next = n.childStore[i]
				break
			}
		}
		if next == nil {
			break
		}
		n = next
	}
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[0], true
}

// maxKey returns the largest key in n's subtree, descending along the
// highest occupied child slot.
func (n *node[K]) maxKey() (K, bool) {
	for {
		var next *node[K]
		for i := maxChildren - 1; i >= 0; i-- {
			if n.childStore[i] != nil {
				next = n.childStore[i]
				break
			}
		}
		if next == nil {
			break
		}
		n = next
	}
	if len(n.keys) == 0 {
		var zero K
		return zero, false
	}
	return n.keys[len(n.keys)-1], true
}

// label renders the node's key listing, e.g. "[3, 7, 9]". An empty node
// renders as "[]".
func (n *node[K]) label() string {
	var bf strings.Builder
	bf.WriteByte('[')
	for i, key := range n.keys {
		if i > 0 {
			bf.WriteString(", ")
		}
		fmt.Fprintf(&bf, "%v", key)
	}
	bf.WriteByte(']')
	return bf.String()
}

func labelOrNone[K cmp.Ordered](n *node[K]) string {
	if n == nil {
		return "none"
	}
	return n.label()
}
