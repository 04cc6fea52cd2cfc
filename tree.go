package tree24

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Config configures a 2-4 tree.
type Config[K cmp.Ordered] struct {
	// Compare overrides the natural key order. It must implement a total
	// order: negative for a < b, zero for equal keys, positive for a > b.
	Compare func(a, b K) int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Compare == nil {
		cfg.Compare = cmp.Compare[K]
	}
	return cfg
}

// Tree is an order-4 multiway search tree (a 2-4 tree): every node holds at
// most 3 strictly ascending keys and at most 4 children, and all leaves sit
// at the same depth.
//
// A tree is not internally synchronized. Callers must not mutate it
// concurrently with any other call, including the read-only diagnostic
// calls Validate and Render.
type Tree[K cmp.Ordered] struct {
	root *node[K]
	size int
	cfg  Config[K]
}

// New creates an empty tree over the natural order of K.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{cfg: Config[K]{}.normalized()}
}

// NewWith creates an empty tree from a configuration.
func NewWith[K cmp.Ordered](cfg Config[K]) *Tree[K] {
	return &Tree[K]{cfg: cfg.normalized()}
}

// search returns the slot for key in n, i.e. the index of the first key in
// n not less than key, and whether that key is equal to key.
func (t *Tree[K]) search(n *node[K], key K) (int, bool) {
	for i, k := range n.keys {
		c := t.cfg.Compare(key, k)
		if c == 0 {
			return i, true
		}
		if c < 0 {
			return i, false
		}
	}
	return len(n.keys), false
}
