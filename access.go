package tree24

// Find locates key and returns an iterator positioned on it.
func (t *Tree[K]) Find(key K) (Iterator[K], bool) {
	if t == nil {
		return Iterator[K]{}, false
	}
	n := t.root
	for n != nil {
		i, found := t.search(n, key)
		if found {
			return Iterator[K]{node: n, index: i}, true
		}
		if n.isLeaf() {
			break
		}
		n = n.childAt(i)
	}
	return Iterator[K]{}, false
}

// Contains reports whether key is present in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, ok := t.Find(key)
	return ok
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of levels; an empty tree has height 0.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	height, n := 0, t.root
	for n != nil {
		height++
		n = n.childAt(0)
	}
	return height
}

// Min returns the smallest key in the tree.
func (t *Tree[K]) Min() (K, bool) {
	if t == nil || t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.minKey()
}

// Max returns the largest key in the tree.
func (t *Tree[K]) Max() (K, bool) {
	if t == nil || t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.maxKey()
}
