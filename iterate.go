package tree24

// ForEach walks keys in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K]) ForEach(fn func(key K) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K]) forEachNode(n *node[K], fn func(key K) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.isLeaf() {
		for _, key := range n.keys {
			if !fn(key) {
				return false
			}
		}
		return true
	}
	for i := 0; i < n.keyCount(); i++ {
		if c := n.childAt(i); c != nil && !t.forEachNode(c, fn) {
			return false
		}
		if !fn(n.keyAt(i)) {
			return false
		}
	}
	if c := n.childAt(n.keyCount()); c != nil {
		return t.forEachNode(c, fn)
	}
	return true
}

// EachNode visits every node in depth-first pre-order, reporting its key
// listing, its depth (the root has depth 0) and whether it is a leaf.
// Visiting stops early if fn returns false.
//
// EachNode exposes just enough structure for external renderers (see the
// html subpackage) without handing out node references.
func (t *Tree[K]) EachNode(fn func(label string, depth int, leaf bool) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.eachNode(t.root, 0, fn)
}

func (t *Tree[K]) eachNode(n *node[K], depth int, fn func(string, int, bool) bool) bool {
	if !fn(n.label(), depth, n.isLeaf()) {
		return false
	}
	for i := 0; i < maxChildren; i++ {
		if c := n.childAt(i); c != nil {
			if !t.eachNode(c, depth+1, fn) {
				return false
			}
		}
	}
	return true
}
