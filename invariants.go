package tree24

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// ViolationKind classifies structural invariant violations.
type ViolationKind int8

const (
	// BrokenParentLink marks a node whose parent back reference does not
	// point to the node owning it as a child.
	BrokenParentLink ViolationKind = iota
	// UnorderedKeys marks a node whose keys are not strictly ascending.
	UnorderedKeys
	// ChildKeyBound marks a subtree holding keys outside the range bounded
	// by the separating keys of its parent.
	ChildKeyBound
	// ChildCount marks an internal node whose present children do not
	// number one more than its keys.
	ChildCount
)

func (kind ViolationKind) String() string {
	switch kind {
	case BrokenParentLink:
		return "broken parent link"
	case UnorderedKeys:
		return "unordered keys"
	case ChildKeyBound:
		return "child key out of bounds"
	case ChildCount:
		return "wrong child count"
	}
	return "unknown violation"
}

// Violation describes one detected deviation from the structural
// invariants of a 2-4 tree.
type Violation struct {
	Kind   ViolationKind
	Node   string // key listing of the offending node
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Kind, v.Node, v.Detail)
}

// CheckStructure walks the whole tree breadth-first and collects every
// violation of the structural invariants:
//
//  1. keys within a node are strictly ascending,
//  2. an internal node has exactly one child more than it has keys,
//  3. a subtree left of a separating key holds no key greater than it,
//  4. the rightmost subtree holds no key less than the last separator,
//  5. every non-root node's parent back reference points to the node
//     owning it as a child.
//
// The walk never aborts on a violation; it is designed to surface all
// defects in one pass. A malformed tree is reported, never fatal. Each
// violation is also traced to the core tracer as it is found.
//
// A tree without a root has nothing to check and yields no violations.
func (t *Tree[K]) CheckStructure() []Violation {
	if t == nil || t.root == nil {
		return nil
	}
	type visit struct {
		expectedParent *node[K]
		node           *node[K]
	}
	var violations []Violation
	report := func(v Violation) {
		T().Errorf("tree structure: %s", v)
		violations = append(violations, v)
	}
	queue := []visit{{nil, t.root}}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		n := head.node
		if n.parent != head.expectedParent {
			report(Violation{
				Kind: BrokenParentLink,
				Node: n.label(),
				Detail: fmt.Sprintf("expected parent %s, have %s",
					labelOrNone(head.expectedParent), labelOrNone(n.parent)),
			})
		}
		for i := 1; i < n.keyCount(); i++ {
			if t.cfg.Compare(n.keyAt(i-1), n.keyAt(i)) > 0 {
				report(Violation{
					Kind:   UnorderedKeys,
					Node:   n.label(),
					Detail: fmt.Sprintf("key %v precedes key %v", n.keyAt(i-1), n.keyAt(i)),
				})
				if diagram, err := t.Render(); err == nil {
					T().Debugf("tree for context:\n%s", diagram)
				}
			}
		}
		present := 0
		for i := 0; i < n.keyCount(); i++ {
			child := n.childAt(i)
			if child == nil {
				continue
			}
			present++
			if max, ok := child.maxKey(); ok && t.cfg.Compare(max, n.keyAt(i)) > 0 {
				report(Violation{
					Kind: ChildKeyBound,
					Node: n.label(),
					Detail: fmt.Sprintf("subtree %s holds %v, greater than separator %v",
						child.label(), max, n.keyAt(i)),
				})
			}
		}
		if last := n.childAt(n.keyCount()); last != nil {
			present++
			if n.keyCount() > 0 {
				if min, ok := last.minKey(); ok && t.cfg.Compare(min, n.keyAt(n.keyCount()-1)) < 0 {
					report(Violation{
						Kind: ChildKeyBound,
						Node: n.label(),
						Detail: fmt.Sprintf("subtree %s holds %v, less than separator %v",
							last.label(), min, n.keyAt(n.keyCount()-1)),
					})
				}
			}
		}
		for i := 0; i < maxChildren; i++ {
			if child := n.childAt(i); child != nil {
				queue = append(queue, visit{n, child})
			}
		}
		if !n.isLeaf() && present != n.keyCount()+1 {
			var children []string
			for i := 0; i < maxChildren; i++ {
				if c := n.childAt(i); c != nil {
					children = append(children, c.label())
				}
			}
			report(Violation{
				Kind: ChildCount,
				Node: n.label(),
				Detail: fmt.Sprintf("%d keys but children %s",
					n.keyCount(), strings.Join(children, " ")),
			})
		}
	}
	return violations
}

// Validate reports whether the tree satisfies all structural invariants.
// Violations are traced as they are found; callers needing them as values
// use CheckStructure instead.
func (t *Tree[K]) Validate() bool {
	return len(t.CheckStructure()) == 0
}
