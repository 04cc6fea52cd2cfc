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

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// span is the horizontal text-column range [begin, end) allocated to a
// node for rendering.
type span struct {
	begin, end       int
	hasBegin, hasEnd bool
}

// spanTable is the side table of computed spans, keyed by node identity.
// It is created per Render call and discarded when rendering returns.
type spanTable[K cmp.Ordered] map[*node[K]]span

// Render produces a level-by-level text diagram of the tree: one line per
// depth level, leaves packed left to right in traversal order, and every
// internal node centered over the span of its children.
//
// Rendering is read-only and idempotent; an empty tree renders as the
// empty string. A non-nil error wraps ErrInternalInconsistency and means a
// programming error in span propagation, as opposed to a structural defect
// of the tree, which Render does not diagnose (see CheckStructure).
func (t *Tree[K]) Render() (string, error) {
	if t == nil || t.root == nil {
		return "", nil
	}
	spans := make(spanTable[K])
	if err := t.computeSpans(spans); err != nil {
		return "", err
	}
	return t.renderLevels(spans)
}

// computeSpans is pass 1: walk the tree breadth-first, assign each leaf a
// contiguous slot advancing left to right, and propagate begin/end
// coordinates to the ancestors sharing a border with it.
func (t *Tree[K]) computeSpans(spans spanTable[K]) error {
	offset := 0
	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if _, ok := spans[n]; !ok {
			spans[n] = span{} // placeholder until propagation resolves it
		}
		if n.isLeaf() {
			begin := offset
			end := begin + labelWidth(n.label()) + 1
			offset = end
			propagateBegin(spans, n, begin)
			if err := propagateEnd(spans, n, end); err != nil {
				return err
			}
			continue
		}
		for i := 0; i < maxChildren; i++ {
			if c := n.childAt(i); c != nil {
				queue = append(queue, c)
			}
		}
	}
	return nil
}

// propagateBegin assigns begin to n and walks up the first-child chain: a
// node sitting in slot 0 of its parent shares its begin coordinate with
// that parent.
func propagateBegin[K cmp.Ordered](spans spanTable[K], n *node[K], begin int) {
	for {
		sp := spans[n]
		sp.begin, sp.hasBegin = begin, true
		spans[n] = sp
		p := n.parent
		if p == nil || n.slot() != 0 {
			return
		}
		n = p
	}
}

// propagateEnd assigns end to n and walks up the last-child chain. Each
// ancestor's provisional end excludes the trailing padding its centered
// label will leave, so that the next ancestor up centers over the label
// position instead of the raw span.
func propagateEnd[K cmp.Ordered](spans spanTable[K], n *node[K], end int) error {
	for {
		sp, ok := spans[n]
		if !ok {
			return fmt.Errorf("%w: span propagation reached unregistered node %s",
				ErrInternalInconsistency, n.label())
		}
		sp.end, sp.hasEnd = end, true
		spans[n] = sp
		p := n.parent
		if p == nil || n.slot() != p.keyCount() {
			return nil
		}
		psp, ok := spans[p]
		if !ok || !psp.hasBegin {
			return fmt.Errorf("%w: ancestor %s has no begin coordinate",
				ErrInternalInconsistency, p.label())
		}
		width := end - psp.begin
		lab := labelWidth(p.label()) + 1
		end -= width/2 - lab/2
		n = p
	}
}

// renderLevels is pass 2: emit one line per level, leaves verbatim and
// internal nodes centered within their computed span.
func (t *Tree[K]) renderLevels(spans spanTable[K]) (string, error) {
	var out strings.Builder
	queue := []*node[K]{t.root}
	for len(queue) > 0 {
		levelSize := len(queue)
		for _, n := range queue[:levelSize] {
			label := n.label() + " "
			if n.isLeaf() {
				out.WriteString(label)
				continue
			}
			sp, ok := spans[n]
			if !ok || !sp.hasBegin || !sp.hasEnd {
				return "", fmt.Errorf("%w: no span computed for node %s",
					ErrInternalInconsistency, n.label())
			}
			width := sp.end - sp.begin
			lab := labelWidth(label)
			field := width/2 + lab/2
			if field < lab {
				return "", fmt.Errorf("%w: span of %s narrower than its label (%d < %d)",
					ErrInternalInconsistency, n.label(), width, lab)
			}
			out.WriteString(strings.Repeat(" ", field-lab))
			out.WriteString(label)
			if pad := width/2 - lab/2; pad > 0 {
				out.WriteString(strings.Repeat(" ", pad))
			}
			for i := 0; i < maxChildren; i++ {
				if c := n.childAt(i); c != nil {
					queue = append(queue, c)
				}
			}
		}
		queue = queue[levelSize:]
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// labelWidth is the display width of a label in fixed-width terminal
// columns. ASCII labels occupy one column per byte; everything else goes
// through the East-Asian-width tables, which keeps diagrams aligned for
// keys outside the Latin script range.
func labelWidth(label string) int {
	for i := 0; i < len(label); i++ {
		if label[i] >= 0x80 {
			return uax11.StringWidth(grapheme.StringFromString(label), uax11.LatinContext)
		}
	}
	return len(label)
}

// DumpFromRoot traces the diagram of the whole tree containing the
// iterator's node, walking parent links up to the root first. It is silent
// unless the core tracer's level reaches threshold.
func DumpFromRoot[K cmp.Ordered](it Iterator[K], threshold tracing.TraceLevel) {
	if gtrace.CoreTracer.GetTraceLevel() < threshold {
		return
	}
	if it.node == nil {
		return
	}
	root := it.node
	for root.parent != nil {
		root = root.parent
	}
	t := &Tree[K]{root: root, cfg: Config[K]{}.normalized()}
	diagram, err := t.Render()
	if err != nil {
		T().Errorf("tree dump: %s", err.Error())
		return
	}
	T().Debugf("tree from root:\n%s", diagram)
}
