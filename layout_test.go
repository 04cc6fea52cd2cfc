package tree24

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLabelWidthCountsPrintableColumns(t *testing.T) {
	// digits must count one column each, not their East-Asian/emoji class
	cases := map[string]int{
		"7":         1,
		"[10]":      4,
		"[3, 7, 9]": 9,
		"abc":       3,
	}
	for label, expected := range cases {
		if got := labelWidth(label); got != expected {
			t.Errorf("expected width %d for %q, got %d", expected, label, got)
		}
	}
	if got := labelWidth("[永]"); got != 4 {
		t.Errorf("expected width 4 for wide-rune label, got %d", got)
	}
}

func TestRenderEmptyTree(t *testing.T) {
	diagram, err := New[int]().Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	if diagram != "" {
		t.Errorf("expected empty diagram for empty tree, got %q", diagram)
	}
}

func TestRenderSingleLeaf(t *testing.T) {
	tree := New[int]()
	tree.root = newLeaf(3, 7)
	tree.size = 2
	diagram, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	if diagram != "[3, 7] \n" {
		t.Errorf("expected %q, got %q", "[3, 7] \n", diagram)
	}
}

func TestRenderTwoLevels(t *testing.T) {
	tree := buildManual([]int{10}, []int{3, 7}, []int{12, 15})
	diagram, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	expected := "  [10]    \n[3, 7] [12, 15] \n"
	if diagram != expected {
		t.Errorf("expected diagram\n%q\ngot\n%q", expected, diagram)
	}
}

func TestRenderCentersRootOverLeaves(t *testing.T) {
	tree := buildManual([]int{7}, []int{3}, []int{9, 12})
	diagram, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	lines := strings.Split(diagram, "\n")
	if len(lines) != 3 || lines[2] != "" {
		t.Fatalf("expected 2 diagram lines, got %q", diagram)
	}
	if lines[1] != "[3] [9, 12] " {
		t.Errorf("unexpected leaf line %q", lines[1])
	}
	at := strings.Index(lines[0], "[7]")
	if at <= 0 || at+len("[7]") >= len(lines[1]) {
		t.Errorf("expected root label centered within the leaf span, line is %q", lines[0])
	}
}

func TestRenderThreeLevels(t *testing.T) {
	tree := New[int]()
	for key := 1; key <= 10; key++ {
		tree.Insert(key)
	}
	diagram, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	if got := strings.Count(diagram, "\n"); got != 3 {
		t.Fatalf("expected one line per level (3), got %d:\n%s", got, diagram)
	}
	lines := strings.Split(diagram, "\n")
	if lines[2] != "[1] [3] [5] [7] [9, 10] " {
		t.Errorf("unexpected leaf line %q", lines[2])
	}
	if !strings.Contains(lines[0], "[4]") {
		t.Errorf("expected root [4] on the first line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "[2]") || !strings.Contains(lines[1], "[6, 8]") {
		t.Errorf("unexpected middle line %q", lines[1])
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		tree.Insert(key)
	}
	first, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	second, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	if first != second {
		t.Errorf("expected identical diagrams for unmodified tree")
	}
}

func TestRenderAfterDeletions(t *testing.T) {
	tree := New[int]()
	for key := 1; key <= 20; key++ {
		tree.Insert(key)
	}
	for _, key := range []int{4, 11, 17} {
		tree.Delete(key)
	}
	diagram, err := tree.Render()
	if err != nil {
		t.Fatal(err.Error())
	}
	if strings.Contains(diagram, "[4]") {
		t.Errorf("deleted key still rendered:\n%s", diagram)
	}
	if got := strings.Count(diagram, "\n"); got != tree.Height() {
		t.Errorf("expected %d lines, got %d", tree.Height(), got)
	}
}

func TestDumpFromRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[int]()
	for key := 1; key <= 10; key++ {
		tree.Insert(key)
	}
	it, ok := tree.Find(5) // an iterator deep in the tree
	if !ok {
		t.Fatalf("expected to find key 5")
	}
	DumpFromRoot(it, tracing.LevelDebug)
	// silent when the tracer is below the threshold
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	DumpFromRoot(it, tracing.LevelDebug)
}
