package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/npillmayer/tree24"
	treehtml "github.com/npillmayer/tree24/html"
)

var (
	deleteKeys []int
	dotOutput  bool
	htmlOutput bool
	traceOn    bool
)

var rootCmd = &cobra.Command{
	Use:   "t4dump KEY...",
	Short: "Build a 2-4 tree from integer keys and dump its structure",
	Long: `t4dump inserts the given integer keys into a 2-4 tree, optionally
deletes some of them again, and prints the resulting structure as an
aligned level-by-level diagram (or as Graphviz DOT or HTML). It then
validates the structural invariants and reports the verdict.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntSliceVar(&deleteKeys, "delete", nil, "keys to delete after building the tree")
	rootCmd.Flags().BoolVar(&dotOutput, "dot", false, "emit Graphviz DOT instead of a level diagram")
	rootCmd.Flags().BoolVar(&htmlOutput, "html", false, "emit an HTML document instead of a level diagram")
	rootCmd.Flags().BoolVar(&traceOn, "trace", false, "trace diagnostics to the standard logger")
}

func run(cmd *cobra.Command, args []string) error {
	if traceOn {
		gtrace.CoreTracer = gologadapter.New()
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	tree := tree24.New[int]()
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not an integer key: %q", arg)
		}
		tree.Insert(key)
	}
	for _, key := range deleteKeys {
		tree.Delete(key)
	}
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if !tty {
		color.NoColor = true
	}
	switch {
	case dotOutput:
		tree24.Tree2Dot(tree, os.Stdout)
	case htmlOutput:
		if err := treehtml.WriteTree(tree, os.Stdout); err != nil {
			return err
		}
	default:
		diagram, err := tree.Render()
		if err != nil {
			return err
		}
		fmt.Print(diagram)
		if tty {
			if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && diagramWidth(diagram) > width {
				fmt.Fprintln(os.Stderr, "note: diagram is wider than the terminal")
			}
		}
	}
	report(tree)
	return nil
}

// report validates the tree and prints a colored verdict.
func report(tree *tree24.Tree[int]) {
	violations := tree.CheckStructure()
	if len(violations) == 0 {
		color.Green("structure OK (%d keys, height %d)", tree.Len(), tree.Height())
		return
	}
	color.Red("%d structural violation(s):", len(violations))
	for _, v := range violations {
		color.Red("  %s", v)
	}
}

func diagramWidth(diagram string) int {
	width := 0
	for _, line := range strings.Split(diagram, "\n") {
		if len(line) > width {
			width = len(line)
		}
	}
	return width
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
