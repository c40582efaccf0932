package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	surface "github.com/grindlemire/go-surface"
	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/layout"
)

// runLayout lays out the first snapshot of a file (or stdin) and prints
// either the geometry tree or the flattened draw commands.
func runLayout(args []string, stdin io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	width := fs.Int("width", 80, "viewport width")
	height := fs.Int("height", 24, "viewport height")
	coordBase := fs.Int("coord-base", 0, "coordinate origin (0 or 1)")
	commands := fs.Bool("commands", false, "print draw commands as JSON lines")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width < 0 || *height < 0 {
		return fmt.Errorf("viewport %dx%d must not be negative", *width, *height)
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	root, err := surface.NewSnapshotReader(in).Next()
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	tree := surface.Calculate(root, *width, *height, *coordBase)

	if *commands {
		return printCommands(out, surface.Flatten(tree))
	}
	return printTree(out, tree)
}

func printCommands(out io.Writer, cmds []draw.Command) error {
	enc := json.NewEncoder(out)
	for _, c := range cmds {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return nil
}

// printTree writes one row per node, indented by depth.
func printTree(out io.Writer, tree *layout.Tree) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tX\tY\tW\tH\tTEXT")

	depth := make([]int, tree.Len())
	for i := range tree.Nodes {
		n := &tree.Nodes[i]
		if n.Parent >= 0 {
			depth[i] = depth[n.Parent] + 1
		}
		indent := strings.Repeat("  ", depth[i])
		fmt.Fprintf(tw, "%s%d\t%s\t%d\t%d\t%d\t%d\t%q\n", indent, n.ID, n.Type, n.X, n.Y, n.W, n.H, n.Text)
	}
	return tw.Flush()
}
