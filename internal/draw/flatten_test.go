package draw

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grindlemire/go-surface/internal/layout"
	"github.com/grindlemire/go-surface/internal/scene"
)

// node builds an arena node. Parent/Children are wired by tree.
func node(id int64, x, y, w, h int, bg string) layout.Node {
	n := layout.Node{ID: id, Type: scene.TypeContainer, X: x, Y: y, W: w, H: h}
	n.Style.Background = bg
	return n
}

func textNode(id int64, x, y, w int, s, fg, bg string) layout.Node {
	n := layout.Node{ID: id, Type: scene.TypeText, Text: s, X: x, Y: y, W: w, H: 1}
	n.Style.Background = bg
	n.Style.Foreground = fg
	return n
}

// tree links nodes into an arena. parents[i] is the arena index of node i's
// parent (-1 for the root) and must precede i.
func tree(parents []int, nodes ...layout.Node) *layout.Tree {
	t := &layout.Tree{Nodes: nodes}
	for i, p := range parents {
		t.Nodes[i].Parent = p
		if p >= 0 {
			t.Nodes[p].Children = append(t.Nodes[p].Children, i)
		}
	}
	return t
}

func TestFlatten_TextClippedToWidth(t *testing.T) {
	root := &scene.Node{
		ID:    1,
		Type:  scene.TypeContainer,
		Style: scene.Style{"width": 8, "height": 1, "flexDirection": "row"},
		Children: []*scene.Node{
			{ID: 2, Type: scene.TypeContainer, Style: scene.Style{"width": 3}},
			{ID: 3, Type: scene.TypeText, Text: "HelloWorld", Style: scene.Style{"width": 10}},
		},
	}

	got := Flatten(layout.Calculate(root, 80, 24, 0), WithDefaultForeground("white"))
	want := []Command{
		{X: 3, Y: 0, W: 5, H: 1, Text: "Hello", Fg: "white"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten(t *testing.T) {
	type tc struct {
		tree *layout.Tree
		opts []Option
		want []Command
	}

	tests := map[string]tc{
		"empty tree": {
			tree: &layout.Tree{},
			want: nil,
		},
		"fill at clipped rect": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 10, 10, "red"),
				node(2, 5, 5, 10, 10, "blue"),
			),
			want: []Command{
				{X: 0, Y: 0, W: 10, H: 10, Bg: "red"},
				{X: 5, Y: 5, W: 5, H: 5, Bg: "blue"},
			},
		},
		"no background no fill": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 10, 10, ""),
				node(2, 0, 0, 2, 2, "blue"),
			),
			want: []Command{
				{X: 0, Y: 0, W: 2, H: 2, Bg: "blue"},
			},
		},
		"subtree outside clip is skipped": {
			tree: tree([]int{-1, 0, 1},
				node(1, 0, 0, 10, 10, "red"),
				node(2, 20, 20, 5, 5, "blue"),
				node(3, 1, 1, 2, 2, "green"),
			),
			want: []Command{
				{X: 0, Y: 0, W: 10, H: 10, Bg: "red"},
			},
		},
		"zero area node is skipped": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 10, 10, ""),
				node(2, 3, 3, 0, 4, "blue"),
			),
			want: nil,
		},
		"touching edge is outside": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 10, 10, ""),
				node(2, 10, 0, 4, 4, "blue"),
			),
			want: nil,
		},
		"text drops leading columns when clipped on the left": {
			tree: tree([]int{-1, 0, 1},
				node(1, 0, 0, 10, 3, ""),
				node(2, 2, 0, 8, 3, ""),
				textNode(3, 0, 1, 6, "abcdef", "", ""),
			),
			opts: []Option{WithDefaultForeground("7")},
			want: []Command{
				{X: 2, Y: 1, W: 4, H: 1, Text: "cdef", Fg: "7"},
			},
		},
		"text row outside clip emits only fill": {
			tree: tree([]int{-1, 0, 1},
				node(1, 0, 0, 10, 3, ""),
				node(2, 0, 1, 10, 2, ""),
				layout.Node{ID: 3, Type: scene.TypeText, Text: "hi", Style: layout.Style{Background: "blue"}, X: 0, Y: 0, W: 5, H: 3},
			),
			want: []Command{
				{X: 0, Y: 1, W: 5, H: 2, Bg: "blue"},
			},
		},
		"text with own background and color": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 10, 1, "black"),
				textNode(2, 1, 0, 5, "hello", "#ff0000", "#00ff00"),
			),
			opts: []Option{WithDefaultForeground("white")},
			want: []Command{
				{X: 0, Y: 0, W: 10, H: 1, Bg: "black"},
				{X: 1, Y: 0, W: 5, H: 1, Bg: "#00ff00"},
				{X: 1, Y: 0, W: 5, H: 1, Bg: "#00ff00", Text: "hello", Fg: "#ff0000"},
			},
		},
		"empty text emits nothing": {
			tree: tree([]int{-1},
				textNode(1, 0, 0, 5, "", "red", ""),
			),
			want: nil,
		},
		"color mapper applies to fills and text": {
			tree: tree([]int{-1, 0},
				node(1, 0, 0, 4, 1, "red"),
				textNode(2, 0, 0, 2, "ok", "", ""),
			),
			opts: []Option{
				WithDefaultForeground("white"),
				WithColorMapper(func(c Color) Color { return Color(strings.ToUpper(string(c))) }),
			},
			want: []Command{
				{X: 0, Y: 0, W: 4, H: 1, Bg: "RED"},
				{X: 0, Y: 0, W: 2, H: 1, Text: "ok", Fg: "WHITE"},
			},
		},
		"painter's order follows traversal": {
			tree: tree([]int{-1, 0, 1, 0},
				node(1, 0, 0, 10, 10, "a"),
				node(2, 0, 0, 5, 5, "b"),
				node(3, 1, 1, 2, 2, "c"),
				node(4, 5, 5, 5, 5, "d"),
			),
			want: []Command{
				{X: 0, Y: 0, W: 10, H: 10, Bg: "a"},
				{X: 0, Y: 0, W: 5, H: 5, Bg: "b"},
				{X: 1, Y: 1, W: 2, H: 2, Bg: "c"},
				{X: 5, Y: 5, W: 5, H: 5, Bg: "d"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Flatten(tt.tree, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatten_CommandsStayInsideAncestorClip(t *testing.T) {
	// Fixed sizes deliberately overflow their parents.
	root := &scene.Node{
		ID:    1,
		Type:  scene.TypeContainer,
		Style: scene.Style{"width": 20, "height": 10, "backgroundColor": "black", "padding": 1},
		Children: []*scene.Node{
			{ID: 2, Style: scene.Style{"height": 6, "background": "red", "flexDirection": "row", "gap": 2}, Children: []*scene.Node{
				{ID: 4, Style: scene.Style{"width": 12, "background": "green"}},
				{ID: 5, Type: scene.TypeText, Text: "overflowing text", Style: scene.Style{"width": 12, "color": "white"}},
			}},
			{ID: 3, Style: scene.Style{"height": 6, "background": "blue"}, Children: []*scene.Node{
				{ID: 6, Type: scene.TypeText, Text: "bottom", Style: scene.Style{"backgroundColor": "gray"}},
			}},
		},
	}

	tree := layout.Calculate(root, 40, 40, 0)
	bounds := tree.Root().Rect()
	cmds := Flatten(tree)
	if len(cmds) == 0 {
		t.Fatalf("Flatten() returned no commands")
	}

	for _, c := range cmds {
		if c.W <= 0 || c.H <= 0 {
			t.Errorf("degenerate command %v", c)
		}
		if !bounds.ContainsRect(c.Rect()) {
			t.Errorf("command %v escapes root bounds %+v", c, bounds)
		}
		if c.IsText() && c.H != 1 {
			t.Errorf("text command %v has height %d, want 1", c, c.H)
		}
	}
}

func TestStringMapper(t *testing.T) {
	m := StringMapper(func(s string) string { return s + "!" })
	if got := m("x"); got != "x!" {
		t.Errorf("StringMapper()(x) = %q, want %q", got, "x!")
	}
	if got := StringMapper(nil)("x"); got != "x" {
		t.Errorf("StringMapper(nil)(x) = %q, want %q", got, "x")
	}
}

func TestFlatten_MapperRejectingBackgroundDropsFill(t *testing.T) {
	tr := tree([]int{-1, 0},
		node(1, 0, 0, 10, 2, "bogus"),
		textNode(2, 0, 0, 10, "hi", "", "bogus"),
	)
	reject := func(c Color) Color {
		if c == "bogus" {
			return ""
		}
		return c
	}

	got := Flatten(tr, WithColorMapper(reject))

	want := []Command{{X: 0, Y: 0, W: 10, H: 1, Text: "hi"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
}
