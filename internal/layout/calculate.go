package layout

import "github.com/grindlemire/go-surface/internal/scene"

// Calculate lays out the snapshot rooted at root inside a viewport of the
// given size. coordBase offsets the root origin once (0 for pixel targets,
// 1 for one-based character grids); descendants inherit it through their
// parent's position.
//
// A nil or hidden root yields an empty Tree.
func Calculate(root *scene.Node, viewportW, viewportH, coordBase int) *Tree {
	tree := &Tree{}
	if root == nil {
		return tree
	}

	style := ResolveStyle(root.Style)
	if style.Hidden {
		return tree
	}

	// The root resolves its own size against the viewport. Children receive
	// theirs from the parent's flex distribution instead.
	availW := max(0, viewportW)
	availH := max(0, viewportH)
	box := NewRect(coordBase, coordBase,
		style.Width.Resolve(availW, availW),
		style.Height.Resolve(availH, availH),
	)

	tree.Nodes = make([]Node, 0, scene.Count(root))
	tree.place(root, style, -1, box)
	return tree
}

// place records n at box and lays out its subtree. Returns n's arena index.
func (t *Tree) place(n *scene.Node, style Style, parent int, box Rect) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{
		ID:     n.ID,
		Type:   n.Type,
		Style:  style,
		X:      box.X,
		Y:      box.Y,
		W:      box.Width,
		H:      box.Height,
		Parent: parent,
		Source: n,
	})
	if parent >= 0 {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	}

	// Text leaves end the recursion with a single truncated row.
	if n.IsText() {
		t.Nodes[idx].Text = Truncate(n.Text, box.Width)
		return idx
	}

	if len(n.Children) > 0 {
		t.layoutChildren(n, style, idx, box.Inset(style.Padding))
	}
	return idx
}
