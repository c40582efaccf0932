package layout

import "github.com/grindlemire/go-surface/internal/scene"

// Node is one entry of the Geometry Tree.
// It mirrors a scene node and adds its resolved absolute box.
type Node struct {
	ID    int64
	Type  scene.Type
	Style Style

	// Text is the node's literal text truncated to W columns.
	Text string

	X, Y, W, H int

	// Parent is the arena index of the parent node, -1 for the root.
	Parent   int
	Children []int

	// Source is the originating scene node. It is read-only.
	Source *scene.Node
}

// Rect returns the node's box.
func (n *Node) Rect() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.W, Height: n.H}
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n.Type == scene.TypeText
}

// Tree is an arena of geometry nodes. Index 0 is the root; nodes appear in
// depth-first pre-order. An empty Tree has no root.
type Tree struct {
	Nodes []Node
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Nodes)
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.Node(0)
}

// Node returns the node at index i, or nil if i is out of range.
func (t *Tree) Node(i int) *Node {
	if t == nil || i < 0 || i >= len(t.Nodes) {
		return nil
	}
	return &t.Nodes[i]
}

// Find returns the arena index of the node with the given scene id.
func (t *Tree) Find(id int64) (int, bool) {
	if t == nil {
		return -1, false
	}
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Ancestors returns the arena indices from i's parent up to the root.
func (t *Tree) Ancestors(i int) []int {
	var out []int
	for n := t.Node(i); n != nil && n.Parent >= 0; n = t.Node(n.Parent) {
		out = append(out, n.Parent)
	}
	return out
}
