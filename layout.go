// layout.go re-exports scene, layout and draw types from internal packages.
// Any changes to those types must be mirrored here.
package surface

import (
	"io"

	"github.com/grindlemire/go-surface/internal/draw"
	"github.com/grindlemire/go-surface/internal/layout"
	"github.com/grindlemire/go-surface/internal/scene"
)

// Node is one node of a scene snapshot.
type Node = scene.Node

// NodeType tags a scene node.
type NodeType = scene.Type

const (
	TypeContainer = scene.TypeContainer
	TypeText      = scene.TypeText
	TypeLeaf      = scene.TypeLeaf
)

// StyleMap holds a node's raw style properties.
type StyleMap = scene.Style

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the resolved layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// GeometryNode is a laid-out node with its absolute box.
type GeometryNode = layout.Node

// Tree is the arena of laid-out nodes produced by Calculate.
type Tree = layout.Tree

// Command is a clipped paint operation.
type Command = draw.Command

// Color is an opaque color value.
type Color = draw.Color

// ColorMapper rewrites colors during Flatten.
type ColorMapper = draw.ColorMapper

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Calculate lays out root in a viewport of the given size.
func Calculate(root *Node, width, height, coordBase int) *Tree {
	return layout.Calculate(root, width, height, coordBase)
}

// Flatten turns a laid-out tree into clipped paint commands.
func Flatten(tree *Tree, opts ...draw.Option) []Command {
	return draw.Flatten(tree, opts...)
}

// DecodeSnapshot parses one JSON scene snapshot.
func DecodeSnapshot(data []byte) (*Node, error) {
	return scene.Decode(data)
}

// NewSnapshotReader reads newline-delimited JSON snapshots from r.
func NewSnapshotReader(r io.Reader) *scene.Reader {
	return scene.NewReader(r)
}
