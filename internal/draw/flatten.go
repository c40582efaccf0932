package draw

import (
	"github.com/grindlemire/go-surface/internal/layout"
)

// ColorMapper rewrites a color before it is emitted. Integer-palette targets
// use it to quantize arbitrary colors to their fixed set.
type ColorMapper func(Color) Color

// Identity returns its argument unchanged.
func Identity(c Color) Color { return c }

// Option configures Flatten.
type Option func(*flattener)

// WithColorMapper sets the mapper applied to every emitted color.
// A nil mapper is ignored.
func WithColorMapper(m ColorMapper) Option {
	return func(f *flattener) {
		if m != nil {
			f.mapColor = m
		}
	}
}

// WithDefaultForeground sets the foreground used by text runs whose node has
// no color of its own.
func WithDefaultForeground(c Color) Option {
	return func(f *flattener) {
		f.defaultFg = c
	}
}

type flattener struct {
	tree      *layout.Tree
	mapColor  ColorMapper
	defaultFg Color
	out       []Command
}

// Flatten walks tree depth-first and returns its paint operations in
// traversal order. Every command lies inside the clip rectangle inherited
// from its ancestors, starting with the root's own box. Subtrees whose box
// misses the clip are skipped entirely.
func Flatten(tree *layout.Tree, opts ...Option) []Command {
	f := &flattener{
		tree:     tree,
		mapColor: Identity,
	}
	for _, opt := range opts {
		opt(f)
	}

	root := tree.Root()
	if root == nil {
		return nil
	}
	f.visit(0, root.Rect())
	return f.out
}

func (f *flattener) visit(i int, clip layout.Rect) {
	n := f.tree.Node(i)
	visible := n.Rect().Intersect(clip)
	if visible.IsEmpty() {
		return
	}

	var bg Color
	if n.Style.Background != "" {
		bg = f.mapColor(Color(n.Style.Background))
	}
	// A mapper may reject the color; a fill without one paints nothing.
	if bg != "" {
		f.emit(Command{X: visible.X, Y: visible.Y, W: visible.Width, H: visible.Height, Bg: bg})
	}

	if n.IsText() && n.Text != "" {
		f.text(n, visible, bg)
	}

	for _, child := range n.Children {
		f.visit(child, visible)
	}
}

// text emits the part of a text leaf's single row that survives the clip.
func (f *flattener) text(n *layout.Node, visible layout.Rect, bg Color) {
	if n.Y < visible.Y || n.Y >= visible.Bottom() {
		return
	}

	s := layout.SliceColumns(n.Text, visible.X-n.X, visible.Width)
	if s == "" {
		return
	}

	fg := f.defaultFg
	if n.Style.Foreground != "" {
		fg = Color(n.Style.Foreground)
	}

	f.emit(Command{
		X:    visible.X,
		Y:    n.Y,
		W:    visible.Width,
		H:    1,
		Bg:   bg,
		Text: s,
		Fg:   f.mapColor(fg),
	})
}

func (f *flattener) emit(c Command) {
	if c.W <= 0 || c.H <= 0 {
		return
	}
	f.out = append(f.out, c)
}

// StringMapper adapts a string-to-string color function, such as
// palette.Quantizer.Map, to a ColorMapper.
func StringMapper(fn func(string) string) ColorMapper {
	if fn == nil {
		return Identity
	}
	return func(c Color) Color {
		return Color(fn(string(c)))
	}
}
