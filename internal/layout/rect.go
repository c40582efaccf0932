package layout

// Rect is a box in grid cells. It covers [X, X+Width) × [Y, Y+Height).
type Rect struct {
	X, Y          int
	Width, Height int
}

// Edges holds a per-side inset, such as padding.
type Edges struct {
	Top, Right, Bottom, Left int
}

func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty reports whether the box covers no cell.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsRect reports whether every cell of other lies inside r. An empty
// rect is inside anything.
func (r Rect) ContainsRect(other Rect) bool {
	switch {
	case other.IsEmpty():
		return true
	case r.IsEmpty():
		return false
	}
	return r.X <= other.X && other.Right() <= r.Right() &&
		r.Y <= other.Y && other.Bottom() <= r.Bottom()
}

// Inset shrinks r by e, never below zero size.
func (r Rect) Inset(e Edges) Rect {
	r.X += e.Left
	r.Y += e.Top
	r.Width = max(0, r.Width-e.Left-e.Right)
	r.Height = max(0, r.Height-e.Top-e.Bottom)
	return r
}

// Intersect returns the overlap of r and other, or the zero Rect when
// they share no cell.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{X: max(r.X, other.X), Y: max(r.Y, other.Y)}
	out.Width = min(r.Right(), other.Right()) - out.X
	out.Height = min(r.Bottom(), other.Bottom()) - out.Y
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}
