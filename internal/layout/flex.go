package layout

import "github.com/grindlemire/go-surface/internal/scene"

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node      *scene.Node
	style     Style
	fixedMain int
	hasFixed  bool
	grow      float64
	mainSize  int
	crossSize int
}

// layoutChildren distributes the content box of the node at parent among
// n's visible children along a single main axis.
//
// Growing children split the remaining space by weight. Fixed children keep
// their resolved size. When nothing grows, children with neither a size nor a
// weight split the remaining space evenly, with the integer remainder handed
// to the leading ones so the row or column fills exactly.
func (t *Tree) layoutChildren(n *scene.Node, style Style, parent int, content Rect) {
	isRow := style.Direction == Row

	mainSize := content.Height
	crossSize := content.Width
	if isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: resolve fixed sizes and weights
	items := make([]flexItem, 0, len(n.Children))
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		cs := ResolveStyle(child.Style)
		if cs.Hidden {
			continue
		}

		mainValue, crossValue := cs.Height, cs.Width
		if isRow {
			mainValue, crossValue = cs.Width, cs.Height
		}

		item := flexItem{
			node:      child,
			style:     cs,
			grow:      cs.FlexGrow,
			crossSize: crossValue.Resolve(crossSize, crossSize),
		}
		if !mainValue.IsAuto() {
			item.fixedMain = mainValue.Resolve(mainSize, 0)
			item.hasFixed = true
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return
	}

	totalFixed := 0
	totalGrow := 0.0
	unconstrained := 0
	for i := range items {
		switch {
		case items[i].grow > 0:
			totalGrow += items[i].grow
		case items[i].hasFixed:
			totalFixed += items[i].fixedMain
		default:
			unconstrained++
		}
	}

	// Phase 2: distribute the remaining space
	totalGap := style.Gap * (len(items) - 1)
	remaining := max(0, mainSize-totalFixed-totalGap)

	share, extra := 0, 0
	if totalGrow == 0 && unconstrained > 0 {
		share = remaining / unconstrained
		extra = remaining % unconstrained
	}

	for i := range items {
		item := &items[i]
		switch {
		case item.grow > 0:
			item.mainSize = roundClamp(item.grow/totalGrow*float64(remaining), remaining)
		case item.hasFixed:
			item.mainSize = item.fixedMain
		case totalGrow == 0:
			item.mainSize = share
			if extra > 0 {
				item.mainSize++
				extra--
			}
		}
		item.mainSize = min(item.mainSize, mainSize)
	}

	// Phase 3: place sequentially and recurse
	offset := 0
	for i := range items {
		item := &items[i]
		if item.mainSize <= 0 || item.crossSize <= 0 {
			continue
		}

		var box Rect
		if isRow {
			box = NewRect(content.X+offset, content.Y, item.mainSize, item.crossSize)
		} else {
			box = NewRect(content.X, content.Y+offset, item.crossSize, item.mainSize)
		}
		t.place(item.node, item.style, parent, box)

		offset += item.mainSize + style.Gap
	}
}
