package scene

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Type tags a node for the layout and flatten stages.
type Type string

const (
	TypeContainer Type = "container" // Lays out children along one axis
	TypeText      Type = "text"      // Single-row text leaf
	TypeLeaf      Type = "leaf"      // Primitive with no text (e.g. a colored box)
)

// Style is the open property map attached to a node.
// Values are whatever the reconciler produced: numbers, strings, or booleans.
type Style map[string]any

// Node is one element of a Scene Snapshot.
type Node struct {
	ID       int64   `json:"id"`
	Type     Type    `json:"type"`
	Style    Style   `json:"style,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Type == TypeText
}

// Get returns the raw style value for key.
func (s Style) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the style value for key as a trimmed string.
// Numbers are formatted in their shortest decimal form.
func (s Style) String(key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}
	if str, ok := v.(string); ok {
		str = strings.TrimSpace(str)
		return str, str != ""
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// Float returns the style value for key as a number.
// Numeric strings are accepted; anything else reports false.
func (s Style) Float(key string) (float64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	if str, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return toFloat(v)
}

// toFloat converts the numeric kinds a decoder or Go caller may produce.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Walk visits n and its descendants depth-first in child order.
// Returning false from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}
