package scene

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrEmptySnapshot is returned when a snapshot document has no root node.
var ErrEmptySnapshot = errors.New("scene: empty snapshot")

// ErrMalformed wraps JSON errors for a single snapshot. The stream a Reader
// is consuming stays usable after it.
var ErrMalformed = errors.New("scene: malformed snapshot")

// Decode parses a single JSON snapshot document.
// Numbers in style maps are preserved as json.Number.
func Decode(data []byte) (*Node, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptySnapshot
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root Node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	normalize(&root)
	return &root, nil
}

// normalize fills defaults the wire format may omit.
func normalize(n *Node) {
	if n.Type == "" {
		if n.Text != "" {
			n.Type = TypeText
		} else {
			n.Type = TypeContainer
		}
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		normalize(c)
		kept = append(kept, c)
	}
	n.Children = kept
}

// Reader reads newline-delimited JSON snapshots from a stream.
type Reader struct {
	sc *bufio.Scanner
}

// maxSnapshotLine bounds a single snapshot line.
const maxSnapshotLine = 16 << 20

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxSnapshotLine)
	return &Reader{sc: sc}
}

// Next returns the next snapshot. Blank lines are skipped.
// Returns io.EOF when the stream ends.
func (r *Reader) Next() (*Node, error) {
	for r.sc.Scan() {
		line := bytes.TrimSpace(r.sc.Bytes())
		if len(line) == 0 {
			continue
		}
		return Decode(line)
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("scene: read snapshot: %w", err)
	}
	return nil, io.EOF
}
