package grid

import (
	"encoding/json"
	"fmt"

	"github.com/grindlemire/go-surface/internal/draw"
)

var emptyFrame = []byte("[]")

// EncodeFrame serializes cmds as a JSON array. A nil or empty list encodes
// as "[]", never "null".
func EncodeFrame(cmds []draw.Command) ([]byte, error) {
	if len(cmds) == 0 {
		return append([]byte(nil), emptyFrame...), nil
	}
	data, err := json.Marshal(cmds)
	if err != nil {
		return nil, fmt.Errorf("encoding frame: %w", err)
	}
	return data, nil
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(data []byte) ([]draw.Command, error) {
	var cmds []draw.Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	return cmds, nil
}
