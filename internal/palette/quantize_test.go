package palette

import (
	"testing"
)

func TestNewQuantizer_Errors(t *testing.T) {
	type tc struct {
		entries []string
	}

	tests := map[string]tc{
		"empty":         {entries: nil},
		"invalid entry": {entries: []string{"#000000", "bogus"}},
		"default entry": {entries: []string{""}},
		"too many":      {entries: make([]string, 257)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewQuantizer(tt.entries); err == nil {
				t.Errorf("NewQuantizer() error = nil, want error")
			}
		})
	}
}

func TestQuantizer_Map(t *testing.T) {
	q, err := NewQuantizer([]string{"#000000", "#ffffff", "#ff0000", "#0000ff"})
	if err != nil {
		t.Fatalf("NewQuantizer() error = %v", err)
	}

	type tc struct {
		raw  string
		want string
	}

	tests := map[string]tc{
		"exact black":      {raw: "#000000", want: "0"},
		"near white":       {raw: "#f0f0f0", want: "1"},
		"dark red":         {raw: "#cc1010", want: "2"},
		"navy":             {raw: "navy", want: "3"},
		"in-range index":   {raw: "2", want: "2"},
		"out-of-range idx": {raw: "15", want: "1"},
		"default":          {raw: "", want: ""},
		"unparseable":      {raw: "nope", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := q.Map(tt.raw); got != tt.want {
				t.Errorf("Map(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestXterm16(t *testing.T) {
	if len(Xterm16) != 16 {
		t.Fatalf("len(Xterm16) = %d, want 16", len(Xterm16))
	}
	q, err := NewQuantizer(Xterm16)
	if err != nil {
		t.Fatalf("NewQuantizer(Xterm16) error = %v", err)
	}
	for i, hex := range Xterm16 {
		if got := q.Nearest(mustParse(t, hex).Colorful()); got != i {
			t.Errorf("Nearest(%s) = %d, want %d", hex, got, i)
		}
	}
}

func mustParse(t *testing.T, raw string) Value {
	t.Helper()
	v, ok := Parse(raw)
	if !ok {
		t.Fatalf("Parse(%q) failed", raw)
	}
	return v
}
