package palette

import (
	"testing"
)

func TestParse(t *testing.T) {
	type tc struct {
		raw    string
		want   Value
		wantOK bool
	}

	tests := map[string]tc{
		"empty":            {raw: "", want: Default(), wantOK: true},
		"default keyword":  {raw: "default", want: Default(), wantOK: true},
		"index":            {raw: "12", want: Indexed(12), wantOK: true},
		"index max":        {raw: "255", want: Indexed(255), wantOK: true},
		"index overflow":   {raw: "256", want: Default(), wantOK: false},
		"long hex":         {raw: "#ff8000", want: RGB(255, 128, 0), wantOK: true},
		"upper hex":        {raw: "#FF8000", want: RGB(255, 128, 0), wantOK: true},
		"short hex":        {raw: "#f00", want: RGB(255, 0, 0), wantOK: true},
		"bad hex":          {raw: "#ff80", want: Default(), wantOK: false},
		"rgb function":     {raw: "rgb(1, 2, 3)", want: RGB(1, 2, 3), wantOK: true},
		"rgba function":    {raw: "rgba(10,20,30,0.5)", want: RGB(10, 20, 30), wantOK: true},
		"rgb out of range": {raw: "rgb(300, 0, 0)", want: Default(), wantOK: false},
		"named":            {raw: "Navy", want: RGB(0, 0, 128), wantOK: true},
		"unknown name":     {raw: "chartreuse-ish", want: Default(), wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			if ok != tt.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValue_ToRGB(t *testing.T) {
	type tc struct {
		v    Value
		want [3]uint8
	}

	tests := map[string]tc{
		"default":         {v: Default(), want: [3]uint8{0, 0, 0}},
		"rgb passthrough": {v: RGB(1, 2, 3), want: [3]uint8{1, 2, 3}},
		"ansi red":        {v: Indexed(1), want: [3]uint8{205, 49, 49}},
		"cube origin":     {v: Indexed(16), want: [3]uint8{0, 0, 0}},
		"cube red":        {v: Indexed(196), want: [3]uint8{255, 0, 0}},
		"cube mixed":      {v: Indexed(16 + 36*1 + 6*2 + 3), want: [3]uint8{95, 135, 175}},
		"gray ramp start": {v: Indexed(232), want: [3]uint8{8, 8, 8}},
		"gray ramp end":   {v: Indexed(255), want: [3]uint8{238, 238, 238}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, g, b := tt.v.ToRGB()
			if got := [3]uint8{r, g, b}; got != tt.want {
				t.Errorf("ToRGB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Hex(t *testing.T) {
	if got := Default().Hex(); got != "" {
		t.Errorf("Default().Hex() = %q, want empty", got)
	}
	if got := RGB(255, 0, 16).Hex(); got != "#ff0010" {
		t.Errorf("RGB().Hex() = %q, want %q", got, "#ff0010")
	}
	if got := Indexed(15).Hex(); got != "#ffffff" {
		t.Errorf("Indexed(15).Hex() = %q, want %q", got, "#ffffff")
	}
}

func TestCache(t *testing.T) {
	c := NewCache()

	if got := c.Get("#00ff00"); got != RGB(0, 255, 0) {
		t.Errorf("Get() = %+v, want green", got)
	}
	c.Get("#00ff00")
	c.Get("nonsense")
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.Get("nonsense"); !got.IsDefault() {
		t.Errorf("Get(nonsense) = %+v, want default", got)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
}

func TestCache_Independent(t *testing.T) {
	a, b := NewCache(), NewCache()
	a.Get("red")
	if b.Len() != 0 {
		t.Errorf("second cache Len() = %d, want 0", b.Len())
	}
}
