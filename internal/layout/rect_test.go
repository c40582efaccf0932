package layout

import "testing"

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 4, 4),
			want: NewRect(5, 5, 4, 4),
		},
		"touching edges are disjoint": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: Rect{},
		},
		"disjoint": {
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(20, 20, 5, 5),
			want: Rect{},
		},
		"zero area": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 0, 5),
			want: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect() reversed = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(10, 10, 20, 8)

	if got, want := r.Inset(Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}), NewRect(14, 11, 14, 4); got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}
	if got := r.Inset(Edges{Top: 15, Right: 15, Bottom: 15, Left: 15}); got.Width != 0 || got.Height != 0 {
		t.Errorf("Inset() past size = %+v, want zero width and height", got)
	}
}

func TestRect_ContainsRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.ContainsRect(Rect{}) {
		t.Error("ContainsRect(empty) = false, want true")
	}
	if !r.ContainsRect(NewRect(3, 4, 3, 4)) {
		t.Error("ContainsRect(inner) = false, want true")
	}
	if r.ContainsRect(NewRect(3, 4, 4, 4)) {
		t.Error("ContainsRect(overflowing) = true, want false")
	}
}
