package geom

import "testing"

func TestRectAccessors(t *testing.T) {
	r := NewRect(2, 3, 4, 6)

	if got := r.Right(); got != 6 {
		t.Errorf("Right = %v, want 6", got)
	}
	if got := r.Top(); got != 9 {
		t.Errorf("Top = %v, want 9", got)
	}
	if got := r.CenterX(); got != 4 {
		t.Errorf("CenterX = %v, want 4", got)
	}
	if got := r.CenterY(); got != 6 {
		t.Errorf("CenterY = %v, want 6", got)
	}
	if got := r.Area(); got != 24 {
		t.Errorf("Area = %v, want 24", got)
	}
}

func TestContains(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"FullyInside", NewRect(1, 1, 2, 2), true},
		{"ExactFit", NewRect(0, 0, 10, 10), true},
		{"WithinTolerance", NewRect(0, 0, 10+Epsilon/2, 10), true},
		{"StickingOutRight", NewRect(5, 5, 6, 1), false},
		{"BelowBottom", NewRect(1, -1, 2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := NewRect(0, 0, 4, 4)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"Disjoint", NewRect(10, 10, 2, 2), false},
		{"InteriorOverlap", NewRect(2, 2, 4, 4), true},
		{"EdgeTouch", NewRect(4, 0, 4, 4), false},
		{"CornerTouch", NewRect(4, 4, 2, 2), false},
		{"Contained", NewRect(1, 1, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Overlap is commutative.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeams(t *testing.T) {
	h := HSeam(1, 2, 5)
	if !h.IsDegenerate() || h.Height != 0 || h.Width != 5 {
		t.Errorf("HSeam = %+v, want zero-height width-5 segment", h)
	}

	v := VSeam(3, 1, 4)
	if !v.IsDegenerate() || v.Width != 0 || v.Height != 4 {
		t.Errorf("VSeam = %+v, want zero-width height-4 segment", v)
	}
}

func TestTranslate(t *testing.T) {
	r := NewRect(1, 1, 2, 3).Translate(-4, 2)
	want := NewRect(-3, 3, 2, 3)
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}
