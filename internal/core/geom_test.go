package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.expected {
				t.Errorf("Intersects(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.expected)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	a := NewRect(10, 0, 20, 5)

	if !a.OverlapsX(NewRect(25, 100, 10, 10)) {
		t.Error("x-spans overlap regardless of y distance")
	}
	if a.OverlapsX(NewRect(30, 0, 10, 10)) {
		t.Error("touching edges should not count as overlap")
	}
	if a.OverlapsX(NewRect(0, 0, 10, 10)) {
		t.Error("disjoint x-spans should not overlap")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, want 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %v, want 40", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 25 {
		t.Errorf("Center() = (%v, %v), want (15, 25)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("center point should be contained")
	}
	if !r.Contains(0, 0) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(10, 10) {
		t.Error("bottom-right corner is exclusive")
	}
	if r.Contains(-1, 5) {
		t.Error("point outside should not be contained")
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF(5,0,10) = %v, want 5", got)
	}
	if got := ClampF(-3, 0, 10); got != 0 {
		t.Errorf("ClampF(-3,0,10) = %v, want 0", got)
	}
	if got := ClampF(42, 0, 10); got != 10 {
		t.Errorf("ClampF(42,0,10) = %v, want 10", got)
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max broken")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs broken")
	}
	if AbsF(-1.5) != 1.5 {
		t.Error("AbsF broken")
	}
	if Clamp(15, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 {
		t.Error("Clamp broken")
	}
}
