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
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5.5, 5.5, 10, 10),
			expected: true,
		},
		{
			name:     "touching right edge (half-open, no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge (half-open, no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.99, 9.99, 10, 10),
			expected: true,
		},
		{
			name:     "separated",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(20, 20, 5, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFContainsX(t *testing.T) {
	r := NewRectF(100, 0, 50, 10)

	if !r.ContainsX(100) {
		t.Error("ContainsX should include the left edge")
	}
	if !r.ContainsX(149.9) {
		t.Error("ContainsX should include points inside the span")
	}
	if r.ContainsX(150) {
		t.Error("ContainsX should exclude the right edge (half-open)")
	}
	if r.ContainsX(99.9) {
		t.Error("ContainsX should exclude points left of the span")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %f, expected 5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %f, expected 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10, 20, 1) = %f, expected 20", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the absolute value")
	}
}
