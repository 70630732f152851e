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
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "disjoint",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(5, 5, 1, 1),
			expected: false,
		},
		{
			name:     "edge touching diagonal",
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(1, 1, 2, 2),
			expected: true,
		},
		{
			name:     "adjacent horizontal counts",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(1, 0, 1, 1),
			expected: true,
		},
		{
			name:     "one gap column apart",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(2, 0, 1, 1),
			expected: false,
		},
		{
			name:     "projectile inside enemy",
			a:        NewRect(12, 4, 1, 1),
			b:        NewRect(10, 3, 5, 2),
			expected: true,
		},
		{
			name:     "enemy inside wide rect",
			a:        NewRect(0, 0, 40, 10),
			b:        NewRect(10, 3, 5, 2),
			expected: true,
		},
		{
			name:     "below at origin",
			a:        NewRect(0, 0, 1, 1),
			b:        NewRect(0, 3, 1, 1),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 1, 1),
		NewRect(3, 7, 5, 2),
		NewRect(100, 40, 7, 3),
	}
	for _, r := range rects {
		if !Overlaps(r, r) {
			t.Errorf("Overlaps(%v, %v) should be true", r, r)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
