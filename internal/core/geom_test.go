package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectInsetOffset(t *testing.T) {
	r := NewRect(5, 5, 10, 6)

	grown := r.Inset(-1)
	if grown != NewRect(4, 4, 12, 8) {
		t.Errorf("Inset(-1) = %+v", grown)
	}

	shrunk := r.Inset(3)
	if !shrunk.Empty() {
		t.Errorf("Inset(3) of a 6-high rect should be empty, got %+v", shrunk)
	}

	moved := r.Offset(-2, 1)
	if moved.X != 3 || moved.Y != 6 || moved.W != 10 || moved.H != 6 {
		t.Errorf("Offset(-2, 1) = %+v", moved)
	}
	if moved.Right() != 13 || moved.Bottom() != 12 {
		t.Errorf("Right/Bottom = %d/%d, expected 13/12", moved.Right(), moved.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
