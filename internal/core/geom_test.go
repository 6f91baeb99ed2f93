package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 24, true},
		{30, 24, false}, // right edge is exclusive
		{29, 25, false}, // so is the bottom
		{9, 15, false},
		{15, 9, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 10, 5)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(2, 1, 3, 2), NewRect(2, 1, 3, 2)},
		{"overhang right", NewRect(8, 1, 5, 2), NewRect(8, 1, 2, 2)},
		{"overhang top-left", NewRect(-3, -2, 5, 4), NewRect(0, 0, 2, 2)},
		{"covers bounds", NewRect(-1, -1, 20, 20), bounds},
	}
	for _, tc := range tests {
		if got := tc.r.Clip(bounds); got != tc.expected {
			t.Errorf("Clip(%s) = %+v, expected %+v", tc.name, got, tc.expected)
		}
	}

	if got := NewRect(20, 20, 3, 3).Clip(bounds); !got.Empty() {
		t.Errorf("Clip(outside) = %+v, expected empty", got)
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r        Rect
		expected bool
	}{
		{NewRect(0, 0, 1, 1), false},
		{NewRect(5, 5, 0, 3), true},
		{NewRect(5, 5, 3, -1), true},
	}
	for _, tc := range tests {
		if got := tc.r.Empty(); got != tc.expected {
			t.Errorf("%+v.Empty() = %v, expected %v", tc.r, got, tc.expected)
		}
	}
	if r := NewRect(5, 10, 20, 15); r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right(), Bottom() = %d, %d, expected 25, 25", r.Right(), r.Bottom())
	}
}
