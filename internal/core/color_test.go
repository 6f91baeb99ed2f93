package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"", ColorDefault, false},
		{"cyan", ColorCyan, false},
		{"Bright_Green", ColorBrightGreen, false},
		{"orange", ColorOrange, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestNearestColor(t *testing.T) {
	if c := NearestColor(250, 5, 5); c != ColorBrightRed {
		t.Errorf("NearestColor(red) = %v, expected bright-red", c)
	}
	if c := NearestColor(0, 200, 210); c != ColorCyan {
		t.Errorf("NearestColor(teal) = %v, expected cyan", c)
	}
	if c := NearestColor(0, 0, 0); c == ColorDefault {
		t.Error("NearestColor(black) should never be default")
	}
}
