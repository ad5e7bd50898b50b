package dynamic

import (
	"math"
	"testing"
)

// TestParseCSSColor_Formats verifies rgb(), rgba() and hex notations parse
func TestParseCSSColor_Formats(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in      string
		r, g, b uint8
		a       float64
	}{
		{"rgb(255, 0, 0)", 255, 0, 0, 1},
		{"rgba(0, 128, 255, 0.5)", 0, 128, 255, 0.5},
		{"#ffffff", 255, 255, 255, 1},
		{"#000", 0, 0, 0, 1},
		{"#1a2b3c", 26, 43, 60, 1},
	}

	for _, tc := range cases {
		c, err := parseCSSColor(tc.in)
		if err != nil {
			t.Errorf("parseCSSColor(%q) returned error: %v", tc.in, err)
			continue
		}
		if c.R != tc.r || c.G != tc.g || c.B != tc.b {
			t.Errorf("parseCSSColor(%q) = %d,%d,%d; want %d,%d,%d", tc.in, c.R, c.G, c.B, tc.r, tc.g, tc.b)
		}
		if math.Abs(c.A-tc.a) > 0.001 {
			t.Errorf("parseCSSColor(%q) alpha = %f; want %f", tc.in, c.A, tc.a)
		}
	}
}

// TestParseCSSColor_Invalid verifies garbage input errors
func TestParseCSSColor_Invalid(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "blue-ish", "rgb(1,2)", "#12"} {
		if _, err := parseCSSColor(in); err == nil {
			t.Errorf("parseCSSColor(%q) should fail", in)
		}
	}
}

// TestContrastRatio_BlackWhite verifies the canonical 21:1 extreme
func TestContrastRatio_BlackWhite(t *testing.T) {
	t.Parallel()
	black := rgba{R: 0, G: 0, B: 0, A: 1}
	white := rgba{R: 255, G: 255, B: 255, A: 1}

	ratio := contrastRatio(black, white)
	if math.Abs(ratio-21.0) > 0.01 {
		t.Errorf("black/white contrast = %f; want 21.0", ratio)
	}

	// Symmetric
	if r2 := contrastRatio(white, black); math.Abs(ratio-r2) > 0.0001 {
		t.Errorf("contrast should be symmetric: %f vs %f", ratio, r2)
	}
}

// TestContrastRatio_SameColor verifies identical colors ratio 1:1
func TestContrastRatio_SameColor(t *testing.T) {
	t.Parallel()
	gray := rgba{R: 119, G: 119, B: 119, A: 1}
	if ratio := contrastRatio(gray, gray); math.Abs(ratio-1.0) > 0.0001 {
		t.Errorf("same-color contrast = %f; want 1.0", ratio)
	}
}

// TestIsLargeText_Thresholds verifies the size and weight boundaries
func TestIsLargeText_Thresholds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		sizePx float64
		weight string
		want   bool
	}{
		{24.0, "400", true},
		{23.9, "400", false},
		{18.66, "700", true},
		{18.66, "bold", true},
		{18.0, "700", false},
		{18.66, "400", false},
		{16.0, "400", false},
	}

	for _, tc := range cases {
		if got := isLargeText(tc.sizePx, tc.weight); got != tc.want {
			t.Errorf("isLargeText(%f, %q) = %v; want %v", tc.sizePx, tc.weight, got, tc.want)
		}
	}
}

// TestRequiredRatio verifies 4.5:1 for normal and 3:1 for large text
func TestRequiredRatio(t *testing.T) {
	t.Parallel()
	if r := requiredRatio(16, "400"); r != 4.5 {
		t.Errorf("normal text required ratio = %f; want 4.5", r)
	}
	if r := requiredRatio(24, "400"); r != 3.0 {
		t.Errorf("large text required ratio = %f; want 3.0", r)
	}
}
