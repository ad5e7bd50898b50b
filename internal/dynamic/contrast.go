package dynamic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/raysh454/aria/internal/rules"
)

// rgba is a parsed CSS color.
type rgba struct {
	R, G, B uint8
	A       float64
}

// parseCSSColor handles the forms getComputedStyle actually emits:
// rgb(r, g, b) and rgba(r, g, b, a), plus hex for completeness.
func parseCSSColor(s string) (rgba, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}

	var open string
	switch {
	case strings.HasPrefix(s, "rgba("):
		open = "rgba("
	case strings.HasPrefix(s, "rgb("):
		open = "rgb("
	default:
		return rgba{}, fmt.Errorf("unsupported color %q", s)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, open), ")")
	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return rgba{}, fmt.Errorf("malformed color %q", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return rgba{}, fmt.Errorf("malformed color channel in %q", s)
		}
		ch[i] = uint8(v)
	}
	a := 1.0
	if len(parts) >= 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return rgba{}, fmt.Errorf("malformed alpha in %q", s)
		}
		a = v
	}
	return rgba{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func parseHexColor(s string) (rgba, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return rgba{}, fmt.Errorf("malformed hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgba{}, fmt.Errorf("malformed hex color %q", s)
	}
	return rgba{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
}

// relativeLuminance implements the WCAG sRGB luminance formula.
func relativeLuminance(c rgba) float64 {
	lin := func(ch uint8) float64 {
		v := float64(ch) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// contrastRatio returns the WCAG contrast ratio between two opaque colors,
// always >= 1.
func contrastRatio(a, b rgba) float64 {
	la := relativeLuminance(a)
	lb := relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// isLargeText applies the WCAG large-text definition: 18pt (24px), or 14pt
// (18.66px) bold.
func isLargeText(fontSizePx float64, fontWeight string) bool {
	if fontSizePx >= rules.LargeTextMinPx {
		return true
	}
	if fontSizePx < rules.LargeTextBoldMinPx {
		return false
	}
	if fontWeight == "bold" || fontWeight == "bolder" {
		return true
	}
	if w, err := strconv.Atoi(fontWeight); err == nil && w >= 700 {
		return true
	}
	return false
}

// requiredRatio returns the AA minimum for the given text metrics.
func requiredRatio(fontSizePx float64, fontWeight string) float64 {
	if isLargeText(fontSizePx, fontWeight) {
		return rules.ContrastLargeText
	}
	return rules.ContrastNormalText
}
