package rules

import (
	"math"
	"regexp"
	"strconv"
)

// PaletteMatchThreshold is the exclusive RGB distance under which two
// colors count as the same palette color.
const PaletteMatchThreshold = 30

// UnparseableColorDistance is returned by ColorDistance when either side is
// not a 6-digit hex color, so it never satisfies PaletteMatch.
const UnparseableColorDistance = 999

var hexColorPattern = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

type RGB struct {
	R int
	G int
	B int
}

// HexToRGB accepts exactly six hex digits with an optional leading '#'.
// Shorthand, alpha and named colors are rejected.
func HexToRGB(hex string) (RGB, bool) {
	m := hexColorPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}

	var out [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		out[i] = int(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, true
}

func ColorDistance(a, b string) float64 {
	ca, ok := HexToRGB(a)
	if !ok {
		return UnparseableColorDistance
	}
	cb, ok := HexToRGB(b)
	if !ok {
		return UnparseableColorDistance
	}

	dr := float64(ca.R - cb.R)
	dg := float64(ca.G - cb.G)
	db := float64(ca.B - cb.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func PaletteMatch(a, b string) bool {
	return ColorDistance(a, b) < PaletteMatchThreshold
}

// AnyPaletteMatch reports whether at least one gig color is close to at
// least one wanted color.
func AnyPaletteMatch(gigColors, wanted []string) bool {
	for _, want := range wanted {
		for _, have := range gigColors {
			if PaletteMatch(have, want) {
				return true
			}
		}
	}
	return false
}
