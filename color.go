package layers

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Transparent = RGBA{}
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A *= a
	return c
}

// Lerp linearly interpolates between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + t*(other.R-c.R),
		G: c.G + t*(other.G-c.G),
		B: c.B + t*(other.B-c.B),
		A: c.A + t*(other.A-c.A),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// namedColors is the small set of CSS color names layer payloads use.
var namedColors = map[string]RGBA{
	"black":   Black,
	"white":   White,
	"red":     {R: 1, A: 1},
	"green":   {G: 128.0 / 255, A: 1},
	"lime":    {G: 1, A: 1},
	"blue":    {B: 1, A: 1},
	"yellow":  {R: 1, G: 1, A: 1},
	"cyan":    {G: 1, B: 1, A: 1},
	"magenta": {R: 1, B: 1, A: 1},
	"orange":  {R: 1, G: 165.0 / 255, A: 1},
	"gray":    {R: 0.5, G: 0.5, B: 0.5, A: 1},
	"grey":    {R: 0.5, G: 0.5, B: 0.5, A: 1},
}

// ParseColor parses a layer color string: "#hex" forms, "rgb(r,g,b)",
// "rgba(r,g,b,a)", a small set of CSS names, and the no-paint values
// "none"/"transparent"/"" (which parse to Transparent).
// Unparseable strings return an error alongside opaque black.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "none" || s == "transparent":
		return Transparent, nil
	case s[0] == '#':
		return Hex(s), nil
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4:len(s)-1], false)
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return Black, fmt.Errorf("unrecognized color %q", s)
}

// parseRGBFunc parses the argument list of an rgb()/rgba() function.
func parseRGBFunc(args string, hasAlpha bool) (RGBA, error) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return Black, fmt.Errorf("rgb(): want %d components, got %d", want, len(parts))
	}

	var vals [4]float64
	vals[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Black, fmt.Errorf("rgb() component %d: %w", i, err)
		}
		vals[i] = v
	}

	return RGBA{
		R: clamp01(vals[0] / 255),
		G: clamp01(vals[1] / 255),
		B: clamp01(vals[2] / 255),
		A: clamp01(vals[3]),
	}, nil
}

// IsNoPaint reports whether a fill/stroke string means "draw nothing".
func IsNoPaint(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "" || s == "none" || s == "transparent"
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 clamps a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
