package canvas

import (
	"math"
	"sort"

	"github.com/slickdexic/layers"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  layers.RGBA
}

// sortStops returns the stops sorted by offset ascending, with each
// offset clamped to [0, 1]. The input slice is never mutated.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	for i := range sorted {
		sorted[i].Offset = clamp01(sorted[i].Offset)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
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

// colorAtOffset returns the interpolated color at a given offset.
// The stops must be pre-sorted; t is clamped into the stop range.
func colorAtOffset(stops []ColorStop, t float64) layers.RGBA {
	if len(stops) == 0 {
		return layers.Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}

	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.Lerp(s2.Color, localT)
}

// LinearGradient is a linear color transition between two points.
// It implements the Brush interface; stops are kept sorted by offset.
type LinearGradient struct {
	Start layers.Point
	End   layers.Point
	stops []ColorStop
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: layers.Pt(x0, y0),
		End:   layers.Pt(x1, y1),
	}
}

// AddColorStop adds a color stop; the offset is clamped to [0, 1] and the
// stop list is kept sorted ascending. Returns the gradient for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c layers.RGBA) *LinearGradient {
	g.stops = sortStops(append(g.stops, ColorStop{Offset: offset, Color: c}))
	return g
}

// Stops returns the sorted color stops.
func (g *LinearGradient) Stops() []ColorStop {
	return g.stops
}

// ColorAt implements Brush by projecting the point onto the gradient line.
func (g *LinearGradient) ColorAt(x, y float64) layers.RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	// Zero-length gradient paints the first stop everywhere.
	if lengthSq == 0 {
		if len(g.stops) == 0 {
			return layers.Transparent
		}
		return g.stops[0].Color
	}

	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.stops, t)
}

// RadialGradient is a radial color transition from a center point out to
// a radius. It implements the Brush interface.
type RadialGradient struct {
	Center layers.Point
	Radius float64
	stops  []ColorStop
}

// NewRadialGradient creates a radial gradient around (cx, cy).
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{
		Center: layers.Pt(cx, cy),
		Radius: radius,
	}
}

// AddColorStop adds a color stop; the offset is clamped to [0, 1] and the
// stop list is kept sorted ascending. Returns the gradient for chaining.
func (g *RadialGradient) AddColorStop(offset float64, c layers.RGBA) *RadialGradient {
	g.stops = sortStops(append(g.stops, ColorStop{Offset: offset, Color: c}))
	return g
}

// Stops returns the sorted color stops.
func (g *RadialGradient) Stops() []ColorStop {
	return g.stops
}

// ColorAt implements Brush.
func (g *RadialGradient) ColorAt(x, y float64) layers.RGBA {
	if g.Radius <= 0 {
		if len(g.stops) == 0 {
			return layers.Transparent
		}
		return g.stops[0].Color
	}

	dx := x - g.Center.X
	dy := y - g.Center.Y
	t := math.Sqrt(dx*dx+dy*dy) / g.Radius

	return colorAtOffset(g.stops, t)
}
