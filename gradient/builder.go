package gradient

import (
	"math"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
)

// Defaults for radial specs missing optional fields. Build's fractional
// radius default (0.5) intentionally differs from DefaultSpec's preset
// (0.7); the two serve different callers and are kept independent.
const (
	defaultRadialCenter   = 0.5
	defaultRadialFraction = 0.5
	presetRadialFraction  = 0.7
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	scale float64
}

// WithScale scales the gradient geometry, matching a scaled render pass.
func WithScale(s float64) BuildOption {
	return func(c *buildConfig) { c.scale = s }
}

// HasGradient reports whether a layer carries a usable gradient: a spec
// with a known type and at least two color stops. Nil layers are falsy.
func HasGradient(l layers.Layer) bool {
	if l == nil {
		return false
	}
	g := l.Common().Gradient
	if g == nil {
		return false
	}
	if g.Type != layers.GradientLinear && g.Type != layers.GradientRadial {
		return false
	}
	return len(g.Stops) >= 2
}

// Build converts the layer's gradient spec into a brush anchored to
// bounds. Returns nil when the layer has no usable gradient.
//
// Stops are clamped into [0, 1] and added sorted ascending. A stop with
// an unparseable color is logged and skipped; the remaining stops still
// apply and the brush is returned rather than discarded.
func Build(l layers.Layer, bounds layers.Rect, opts ...BuildOption) canvas.Brush {
	if !HasGradient(l) {
		return nil
	}
	cfg := buildConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	spec := l.Common().Gradient
	switch spec.Type {
	case layers.GradientLinear:
		return buildLinear(spec, bounds, cfg.scale)
	case layers.GradientRadial:
		return buildRadial(spec, bounds, cfg.scale)
	}
	return nil
}

func buildLinear(spec *layers.GradientSpec, bounds layers.Rect, scale float64) canvas.Brush {
	angle := 0.0
	if spec.Angle != nil {
		angle = *spec.Angle
	}
	rad := angle * math.Pi / 180

	// Endpoints on the bounds' half-diagonal, rotated about the center.
	center := bounds.Center()
	halfLen := math.Hypot(bounds.Width, bounds.Height) / 2
	dx := math.Cos(rad) * halfLen
	dy := math.Sin(rad) * halfLen

	g := canvas.NewLinearGradient(
		(center.X-dx)*scale, (center.Y-dy)*scale,
		(center.X+dx)*scale, (center.Y+dy)*scale,
	)
	addStops(spec, func(offset float64, c layers.RGBA) {
		g.AddColorStop(offset, c)
	})
	return g
}

func buildRadial(spec *layers.GradientSpec, bounds layers.Rect, scale float64) canvas.Brush {
	cx := defaultRadialCenter
	cy := defaultRadialCenter
	fraction := defaultRadialFraction
	if spec.CenterX != nil {
		cx = *spec.CenterX
	}
	if spec.CenterY != nil {
		cy = *spec.CenterY
	}
	if spec.Radius != nil {
		fraction = *spec.Radius
	}

	g := canvas.NewRadialGradient(
		(bounds.X+cx*bounds.Width)*scale,
		(bounds.Y+cy*bounds.Height)*scale,
		fraction*bounds.MaxDim()*scale,
	)
	addStops(spec, func(offset float64, c layers.RGBA) {
		g.AddColorStop(offset, c)
	})
	return g
}

// addStops parses and adds each stop. Bad colors are logged and skipped
// without aborting the remaining stops.
func addStops(spec *layers.GradientSpec, add func(float64, layers.RGBA)) {
	for i, stop := range spec.Stops {
		c, err := layers.ParseColor(stop.Color)
		if err != nil {
			layers.Logger().Warn("skipping invalid gradient stop",
				"index", i, "color", stop.Color, "error", err)
			continue
		}
		add(stop.Offset, c)
	}
}

// ApplyFill sets the context fill from the layer: the gradient when one
// is present (returns true), else the layer's solid fill. Fills of
// "none" or "transparent" leave the context untouched. Returns false
// whenever no gradient was used.
func ApplyFill(ctx *canvas.Context, l layers.Layer, bounds layers.Rect) bool {
	if l == nil {
		return false
	}
	if b := Build(l, bounds); b != nil {
		ctx.SetFillBrush(b)
		return true
	}

	fill := l.Common().Fill
	if fill == nil || layers.IsNoPaint(*fill) {
		return false
	}
	c, err := layers.ParseColor(*fill)
	if err != nil {
		layers.Logger().Warn("invalid fill color", "color", *fill, "error", err)
		return false
	}
	ctx.SetFillColor(c)
	return false
}

// DefaultSpec returns a ready-to-edit spec preset for the given type.
// Unknown types fall back to linear.
func DefaultSpec(t layers.GradientType) *layers.GradientSpec {
	stops := []layers.GradientStop{
		{Offset: 0, Color: "#ffffff"},
		{Offset: 1, Color: "#000000"},
	}
	if t == layers.GradientRadial {
		return &layers.GradientSpec{
			Type:    layers.GradientRadial,
			CenterX: layers.Float(defaultRadialCenter),
			CenterY: layers.Float(defaultRadialCenter),
			Radius:  layers.Float(presetRadialFraction),
			Stops:   stops,
		}
	}
	return &layers.GradientSpec{
		Type:  layers.GradientLinear,
		Angle: layers.Float(0),
		Stops: stops,
	}
}

// Clone deep-copies a spec. Returns nil for nil input.
func Clone(spec *layers.GradientSpec) *layers.GradientSpec {
	return spec.Clone()
}
