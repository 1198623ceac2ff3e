package layers

// GradientType selects the gradient geometry.
type GradientType string

// Supported gradient types.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// GradientStop is a color at a position along the gradient.
// Offset is nominally in [0, 1]; builders clamp out-of-range values.
type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// GradientSpec is the declarative description of a gradient fill.
//
// For linear gradients, Angle is in degrees (default 0). For radial
// gradients, CenterX/CenterY/Radius are fractions of the target bounds
// (defaults 0.5, 0.5, 0.5). A spec needs at least two stops to be usable.
type GradientSpec struct {
	Type    GradientType   `json:"type"`
	Angle   *float64       `json:"angle,omitempty"`
	CenterX *float64       `json:"centerX,omitempty"`
	CenterY *float64       `json:"centerY,omitempty"`
	Radius  *float64       `json:"radius,omitempty"`
	Stops   []GradientStop `json:"colors"`
}

// Clone returns a deep copy of the spec: a new stop slice with new stop
// values and copies of the optional scalar fields. Returns nil for nil.
func (s *GradientSpec) Clone() *GradientSpec {
	if s == nil {
		return nil
	}
	out := &GradientSpec{Type: s.Type}
	if s.Angle != nil {
		out.Angle = Float(*s.Angle)
	}
	if s.CenterX != nil {
		out.CenterX = Float(*s.CenterX)
	}
	if s.CenterY != nil {
		out.CenterY = Float(*s.CenterY)
	}
	if s.Radius != nil {
		out.Radius = Float(*s.Radius)
	}
	if s.Stops != nil {
		out.Stops = make([]GradientStop, len(s.Stops))
		copy(out.Stops, s.Stops)
	}
	return out
}
