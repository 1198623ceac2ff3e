package shape

import (
	"github.com/slickdexic/layers"
)

// HasValidSize reports whether a layer has enough extent to keep after a
// gesture ends. It gates out accidental click-without-drag shapes.
//
// Unrecognized kinds are treated as valid; the permissive fallback keeps
// forward-compatible layer records from being silently discarded.
func HasValidSize(l layers.Layer) bool {
	if l == nil {
		return false
	}
	switch t := l.(type) {
	case *layers.Rectangle:
		return t.Width > 1 && t.Height > 1
	case *layers.Textbox:
		return t.Width > 1 && t.Height > 1
	case *layers.Circle:
		return t.Radius > 0
	case *layers.Polygon:
		return t.Radius > 0
	case *layers.Star:
		return t.OuterRadius > 0
	case *layers.Ellipse:
		return t.RadiusX > 0 && t.RadiusY > 0
	case *layers.Line:
		return t.X1 != t.X2 || t.Y1 != t.Y2
	case *layers.Arrow:
		return t.X1 != t.X2 || t.Y1 != t.Y2
	case *layers.PathLayer:
		return len(t.Points) >= 2
	default:
		return true
	}
}
