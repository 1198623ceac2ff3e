package render

import (
	"math"

	"github.com/slickdexic/layers"
)

// Bounds returns the axis-aligned bounding box of a layer's geometry,
// ignoring rotation and stroke width. Group and unknown kinds yield an
// empty rect at the layer origin.
func Bounds(l layers.Layer) layers.Rect {
	switch t := l.(type) {
	case *layers.Rectangle:
		return layers.RectOf(t.X, t.Y, t.Width, t.Height)
	case *layers.Textbox:
		return layers.RectOf(t.X, t.Y, t.Width, t.Height)
	case *layers.Callout:
		return layers.RectOf(t.X, t.Y, t.Width, t.Height)
	case *layers.ImageLayer:
		return layers.RectOf(t.X, t.Y, t.Width, t.Height)
	case *layers.Circle:
		return layers.RectOf(t.X-t.Radius, t.Y-t.Radius, 2*t.Radius, 2*t.Radius)
	case *layers.Ellipse:
		return layers.RectOf(t.X-t.RadiusX, t.Y-t.RadiusY, 2*t.RadiusX, 2*t.RadiusY)
	case *layers.Polygon:
		return layers.RectOf(t.X-t.Radius, t.Y-t.Radius, 2*t.Radius, 2*t.Radius)
	case *layers.Star:
		r := t.OuterRadius
		return layers.RectOf(t.X-r, t.Y-r, 2*r, 2*r)
	case *layers.Line:
		return segmentBounds(t.X1, t.Y1, t.X2, t.Y2)
	case *layers.Arrow:
		return segmentBounds(t.X1, t.Y1, t.X2, t.Y2)
	case *layers.PathLayer:
		return pointsBounds(t.Points, t.X, t.Y)
	case *layers.Text:
		return layers.RectOf(t.X, t.Y, 0, 0)
	default:
		b := l.Common()
		return layers.RectOf(b.X, b.Y, 0, 0)
	}
}

func segmentBounds(x1, y1, x2, y2 float64) layers.Rect {
	return layers.RectOf(
		math.Min(x1, x2), math.Min(y1, y2),
		math.Abs(x2-x1), math.Abs(y2-y1),
	)
}

func pointsBounds(pts []layers.Point, x, y float64) layers.Rect {
	if len(pts) == 0 {
		return layers.RectOf(x, y, 0, 0)
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return layers.RectOf(minX, minY, maxX-minX, maxY-minY)
}
