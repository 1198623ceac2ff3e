package shape

import (
	"math"

	"github.com/slickdexic/layers"
)

// UpdateRectangle resizes a rectangle from a drag gesture. The origin is
// re-anchored to the smaller corner so width and height never go
// negative.
func UpdateRectangle(r *layers.Rectangle, start, current layers.Point) {
	r.X = math.Min(start.X, current.X)
	r.Y = math.Min(start.Y, current.Y)
	r.Width = math.Abs(current.X - start.X)
	r.Height = math.Abs(current.Y - start.Y)
}

// UpdateTextbox resizes a textbox the same way as a rectangle.
func UpdateTextbox(t *layers.Textbox, start, current layers.Point) {
	t.X = math.Min(start.X, current.X)
	t.Y = math.Min(start.Y, current.Y)
	t.Width = math.Abs(current.X - start.X)
	t.Height = math.Abs(current.Y - start.Y)
}

// UpdateCircle sets the radius to the distance dragged from the center.
func UpdateCircle(c *layers.Circle, start, current layers.Point) {
	c.X = start.X
	c.Y = start.Y
	c.Radius = start.Distance(current)
}

// UpdateEllipse centers the ellipse on the drag midpoint with each
// radius at half the corresponding extent.
func UpdateEllipse(e *layers.Ellipse, start, current layers.Point) {
	mid := start.Midpoint(current)
	e.X = mid.X
	e.Y = mid.Y
	e.RadiusX = math.Abs(current.X-start.X) / 2
	e.RadiusY = math.Abs(current.Y-start.Y) / 2
}

// UpdateLine moves the free endpoint; the anchored end stays at start.
func UpdateLine(l *layers.Line, start, current layers.Point) {
	l.X1, l.Y1 = start.X, start.Y
	l.X2, l.Y2 = current.X, current.Y
	l.X, l.Y = start.X, start.Y
}

// UpdateArrow moves the arrow tip; the tail stays at start.
func UpdateArrow(a *layers.Arrow, start, current layers.Point) {
	a.X1, a.Y1 = start.X, start.Y
	a.X2, a.Y2 = current.X, current.Y
	a.X, a.Y = start.X, start.Y
}

// UpdatePolygon sets the circumradius to the drag distance.
func UpdatePolygon(p *layers.Polygon, start, current layers.Point) {
	p.X = start.X
	p.Y = start.Y
	p.Radius = start.Distance(current)
}

// UpdateStar sets the outer radius to the drag distance, keeping the
// inner radius at the fixed 0.4 ratio the drawing tools use.
func UpdateStar(s *layers.Star, start, current layers.Point) {
	s.X = start.X
	s.Y = start.Y
	s.OuterRadius = start.Distance(current)
	s.InnerRadius = s.OuterRadius * 0.4
}

// Update dispatches to the per-kind drag update. Kinds without drag
// geometry (text, image, group, path) are left unchanged.
func Update(l layers.Layer, start, current layers.Point) {
	switch t := l.(type) {
	case *layers.Rectangle:
		UpdateRectangle(t, start, current)
	case *layers.Textbox:
		UpdateTextbox(t, start, current)
	case *layers.Circle:
		UpdateCircle(t, start, current)
	case *layers.Ellipse:
		UpdateEllipse(t, start, current)
	case *layers.Line:
		UpdateLine(t, start, current)
	case *layers.Arrow:
		UpdateArrow(t, start, current)
	case *layers.Polygon:
		UpdatePolygon(t, start, current)
	case *layers.Star:
		UpdateStar(t, start, current)
	}
}
