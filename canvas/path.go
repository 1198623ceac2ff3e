// Package canvas provides the software 2D drawing surface the renderers
// draw on: an opaque pre-parsed vector Path (built programmatically or
// parsed from SVG path data), and a Context that fills, strokes, and
// composites onto an *image.RGBA.
package canvas

import (
	"math"

	"github.com/slickdexic/layers"
)

// FillRule selects how self-intersecting paths determine interior points.
type FillRule uint8

// Supported fill rules.
const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// ParseFillRule maps the wire names used by shape geometry records.
// Anything other than "evenodd" is the default nonzero rule.
func ParseFillRule(s string) FillRule {
	if s == "evenodd" {
		return FillEvenOdd
	}
	return FillNonZero
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point layers.Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point layers.Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control layers.Point
	Point   layers.Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 layers.Point
	Control2 layers.Point
	Point    layers.Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is the Path2D-equivalent: an opaque pre-parsed vector path
// suitable for repeated fill, stroke, and hit testing without re-parsing
// its source data.
type Path struct {
	elements []PathElement
	start    layers.Point // starting point of current subpath
	current  layers.Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := layers.Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := layers.Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{
		Control: layers.Pt(cx, cy),
		Point:   layers.Pt(x, y),
	})
	p.current = layers.Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: layers.Pt(c1x, c1y),
		Control2: layers.Pt(c2x, c2y),
		Point:    layers.Pt(x, y),
	})
	p.current = layers.Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// IsEmpty returns true when the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() layers.Point {
	return p.current
}

// Transform returns a new path with the transformation applied to all
// points. The receiver is unchanged.
func (p *Path) Transform(m layers.Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle adds a rectangle with rounded corners.
// A radius of zero (or less) degenerates to a plain rectangle.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	if r <= 0 {
		p.Rectangle(x, y, w, h)
		return
	}
	r = math.Min(r, math.Min(w, h)/2)
	const k = 0.5522847498307936

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubicTo(x+w-r+r*k, y, x+w, y+r-r*k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubicTo(x+w, y+h-r+r*k, x+w-r+r*k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubicTo(x+r-r*k, y+h, x, y+h-r+r*k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-r*k, x+r-r*k, y, x+r, y)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an axis-aligned ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// Magic constant for circle approximation with cubic Beziers.
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Polyline adds line segments through the given points, optionally closed.
func (p *Path) Polyline(pts []layers.Point, closed bool) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.Close()
	}
}

// Bounds returns the bounding rectangle of the path. Curve control
// points are included, making the result conservative for curves.
func (p *Path) Bounds() layers.Rect {
	if p.IsEmpty() {
		return layers.Rect{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(pt layers.Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}

	if math.IsInf(minX, 1) {
		return layers.Rect{}
	}
	return layers.RectOf(minX, minY, maxX-minX, maxY-minY)
}

// flattenTolerance is the maximum deviation of a flattened curve from
// the true curve, in pixels.
const flattenTolerance = 0.25

// Flatten converts the path into polyline subpaths. Each subpath is a
// point sequence; closed reports whether the subpath ended with Close.
func (p *Path) Flatten() (subpaths [][]layers.Point, closed []bool) {
	var cur []layers.Point
	var start layers.Point

	flush := func(isClosed bool) {
		if len(cur) > 1 {
			subpaths = append(subpaths, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			start = e.Point
			cur = []layers.Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case QuadTo:
			if len(cur) > 0 {
				cur = appendQuad(cur, cur[len(cur)-1], e.Control, e.Point)
			}
		case CubicTo:
			if len(cur) > 0 {
				cur = appendCubic(cur, cur[len(cur)-1], e.Control1, e.Control2, e.Point)
			}
		case Close:
			if len(cur) > 1 {
				cur = append(cur, start)
				subpaths = append(subpaths, cur)
				closed = append(closed, true)
			}
			cur = []layers.Point{start}
		}
	}
	flush(false)
	return subpaths, closed
}

// segmentsForCurve picks a subdivision count from the control polygon
// length so flatter curves get fewer segments.
func segmentsForCurve(polyLen float64) int {
	n := int(math.Ceil(math.Sqrt(polyLen / flattenTolerance)))
	if n < 4 {
		n = 4
	}
	if n > 64 {
		n = 64
	}
	return n
}

func appendQuad(dst []layers.Point, p0, c, p1 layers.Point) []layers.Point {
	polyLen := p0.Distance(c) + c.Distance(p1)
	n := segmentsForCurve(polyLen)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(c, t)
		b := c.Lerp(p1, t)
		dst = append(dst, a.Lerp(b, t))
	}
	return dst
}

func appendCubic(dst []layers.Point, p0, c1, c2, p1 layers.Point) []layers.Point {
	polyLen := p0.Distance(c1) + c1.Distance(c2) + c2.Distance(p1)
	n := segmentsForCurve(polyLen)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		a := p0.Lerp(c1, t)
		b := c1.Lerp(c2, t)
		c := c2.Lerp(p1, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		dst = append(dst, ab.Lerp(bc, t))
	}
	return dst
}

// Contains reports whether the point (x, y) is inside the path under the
// given fill rule. Open subpaths are treated as implicitly closed, which
// matches canvas point-in-path semantics.
func (p *Path) Contains(x, y float64, rule FillRule) bool {
	subpaths, _ := p.Flatten()
	winding := 0
	crossings := 0

	for _, pts := range subpaths {
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := pts[i]
			b := pts[(i+1)%n] // implicit closing edge
			if (a.Y <= y) != (b.Y <= y) {
				// Edge crosses the horizontal ray at y; find crossing x.
				t := (y - a.Y) / (b.Y - a.Y)
				cx := a.X + t*(b.X-a.X)
				if cx > x {
					crossings++
					if b.Y > a.Y {
						winding++
					} else {
						winding--
					}
				}
			}
		}
	}

	if rule == FillEvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}
