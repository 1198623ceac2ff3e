package tool

import (
	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
	"github.com/slickdexic/layers/shape"
	"github.com/slickdexic/layers/style"
)

// DefaultCloseThreshold is the pointer distance to the first point that
// closes the polygon.
const DefaultCloseThreshold = 10.0

// PathTool turns a sequence of pointer clicks into a closed polygon
// layer. Clicks accumulate points; once three or more exist, a click
// within the close threshold of the first point completes the polygon
// and emits a path layer styled from the current drawing style.
type PathTool struct {
	styles    *style.Store
	threshold float64
	addLayer  func(layers.Layer)
	redraw    func()

	points  []layers.Point
	drawing bool
}

// PathToolOption configures NewPathTool.
type PathToolOption func(*PathTool)

// WithCloseThreshold overrides the close distance.
func WithCloseThreshold(d float64) PathToolOption {
	return func(t *PathTool) {
		if d > 0 {
			t.threshold = d
		}
	}
}

// WithAddLayer sets the callback receiving the completed path layer.
func WithAddLayer(fn func(layers.Layer)) PathToolOption {
	return func(t *PathTool) { t.addLayer = fn }
}

// WithRedraw sets the callback requesting a preview redraw.
func WithRedraw(fn func()) PathToolOption {
	return func(t *PathTool) { t.redraw = fn }
}

// NewPathTool creates an idle path tool reading style from styles.
// A nil store is replaced with a fresh default store.
func NewPathTool(styles *style.Store, opts ...PathToolOption) *PathTool {
	if styles == nil {
		styles = style.NewStore()
	}
	t := &PathTool{
		styles:    styles,
		threshold: DefaultCloseThreshold,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HandlePoint consumes one click. It returns true when the click closed
// the polygon and a layer was emitted; otherwise the point is appended
// and a preview redraw is requested.
func (t *PathTool) HandlePoint(p layers.Point) bool {
	if len(t.points) >= 3 && p.Distance(t.points[0]) <= t.threshold {
		t.Complete()
		return true
	}

	t.points = append(t.points, p)
	t.drawing = true
	layers.Logger().Debug("path tool point added", "count", len(t.points))
	t.requestRedraw()
	return false
}

// Complete emits a closed path layer from the accumulated points and
// resets to idle. With fewer than three points it silently does
// nothing; a degenerate polygon is not worth a layer.
func (t *PathTool) Complete() {
	if len(t.points) < 3 {
		return
	}

	cur := t.styles.Get()
	pts := make([]layers.Point, len(t.points))
	copy(pts, t.points)

	l := &layers.PathLayer{
		Base: layers.Base{
			X:           pts[0].X,
			Y:           pts[0].Y,
			Stroke:      layers.String(cur.Color),
			StrokeWidth: layers.Float(cur.StrokeWidth),
			Fill:        layers.String(cur.Fill),
		},
		Points: pts,
		Closed: true,
	}
	l.ID = shape.NewLayerID()

	t.points = nil
	t.drawing = false

	if t.addLayer != nil {
		t.addLayer(l)
	}
}

// RenderPreview draws the in-progress polygon: a dashed polyline
// through the points and a small filled marker at each vertex. The
// point buffer is read only; the redraw callback fires afterwards.
func (t *PathTool) RenderPreview(ctx *canvas.Context) {
	if ctx != nil && len(t.points) > 0 {
		cur := t.styles.Get()
		strokeColor := layers.Black
		if c, err := layers.ParseColor(cur.Color); err == nil {
			strokeColor = c
		}

		if len(t.points) > 1 {
			line := canvas.NewPath()
			line.MoveTo(t.points[0].X, t.points[0].Y)
			for _, p := range t.points[1:] {
				line.LineTo(p.X, p.Y)
			}
			ctx.Save()
			ctx.SetStrokeColor(strokeColor)
			ctx.SetLineWidth(1)
			ctx.SetDash(layers.NewDash(5, 5))
			ctx.StrokePath(line)
			ctx.Restore()
		}

		markers := canvas.NewPath()
		for _, p := range t.points {
			markers.Circle(p.X, p.Y, 3)
		}
		ctx.Save()
		ctx.SetFillColor(strokeColor)
		ctx.FillPath(markers)
		ctx.Restore()
	}

	t.requestRedraw()
}

// Cancel discards the in-progress polygon and forces a redraw so the
// preview disappears.
func (t *PathTool) Cancel() {
	t.Reset()
	t.requestRedraw()
}

// Reset clears the point buffer and drawing flag without a redraw.
func (t *PathTool) Reset() {
	t.points = nil
	t.drawing = false
}

// IsDrawing reports whether a polygon is in progress.
func (t *PathTool) IsDrawing() bool { return t.drawing }

// Points returns a copy of the accumulated points. Mutating the result
// does not affect the tool.
func (t *PathTool) Points() []layers.Point {
	out := make([]layers.Point, len(t.points))
	copy(out, t.points)
	return out
}

// Destroy drops all collaborators and clears the buffer. Safe to call
// repeatedly; the tool must not be used afterwards.
func (t *PathTool) Destroy() {
	t.points = nil
	t.drawing = false
	t.addLayer = nil
	t.redraw = nil
	t.styles = nil
}

func (t *PathTool) requestRedraw() {
	if t.redraw != nil {
		t.redraw()
	}
}
