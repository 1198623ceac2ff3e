package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/slickdexic/layers"
)

// brushImage adapts a Brush to image.Image so the rasterizer can sample
// it per pixel. Pixels are mapped back to user space through inv, since
// gradients are anchored in the coordinates they were built in.
type brushImage struct {
	brush  Brush
	inv    layers.Matrix
	alpha  float64
	bounds image.Rectangle
}

func (b *brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *brushImage) Bounds() image.Rectangle { return b.bounds }

func (b *brushImage) At(x, y int) color.Color {
	p := b.inv.TransformPoint(layers.Pt(float64(x)+0.5, float64(y)+0.5))
	return b.brush.ColorAt(p.X, p.Y).WithAlpha(b.alpha).Color()
}

// brushSource picks the cheapest image source for a brush: a uniform for
// solid brushes, a per-pixel sampler otherwise.
func (c *Context) brushSource(brush Brush, alpha float64) image.Image {
	if solid, ok := brush.(SolidBrush); ok {
		return image.NewUniform(solid.Color.WithAlpha(alpha).Color())
	}
	return &brushImage{
		brush:  brush,
		inv:    c.state.transform.Invert(),
		alpha:  alpha,
		bounds: c.img.Bounds(),
	}
}

// rasterFill fills an already device-transformed path into dst.
func (c *Context) rasterFill(dst *image.RGBA, device *Path, rule FillRule, brush Brush, alpha float64) {
	if alpha <= 0 {
		return
	}
	if rule == FillEvenOdd {
		c.fillEvenOdd(dst, device, brush, alpha)
		return
	}

	subpaths, _ := device.Flatten()
	if len(subpaths) == 0 {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	for _, pts := range subpaths {
		r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, pt := range pts[1:] {
			r.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), c.brushSource(brush, alpha), image.Point{})
}

// fillEvenOdd fills under the even-odd rule with a plain per-pixel
// point-in-path scan. The rasterizer only models nonzero winding; shape
// geometry that asks for evenodd is rare enough that exactness beats
// anti-aliasing here.
func (c *Context) fillEvenOdd(dst *image.RGBA, device *Path, brush Brush, alpha float64) {
	bounds := device.Bounds()
	x0 := int(math.Floor(bounds.X))
	y0 := int(math.Floor(bounds.Y))
	x1 := int(math.Ceil(bounds.MaxX()))
	y1 := int(math.Ceil(bounds.MaxY()))

	clip := dst.Bounds()
	x0 = max(x0, clip.Min.X)
	y0 = max(y0, clip.Min.Y)
	x1 = min(x1, clip.Max.X)
	y1 = min(y1, clip.Max.Y)

	src := c.brushSource(brush, alpha)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if device.Contains(float64(px)+0.5, float64(py)+0.5, FillEvenOdd) {
				blendPixel(dst, px, py, src.At(px, py))
			}
		}
	}
}

// blendPixel composites a non-premultiplied color over dst at (x, y).
func blendPixel(dst *image.RGBA, x, y int, c color.Color) {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if nrgba.A == 0 {
		return
	}
	existing := dst.RGBAAt(x, y)
	sa := uint32(nrgba.A)

	// Source-over on premultiplied channels.
	over := func(s, d uint8) uint8 {
		return uint8(uint32(s)*sa/255 + uint32(d)*(255-sa)/255)
	}
	dst.SetRGBA(x, y, color.RGBA{
		R: over(nrgba.R, existing.R),
		G: over(nrgba.G, existing.G),
		B: over(nrgba.B, existing.B),
		A: uint8(sa + uint32(existing.A)*(255-sa)/255),
	})
}

// rasterStroke strokes an already device-transformed path into dst.
// The outline is built from thick segment quads plus round joins and
// caps, all accumulated under nonzero winding so overlaps stay uniform.
func (c *Context) rasterStroke(dst *image.RGBA, device *Path, width float64, dash *layers.Dash, brush Brush, alpha float64) {
	if alpha <= 0 || width <= 0 {
		return
	}

	subpaths, closedFlags := device.Flatten()
	if len(subpaths) == 0 {
		return
	}

	half := width / 2
	r := vector.NewRasterizer(c.width, c.height)
	any := false

	for i, pts := range subpaths {
		closed := closedFlags[i]
		pieces := [][]layers.Point{pts}
		if dash.IsDashed() {
			pieces = dashPolyline(pts, dash)
			closed = false
		}
		for _, piece := range pieces {
			if strokePolyline(r, piece, half, closed) {
				any = true
			}
		}
	}

	if !any {
		return
	}
	r.Draw(dst, dst.Bounds(), c.brushSource(brush, alpha), image.Point{})
}

// strokePolyline emits the thick outline of one polyline into the
// rasterizer. Returns false for degenerate input.
func strokePolyline(r *vector.Rasterizer, pts []layers.Point, half float64, closed bool) bool {
	if len(pts) < 2 {
		// A single point still gets a round dot (degenerate dash pieces).
		if len(pts) == 1 {
			rasterCircle(r, pts[0], half)
			return true
		}
		return false
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		// Perpendicular offset of half the stroke width.
		n := layers.Pt(-d.Y/length*half, d.X/length*half)

		r.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		r.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		r.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		r.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		r.ClosePath()
	}

	// Round joins at every vertex double as round caps at open ends.
	// Closed polylines already repeat their first point, so skip it once.
	n := len(pts)
	if closed && pts[0] == pts[n-1] {
		n--
	}
	for i := 0; i < n; i++ {
		rasterCircle(r, pts[i], half)
	}
	return true
}

// rasterCircle adds a polygonal circle approximation to the rasterizer.
func rasterCircle(r *vector.Rasterizer, center layers.Point, radius float64) {
	if radius <= 0 {
		return
	}
	const steps = 16
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / steps
		x := float32(center.X + radius*math.Cos(angle))
		y := float32(center.Y + radius*math.Sin(angle))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

// dashPolyline splits a polyline into the "on" pieces of a dash pattern.
func dashPolyline(pts []layers.Point, dash *layers.Dash) [][]layers.Point {
	pattern := dash.EffectiveArray()
	if len(pattern) == 0 || len(pts) < 2 {
		return [][]layers.Point{pts}
	}

	patternLen := dash.PatternLength()
	if patternLen <= 0 {
		return [][]layers.Point{pts}
	}

	var pieces [][]layers.Point
	var cur []layers.Point

	// Position within the pattern cycle, honoring the dash offset.
	pos := math.Mod(dash.Offset, patternLen)
	if pos < 0 {
		pos += patternLen
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remain := pattern[idx] - pos

	if on {
		cur = append(cur, pts[0])
	}

	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		traveled := 0.0

		for segLen-traveled > remain {
			traveled += remain
			t := traveled / segLen
			split := a.Lerp(b, t)

			if on {
				cur = append(cur, split)
				if len(cur) > 1 {
					pieces = append(pieces, cur)
				}
				cur = nil
			} else {
				cur = []layers.Point{split}
			}

			on = !on
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
		}

		remain -= segLen - traveled
		if on {
			cur = append(cur, b)
		}
	}

	if len(cur) > 1 {
		pieces = append(pieces, cur)
	}
	return pieces
}
