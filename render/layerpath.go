package render

import (
	"math"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
	"github.com/slickdexic/layers/gradient"
)

// LayerPath builds the outline path of a vector layer in user
// coordinates. Kinds without vector geometry (text, image, group)
// yield nil.
func LayerPath(l layers.Layer) *canvas.Path {
	switch t := l.(type) {
	case *layers.Rectangle:
		return rectPath(t.X, t.Y, t.Width, t.Height, t.CornerRadius)
	case *layers.Textbox:
		return rectPath(t.X, t.Y, t.Width, t.Height, t.CornerRadius)
	case *layers.Circle:
		p := canvas.NewPath()
		p.Circle(t.X, t.Y, t.Radius)
		return p
	case *layers.Ellipse:
		p := canvas.NewPath()
		p.Ellipse(t.X, t.Y, t.RadiusX, t.RadiusY)
		return p
	case *layers.Line:
		p := canvas.NewPath()
		p.MoveTo(t.X1, t.Y1)
		p.LineTo(t.X2, t.Y2)
		return p
	case *layers.Arrow:
		return arrowPath(t)
	case *layers.Polygon:
		return regularPolygonPath(t.X, t.Y, t.Radius, t.Sides)
	case *layers.Star:
		return starPath(t.X, t.Y, t.OuterRadius, t.InnerRadius, t.Points)
	case *layers.PathLayer:
		return freePath(t)
	case *layers.Callout:
		return calloutPath(t)
	default:
		return nil
	}
}

func rectPath(x, y, w, h, corner float64) *canvas.Path {
	p := canvas.NewPath()
	if corner > 0 {
		p.RoundedRectangle(x, y, w, h, corner)
	} else {
		p.Rectangle(x, y, w, h)
	}
	return p
}

// arrowPath is the shaft plus a filled triangular head at the tip. The
// head size comes from ArrowSize and points along the shaft direction.
func arrowPath(a *layers.Arrow) *canvas.Path {
	p := canvas.NewPath()
	p.MoveTo(a.X1, a.Y1)
	p.LineTo(a.X2, a.Y2)

	dx := a.X2 - a.X1
	dy := a.Y2 - a.Y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p
	}

	size := a.ArrowSize
	if size <= 0 {
		size = 10
	}
	angle := math.Atan2(dy, dx)
	const spread = math.Pi / 7

	p.MoveTo(a.X2, a.Y2)
	p.LineTo(
		a.X2-size*math.Cos(angle-spread),
		a.Y2-size*math.Sin(angle-spread),
	)
	p.LineTo(
		a.X2-size*math.Cos(angle+spread),
		a.Y2-size*math.Sin(angle+spread),
	)
	p.Close()

	if a.ArrowStyle == "double" {
		p.MoveTo(a.X1, a.Y1)
		p.LineTo(
			a.X1+size*math.Cos(angle-spread),
			a.Y1+size*math.Sin(angle-spread),
		)
		p.LineTo(
			a.X1+size*math.Cos(angle+spread),
			a.Y1+size*math.Sin(angle+spread),
		)
		p.Close()
	}
	return p
}

func regularPolygonPath(cx, cy, radius float64, sides int) *canvas.Path {
	if sides < 3 {
		sides = 3
	}
	p := canvas.NewPath()
	for i := 0; i < sides; i++ {
		angle := 2*math.Pi*float64(i)/float64(sides) - math.Pi/2
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

func starPath(cx, cy, outer, inner float64, points int) *canvas.Path {
	if points < 3 {
		points = 5
	}
	p := canvas.NewPath()
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := math.Pi*float64(i)/float64(points) - math.Pi/2
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

func freePath(t *layers.PathLayer) *canvas.Path {
	if len(t.Points) == 0 {
		return canvas.NewPath()
	}
	p := canvas.NewPath()
	p.MoveTo(t.Points[0].X, t.Points[0].Y)
	for _, pt := range t.Points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if t.Closed {
		p.Close()
	}
	return p
}

// calloutPath is the body rectangle with a triangular tail toward
// (TailX, TailY), attached to the nearest edge midpoint region.
func calloutPath(c *layers.Callout) *canvas.Path {
	p := canvas.NewPath()
	p.Rectangle(c.X, c.Y, c.Width, c.Height)

	cx := c.X + c.Width/2
	baseHalf := math.Min(c.Width/4, 12.0)
	baseY := c.Y + c.Height
	if c.TailY < c.Y {
		baseY = c.Y
	}
	p.MoveTo(cx-baseHalf, baseY)
	p.LineTo(c.TailX, c.TailY)
	p.LineTo(cx+baseHalf, baseY)
	p.Close()
	return p
}

// DrawVector draws a vector layer's own geometry with its fill, stroke,
// shadow, and opacity. It is the draw path for layers that do not use
// library shape geometry.
func DrawVector(ctx *canvas.Context, l layers.Layer, opts RenderOptions) {
	path := LayerPath(l)
	if path == nil || path.IsEmpty() {
		return
	}

	base := l.Common()
	scale := opts.scale()
	bounds := Bounds(l)

	ctx.Save()
	defer ctx.Restore()

	ctx.Scale(scale, scale)
	ctx.SetGlobalAlpha(Opacity(nil, base.Opacity))

	if base.Rotation != nil && *base.Rotation != 0 {
		center := bounds.Center()
		ctx.Translate(center.X, center.Y)
		ctx.Rotate(*base.Rotation)
		ctx.Translate(-center.X, -center.Y)
	}

	if sh := base.Shadow; sh != nil && sh.Enabled {
		color := layers.RGBA{A: 0.5}
		if c, err := layers.ParseColor(sh.Color); err == nil && sh.Color != "" {
			color = c
		}
		ctx.SetShadow(canvas.ShadowState{
			Enabled: true,
			Color:   color,
			Blur:    sh.Blur,
			OffsetX: sh.OffsetX,
			OffsetY: sh.OffsetY,
		})
		defer ctx.ClearShadow()
	}

	if gradient.ApplyFill(ctx, l, bounds) || paintableFill(base.Fill) {
		ctx.FillPath(path)
	}

	if base.Stroke != nil && base.StrokeWidth != nil && *base.StrokeWidth > 0 {
		if c, err := layers.ParseColor(*base.Stroke); err == nil {
			ctx.SetStrokeColor(c)
			ctx.SetLineWidth(*base.StrokeWidth)
			ctx.StrokePath(path)
		}
	}
}
