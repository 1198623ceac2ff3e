package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/slickdexic/layers"
)

// ShadowState is the drop-shadow configuration of a context state.
type ShadowState struct {
	Enabled bool
	Color   layers.RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// drawState is the saveable drawing state of a Context.
type drawState struct {
	transform   layers.Matrix
	fillBrush   Brush
	strokeBrush Brush
	lineWidth   float64
	dash        *layers.Dash
	globalAlpha float64
	shadow      ShadowState
}

// Context is a software 2D drawing context over an *image.RGBA.
// It mirrors the canvas-2D model the renderers target: a current
// transform, fill and stroke brushes, dash patterns, global alpha, and
// an optional drop shadow, all managed through a Save/Restore stack.
//
// A Context is not safe for concurrent use; all drawing for a frame
// happens from one goroutine.
type Context struct {
	img    *image.RGBA
	width  int
	height int
	state  drawState
	stack  []drawState
}

// NewContext creates a context over a fresh transparent image.
func NewContext(width, height int) *Context {
	return NewContextForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextForImage creates a context that draws onto an existing image.
func NewContextForImage(img *image.RGBA) *Context {
	b := img.Bounds()
	return &Context{
		img:    img,
		width:  b.Dx(),
		height: b.Dy(),
		state:  defaultState(),
	}
}

func defaultState() drawState {
	return drawState{
		transform:   layers.Identity(),
		fillBrush:   Solid(layers.Black),
		strokeBrush: Solid(layers.Black),
		lineWidth:   1,
		globalAlpha: 1,
	}
}

// Image returns the underlying image.
func (c *Context) Image() *image.RGBA { return c.img }

// Width returns the context width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the context height in pixels.
func (c *Context) Height() int { return c.height }

// Save pushes the current drawing state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved drawing state.
// Restoring with an empty stack is a no-op.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate prepends a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	c.state.transform = c.state.transform.Multiply(layers.Translate(x, y))
}

// Scale prepends a scale to the current transform.
func (c *Context) Scale(sx, sy float64) {
	c.state.transform = c.state.transform.Multiply(layers.Scale(sx, sy))
}

// Rotate prepends a rotation (radians) to the current transform.
func (c *Context) Rotate(angle float64) {
	c.state.transform = c.state.transform.Multiply(layers.Rotate(angle))
}

// Transform returns the current transform.
func (c *Context) Transform() layers.Matrix { return c.state.transform }

// SetFillBrush sets the brush used by FillPath.
func (c *Context) SetFillBrush(b Brush) {
	if b == nil {
		b = Solid(layers.Black)
	}
	c.state.fillBrush = b
}

// SetFillColor sets a solid fill color.
func (c *Context) SetFillColor(col layers.RGBA) {
	c.state.fillBrush = Solid(col)
}

// SetStrokeBrush sets the brush used by StrokePath.
func (c *Context) SetStrokeBrush(b Brush) {
	if b == nil {
		b = Solid(layers.Black)
	}
	c.state.strokeBrush = b
}

// SetStrokeColor sets a solid stroke color.
func (c *Context) SetStrokeColor(col layers.RGBA) {
	c.state.strokeBrush = Solid(col)
}

// SetLineWidth sets the stroke width in user-space units.
func (c *Context) SetLineWidth(w float64) {
	if w < 0 {
		w = 0
	}
	c.state.lineWidth = w
}

// LineWidth returns the current stroke width.
func (c *Context) LineWidth() float64 { return c.state.lineWidth }

// SetDash sets the dash pattern for strokes. Nil means solid.
func (c *Context) SetDash(d *layers.Dash) {
	c.state.dash = d
}

// SetGlobalAlpha sets the global alpha applied to all drawing.
func (c *Context) SetGlobalAlpha(a float64) {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.state.globalAlpha = a
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 { return c.state.globalAlpha }

// SetShadow enables a drop shadow for subsequent fills and strokes.
func (c *Context) SetShadow(s ShadowState) {
	c.state.shadow = s
}

// ClearShadow disables the drop shadow.
func (c *Context) ClearShadow() {
	c.state.shadow = ShadowState{}
}

// Clear fills the whole surface with a color, replacing existing pixels.
func (c *Context) Clear(col layers.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// FillPath fills the path with the current fill brush using the nonzero
// fill rule.
func (c *Context) FillPath(p *Path) {
	c.FillPathRule(p, FillNonZero)
}

// FillPathRule fills the path under an explicit fill rule.
func (c *Context) FillPathRule(p *Path, rule FillRule) {
	if p.IsEmpty() {
		return
	}
	device := p.Transform(c.state.transform)

	if c.state.shadow.Enabled {
		c.withShadow(device.Bounds(), func(dst *image.RGBA, shadowColor layers.RGBA) {
			c.rasterFill(dst, device, rule, Solid(shadowColor), 1)
		})
	}
	c.rasterFill(c.img, device, rule, c.state.fillBrush, c.state.globalAlpha)
}

// StrokePath strokes the path outline with the current stroke brush,
// line width, and dash pattern.
func (c *Context) StrokePath(p *Path) {
	if p.IsEmpty() || c.state.lineWidth <= 0 {
		return
	}
	device := p.Transform(c.state.transform)
	scale := c.state.transform.ScaleFactor()
	width := c.state.lineWidth * scale
	dash := c.state.dash.Scale(scale)

	if c.state.shadow.Enabled {
		c.withShadow(device.Bounds().Expand(width), func(dst *image.RGBA, shadowColor layers.RGBA) {
			c.rasterStroke(dst, device, width, dash, Solid(shadowColor), 1)
		})
	}
	c.rasterStroke(c.img, device, width, dash, c.state.strokeBrush, c.state.globalAlpha)
}

// DrawImage draws src into the user-space rectangle (x, y, w, h) under
// the current transform and global alpha, with bilinear sampling.
func (c *Context) DrawImage(src image.Image, x, y, w, h float64) {
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 || w <= 0 || h <= 0 {
		return
	}

	m := c.state.transform.
		Multiply(layers.Translate(x, y)).
		Multiply(layers.Scale(w/float64(sb.Dx()), h/float64(sb.Dy())))

	aff := f64.Aff3{
		m.A, m.B, m.C - m.A*float64(sb.Min.X) - m.B*float64(sb.Min.Y),
		m.D, m.E, m.F - m.D*float64(sb.Min.X) - m.E*float64(sb.Min.Y),
	}

	var opts *xdraw.Options
	if c.state.globalAlpha < 1 {
		a := uint8(math.Round(c.state.globalAlpha * 255))
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha{A: a}),
		}
	}
	xdraw.BiLinear.Transform(c.img, aff, src, sb, xdraw.Over, opts)
}

// FillText draws a single line of text at the user-space baseline origin
// (x, y). Only the translation component of the transform is applied to
// glyph positions; size-dependent styling is resolved by the caller.
func (c *Context) FillText(face font.Face, text string, x, y float64, col layers.RGBA) {
	if face == nil || text == "" {
		return
	}
	origin := c.state.transform.TransformPoint(layers.Pt(x, y))
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.WithAlpha(c.state.globalAlpha).Color()),
		Face: face,
		Dot:  fixed.P(int(math.Round(origin.X)), int(math.Round(origin.Y))),
	}
	d.DrawString(text)
}
