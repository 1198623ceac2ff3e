package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/slickdexic/layers"
)

// withShadow renders a drop shadow for the drawing produced by drawFn.
// The geometry is drawn into an offscreen surface in the shadow color,
// blurred, then composited under the shadow offset. bounds is the device
// extent of the geometry and only serves to skip work when the shadow
// falls fully outside the surface.
func (c *Context) withShadow(bounds layers.Rect, drawFn func(dst *image.RGBA, shadowColor layers.RGBA)) {
	s := c.state.shadow
	if !s.Enabled || s.Color.A <= 0 {
		return
	}

	pad := s.Blur + math.Max(math.Abs(s.OffsetX), math.Abs(s.OffsetY))
	reach := bounds.Expand(pad)
	if reach.MaxX() < 0 || reach.MaxY() < 0 ||
		reach.X > float64(c.width) || reach.Y > float64(c.height) {
		return
	}

	off := image.NewRGBA(c.img.Bounds())
	drawFn(off, s.Color)

	if s.Blur > 0 {
		boxBlur(off, blurRadius(s.Blur))
	}

	alpha := c.state.globalAlpha
	target := c.img.Bounds().Add(image.Pt(int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY))))
	if alpha < 1 {
		drawWithAlpha(c.img, target, off, alpha)
	} else {
		draw.Draw(c.img, target, off, image.Point{}, draw.Over)
	}
}

// blurRadius converts a canvas-style blur amount to a box radius.
// Three box passes of this radius approximate a Gaussian of sigma
// blur/2, matching how browsers interpret shadowBlur.
func blurRadius(blur float64) int {
	r := int(math.Round(blur / 2))
	if r < 1 {
		r = 1
	}
	return r
}

// boxBlur blurs img in place with three box passes per axis.
func boxBlur(img *image.RGBA, radius int) {
	if radius <= 0 {
		return
	}
	tmp := image.NewRGBA(img.Bounds())
	for i := 0; i < 3; i++ {
		boxBlurPass(tmp, img, radius, true)
		boxBlurPass(img, tmp, radius, false)
	}
}

// boxBlurPass runs one horizontal or vertical box pass from src to dst
// using a sliding window over premultiplied channel sums.
func boxBlurPass(dst, src *image.RGBA, radius int, horizontal bool) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	outer, inner := h, w
	if !horizontal {
		outer, inner = w, h
	}

	at := func(o, i int) (int, int) {
		if horizontal {
			return b.Min.X + i, b.Min.Y + o
		}
		return b.Min.X + o, b.Min.Y + i
	}

	window := 2*radius + 1
	for o := 0; o < outer; o++ {
		var sr, sg, sb, sa uint32

		// Prime the window; out-of-range samples count as transparent.
		for i := -radius; i <= radius; i++ {
			if i < 0 || i >= inner {
				continue
			}
			x, y := at(o, i)
			px := src.RGBAAt(x, y)
			sr += uint32(px.R)
			sg += uint32(px.G)
			sb += uint32(px.B)
			sa += uint32(px.A)
		}

		for i := 0; i < inner; i++ {
			x, y := at(o, i)
			dst.SetRGBA(x, y, rgbaFromSums(sr, sg, sb, sa, uint32(window)))

			if drop := i - radius; drop >= 0 {
				px := src.RGBAAt(at(o, drop))
				sr -= uint32(px.R)
				sg -= uint32(px.G)
				sb -= uint32(px.B)
				sa -= uint32(px.A)
			}
			if add := i + radius + 1; add < inner {
				px := src.RGBAAt(at(o, add))
				sr += uint32(px.R)
				sg += uint32(px.G)
				sb += uint32(px.B)
				sa += uint32(px.A)
			}
		}
	}
}

func rgbaFromSums(r, g, b, a, n uint32) color.RGBA {
	return color.RGBA{
		R: uint8(r / n),
		G: uint8(g / n),
		B: uint8(b / n),
		A: uint8(a / n),
	}
}

// drawWithAlpha composites src over dst at rect with a uniform extra
// alpha applied.
func drawWithAlpha(dst *image.RGBA, rect image.Rectangle, src image.Image, alpha float64) {
	a := uint8(math.Round(alpha * 255))
	mask := image.NewUniform(color.Alpha{A: a})
	draw.DrawMask(dst, rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}
