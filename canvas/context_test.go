package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/slickdexic/layers"
)

func TestContextSaveRestore(t *testing.T) {
	c := NewContext(10, 10)

	c.SetLineWidth(3)
	c.SetGlobalAlpha(0.5)
	c.Save()
	c.SetLineWidth(7)
	c.SetGlobalAlpha(1)
	c.Translate(5, 5)
	c.Restore()

	if c.LineWidth() != 3 {
		t.Errorf("LineWidth = %v, want 3", c.LineWidth())
	}
	if c.GlobalAlpha() != 0.5 {
		t.Errorf("GlobalAlpha = %v, want 0.5", c.GlobalAlpha())
	}
	if !c.Transform().IsIdentity() {
		t.Error("transform should be restored to identity")
	}

	// Restore with an empty stack is a no-op.
	c.Restore()
	if c.LineWidth() != 3 {
		t.Error("extra Restore changed state")
	}
}

func TestContextTransformComposition(t *testing.T) {
	c := NewContext(10, 10)
	c.Translate(10, 0)
	c.Scale(2, 2)

	got := c.Transform().TransformPoint(layers.Pt(1, 1))
	want := layers.Pt(12, 2)
	if got != want {
		t.Errorf("composed transform point = %+v, want %+v", got, want)
	}
}

func TestContextGlobalAlphaClamps(t *testing.T) {
	c := NewContext(1, 1)
	c.SetGlobalAlpha(2)
	if c.GlobalAlpha() != 1 {
		t.Errorf("alpha above 1 should clamp, got %v", c.GlobalAlpha())
	}
	c.SetGlobalAlpha(-0.5)
	if c.GlobalAlpha() != 0 {
		t.Errorf("negative alpha should clamp, got %v", c.GlobalAlpha())
	}
}

func TestContextClear(t *testing.T) {
	c := NewContext(4, 4)
	c.Clear(layers.White)

	r, g, b, a := c.Image().At(2, 2).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("cleared pixel = %v %v %v %v, want opaque white", r, g, b, a)
	}
}

func TestContextFillPath(t *testing.T) {
	c := NewContext(20, 20)
	c.SetFillColor(layers.RGBA{R: 1, A: 1})

	p := NewPath()
	p.Rectangle(5, 5, 10, 10)
	c.FillPath(p)

	if !pixelOpaqueRed(c.img, 10, 10) {
		t.Error("interior pixel should be filled red")
	}
	if _, _, _, a := c.img.At(2, 2).RGBA(); a != 0 {
		t.Error("pixel outside the path should stay transparent")
	}
}

func TestContextFillPathTransformed(t *testing.T) {
	c := NewContext(40, 40)
	c.SetFillColor(layers.RGBA{R: 1, A: 1})
	c.Translate(20, 20)
	c.Scale(2, 2)

	// Unit-ish square at the origin lands at (20,20)-(30,30) in device
	// space.
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	c.FillPath(p)

	if !pixelOpaqueRed(c.img, 25, 25) {
		t.Error("transformed fill missed expected pixel")
	}
	if _, _, _, a := c.img.At(10, 10).RGBA(); a != 0 {
		t.Error("pixel outside the transformed rect should stay transparent")
	}
}

func TestContextFillPathEvenOdd(t *testing.T) {
	c := NewContext(40, 40)
	c.SetFillColor(layers.RGBA{R: 1, A: 1})

	p := NewPath()
	p.Rectangle(5, 5, 30, 30)
	p.Rectangle(15, 15, 10, 10)
	c.FillPathRule(p, FillEvenOdd)

	if _, _, _, a := c.img.At(20, 20).RGBA(); a != 0 {
		t.Error("even-odd hole should stay transparent")
	}
	if _, _, _, a := c.img.At(8, 20).RGBA(); a == 0 {
		t.Error("even-odd ring should be filled")
	}
}

func TestContextStrokePath(t *testing.T) {
	c := NewContext(20, 20)
	c.SetStrokeColor(layers.RGBA{B: 1, A: 1})
	c.SetLineWidth(2)

	p := NewPath()
	p.MoveTo(2, 10)
	p.LineTo(18, 10)
	c.StrokePath(p)

	if _, _, _, a := c.img.At(10, 10).RGBA(); a == 0 {
		t.Error("stroked line should cover its midpoint")
	}
	if _, _, _, a := c.img.At(10, 3).RGBA(); a != 0 {
		t.Error("pixel far from the line should stay transparent")
	}
}

func TestContextStrokePathZeroWidth(t *testing.T) {
	c := NewContext(10, 10)
	c.SetLineWidth(0)

	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(10, 5)
	c.StrokePath(p)

	if _, _, _, a := c.img.At(5, 5).RGBA(); a != 0 {
		t.Error("zero-width stroke should draw nothing")
	}
}

func TestContextStrokePathDashed(t *testing.T) {
	c := NewContext(100, 10)
	c.SetStrokeColor(layers.Black)
	c.SetLineWidth(2)
	c.SetDash(layers.NewDash(10, 10))

	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(100, 5)
	c.StrokePath(p)

	on, off := 0, 0
	for x := 0; x < 100; x++ {
		if _, _, _, a := c.img.At(x, 5).RGBA(); a != 0 {
			on++
		} else {
			off++
		}
	}
	if on == 0 || off == 0 {
		t.Errorf("dashed stroke should alternate: on=%d off=%d", on, off)
	}
}

func TestContextFillWithGlobalAlpha(t *testing.T) {
	c := NewContext(10, 10)
	c.SetFillColor(layers.Black)
	c.SetGlobalAlpha(0.5)

	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	c.FillPath(p)

	_, _, _, a := c.img.At(5, 5).RGBA()
	if a == 0 || a == 0xffff {
		t.Errorf("half-alpha fill should be semi-transparent, got alpha %v", a)
	}
}

func TestContextDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	c := NewContext(20, 20)
	c.DrawImage(src, 5, 5, 10, 10)

	if _, _, _, a := c.img.At(10, 10).RGBA(); a == 0 {
		t.Error("drawn image should cover its target rect")
	}
	if _, _, _, a := c.img.At(2, 2).RGBA(); a != 0 {
		t.Error("pixel outside the target rect should stay transparent")
	}

	// Degenerate sizes are no-ops.
	c2 := NewContext(20, 20)
	c2.DrawImage(src, 5, 5, 0, 10)
	if _, _, _, a := c2.img.At(6, 10).RGBA(); a != 0 {
		t.Error("zero-width draw should be a no-op")
	}
}

func TestContextShadowFill(t *testing.T) {
	c := NewContext(40, 40)
	c.SetFillColor(layers.RGBA{R: 1, A: 1})
	c.SetShadow(ShadowState{
		Enabled: true,
		Color:   layers.RGBA{A: 1},
		Blur:    2,
		OffsetX: 6,
		OffsetY: 6,
	})

	p := NewPath()
	p.Rectangle(5, 5, 10, 10)
	c.FillPath(p)

	// The shadow is offset beyond the shape, so a pixel past the shape's
	// right-bottom corner picks up shadow coverage.
	if _, _, _, a := c.img.At(18, 18).RGBA(); a == 0 {
		t.Error("shadow should darken pixels offset from the shape")
	}
	// The shape itself still draws on top.
	if !pixelOpaqueRed(c.img, 10, 10) {
		t.Error("shape fill should draw over the shadow")
	}

	c.ClearShadow()
	c2 := NewContext(40, 40)
	c2.SetFillColor(layers.RGBA{R: 1, A: 1})
	c2.FillPath(p)
	if _, _, _, a := c2.img.At(25, 25).RGBA(); a != 0 {
		t.Error("without a shadow nothing should draw outside the shape")
	}
}

func pixelOpaqueRed(img *image.RGBA, x, y int) bool {
	r, g, b, a := img.At(x, y).RGBA()
	return r == 0xffff && g == 0 && b == 0 && a == 0xffff
}
