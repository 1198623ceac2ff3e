package render

import (
	"testing"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
)

func anyInk(ctx *canvas.Context) bool {
	img := ctx.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return true
			}
		}
	}
	return false
}

func newTestTextRenderer(t *testing.T) *TextRenderer {
	t.Helper()
	return NewTextRenderer(NewFontCache(t.TempDir()))
}

func TestTextDrawPlain(t *testing.T) {
	tr := newTestTextRenderer(t)
	ctx := canvas.NewContext(200, 60)

	tb := &layers.Textbox{
		Base: layers.Base{X: 0, Y: 0},
		TextStyleFields: layers.TextStyleFields{
			Text:  "Hello world",
			Color: layers.String("#000000"),
		},
		Width: 200, Height: 60, Padding: 8,
	}
	tr.Draw(ctx, tb, RenderOptions{})

	if !anyInk(ctx) {
		t.Error("plain text draw should produce glyph pixels")
	}
}

func TestTextDrawRichRuns(t *testing.T) {
	tr := newTestTextRenderer(t)
	ctx := canvas.NewContext(200, 60)

	tb := &layers.Textbox{
		TextStyleFields: layers.TextStyleFields{
			RichText: []layers.RichTextRun{
				layers.Run("plain "),
				layers.StyledRun("styled", &layers.RunStyle{
					Color:    layers.String("#ff0000"),
					FontSize: layers.Float(24),
				}),
			},
		},
		Width: 200, Height: 60, Padding: 8,
	}
	tr.Draw(ctx, tb, RenderOptions{})

	if !anyInk(ctx) {
		t.Error("rich text draw should produce glyph pixels")
	}
}

func TestTextDrawEmpty(t *testing.T) {
	tr := newTestTextRenderer(t)
	ctx := canvas.NewContext(50, 50)

	tr.Draw(ctx, &layers.Textbox{Width: 50, Height: 50}, RenderOptions{})
	if anyInk(ctx) {
		t.Error("empty text should draw nothing")
	}

	// Non-textual layers are ignored.
	tr.Draw(ctx, &layers.Circle{Radius: 5}, RenderOptions{})
	if anyInk(ctx) {
		t.Error("non-textual layers should draw nothing")
	}
}

func TestResolveBoxWrapping(t *testing.T) {
	wrapped := resolveBox(&layers.Textbox{Width: 100, Height: 40, Padding: 8})
	if !wrapped.wrap {
		t.Error("textboxes wrap")
	}
	point := resolveBox(&layers.Text{})
	if point.wrap {
		t.Error("point text does not wrap")
	}
}
