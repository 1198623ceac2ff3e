package render

import (
	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
	"github.com/slickdexic/layers/richtext"
)

// DefaultLineHeight is the line-height multiplier when a layer does not
// set one.
const DefaultLineHeight = 1.2

// TextRenderer draws the textual layer kinds: wrapping, alignment, and
// per-run styling are delegated to the richtext package, glyphs come
// from the font cache.
type TextRenderer struct {
	fonts *FontCache
}

// NewTextRenderer creates a text renderer over a font cache. A nil
// cache gets a fresh one.
func NewTextRenderer(fonts *FontCache) *TextRenderer {
	if fonts == nil {
		fonts = NewFontCache()
	}
	return &TextRenderer{fonts: fonts}
}

// Fonts returns the underlying font cache.
func (tr *TextRenderer) Fonts() *FontCache { return tr.fonts }

// textBox is the resolved layout box of a textual layer. Free-standing
// text has no box and never wraps.
type textBox struct {
	x, y    float64
	width   float64
	height  float64
	padding float64
	wrap    bool
}

func resolveBox(l layers.Layer) textBox {
	switch t := l.(type) {
	case *layers.Textbox:
		return textBox{x: t.X, y: t.Y, width: t.Width, height: t.Height, padding: t.Padding, wrap: true}
	case *layers.Callout:
		return textBox{x: t.X, y: t.Y, width: t.Width, height: t.Height, padding: t.Padding, wrap: true}
	default:
		b := l.Common()
		return textBox{x: b.X, y: b.Y}
	}
}

// Draw renders a textual layer's content. Non-textual layers are
// ignored. Geometry math happens in user units and is scaled once at
// draw time so wrapping is independent of zoom.
func (tr *TextRenderer) Draw(ctx *canvas.Context, l layers.Layer, opts RenderOptions) {
	tf := layers.TextFields(l)
	if tf == nil {
		return
	}

	runs := tf.RichText
	plain := tf.Text
	if richtext.HasRichText(l) {
		plain = richtext.PlainText(runs)
	} else {
		runs = nil
	}
	if plain == "" {
		return
	}

	scale := opts.scale()
	sc := richtext.Scale{X: scale, Y: scale}
	base := richtext.BuildBaseStyle(l)
	deco := richtext.BuildTextStyle(l, sc, sc)
	box := resolveBox(l)

	lineHeight := DefaultLineHeight
	if tf.LineHeight != nil && *tf.LineHeight > 0 {
		lineHeight = *tf.LineHeight
	}

	measureFace := tr.fonts.MeasureFace(base.FontFamily, base.FontSize, base.FontWeight, base.FontStyle)
	measurer := richtext.MeasureFunc(func(s string) float64 {
		return MeasureString(measureFace, s)
	})

	maxWidth := 0.0
	if box.wrap && box.width > 0 {
		maxWidth = box.width - 2*box.padding
	}
	lines := richtext.WrapText(plain, measurer, maxWidth)
	metrics := richtext.CalculateLineMetrics(lines, runs, base.FontSize, lineHeight, richtext.Unit)

	totalHeight := richtext.TotalTextHeight(metrics)
	availableHeight := box.height - 2*box.padding
	y := richtext.TextStartY(tf.VerticalAlign, box.y, box.padding, availableHeight, totalHeight)

	charRuns := richtext.CharToRunMap(runs)

	ctx.Save()
	defer ctx.Restore()
	if op := l.Common().Opacity; op != nil {
		ctx.SetGlobalAlpha(*op)
	}

	for _, m := range metrics {
		lineWidth := measurer.MeasureString(m.Text)
		x := richtext.LineX(tf.Align, box.x, box.width, lineWidth, box.padding)
		baseline := y + m.MaxFontSize

		tr.drawLine(ctx, m, charRuns, runs, base, deco, x, baseline, scale)
		y += m.LineHeight
	}
}

// drawLine draws one wrapped line, splitting it into segments of equal
// run style. The shadow pass draws the same segments offset in the
// shadow color; blur is not applied to text.
func (tr *TextRenderer) drawLine(ctx *canvas.Context, m richtext.LineMetric, charRuns []richtext.RunRef, runs []layers.RichTextRun, base richtext.BaseStyle, deco richtext.TextStyle, x, baseline, scale float64) {
	type segment struct {
		text  string
		style richtext.BaseStyle
	}

	var segments []segment
	if len(runs) == 0 {
		segments = []segment{{text: m.Text, style: base}}
	} else {
		lineRunes := []rune(m.Text)
		for i := 0; i < len(lineRunes); {
			pos := m.Start + i
			if pos >= len(charRuns) {
				break
			}
			runIdx := charRuns[pos].RunIndex
			j := i
			for j < len(lineRunes) && m.Start+j < len(charRuns) && charRuns[m.Start+j].RunIndex == runIdx {
				j++
			}
			segments = append(segments, segment{
				text:  string(lineRunes[i:j]),
				style: richtext.RunStyle(base, runs[runIdx]),
			})
			i = j
		}
	}

	drawPass := func(dx, dy float64, override *layers.RGBA) {
		penX := x
		for _, seg := range segments {
			face := tr.fonts.Face(seg.style.FontFamily, seg.style.FontSize*scale, seg.style.FontWeight, seg.style.FontStyle)
			var color layers.RGBA
			if override != nil {
				color = *override
			} else if c, err := layers.ParseColor(seg.style.Color); err == nil {
				color = c
			} else {
				color = layers.Black
			}
			ctx.FillText(face, seg.text, (penX+dx)*scale, (baseline+dy)*scale, color)
			penX += MeasureString(tr.fonts.MeasureFace(seg.style.FontFamily, seg.style.FontSize, seg.style.FontWeight, seg.style.FontStyle), seg.text)
		}
	}

	if deco.ShadowEnabled {
		shadow, err := layers.ParseColor(deco.ShadowColor)
		if err != nil {
			shadow = layers.RGBA{A: 0.5}
		}
		drawPass(deco.ShadowOffsetX/scale, deco.ShadowOffsetY/scale, &shadow)
	}
	drawPass(0, 0, nil)
}
