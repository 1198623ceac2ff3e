package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slickdexic/layers"
)

func TestApplyToLayerFillsUnsetFields(t *testing.T) {
	s := NewStore()
	r := &layers.Rectangle{Width: 10, Height: 10}

	s.ApplyToLayer(r)

	require.NotNil(t, r.Stroke)
	assert.Equal(t, "#ff0000", *r.Stroke)
	require.NotNil(t, r.StrokeWidth)
	assert.Equal(t, 2.0, *r.StrokeWidth)
	require.NotNil(t, r.Fill)
	assert.Equal(t, "transparent", *r.Fill)
}

func TestApplyToLayerNeverOverwrites(t *testing.T) {
	s := NewStore()
	r := &layers.Rectangle{
		Base: layers.Base{
			Stroke:      layers.String("#00ff00"),
			StrokeWidth: layers.Float(7),
		},
	}

	s.ApplyToLayer(r)

	assert.Equal(t, "#00ff00", *r.Stroke, "existing stroke must survive")
	assert.Equal(t, 7.0, *r.StrokeWidth, "existing width must survive")
	require.NotNil(t, r.Fill, "unset fill is still populated")
}

func TestApplyToLayerWithPosition(t *testing.T) {
	s := NewStore()
	c := &layers.Circle{Radius: 5}

	s.ApplyToLayer(c, WithPosition(layers.Pt(30, 40)))

	assert.Equal(t, 30.0, c.X)
	assert.Equal(t, 40.0, c.Y)
}

func TestApplyToLayerLineGetsNoFill(t *testing.T) {
	s := NewStore()
	l := &layers.Line{X1: 0, Y1: 0, X2: 10, Y2: 10}

	s.ApplyToLayer(l)

	assert.Nil(t, l.Fill, "lines carry no fill")
	require.NotNil(t, l.Stroke)
}

func TestApplyToLayerArrowStyle(t *testing.T) {
	s := NewStore()
	s.SetArrowStyle("double")

	a := &layers.Arrow{}
	s.ApplyToLayer(a)
	assert.Equal(t, "double", a.ArrowStyle)

	preset := &layers.Arrow{ArrowStyle: "single"}
	s.ApplyToLayer(preset)
	assert.Equal(t, "single", preset.ArrowStyle, "preset arrow style must survive")
}

func TestApplyToLayerTextFields(t *testing.T) {
	s := NewStore()
	s.SetFontSize(20)
	s.SetColor("#112233")

	tb := &layers.Textbox{Width: 100, Height: 50}
	s.ApplyToLayer(tb)

	require.NotNil(t, tb.FontSize)
	assert.Equal(t, 20.0, *tb.FontSize)
	require.NotNil(t, tb.FontFamily)
	assert.Equal(t, "Arial, sans-serif", *tb.FontFamily)
	require.NotNil(t, tb.TextStyleFields.Color)
	assert.Equal(t, "#112233", *tb.TextStyleFields.Color)
}

func TestApplyToLayerShadow(t *testing.T) {
	s := NewStore()

	// Disabled shadow applies nothing.
	r := &layers.Rectangle{}
	s.ApplyToLayer(r)
	assert.Nil(t, r.Shadow)

	enabled := true
	s.SetShadow(ShadowPartial{Enabled: &enabled})

	r2 := &layers.Rectangle{}
	s.ApplyToLayer(r2)
	require.NotNil(t, r2.Shadow)
	assert.True(t, r2.Shadow.Enabled)
	assert.Equal(t, "rgba(0,0,0,0.5)", r2.Shadow.Color)
	assert.Equal(t, 4.0, r2.Shadow.Blur)

	// Existing shadow survives.
	own := &layers.Shadow{Enabled: true, Blur: 99}
	r3 := &layers.Rectangle{Base: layers.Base{Shadow: own}}
	s.ApplyToLayer(r3)
	assert.Same(t, own, r3.Shadow)
}

func TestApplyToLayerNil(t *testing.T) {
	s := NewStore()
	assert.NotPanics(t, func() { s.ApplyToLayer(nil) })
}

func TestExtractFromLayer(t *testing.T) {
	s := NewStore()

	r := &layers.Rectangle{
		Base: layers.Base{
			Stroke:      layers.String("#abcdef"),
			Fill:        layers.String("#ffffff"),
			StrokeWidth: layers.Float(6),
		},
	}
	s.ExtractFromLayer(r)

	got := s.Get()
	assert.Equal(t, "#abcdef", got.Color)
	assert.Equal(t, "#ffffff", got.Fill)
	assert.Equal(t, 6.0, got.StrokeWidth)
	assert.Equal(t, 16.0, got.FontSize, "undefined fields keep store values")
}

func TestExtractFromLayerTextColorWins(t *testing.T) {
	s := NewStore()

	tb := &layers.Textbox{
		Base: layers.Base{Stroke: layers.String("#111111")},
		TextStyleFields: layers.TextStyleFields{
			Color:    layers.String("#222222"),
			FontSize: layers.Float(30),
		},
	}
	s.ExtractFromLayer(tb)

	got := s.Get()
	assert.Equal(t, "#222222", got.Color, "text color takes precedence over stroke")
	assert.Equal(t, 30.0, got.FontSize)
}

func TestExtractFromLayerShadow(t *testing.T) {
	s := NewStore()

	r := &layers.Rectangle{
		Base: layers.Base{
			Shadow: &layers.Shadow{
				Enabled: true,
				Color:   "rgba(0,0,0,0.8)",
				Blur:    12,
				OffsetX: -3,
				OffsetY: 5,
			},
		},
	}
	s.ExtractFromLayer(r)

	got := s.Get()
	assert.True(t, got.ShadowEnabled)
	assert.Equal(t, "rgba(0,0,0,0.8)", got.ShadowColor)
	assert.Equal(t, 12.0, got.ShadowBlur)
	assert.Equal(t, -3.0, got.ShadowOffsetX)
	assert.Equal(t, 5.0, got.ShadowOffsetY)
}

func TestExtractFromLayerClampsWidth(t *testing.T) {
	s := NewStore()

	r := &layers.Rectangle{
		Base: layers.Base{StrokeWidth: layers.Float(0.1)},
	}
	s.ExtractFromLayer(r)

	assert.Equal(t, MinStrokeWidth, s.Get().StrokeWidth)
}
