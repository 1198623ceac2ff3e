package richtext

import (
	"github.com/slickdexic/layers"
)

// BaseStyle is the resolved base text style of a layer, with defaults
// filled in for anything the layer leaves unset.
type BaseStyle struct {
	FontSize   float64
	FontFamily string
	FontWeight string
	FontStyle  string
	Color      string
}

// Base text style defaults.
const (
	DefaultFontSize   = 16.0
	DefaultFontFamily = "Arial, sans-serif"
	DefaultTextColor  = "#000000"
)

// BuildBaseStyle resolves a layer's base text style. Non-textual and
// nil layers get the pure defaults.
func BuildBaseStyle(l layers.Layer) BaseStyle {
	s := BaseStyle{
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		FontWeight: "normal",
		FontStyle:  "normal",
		Color:      DefaultTextColor,
	}
	if l == nil {
		return s
	}
	tf := layers.TextFields(l)
	if tf == nil {
		return s
	}
	if tf.FontSize != nil {
		s.FontSize = *tf.FontSize
	}
	if tf.FontFamily != nil {
		s.FontFamily = *tf.FontFamily
	}
	if tf.FontWeight != nil {
		s.FontWeight = *tf.FontWeight
	}
	if tf.FontStyle != nil {
		s.FontStyle = *tf.FontStyle
	}
	if tf.Color != nil {
		s.Color = *tf.Color
	}
	return s
}

// TextStyle is the resolved shadow and stroke decoration for drawing a
// layer's text, already scaled for the current render pass.
type TextStyle struct {
	ShadowEnabled bool
	ShadowColor   string
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64

	StrokeColor string
	StrokeWidth float64
}

// Text decoration defaults.
const (
	defaultTextShadowColor = "rgba(0,0,0,0.5)"
	defaultTextShadowBlur  = 4.0
	defaultTextShadowOff   = 2.0
	defaultTextStrokeColor = "#000000"
)

// BuildTextStyle resolves the shadow and stroke styling of a layer's
// text. Shadow enablement is a permissive truthy check so wire values
// of true, "true", 1, and "1" all enable it. Blur and offsets scale by
// the shadow scale average; stroke width scales by the render scale
// average.
func BuildTextStyle(l layers.Layer, shadowScale, scale Scale) TextStyle {
	s := TextStyle{
		ShadowColor:   defaultTextShadowColor,
		ShadowBlur:    defaultTextShadowBlur * shadowScale.Avg(),
		ShadowOffsetX: defaultTextShadowOff * shadowScale.Avg(),
		ShadowOffsetY: defaultTextShadowOff * shadowScale.Avg(),
		StrokeColor:   defaultTextStrokeColor,
	}
	if l == nil {
		return s
	}
	tf := layers.TextFields(l)
	if tf == nil {
		return s
	}

	if tf.TextShadow != nil {
		s.ShadowEnabled = truthy(*tf.TextShadow)
	}
	if tf.TextShadowColor != nil {
		s.ShadowColor = *tf.TextShadowColor
	}
	if tf.TextShadowBlur != nil {
		s.ShadowBlur = *tf.TextShadowBlur * shadowScale.Avg()
	}
	if tf.TextShadowOffsetX != nil {
		s.ShadowOffsetX = *tf.TextShadowOffsetX * shadowScale.Avg()
	}
	if tf.TextShadowOffsetY != nil {
		s.ShadowOffsetY = *tf.TextShadowOffsetY * shadowScale.Avg()
	}

	if tf.TextStrokeColor != nil {
		s.StrokeColor = *tf.TextStrokeColor
	}
	if tf.TextStrokeWidth != nil {
		s.StrokeWidth = *tf.TextStrokeWidth * scale.Avg()
	}
	return s
}

// truthy accepts the wire spellings of an enabled flag.
func truthy(s string) bool {
	return s == "true" || s == "1"
}

// RunStyle resolves one run's effective style over the base style.
func RunStyle(base BaseStyle, run layers.RichTextRun) BaseStyle {
	out := base
	if run.Style == nil {
		return out
	}
	if run.Style.FontSize != nil {
		out.FontSize = *run.Style.FontSize
	}
	if run.Style.FontFamily != nil {
		out.FontFamily = *run.Style.FontFamily
	}
	if run.Style.FontWeight != nil {
		out.FontWeight = *run.Style.FontWeight
	}
	if run.Style.FontStyle != nil {
		out.FontStyle = *run.Style.FontStyle
	}
	if run.Style.Color != nil {
		out.Color = *run.Style.Color
	}
	return out
}
