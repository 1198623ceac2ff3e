package richtext

import (
	"testing"

	"github.com/slickdexic/layers"
)

func TestBuildBaseStyleDefaults(t *testing.T) {
	for _, l := range []layers.Layer{nil, &layers.Circle{}, &layers.Textbox{}} {
		s := BuildBaseStyle(l)
		if s.FontSize != DefaultFontSize || s.FontFamily != DefaultFontFamily {
			t.Errorf("defaults for %T = %+v", l, s)
		}
		if s.FontWeight != "normal" || s.FontStyle != "normal" || s.Color != DefaultTextColor {
			t.Errorf("defaults for %T = %+v", l, s)
		}
	}
}

func TestBuildBaseStyleFromLayer(t *testing.T) {
	tb := &layers.Textbox{TextStyleFields: layers.TextStyleFields{
		FontSize:   layers.Float(24),
		FontFamily: layers.String("Georgia, serif"),
		FontWeight: layers.String("bold"),
		Color:      layers.String("#336699"),
	}}

	s := BuildBaseStyle(tb)
	if s.FontSize != 24 || s.FontFamily != "Georgia, serif" {
		t.Errorf("font = %v %q", s.FontSize, s.FontFamily)
	}
	if s.FontWeight != "bold" || s.FontStyle != "normal" {
		t.Errorf("weight/style = %q %q", s.FontWeight, s.FontStyle)
	}
	if s.Color != "#336699" {
		t.Errorf("color = %q", s.Color)
	}
}

func TestBuildTextStyleShadowTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "", want: false},
		{value: "yes", want: false},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			tb := &layers.Textbox{TextStyleFields: layers.TextStyleFields{
				TextShadow: layers.String(tt.value),
			}}
			if got := BuildTextStyle(tb, Unit, Unit).ShadowEnabled; got != tt.want {
				t.Errorf("ShadowEnabled for %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestBuildTextStyleDefaults(t *testing.T) {
	s := BuildTextStyle(&layers.Textbox{}, Unit, Unit)
	if s.ShadowEnabled {
		t.Error("shadow should default off")
	}
	if s.ShadowColor != "rgba(0,0,0,0.5)" || s.ShadowBlur != 4 {
		t.Errorf("shadow defaults = %q %v", s.ShadowColor, s.ShadowBlur)
	}
	if s.ShadowOffsetX != 2 || s.ShadowOffsetY != 2 {
		t.Errorf("shadow offsets = %v, %v", s.ShadowOffsetX, s.ShadowOffsetY)
	}
	if s.StrokeColor != "#000000" || s.StrokeWidth != 0 {
		t.Errorf("stroke defaults = %q %v", s.StrokeColor, s.StrokeWidth)
	}
}

func TestBuildTextStyleScaling(t *testing.T) {
	tb := &layers.Textbox{TextStyleFields: layers.TextStyleFields{
		TextShadow:        layers.String("true"),
		TextShadowBlur:    layers.Float(6),
		TextShadowOffsetX: layers.Float(3),
		TextShadowOffsetY: layers.Float(-3),
		TextStrokeColor:   layers.String("#ffffff"),
		TextStrokeWidth:   layers.Float(2),
	}}

	s := BuildTextStyle(tb, Scale{X: 2, Y: 2}, Scale{X: 3, Y: 1})
	if s.ShadowBlur != 12 || s.ShadowOffsetX != 6 || s.ShadowOffsetY != -6 {
		t.Errorf("scaled shadow = %v %v %v", s.ShadowBlur, s.ShadowOffsetX, s.ShadowOffsetY)
	}
	// Stroke width scales by the render scale average, (3+1)/2.
	if s.StrokeWidth != 4 {
		t.Errorf("scaled stroke width = %v, want 4", s.StrokeWidth)
	}
	if s.StrokeColor != "#ffffff" {
		t.Errorf("stroke color = %q", s.StrokeColor)
	}
}

func TestRunStyle(t *testing.T) {
	base := BuildBaseStyle(nil)

	// Nil style keeps the base untouched.
	if got := RunStyle(base, layers.Run("x")); got != base {
		t.Errorf("nil run style = %+v, want base", got)
	}

	run := layers.StyledRun("x", &layers.RunStyle{
		FontSize:   layers.Float(40),
		FontWeight: layers.String("bold"),
		Color:      layers.String("#ff00ff"),
	})
	got := RunStyle(base, run)
	if got.FontSize != 40 || got.FontWeight != "bold" || got.Color != "#ff00ff" {
		t.Errorf("resolved = %+v", got)
	}
	if got.FontFamily != base.FontFamily || got.FontStyle != base.FontStyle {
		t.Error("unset override fields should keep base values")
	}
}
