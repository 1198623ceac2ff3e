package style

import (
	"github.com/slickdexic/layers"
)

// ApplyOption configures ApplyToLayer.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	includePosition bool
	position        layers.Point
}

// WithPosition makes ApplyToLayer also set the layer origin. By default
// position is left alone.
func WithPosition(p layers.Point) ApplyOption {
	return func(c *applyConfig) {
		c.includePosition = true
		c.position = p
	}
}

// ApplyToLayer copies the style fields relevant to the layer's kind onto
// the layer. A field the layer already defines is never overwritten, so
// per-layer overrides win over the ambient style. Nil layers are ignored.
func (s *Store) ApplyToLayer(l layers.Layer, opts ...ApplyOption) {
	if l == nil {
		return
	}
	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	cur := s.Get()
	base := l.Common()

	if cfg.includePosition {
		base.X = cfg.position.X
		base.Y = cfg.position.Y
	}

	if base.Stroke == nil {
		base.Stroke = layers.String(cur.Color)
	}
	if base.StrokeWidth == nil {
		base.StrokeWidth = layers.Float(cur.StrokeWidth)
	}

	// Lines carry no fill; everything else inherits the ambient fill.
	kind := l.Kind()
	if kind != layers.KindLine && base.Fill == nil {
		base.Fill = layers.String(cur.Fill)
	}

	if cur.ShadowEnabled && base.Shadow == nil {
		base.Shadow = &layers.Shadow{
			Enabled: true,
			Color:   cur.ShadowColor,
			Blur:    cur.ShadowBlur,
			OffsetX: cur.ShadowOffsetX,
			OffsetY: cur.ShadowOffsetY,
		}
	}

	if a, ok := l.(*layers.Arrow); ok && a.ArrowStyle == "" {
		a.ArrowStyle = cur.ArrowStyle
	}

	if tf := layers.TextFields(l); tf != nil {
		if tf.FontSize == nil {
			tf.FontSize = layers.Float(cur.FontSize)
		}
		if tf.FontFamily == nil {
			tf.FontFamily = layers.String(cur.FontFamily)
		}
		if tf.Color == nil {
			tf.Color = layers.String(cur.Color)
		}
	}
}

// ExtractFromLayer reseeds the store from the style fields a layer
// defines, leaving undefined fields at their current store values. Used
// when a layer is selected for editing so the toolbar reflects it.
func (s *Store) ExtractFromLayer(l layers.Layer) {
	if l == nil {
		return
	}
	base := l.Common()

	var p Partial
	p.Color = base.Stroke
	p.Fill = base.Fill
	p.StrokeWidth = base.StrokeWidth

	if sh := base.Shadow; sh != nil {
		enabled := sh.Enabled
		p.ShadowEnabled = &enabled
		if sh.Color != "" {
			color := sh.Color
			p.ShadowColor = &color
		}
		blur := sh.Blur
		p.ShadowBlur = &blur
		ox, oy := sh.OffsetX, sh.OffsetY
		p.ShadowOffsetX = &ox
		p.ShadowOffsetY = &oy
	}

	if a, ok := l.(*layers.Arrow); ok && a.ArrowStyle != "" {
		p.ArrowStyle = &a.ArrowStyle
	}

	if tf := layers.TextFields(l); tf != nil {
		p.FontSize = tf.FontSize
		p.FontFamily = tf.FontFamily
		if tf.Color != nil {
			p.Color = tf.Color
		}
	}

	s.Update(p)
}
