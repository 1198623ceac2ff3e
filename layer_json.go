package layers

import (
	"encoding/json"
	"fmt"
)

// layerWire is the flat wire form shared by all layer kinds. Optional
// fields are pointers (or RawMessage where the meaning depends on the
// kind: "points" is a vertex list for path layers and a point count for
// star layers).
type layerWire struct {
	Type string  `json:"type"`
	ID   string  `json:"id,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`

	Stroke      *string       `json:"stroke,omitempty"`
	Color       *string       `json:"color,omitempty"`
	Fill        *string       `json:"fill,omitempty"`
	StrokeWidth *float64      `json:"strokeWidth,omitempty"`
	Opacity     *float64      `json:"opacity,omitempty"`
	Rotation    *float64      `json:"rotation,omitempty"`
	Shadow      *Shadow       `json:"shadow,omitempty"`
	Gradient    *GradientSpec `json:"gradient,omitempty"`

	Width        *float64 `json:"width,omitempty"`
	Height       *float64 `json:"height,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`
	Padding      *float64 `json:"padding,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	RadiusX      *float64 `json:"radiusX,omitempty"`
	RadiusY      *float64 `json:"radiusY,omitempty"`
	X1           *float64 `json:"x1,omitempty"`
	Y1           *float64 `json:"y1,omitempty"`
	X2           *float64 `json:"x2,omitempty"`
	Y2           *float64 `json:"y2,omitempty"`
	ArrowStyle   *string  `json:"arrowStyle,omitempty"`
	ArrowSize    *float64 `json:"arrowSize,omitempty"`
	Sides        *int     `json:"sides,omitempty"`
	OuterRadius  *float64 `json:"outerRadius,omitempty"`
	InnerRadius  *float64 `json:"innerRadius,omitempty"`

	Points json.RawMessage `json:"points,omitempty"`
	Closed *bool           `json:"closed,omitempty"`

	Text          *string       `json:"text,omitempty"`
	FontSize      *float64      `json:"fontSize,omitempty"`
	FontFamily    *string       `json:"fontFamily,omitempty"`
	FontWeight    *string       `json:"fontWeight,omitempty"`
	FontStyle     *string       `json:"fontStyle,omitempty"`
	Align         *string       `json:"textAlign,omitempty"`
	VerticalAlign *string       `json:"verticalAlign,omitempty"`
	LineHeight    *float64      `json:"lineHeight,omitempty"`
	RichText      []RichTextRun `json:"richText,omitempty"`
	TailX         *float64      `json:"tailX,omitempty"`
	TailY         *float64      `json:"tailY,omitempty"`

	// textShadow is raw because documents carry it as a bool, a number,
	// or a string; any truthy form must survive the trip.
	TextShadow        json.RawMessage `json:"textShadow,omitempty"`
	TextShadowColor   *string         `json:"textShadowColor,omitempty"`
	TextShadowBlur    *float64        `json:"textShadowBlur,omitempty"`
	TextShadowOffsetX *float64        `json:"textShadowOffsetX,omitempty"`
	TextShadowOffsetY *float64        `json:"textShadowOffsetY,omitempty"`
	TextStrokeColor   *string         `json:"textStrokeColor,omitempty"`
	TextStrokeWidth   *float64        `json:"textStrokeWidth,omitempty"`

	Src      *string           `json:"src,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
}

// MarshalLayer encodes a single layer record in wire form.
func MarshalLayer(l Layer) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("marshal layer: nil layer")
	}

	b := l.Common()
	w := layerWire{
		Type:        l.Kind().String(),
		ID:          b.ID,
		X:           b.X,
		Y:           b.Y,
		Stroke:      b.Stroke,
		Fill:        b.Fill,
		StrokeWidth: b.StrokeWidth,
		Opacity:     b.Opacity,
		Rotation:    b.Rotation,
		Shadow:      b.Shadow,
		Gradient:    b.Gradient,
	}

	switch t := l.(type) {
	case *Rectangle:
		w.Width = Float(t.Width)
		w.Height = Float(t.Height)
		if t.CornerRadius != 0 {
			w.CornerRadius = Float(t.CornerRadius)
		}
		if t.Padding != 0 {
			w.Padding = Float(t.Padding)
		}
	case *Circle:
		w.Radius = Float(t.Radius)
	case *Ellipse:
		w.RadiusX = Float(t.RadiusX)
		w.RadiusY = Float(t.RadiusY)
	case *Line:
		w.X1, w.Y1 = Float(t.X1), Float(t.Y1)
		w.X2, w.Y2 = Float(t.X2), Float(t.Y2)
	case *Arrow:
		w.X1, w.Y1 = Float(t.X1), Float(t.Y1)
		w.X2, w.Y2 = Float(t.X2), Float(t.Y2)
		if t.ArrowStyle != "" {
			w.ArrowStyle = String(t.ArrowStyle)
		}
		w.ArrowSize = Float(t.ArrowSize)
	case *Polygon:
		w.Radius = Float(t.Radius)
		w.Sides = &t.Sides
	case *Star:
		w.OuterRadius = Float(t.OuterRadius)
		w.InnerRadius = Float(t.InnerRadius)
		pts, err := json.Marshal(t.Points)
		if err != nil {
			return nil, err
		}
		w.Points = pts
	case *PathLayer:
		pts, err := json.Marshal(t.Points)
		if err != nil {
			return nil, err
		}
		w.Points = pts
		w.Closed = &t.Closed
	case *Text:
		marshalTextFields(&w, &t.TextStyleFields)
	case *Textbox:
		marshalTextFields(&w, &t.TextStyleFields)
		w.Width = Float(t.Width)
		w.Height = Float(t.Height)
		if t.CornerRadius != 0 {
			w.CornerRadius = Float(t.CornerRadius)
		}
		if t.Padding != 0 {
			w.Padding = Float(t.Padding)
		}
	case *Callout:
		marshalTextFields(&w, &t.TextStyleFields)
		w.Width = Float(t.Width)
		w.Height = Float(t.Height)
		if t.Padding != 0 {
			w.Padding = Float(t.Padding)
		}
		w.TailX = Float(t.TailX)
		w.TailY = Float(t.TailY)
	case *ImageLayer:
		w.Src = String(t.Src)
		w.Width = Float(t.Width)
		w.Height = Float(t.Height)
	case *Group:
		for _, child := range t.Children {
			raw, err := MarshalLayer(child)
			if err != nil {
				return nil, err
			}
			w.Children = append(w.Children, raw)
		}
	}

	return json.Marshal(w)
}

func marshalTextFields(w *layerWire, t *TextStyleFields) {
	w.Text = String(t.Text)
	w.FontSize = t.FontSize
	w.FontFamily = t.FontFamily
	w.FontWeight = t.FontWeight
	w.FontStyle = t.FontStyle
	w.Color = t.Color
	w.LineHeight = t.LineHeight
	if t.Align != "" {
		w.Align = String(t.Align)
	}
	if t.VerticalAlign != "" {
		w.VerticalAlign = String(t.VerticalAlign)
	}
	w.RichText = t.RichText

	if t.TextShadow != nil {
		raw, _ := json.Marshal(*t.TextShadow)
		w.TextShadow = raw
	}
	w.TextShadowColor = t.TextShadowColor
	w.TextShadowBlur = t.TextShadowBlur
	w.TextShadowOffsetX = t.TextShadowOffsetX
	w.TextShadowOffsetY = t.TextShadowOffsetY
	w.TextStrokeColor = t.TextStrokeColor
	w.TextStrokeWidth = t.TextStrokeWidth
}

// UnmarshalLayer decodes a single wire-form layer record.
// Unrecognized "type" values yield an error; a missing optional field
// leaves the corresponding pointer nil so ambient style can fill it.
func UnmarshalLayer(data []byte) (Layer, error) {
	var w layerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("unmarshal layer: %w", err)
	}

	kind := ParseKind(w.Type)
	l := New(kind)
	if l == nil {
		return nil, fmt.Errorf("unmarshal layer: unknown type %q", w.Type)
	}

	b := l.Common()
	b.ID = w.ID
	b.X, b.Y = w.X, w.Y
	b.Stroke = w.Stroke
	if b.Stroke == nil && !kind.IsTextual() {
		b.Stroke = w.Color // legacy alias
	}
	b.Fill = w.Fill
	b.StrokeWidth = w.StrokeWidth
	b.Opacity = w.Opacity
	b.Rotation = w.Rotation
	b.Shadow = w.Shadow
	b.Gradient = w.Gradient

	switch t := l.(type) {
	case *Rectangle:
		t.Width = deref(w.Width)
		t.Height = deref(w.Height)
		t.CornerRadius = deref(w.CornerRadius)
		t.Padding = deref(w.Padding)
	case *Circle:
		t.Radius = deref(w.Radius)
	case *Ellipse:
		t.RadiusX = deref(w.RadiusX)
		t.RadiusY = deref(w.RadiusY)
	case *Line:
		t.X1, t.Y1 = deref(w.X1), deref(w.Y1)
		t.X2, t.Y2 = deref(w.X2), deref(w.Y2)
	case *Arrow:
		t.X1, t.Y1 = deref(w.X1), deref(w.Y1)
		t.X2, t.Y2 = deref(w.X2), deref(w.Y2)
		if w.ArrowStyle != nil {
			t.ArrowStyle = *w.ArrowStyle
		}
		t.ArrowSize = deref(w.ArrowSize)
	case *Polygon:
		t.Radius = deref(w.Radius)
		if w.Sides != nil {
			t.Sides = *w.Sides
		}
	case *Star:
		t.OuterRadius = deref(w.OuterRadius)
		t.InnerRadius = deref(w.InnerRadius)
		if len(w.Points) > 0 {
			if err := json.Unmarshal(w.Points, &t.Points); err != nil {
				return nil, fmt.Errorf("unmarshal star points: %w", err)
			}
		}
	case *PathLayer:
		if len(w.Points) > 0 {
			if err := json.Unmarshal(w.Points, &t.Points); err != nil {
				return nil, fmt.Errorf("unmarshal path points: %w", err)
			}
		}
		if w.Closed != nil {
			t.Closed = *w.Closed
		}
	case *Text:
		unmarshalTextFields(&w, &t.TextStyleFields)
	case *Textbox:
		unmarshalTextFields(&w, &t.TextStyleFields)
		t.Width = deref(w.Width)
		t.Height = deref(w.Height)
		t.CornerRadius = deref(w.CornerRadius)
		t.Padding = deref(w.Padding)
	case *Callout:
		unmarshalTextFields(&w, &t.TextStyleFields)
		t.Width = deref(w.Width)
		t.Height = deref(w.Height)
		t.Padding = deref(w.Padding)
		t.TailX = deref(w.TailX)
		t.TailY = deref(w.TailY)
	case *ImageLayer:
		if w.Src != nil {
			t.Src = *w.Src
		}
		t.Width = deref(w.Width)
		t.Height = deref(w.Height)
	case *Group:
		for i, raw := range w.Children {
			child, err := UnmarshalLayer(raw)
			if err != nil {
				return nil, fmt.Errorf("unmarshal group child %d: %w", i, err)
			}
			t.Children = append(t.Children, child)
		}
	}

	return l, nil
}

func unmarshalTextFields(w *layerWire, t *TextStyleFields) {
	if w.Text != nil {
		t.Text = *w.Text
	}
	t.FontSize = w.FontSize
	t.FontFamily = w.FontFamily
	t.FontWeight = w.FontWeight
	t.FontStyle = w.FontStyle
	t.Color = w.Color
	t.LineHeight = w.LineHeight
	if w.Align != nil {
		t.Align = *w.Align
	}
	if w.VerticalAlign != nil {
		t.VerticalAlign = *w.VerticalAlign
	}
	t.RichText = w.RichText

	// A bare true or 1 lands as the literal text, so the truthy check
	// downstream sees the same value a quoted "true" would carry.
	if len(w.TextShadow) > 0 {
		var s string
		if json.Unmarshal(w.TextShadow, &s) != nil {
			s = string(w.TextShadow)
		}
		t.TextShadow = &s
	}
	t.TextShadowColor = w.TextShadowColor
	t.TextShadowBlur = w.TextShadowBlur
	t.TextShadowOffsetX = w.TextShadowOffsetX
	t.TextShadowOffsetY = w.TextShadowOffsetY
	t.TextStrokeColor = w.TextStrokeColor
	t.TextStrokeWidth = w.TextStrokeWidth
}

// MarshalLayers encodes an ordered layer list (bottom to top).
func MarshalLayers(ls []Layer) ([]byte, error) {
	raws := make([]json.RawMessage, 0, len(ls))
	for _, l := range ls {
		raw, err := MarshalLayer(l)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}
	return json.Marshal(raws)
}

// UnmarshalLayers decodes an ordered layer list, preserving order.
func UnmarshalLayers(data []byte) ([]Layer, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("unmarshal layers: %w", err)
	}
	out := make([]Layer, 0, len(raws))
	for i, raw := range raws {
		l, err := UnmarshalLayer(raw)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
