package layers

// Kind identifies the type of a layer.
type Kind uint8

// Layer kind constants.
const (
	KindUnknown Kind = iota
	KindRectangle
	KindCircle
	KindEllipse
	KindLine
	KindArrow
	KindPolygon
	KindStar
	KindPath
	KindText
	KindTextbox
	KindCallout
	KindImage
	KindGroup
)

const unknownStr = "unknown"

// String returns the wire name of the kind, matching the "type" field of
// serialized layer records.
func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindArrow:
		return "arrow"
	case KindPolygon:
		return "polygon"
	case KindStar:
		return "star"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindTextbox:
		return "textbox"
	case KindCallout:
		return "callout"
	case KindImage:
		return "image"
	case KindGroup:
		return "group"
	default:
		return unknownStr
	}
}

// ParseKind maps a wire name to a Kind. Unrecognized names yield KindUnknown.
func ParseKind(s string) Kind {
	switch s {
	case "rectangle":
		return KindRectangle
	case "circle":
		return KindCircle
	case "ellipse":
		return KindEllipse
	case "line":
		return KindLine
	case "arrow":
		return KindArrow
	case "polygon":
		return KindPolygon
	case "star":
		return KindStar
	case "path":
		return KindPath
	case "text":
		return KindText
	case "textbox":
		return KindTextbox
	case "callout":
		return KindCallout
	case "image":
		return KindImage
	case "group":
		return KindGroup
	default:
		return KindUnknown
	}
}

// IsTextual returns true for kinds that carry text content.
func (k Kind) IsTextual() bool {
	return k == KindText || k == KindTextbox || k == KindCallout
}

// Shadow describes a drop shadow attached to a layer.
type Shadow struct {
	Enabled bool    `json:"enabled"`
	Color   string  `json:"color,omitempty"`
	Blur    float64 `json:"blur,omitempty"`
	OffsetX float64 `json:"offsetX,omitempty"`
	OffsetY float64 `json:"offsetY,omitempty"`
}

// Base carries the fields shared by every layer kind.
//
// Style fields are pointers: nil means "not set on this layer", which lets
// the style store merge ambient defaults without overwriting per-layer
// overrides. Geometry fields live on the concrete kinds.
type Base struct {
	ID string
	X  float64
	Y  float64

	Stroke      *string
	Fill        *string
	StrokeWidth *float64
	Opacity     *float64
	Rotation    *float64
	Shadow      *Shadow
	Gradient    *GradientSpec
}

// Common returns the shared base record. It implements part of the Layer
// interface for every concrete kind via embedding.
func (b *Base) Common() *Base { return b }

// Layer is a drawable/editable annotation object. It is a closed sum over
// the concrete kinds in this package; renderers and tools dispatch with a
// type switch on the concrete type or on Kind().
type Layer interface {
	Common() *Base
	Kind() Kind
}

// Rectangle is an axis-aligned rectangle, optionally with rounded corners.
type Rectangle struct {
	Base
	Width        float64
	Height       float64
	CornerRadius float64
	Padding      float64
}

// Kind implements Layer.
func (*Rectangle) Kind() Kind { return KindRectangle }

// Circle is a circle centered at (X, Y).
type Circle struct {
	Base
	Radius float64
}

// Kind implements Layer.
func (*Circle) Kind() Kind { return KindCircle }

// Ellipse is an axis-aligned ellipse centered at (X, Y).
type Ellipse struct {
	Base
	RadiusX float64
	RadiusY float64
}

// Kind implements Layer.
func (*Ellipse) Kind() Kind { return KindEllipse }

// Line is a straight segment from (X1, Y1) to (X2, Y2).
// Base.X/Y mirror the first endpoint so lines share the common origin.
type Line struct {
	Base
	X1, Y1 float64
	X2, Y2 float64
}

// Kind implements Layer.
func (*Line) Kind() Kind { return KindLine }

// Arrow is a line with an arrowhead at the second endpoint.
type Arrow struct {
	Base
	X1, Y1     float64
	X2, Y2     float64
	ArrowStyle string
	ArrowSize  float64
}

// Kind implements Layer.
func (*Arrow) Kind() Kind { return KindArrow }

// Polygon is a regular polygon centered at (X, Y).
type Polygon struct {
	Base
	Radius float64
	Sides  int
}

// Kind implements Layer.
func (*Polygon) Kind() Kind { return KindPolygon }

// Star is a star centered at (X, Y) with alternating outer/inner vertices.
type Star struct {
	Base
	OuterRadius float64
	InnerRadius float64
	Points      int
}

// Kind implements Layer.
func (*Star) Kind() Kind { return KindStar }

// PathLayer is a free-form polyline or closed polygon drawn point by point.
type PathLayer struct {
	Base
	Points []Point
	Closed bool
}

// Kind implements Layer.
func (*PathLayer) Kind() Kind { return KindPath }

// TextStyleFields are the font and alignment fields shared by the textual
// kinds. All fields are optional; richtext.BuildBaseStyle resolves defaults.
type TextStyleFields struct {
	Text          string
	FontSize      *float64
	FontFamily    *string
	FontWeight    *string
	FontStyle     *string
	Color         *string
	Align         string
	VerticalAlign string
	LineHeight    *float64
	RichText      []RichTextRun

	TextShadow        *string
	TextShadowColor   *string
	TextShadowBlur    *float64
	TextShadowOffsetX *float64
	TextShadowOffsetY *float64
	TextStrokeColor   *string
	TextStrokeWidth   *float64
}

// Text is a free-standing text annotation anchored at (X, Y).
type Text struct {
	Base
	TextStyleFields
}

// Kind implements Layer.
func (*Text) Kind() Kind { return KindText }

// Textbox is text flowed inside a padded rectangle.
type Textbox struct {
	Base
	TextStyleFields
	Width        float64
	Height       float64
	CornerRadius float64
	Padding      float64
}

// Kind implements Layer.
func (*Textbox) Kind() Kind { return KindTextbox }

// Callout is a textbox with a pointer tail toward (TailX, TailY).
type Callout struct {
	Base
	TextStyleFields
	Width   float64
	Height  float64
	Padding float64
	TailX   float64
	TailY   float64
}

// Kind implements Layer.
func (*Callout) Kind() Kind { return KindCallout }

// ImageLayer places a decoded bitmap at (X, Y) with the given extent.
// Src is an opaque source reference resolved by the injected loader
// (a URL, a wiki file name, or an inline data URI).
type ImageLayer struct {
	Base
	Src    string
	Width  float64
	Height float64
}

// Kind implements Layer.
func (*ImageLayer) Kind() Kind { return KindImage }

// Group aggregates child layers; it has no geometry of its own.
type Group struct {
	Base
	Children []Layer
}

// Kind implements Layer.
func (*Group) Kind() Kind { return KindGroup }

// New returns an empty layer record of the given kind, or nil for
// KindUnknown. The caller is responsible for geometry and style.
func New(k Kind) Layer {
	switch k {
	case KindRectangle:
		return &Rectangle{}
	case KindCircle:
		return &Circle{}
	case KindEllipse:
		return &Ellipse{}
	case KindLine:
		return &Line{}
	case KindArrow:
		return &Arrow{}
	case KindPolygon:
		return &Polygon{}
	case KindStar:
		return &Star{}
	case KindPath:
		return &PathLayer{}
	case KindText:
		return &Text{}
	case KindTextbox:
		return &Textbox{}
	case KindCallout:
		return &Callout{}
	case KindImage:
		return &ImageLayer{}
	case KindGroup:
		return &Group{}
	default:
		return nil
	}
}

// TextFields returns the text style fields of a textual layer, or nil for
// non-textual kinds.
func TextFields(l Layer) *TextStyleFields {
	switch t := l.(type) {
	case *Text:
		return &t.TextStyleFields
	case *Textbox:
		return &t.TextStyleFields
	case *Callout:
		return &t.TextStyleFields
	default:
		return nil
	}
}

// String returns a pointer to a copy of s. Convenience for optional fields.
func String(s string) *string { return &s }

// Float returns a pointer to a copy of f. Convenience for optional fields.
func Float(f float64) *float64 { return &f }
