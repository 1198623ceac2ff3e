package shape

import (
	"github.com/google/uuid"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/style"
)

// Factory creates layer records seeded from a style store.
type Factory struct {
	styles *style.Store
}

// NewFactory creates a factory drawing its defaults from styles.
// A nil store is replaced with a fresh default store.
func NewFactory(styles *style.Store) *Factory {
	if styles == nil {
		styles = style.NewStore()
	}
	return &Factory{styles: styles}
}

// Styles returns the style store the factory reads from.
func (f *Factory) Styles() *style.Store { return f.styles }

// Create builds a zero-sized layer of the given kind anchored at p,
// with the ambient style applied. Returns nil for unrecognized kinds.
func (f *Factory) Create(kind layers.Kind, p layers.Point) layers.Layer {
	var l layers.Layer
	switch kind {
	case layers.KindRectangle:
		l = &layers.Rectangle{}
	case layers.KindCircle:
		l = &layers.Circle{}
	case layers.KindEllipse:
		l = &layers.Ellipse{}
	case layers.KindLine:
		l = &layers.Line{X1: p.X, Y1: p.Y, X2: p.X, Y2: p.Y}
	case layers.KindArrow:
		l = f.createArrow(p)
	case layers.KindPolygon:
		l = &layers.Polygon{Sides: 6}
	case layers.KindStar:
		l = &layers.Star{Points: 5}
	case layers.KindPath:
		l = f.createPath()
	case layers.KindText:
		l = &layers.Text{}
	case layers.KindTextbox:
		l = &layers.Textbox{Padding: 8}
	case layers.KindCallout:
		l = &layers.Callout{Padding: 8, TailX: p.X, TailY: p.Y + 40}
	case layers.KindImage:
		l = &layers.ImageLayer{}
	default:
		return nil
	}

	f.styles.ApplyToLayer(l, style.WithPosition(p))
	return l
}

// CreateWithID is Create plus a generated unique id. Ids are random
// tokens prefixed "layer_" so collisions across a session cannot occur.
func (f *Factory) CreateWithID(kind layers.Kind, p layers.Point) layers.Layer {
	l := f.Create(kind, p)
	if l == nil {
		return nil
	}
	l.Common().ID = NewLayerID()
	return l
}

// NewLayerID generates a fresh layer id.
func NewLayerID() string {
	return "layer_" + uuid.NewString()
}

// createArrow builds an arrow anchored at p. Arrows always carry a
// non-transparent fill and a positive arrow size; the arrowhead is a
// filled triangle and disappears without them.
func (f *Factory) createArrow(p layers.Point) *layers.Arrow {
	cur := f.styles.Get()

	fill := cur.Fill
	if fill == "" || fill == "none" || fill == "transparent" {
		fill = cur.Color
	}

	return &layers.Arrow{
		Base: layers.Base{Fill: layers.String(fill)},
		X1:   p.X, Y1: p.Y,
		X2: p.X, Y2: p.Y,
		ArrowSize: 10,
	}
}

// createPath builds an empty path layer. Paths default to no fill; the
// path tool fills only when the polygon is explicitly closed.
func (f *Factory) createPath() *layers.PathLayer {
	return &layers.PathLayer{
		Base: layers.Base{Fill: layers.String("none")},
	}
}
