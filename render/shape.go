package render

import (
	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
	"github.com/slickdexic/layers/gradient"
	"github.com/slickdexic/layers/internal/cache"
)

// DefaultPathCacheSize bounds the parsed-path cache of a ShapeRenderer.
const DefaultPathCacheSize = 100

// ShapeData is the geometry record the shape lookup service returns for
// a named shape: SVG path data, the view box it is defined in, and an
// optional fill rule.
type ShapeData struct {
	Path     string
	ViewBox  layers.Rect
	FillRule canvas.FillRule
}

// ShapeRenderer draws vector shape layers from library geometry,
// caching parsed paths keyed by their path-data string.
type ShapeRenderer struct {
	paths *cache.LRU[string, *canvas.Path]
}

// ShapeRendererOption configures NewShapeRenderer.
type ShapeRendererOption func(*shapeRendererConfig)

type shapeRendererConfig struct {
	cacheSize int
}

// WithPathCacheSize overrides the parsed-path cache capacity.
func WithPathCacheSize(n int) ShapeRendererOption {
	return func(c *shapeRendererConfig) { c.cacheSize = n }
}

// NewShapeRenderer creates a renderer with the default cache capacity
// unless overridden.
func NewShapeRenderer(opts ...ShapeRendererOption) *ShapeRenderer {
	cfg := shapeRendererConfig{cacheSize: DefaultPathCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ShapeRenderer{
		paths: cache.NewLRU[string, *canvas.Path](cfg.cacheSize),
	}
}

// Path2D returns the parsed path for a path-data string. Cache hits
// return the same path object and refresh its recency; misses parse,
// insert, and evict the least recently used entry when over capacity.
// Unparseable data is logged and yields nil (and is not cached).
func (r *ShapeRenderer) Path2D(pathData string) *canvas.Path {
	if p, ok := r.paths.Get(pathData); ok {
		return p
	}
	p, err := canvas.ParsePathData(pathData)
	if err != nil {
		layers.Logger().Warn("unparseable shape path", "error", err)
		return nil
	}
	r.paths.Put(pathData, p)
	return p
}

// RenderOptions adjust a single shape draw.
type RenderOptions struct {
	// Scale multiplies the layer's position and extent. Zero means 1.
	Scale float64
}

func (o RenderOptions) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// Render draws a shape layer sized to its bounds using library
// geometry. Missing shape data is logged and draws nothing.
func (r *ShapeRenderer) Render(ctx *canvas.Context, data *ShapeData, l layers.Layer, opts RenderOptions) {
	if data == nil {
		layers.Logger().Warn("shape layer has no geometry", "layer", l.Common().ID)
		return
	}
	path := r.Path2D(data.Path)
	if path == nil {
		return
	}
	if data.ViewBox.Width == 0 || data.ViewBox.Height == 0 {
		layers.Logger().Warn("shape geometry has empty view box", "layer", l.Common().ID)
		return
	}

	base := l.Common()
	bounds := Bounds(l)
	scale := opts.scale()

	ctx.Save()
	defer ctx.Restore()

	ctx.Translate(base.X*scale, base.Y*scale)
	ctx.Scale(
		bounds.Width*scale/data.ViewBox.Width,
		bounds.Height*scale/data.ViewBox.Height,
	)
	if base.Rotation != nil && *base.Rotation != 0 {
		ctx.Rotate(*base.Rotation)
	}

	fillBounds := layers.RectOf(0, 0, data.ViewBox.Width, data.ViewBox.Height)
	if gradient.ApplyFill(ctx, l, fillBounds) || paintableFill(base.Fill) {
		ctx.FillPathRule(path, data.FillRule)
	}

	if base.Stroke != nil && base.StrokeWidth != nil && *base.StrokeWidth > 0 {
		if c, err := layers.ParseColor(*base.Stroke); err == nil {
			ctx.SetStrokeColor(c)
			ctx.SetLineWidth(*base.StrokeWidth)
			ctx.StrokePath(path)
		}
	}
}

// paintableFill reports whether a solid fill would actually paint.
func paintableFill(fill *string) bool {
	return fill != nil && !layers.IsNoPaint(*fill)
}

// Opacity composes a draw-specific opacity with a layer opacity. Both
// unset yields 1; one set yields that one; both set multiply.
func Opacity(specific, layer *float64) float64 {
	switch {
	case specific == nil && layer == nil:
		return 1
	case specific == nil:
		return *layer
	case layer == nil:
		return *specific
	default:
		return *specific * *layer
	}
}

// RenderWithEffects is Render with the layer's drop shadow and opacity
// applied around the draw.
func (r *ShapeRenderer) RenderWithEffects(ctx *canvas.Context, data *ShapeData, l layers.Layer, opts RenderOptions) {
	base := l.Common()

	ctx.Save()
	defer ctx.Restore()

	ctx.SetGlobalAlpha(Opacity(nil, base.Opacity))

	if sh := base.Shadow; sh != nil && sh.Enabled {
		ctx.SetShadow(shadowState(sh))
		defer ctx.ClearShadow()
	}

	r.Render(ctx, data, l, opts)
}

// shadowState converts a layer shadow to context shadow settings. A
// missing or unparseable color falls back to half-opaque black.
func shadowState(sh *layers.Shadow) canvas.ShadowState {
	color := layers.RGBA{A: 0.5}
	if sh.Color != "" {
		if c, err := layers.ParseColor(sh.Color); err == nil {
			color = c
		}
	}
	return canvas.ShadowState{
		Enabled: true,
		Color:   color,
		Blur:    sh.Blur,
		OffsetX: sh.OffsetX,
		OffsetY: sh.OffsetY,
	}
}

// HitTest reports whether the point (px, py) hits the shape. A missing
// geometry record or a point outside the layer's bounding box is an
// immediate miss; otherwise the point is tested against the transformed
// path.
func (r *ShapeRenderer) HitTest(l layers.Layer, data *ShapeData, px, py float64) bool {
	if data == nil {
		return false
	}
	bounds := Bounds(l)
	if !bounds.ContainsPoint(px, py) {
		return false
	}
	if data.ViewBox.Width == 0 || data.ViewBox.Height == 0 {
		return false
	}
	path := r.Path2D(data.Path)
	if path == nil {
		return false
	}

	base := l.Common()
	m := layers.Translate(base.X, base.Y).
		Multiply(layers.Scale(
			bounds.Width/data.ViewBox.Width,
			bounds.Height/data.ViewBox.Height,
		))
	if base.Rotation != nil && *base.Rotation != 0 {
		m = m.Multiply(layers.Rotate(*base.Rotation))
	}

	local := m.Invert().TransformPoint(layers.Pt(px, py))
	return path.Contains(local.X, local.Y, data.FillRule)
}

// CacheSize returns the number of parsed paths currently cached.
func (r *ShapeRenderer) CacheSize() int { return r.paths.Len() }

// ClearCache drops all cached paths.
func (r *ShapeRenderer) ClearCache() { r.paths.Clear() }
