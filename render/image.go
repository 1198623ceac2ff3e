package render

import (
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"io"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/slickdexic/layers"
	"github.com/slickdexic/layers/canvas"
	"github.com/slickdexic/layers/internal/cache"
)

// DefaultImageCacheSize bounds the decoded-image cache.
const DefaultImageCacheSize = 50

// Loader resolves an image layer's source reference into readable
// bytes. The host injects one; sources may be URLs, wiki file names, or
// data URIs, all opaque to the renderer.
type Loader interface {
	Open(ctx context.Context, src string) (io.ReadCloser, error)
}

// imageState is one cache entry's decode lifecycle.
type imageState struct {
	mu     sync.Mutex
	img    image.Image
	done   bool
	failed bool
}

func (s *imageState) snapshot() (image.Image, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img, s.done, s.failed
}

func (s *imageState) complete(img image.Image, failed bool) {
	s.mu.Lock()
	s.img = img
	s.done = true
	s.failed = failed
	s.mu.Unlock()
}

// ImageRenderer draws image layers, decoding bitmap sources out of band
// and caching the results. Until a decode completes the layer renders
// as a dashed placeholder; completion triggers the injected redraw
// callback so the next frame shows the real bitmap.
type ImageRenderer struct {
	loader Loader
	redraw func()
	images *cache.FIFO[string, *imageState]
}

// ImageRendererOption configures NewImageRenderer.
type ImageRendererOption func(*imageRendererConfig)

type imageRendererConfig struct {
	cacheSize int
	redraw    func()
}

// WithImageCacheSize overrides the decoded-image cache capacity.
func WithImageCacheSize(n int) ImageRendererOption {
	return func(c *imageRendererConfig) { c.cacheSize = n }
}

// WithRedraw sets the callback invoked when an out-of-band decode
// finishes and a new frame should be drawn.
func WithRedraw(fn func()) ImageRendererOption {
	return func(c *imageRendererConfig) { c.redraw = fn }
}

// NewImageRenderer creates a renderer decoding through loader.
func NewImageRenderer(loader Loader, opts ...ImageRendererOption) *ImageRenderer {
	cfg := imageRendererConfig{cacheSize: DefaultImageCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ImageRenderer{
		loader: loader,
		redraw: cfg.redraw,
		images: cache.NewFIFO[string, *imageState](cfg.cacheSize),
	}
}

// cacheKey prefers the layer id; anonymous layers key on a content hash
// of the whole source string so two long data URIs sharing a prefix
// still get distinct entries.
func cacheKey(l *layers.ImageLayer) string {
	if l.ID != "" {
		return l.ID
	}
	h := fnv.New64a()
	io.WriteString(h, l.Src)
	return fmt.Sprintf("src_%016x", h.Sum64())
}

// Draw renders an image layer. An undecoded or failed source draws the
// placeholder; a ready bitmap draws at the layer rect with the layer's
// opacity, rotation about its center, and shadow.
func (r *ImageRenderer) Draw(ctx *canvas.Context, l *layers.ImageLayer, opts RenderOptions) {
	if l == nil || l.Src == "" {
		return
	}
	key := cacheKey(l)

	state, ok := r.images.Get(key)
	if !ok {
		state = &imageState{}
		r.images.Put(key, state)
		go r.decode(l.ID, l.Src, state)
	}

	img, done, failed := state.snapshot()
	if !done || failed || img == nil {
		r.drawPlaceholder(ctx, l, opts)
		return
	}

	scale := opts.scale()
	base := l.Common()

	ctx.Save()
	defer ctx.Restore()

	ctx.SetGlobalAlpha(Opacity(nil, base.Opacity))

	if base.Rotation != nil && *base.Rotation != 0 {
		cx := (l.X + l.Width/2) * scale
		cy := (l.Y + l.Height/2) * scale
		ctx.Translate(cx, cy)
		ctx.Rotate(*base.Rotation)
		ctx.Translate(-cx, -cy)
	}

	// DrawImage has no shadow pass of its own, so cast the shadow from
	// the image rectangle's silhouette before drawing the bitmap.
	if sh := base.Shadow; sh != nil && sh.Enabled {
		rect := canvas.NewPath()
		rect.Rectangle(l.X*scale, l.Y*scale, l.Width*scale, l.Height*scale)
		ctx.SetShadow(shadowState(sh))
		ctx.SetFillColor(layers.Transparent)
		ctx.FillPath(rect)
		ctx.ClearShadow()
	}

	ctx.DrawImage(img, l.X*scale, l.Y*scale, l.Width*scale, l.Height*scale)
}

// decode runs on its own goroutine; completion marks the entry and asks
// for a redraw. A decode for a layer nobody draws anymore just fills a
// cache entry and is otherwise harmless.
func (r *ImageRenderer) decode(layerID, src string, state *imageState) {
	fail := func(err error) {
		layers.Logger().Warn("image decode failed", "layer", layerID, "error", err)
		state.complete(nil, true)
		if r.redraw != nil {
			r.redraw()
		}
	}

	if r.loader == nil {
		fail(fmt.Errorf("no image loader configured"))
		return
	}
	rc, err := r.loader.Open(context.Background(), src)
	if err != nil {
		fail(err)
		return
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		fail(err)
		return
	}

	state.complete(img, false)
	if r.redraw != nil {
		r.redraw()
	}
}

// drawPlaceholder renders a dashed rectangle with short diagonal lines
// across the corners, marking an image that is not ready.
func (r *ImageRenderer) drawPlaceholder(ctx *canvas.Context, l *layers.ImageLayer, opts RenderOptions) {
	scale := opts.scale()
	x, y := l.X*scale, l.Y*scale
	w, h := l.Width*scale, l.Height*scale
	if w <= 0 || h <= 0 {
		return
	}

	ctx.Save()
	defer ctx.Restore()

	gray := layers.RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1}
	ctx.SetStrokeColor(gray)
	ctx.SetLineWidth(1)
	ctx.SetDash(layers.NewDash(4, 4))

	frame := canvas.NewPath()
	frame.Rectangle(x, y, w, h)
	ctx.StrokePath(frame)

	// Diagonal ticks across each corner.
	ctx.SetDash(nil)
	tick := min(w, h) * 0.2
	corners := canvas.NewPath()
	corners.MoveTo(x, y+tick)
	corners.LineTo(x+tick, y)
	corners.MoveTo(x+w-tick, y)
	corners.LineTo(x+w, y+tick)
	corners.MoveTo(x+w, y+h-tick)
	corners.LineTo(x+w-tick, y+h)
	corners.MoveTo(x+tick, y+h)
	corners.LineTo(x, y+h-tick)
	ctx.StrokePath(corners)
}

// IsCached reports whether the key has a cache entry, ready or not.
func (r *ImageRenderer) IsCached(key string) bool {
	return r.images.Contains(key)
}

// CacheSize returns the number of cached entries.
func (r *ImageRenderer) CacheSize() int { return r.images.Len() }

// ClearCache drops all cached images. In-flight decodes complete into
// orphaned entries and are garbage collected.
func (r *ImageRenderer) ClearCache() { r.images.Clear() }

// Destroy releases the cache and collaborators. The renderer must not
// be used afterwards.
func (r *ImageRenderer) Destroy() {
	r.images.Clear()
	r.loader = nil
	r.redraw = nil
}
