package canvas

import "github.com/slickdexic/layers"

// Brush represents what to paint with. Solid colors and gradients both
// satisfy it; fills sample the brush per pixel in user coordinates.
type Brush interface {
	// ColorAt returns the color at the given user-space coordinates.
	// For solid brushes this is position independent.
	ColorAt(x, y float64) layers.RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color layers.RGBA
}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) layers.RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c layers.RGBA) SolidBrush {
	return SolidBrush{Color: c}
}
