// Package gradient turns declarative gradient specs attached to layers
// into paintable canvas brushes, anchored to the layer's bounding box.
package gradient
