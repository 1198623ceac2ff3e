// Package layers is an interactive 2D annotation rendering and editing
// library. It turns a declarative list of Layer records (shapes, images,
// gradients, rich text) into pixel output, and pointer input into new or
// modified Layer records.
//
// The root package holds the data model and shared value types: the Layer
// sum type and its per-kind geometry, gradient and rich-text specs, and
// small geometry/color primitives (Point, Matrix, RGBA, Dash).
//
// Sub-packages:
//   - canvas: a software 2D drawing context over *image.RGBA
//   - style: the mutable current-drawing-style store with change notification
//   - shape: the factory turning pointer gestures into Layer records
//   - gradient: declarative gradient specs to paintable brushes
//   - richtext: multi-run rich text layout
//   - render: shape and image layer renderers with bounded caches
//   - tool: interactive tool state machines and the tool registry
//
// The library owns no network or file-format contract; persistence,
// validation and UI chrome are external collaborators. All drawing is
// synchronous and single-threaded per frame; the only asynchronous
// operation is bitmap decoding in render.ImageRenderer.
package layers
