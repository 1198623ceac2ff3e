// Package render draws layer records onto a canvas context: vector
// shapes from cached path geometry, asynchronously decoded images with
// placeholder fallback, and multi-run rich text.
//
// Renderers never reorder layers; the caller issues draws bottom to top
// and later draws occlude earlier ones. A failing layer is logged and
// skipped, never aborting the rest of the frame.
package render
