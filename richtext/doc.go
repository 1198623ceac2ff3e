// Package richtext lays out multi-run styled text for the textual layer
// kinds: line wrapping, per-character run mapping, line metrics, and
// alignment math. The renderer drives it once per textbox per frame.
//
// Character positions throughout this package index into the
// concatenated plain text of the valid runs, counted in runes.
package richtext
