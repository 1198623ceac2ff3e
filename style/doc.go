// Package style holds the current drawing style shared by the
// interactive tools: the stroke and fill colors, widths, font settings,
// and shadow configuration that new layers are created with.
//
// A Store keeps one live style record. Tools read it through Get and
// typed setters, editors subscribe to changes, and the factory applies
// it to freshly created layers without clobbering fields a layer
// already defines.
package style
