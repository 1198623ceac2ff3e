package tool

import "sort"

// Tool categories.
const (
	CategorySelection  = "selection"
	CategoryDrawing    = "drawing"
	CategoryShape      = "shape"
	CategoryLine       = "line"
	CategoryAnnotation = "annotation"
)

// Info is the static metadata of one tool.
type Info struct {
	Cursor       string
	Category     string
	CreatesLayer bool
}

// Registry is a category-indexed table of tool metadata, pre-populated
// with the built-in tools.
type Registry struct {
	tools      map[string]Info
	byCategory map[string][]string
}

// builtinTools is what a fresh registry (and Reset) contains.
var builtinTools = map[string]Info{
	"pointer":   {Cursor: "default", Category: CategorySelection},
	"rectangle": {Cursor: "crosshair", Category: CategoryShape, CreatesLayer: true},
	"circle":    {Cursor: "crosshair", Category: CategoryShape, CreatesLayer: true},
	"ellipse":   {Cursor: "crosshair", Category: CategoryShape, CreatesLayer: true},
	"polygon":   {Cursor: "crosshair", Category: CategoryShape, CreatesLayer: true},
	"star":      {Cursor: "crosshair", Category: CategoryShape, CreatesLayer: true},
	"line":      {Cursor: "crosshair", Category: CategoryLine, CreatesLayer: true},
	"arrow":     {Cursor: "crosshair", Category: CategoryLine, CreatesLayer: true},
	"path":      {Cursor: "crosshair", Category: CategoryDrawing, CreatesLayer: true},
	"text":      {Cursor: "text", Category: CategoryAnnotation, CreatesLayer: true},
	"textbox":   {Cursor: "text", Category: CategoryAnnotation, CreatesLayer: true},
	"callout":   {Cursor: "text", Category: CategoryAnnotation, CreatesLayer: true},
}

// NewRegistry creates a registry holding the built-in tools.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Register adds or replaces a tool. The category index is kept in sync.
func (r *Registry) Register(name string, info Info) {
	if name == "" {
		return
	}
	if old, ok := r.tools[name]; ok {
		r.removeFromCategory(old.Category, name)
	}
	r.tools[name] = info
	r.byCategory[info.Category] = append(r.byCategory[info.Category], name)
}

// Unregister removes a tool. Unknown names are a no-op.
func (r *Registry) Unregister(name string) {
	info, ok := r.tools[name]
	if !ok {
		return
	}
	delete(r.tools, name)
	r.removeFromCategory(info.Category, name)
}

func (r *Registry) removeFromCategory(category, name string) {
	names := r.byCategory[category]
	for i, n := range names {
		if n == name {
			r.byCategory[category] = append(names[:i], names[i+1:]...)
			break
		}
	}
	if len(r.byCategory[category]) == 0 {
		delete(r.byCategory, category)
	}
}

// Get returns a tool's metadata.
func (r *Registry) Get(name string) (Info, bool) {
	info, ok := r.tools[name]
	return info, ok
}

// Has reports whether a tool is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Cursor returns the tool's cursor, or "default" for unknown tools and
// tools without one.
func (r *Registry) Cursor(name string) string {
	info, ok := r.tools[name]
	if !ok || info.Cursor == "" {
		return "default"
	}
	return info.Cursor
}

// drawingCategories are the categories whose tools draw new content.
var drawingCategories = map[string]bool{
	CategoryDrawing:    true,
	CategoryShape:      true,
	CategoryLine:       true,
	CategoryAnnotation: true,
}

// IsDrawingTool reports whether the tool belongs to a drawing category.
func (r *Registry) IsDrawingTool(name string) bool {
	info, ok := r.tools[name]
	return ok && drawingCategories[info.Category]
}

// IsSelectionTool reports whether the tool is a selection tool.
func (r *Registry) IsSelectionTool(name string) bool {
	info, ok := r.tools[name]
	return ok && info.Category == CategorySelection
}

// ToolsByCategory returns the sorted tool names in a category. The
// index keeps insertion order; sorting happens here, on the copy.
func (r *Registry) ToolsByCategory(category string) []string {
	names := r.byCategory[category]
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreatesLayer reports whether completing a gesture with the tool
// produces a layer. Unknown tools do not.
func (r *Registry) CreatesLayer(name string) bool {
	info, ok := r.tools[name]
	return ok && info.CreatesLayer
}

// Clear removes every tool, built-ins included.
func (r *Registry) Clear() {
	r.tools = make(map[string]Info)
	r.byCategory = make(map[string][]string)
}

// Reset restores the built-in tools, dropping any custom ones.
func (r *Registry) Reset() {
	r.Clear()
	for name, info := range builtinTools {
		r.Register(name, info)
	}
}
