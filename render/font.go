package render

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/slickdexic/layers"
)

// faceKey identifies a rendered face by family, size, and style.
type faceKey struct {
	family string
	size   float64
	bold   bool
	italic bool
}

// FontCache loads TrueType/OpenType fonts from disk and caches rendered
// faces. Layers reference fonts with CSS-style family lists ("Arial,
// sans-serif"); the cache resolves the first family it can find and
// falls back to a built-in bitmap face so text always renders.
//
// Render faces use full hinting; measure faces use none, so line
// wrapping positions match the ideal glyph advances layout was done
// with.
type FontCache struct {
	mu           sync.RWMutex
	dirs         []string
	fonts        map[string]*opentype.Font
	faces        map[faceKey]font.Face
	measureFaces map[faceKey]font.Face
	scanned      bool
}

// NewFontCache creates a cache searching the OS font directories plus
// any extra directories given.
func NewFontCache(extraDirs ...string) *FontCache {
	return &FontCache{
		dirs:         append(systemFontDirs(), extraDirs...),
		fonts:        make(map[string]*opentype.Font),
		faces:        make(map[faceKey]font.Face),
		measureFaces: make(map[faceKey]font.Face),
	}
}

// Face returns a render face for the family list and style. Never nil;
// unresolvable families fall back to the built-in face.
func (fc *FontCache) Face(family string, size float64, weight, style string) font.Face {
	return fc.face(family, size, weight, style, font.HintingFull, fc.faces)
}

// MeasureFace returns an unhinted face for measurement.
func (fc *FontCache) MeasureFace(family string, size float64, weight, style string) font.Face {
	return fc.face(family, size, weight, style, font.HintingNone, fc.measureFaces)
}

func (fc *FontCache) face(family string, size float64, weight, style string, hinting font.Hinting, table map[faceKey]font.Face) font.Face {
	fc.ensureScanned()

	bold := strings.EqualFold(weight, "bold") || weight == "700" || weight == "800" || weight == "900"
	italic := strings.EqualFold(style, "italic") || strings.EqualFold(style, "oblique")
	key := faceKey{family: strings.ToLower(family), size: size, bold: bold, italic: italic}

	fc.mu.RLock()
	if f, ok := table[key]; ok {
		fc.mu.RUnlock()
		return f
	}
	fc.mu.RUnlock()

	face := fc.buildFace(family, size, bold, italic, hinting)

	fc.mu.Lock()
	table[key] = face
	fc.mu.Unlock()
	return face
}

func (fc *FontCache) buildFace(family string, size float64, bold, italic bool, hinting font.Hinting) font.Face {
	f := fc.resolveFamilyList(family, bold, italic)
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		layers.Logger().Warn("font face creation failed", "family", family, "error", err)
		return basicfont.Face7x13
	}
	return face
}

// resolveFamilyList walks a comma-separated family list until one
// resolves. Generic families (sans-serif etc.) resolve to nothing and
// fall through to the built-in face.
func (fc *FontCache) resolveFamilyList(list string, bold, italic bool) *opentype.Font {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	for _, family := range strings.Split(list, ",") {
		family = strings.Trim(strings.TrimSpace(family), `"'`)
		if family == "" {
			continue
		}
		if f := fc.findFont(strings.ToLower(family), bold, italic); f != nil {
			return f
		}
	}
	return nil
}

// findFont looks up a parsed font, trying style-suffixed filenames
// first the way platform font files name their variants.
// Caller must hold fc.mu.
func (fc *FontCache) findFont(lower string, bold, italic bool) *opentype.Font {
	var suffixes []string
	switch {
	case bold && italic:
		suffixes = []string{" bold italic", "bi", "z"}
	case bold:
		suffixes = []string{" bold", "bd", "b"}
	case italic:
		suffixes = []string{" italic", "i"}
	}
	for _, suffix := range suffixes {
		if f, ok := fc.fonts[lower+suffix]; ok {
			return f
		}
	}
	return fc.fonts[lower]
}

// LoadFontData registers a font from raw bytes under the given name and
// its internal family name.
func (fc *FontCache) LoadFontData(name string, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return err
	}
	fc.mu.Lock()
	fc.fonts[strings.ToLower(name)] = f
	fc.registerByFamilyName(f)
	fc.mu.Unlock()
	return nil
}

func (fc *FontCache) ensureScanned() {
	fc.mu.RLock()
	scanned := fc.scanned
	fc.mu.RUnlock()
	if scanned {
		return
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.scanned {
		return
	}
	fc.scanned = true

	for _, dir := range fc.dirs {
		fc.scanDir(dir, 0)
	}
}

const (
	maxFontScanDepth = 3
	maxFontFileSize  = 20 << 20
)

func (fc *FontCache) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fc.scanDir(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		f, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		fc.fonts[strings.TrimSuffix(lower, filepath.Ext(lower))] = f
		fc.registerByFamilyName(f)
	}
}

// registerByFamilyName also indexes a font under its internal family
// and full names so CSS-style references resolve.
func (fc *FontCache) registerByFamilyName(f *opentype.Font) {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		fc.fonts[strings.ToLower(name)] = f
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		fc.fonts[strings.ToLower(name)] = f
	}
}

// MeasureString returns the advance width of s in the given face, in
// pixels.
func MeasureString(face font.Face, s string) float64 {
	if face == nil || s == "" {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64
}

// systemFontDirs returns the OS-specific font directories.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home, _ := os.UserHomeDir(); home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
