package style

// Style is the flat record of ambient drawing defaults. Zero values are
// meaningful (an empty Fill paints nothing), so the record is always
// fully populated; Partial expresses sparse updates.
type Style struct {
	Color       string
	Fill        string
	StrokeWidth float64
	FontSize    float64
	FontFamily  string
	ArrowStyle  string

	ShadowEnabled bool
	ShadowColor   string
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

// Enforced minimums. Setters and Update clamp to these rather than
// rejecting the input.
const (
	MinStrokeWidth = 0.5
	MinFontSize    = 8.0
)

// DefaultStyle is the style a fresh Store starts from and Reset returns
// to.
var DefaultStyle = Style{
	Color:       "#ff0000",
	Fill:        "transparent",
	StrokeWidth: 2,
	FontSize:    16,
	FontFamily:  "Arial, sans-serif",
	ArrowStyle:  "single",

	ShadowColor:   "rgba(0,0,0,0.5)",
	ShadowBlur:    4,
	ShadowOffsetX: 2,
	ShadowOffsetY: 2,
}

// Partial is a sparse style update. Nil fields are left untouched by
// Store.Update.
type Partial struct {
	Color       *string
	Fill        *string
	StrokeWidth *float64
	FontSize    *float64
	FontFamily  *string
	ArrowStyle  *string

	ShadowEnabled *bool
	ShadowColor   *string
	ShadowBlur    *float64
	ShadowOffsetX *float64
	ShadowOffsetY *float64
}

// ShadowPartial is a sparse update of the shadow fields only, used by
// Store.SetShadow.
type ShadowPartial struct {
	Enabled *bool
	Color   *string
	Blur    *float64
	OffsetX *float64
	OffsetY *float64
}

// merge applies the partial onto s, clamping to the enforced minimums.
// Returns true if any field actually changed value.
func (s *Style) merge(p Partial) bool {
	changed := false

	setString := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}
	setFloat := func(dst *float64, src *float64, minimum float64) {
		if src == nil {
			return
		}
		v := *src
		if v < minimum {
			v = minimum
		}
		if *dst != v {
			*dst = v
			changed = true
		}
	}
	setFloatRaw := func(dst *float64, src *float64) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}

	setString(&s.Color, p.Color)
	setString(&s.Fill, p.Fill)
	setFloat(&s.StrokeWidth, p.StrokeWidth, MinStrokeWidth)
	setFloat(&s.FontSize, p.FontSize, MinFontSize)
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.ArrowStyle, p.ArrowStyle)

	if p.ShadowEnabled != nil && s.ShadowEnabled != *p.ShadowEnabled {
		s.ShadowEnabled = *p.ShadowEnabled
		changed = true
	}
	setString(&s.ShadowColor, p.ShadowColor)
	setFloat(&s.ShadowBlur, p.ShadowBlur, 0)
	setFloatRaw(&s.ShadowOffsetX, p.ShadowOffsetX)
	setFloatRaw(&s.ShadowOffsetY, p.ShadowOffsetY)

	return changed
}
