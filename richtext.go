package layers

import "encoding/json"

// RunStyle holds the per-run style overrides of a rich text run.
// Nil fields fall back to the layer's base text style.
type RunStyle struct {
	FontWeight *string  `json:"fontWeight,omitempty"`
	FontStyle  *string  `json:"fontStyle,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	FontFamily *string  `json:"fontFamily,omitempty"`
	Color      *string  `json:"color,omitempty"`
	Underline  *bool    `json:"underline,omitempty"`
}

// RichTextRun is a contiguous span of text sharing one style override.
//
// Invalid marks runs whose wire "text" field was not a string; such runs
// are kept in the sequence (so later runs retain their true index) but
// contribute no characters and are skipped by every consumer. An empty
// Text is a valid, zero-length run.
type RichTextRun struct {
	Text    string
	Style   *RunStyle
	Invalid bool
}

// MarshalJSON writes the run in wire form. Invalid runs serialize their
// text as null so a round trip preserves invalidity.
func (r RichTextRun) MarshalJSON() ([]byte, error) {
	type wire struct {
		Text  any       `json:"text"`
		Style *RunStyle `json:"style,omitempty"`
	}
	w := wire{Style: r.Style}
	if r.Invalid {
		w.Text = nil
	} else {
		w.Text = r.Text
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads the wire form. A non-string "text" value does not
// fail the document; the run is marked Invalid instead.
func (r *RichTextRun) UnmarshalJSON(data []byte) error {
	type wire struct {
		Text  json.RawMessage `json:"text"`
		Style *RunStyle       `json:"style,omitempty"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.Style = w.Style
	var s string
	if len(w.Text) > 0 && json.Unmarshal(w.Text, &s) == nil {
		r.Text = s
		r.Invalid = false
	} else {
		r.Text = ""
		r.Invalid = true
	}
	return nil
}

// Run builds a valid run with no style override.
func Run(text string) RichTextRun {
	return RichTextRun{Text: text}
}

// StyledRun builds a valid run with the given style override.
func StyledRun(text string, style *RunStyle) RichTextRun {
	return RichTextRun{Text: text, Style: style}
}
