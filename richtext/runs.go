package richtext

import (
	"strings"

	"github.com/slickdexic/layers"
)

// HasRichText reports whether a layer carries usable rich text: a
// non-empty run sequence with at least one valid run. An empty-string
// run counts as valid.
func HasRichText(l layers.Layer) bool {
	if l == nil {
		return false
	}
	tf := layers.TextFields(l)
	if tf == nil {
		return false
	}
	for _, run := range tf.RichText {
		if !run.Invalid {
			return true
		}
	}
	return false
}

// PlainText concatenates the text of all valid runs in order. Invalid
// runs contribute nothing.
func PlainText(runs []layers.RichTextRun) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Invalid {
			continue
		}
		b.WriteString(run.Text)
	}
	return b.String()
}

// RunRef locates one character of the concatenated plain text: the run
// it came from and its rune offset within that run.
type RunRef struct {
	RunIndex   int
	LocalIndex int
}

// CharToRunMap maps every character position of the plain text back to
// its source run. Invalid and empty runs contribute no characters but
// keep their place in the sequence, so later runs report their true
// index. The result length always equals the rune length of PlainText.
func CharToRunMap(runs []layers.RichTextRun) []RunRef {
	var out []RunRef
	for i, run := range runs {
		if run.Invalid {
			continue
		}
		for local := range []rune(run.Text) {
			out = append(out, RunRef{RunIndex: i, LocalIndex: local})
		}
	}
	return out
}
