package richtext

import (
	"unicode"
)

// Measurer reports the advance width of a string at the base font size.
// The render package's font cache provides one; tests can stub it with
// a fixed per-rune width.
type Measurer interface {
	MeasureString(s string) float64
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(string) float64

// MeasureString implements Measurer.
func (f MeasureFunc) MeasureString(s string) float64 { return f(s) }

// Line is one wrapped line together with the rune offset of its first
// character in the source text. Offsets are in source runes, so the
// characters a line displays are always text[Start : Start+len(Text)]
// even after spaces collapse at soft breaks.
type Line struct {
	Text  string
	Start int
}

// WrapText breaks text into lines no wider than maxWidth. Breaking
// prefers word boundaries and falls back to character boundaries for a
// single word wider than the box. Hard line breaks are respected and
// each paragraph wraps independently; a blank line stays a blank line.
//
// maxWidth <= 0 disables wrapping and returns the paragraphs as is.
func WrapText(text string, m Measurer, maxWidth float64) []Line {
	if text == "" {
		return []Line{{}}
	}

	runes := []rune(text)
	var lines []Line
	paraStart := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' && runes[i] != '\r' {
			continue
		}

		para := runes[paraStart:i]
		if m == nil || maxWidth <= 0 {
			lines = append(lines, Line{Text: string(para), Start: paraStart})
		} else {
			lines = append(lines, wrapParagraph(para, paraStart, m, maxWidth)...)
		}

		if i == len(runes) {
			break
		}
		// CRLF is a single break.
		if runes[i] == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
			i++
		}
		paraStart = i + 1
	}
	return lines
}

// WrapLines is WrapText without the offsets.
func WrapLines(text string, m Measurer, maxWidth float64) []string {
	wrapped := WrapText(text, m, maxWidth)
	lines := make([]string, len(wrapped))
	for i, l := range wrapped {
		lines[i] = l.Text
	}
	return lines
}

// wrapParagraph wraps a single paragraph with no hard breaks. base is
// the paragraph's rune offset in the source text.
func wrapParagraph(runes []rune, base int, m Measurer, maxWidth float64) []Line {
	if len(runes) == 0 {
		return []Line{{Start: base}}
	}

	var lines []Line
	lineStart := 0

	for lineStart < len(runes) {
		lineEnd := findLineEnd(runes, lineStart, m, maxWidth)

		// Spaces around a soft break collapse into it.
		trimmed := lineEnd
		if lineEnd < len(runes) {
			for trimmed > lineStart && unicode.IsSpace(runes[trimmed-1]) {
				trimmed--
			}
		}
		lines = append(lines, Line{Text: string(runes[lineStart:trimmed]), Start: base + lineStart})

		lineStart = lineEnd
		for lineStart < len(runes) && unicode.IsSpace(runes[lineStart]) {
			lineStart++
		}
	}
	return lines
}

// findLineEnd scans forward from lineStart accumulating width until the
// line would overflow, tracking the last word boundary on the way.
func findLineEnd(runes []rune, lineStart int, m Measurer, maxWidth float64) int {
	width := 0.0
	lastBreak := -1

	for i := lineStart; i < len(runes); i++ {
		if i > lineStart && canBreakBefore(runes, i) {
			lastBreak = i
		}

		width += m.MeasureString(string(runes[i]))
		if width > maxWidth && i > lineStart {
			if lastBreak > lineStart {
				return lastBreak
			}
			// One word wider than the box: break mid-word.
			return i
		}
	}
	return len(runes)
}

// canBreakBefore reports a break opportunity before rune index i:
// after spaces, after hyphens, and on either side of CJK ideographs.
func canBreakBefore(runes []rune, i int) bool {
	prev := runes[i-1]
	cur := runes[i]

	if unicode.IsSpace(prev) {
		return true
	}
	if isHyphen(prev) && !isHyphen(cur) {
		return true
	}
	if isCJK(cur) || isCJK(prev) {
		return true
	}
	return false
}

func isHyphen(r rune) bool {
	switch r {
	case '-', '‐', '‑', '–', '—':
		return true
	}
	return false
}

// isCJK reports runes that allow breaking on both sides.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF) ||
		(r >= 0xFF00 && r <= 0xFFEF)
}
