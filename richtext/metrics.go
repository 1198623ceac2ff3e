package richtext

import (
	"github.com/slickdexic/layers"
)

// Scale carries the horizontal and vertical render scale. Text sizing
// uses the average of the two so non-uniform zoom does not distort
// glyph proportions.
type Scale struct {
	X float64
	Y float64
}

// Avg returns the average of the two scale components.
func (s Scale) Avg() float64 { return (s.X + s.Y) / 2 }

// Unit is the identity scale.
var Unit = Scale{X: 1, Y: 1}

// MaxFontSizeForLine returns the largest font size used by any run whose
// characters fall within [lineStart, lineEnd) of the plain text. Per-run
// size overrides are multiplied by the scale average; when no run in the
// range overrides the size, the unscaled base size is returned as is.
func MaxFontSizeForLine(runs []layers.RichTextRun, lineStart, lineEnd int, baseFontSize float64, scale Scale) float64 {
	maxSize := 0.0
	overridden := false

	pos := 0
	for _, run := range runs {
		if run.Invalid {
			continue
		}
		runLen := len([]rune(run.Text))
		runStart := pos
		runEnd := pos + runLen
		pos = runEnd

		if runEnd <= lineStart || runStart >= lineEnd {
			continue
		}
		if run.Style != nil && run.Style.FontSize != nil {
			overridden = true
			if size := *run.Style.FontSize * scale.Avg(); size > maxSize {
				maxSize = size
			}
		} else if baseFontSize*scale.Avg() > maxSize {
			maxSize = baseFontSize * scale.Avg()
		}
	}

	if !overridden {
		return baseFontSize
	}
	return maxSize
}

// LineMetric describes one wrapped line of text.
type LineMetric struct {
	Text        string
	Start       int
	End         int
	MaxFontSize float64
	LineHeight  float64
}

// CalculateLineMetrics computes per-line sizing for already wrapped
// lines. Start and End are the line's rune span in the source text,
// taken from the wrapper's offsets so characters collapsed at breaks
// do not shift later lines; LineHeight is MaxFontSize times the
// line-height multiplier.
func CalculateLineMetrics(lines []Line, runs []layers.RichTextRun, baseFontSize, lineHeightMultiplier float64, scale Scale) []LineMetric {
	metrics := make([]LineMetric, 0, len(lines))
	for _, line := range lines {
		start := line.Start
		end := start + len([]rune(line.Text))
		maxSize := MaxFontSizeForLine(runs, start, end, baseFontSize, scale)
		metrics = append(metrics, LineMetric{
			Text:        line.Text,
			Start:       start,
			End:         end,
			MaxFontSize: maxSize,
			LineHeight:  maxSize * lineHeightMultiplier,
		})
	}
	return metrics
}

// TotalTextHeight sums the line heights of all metrics.
func TotalTextHeight(metrics []LineMetric) float64 {
	total := 0.0
	for _, m := range metrics {
		total += m.LineHeight
	}
	return total
}

// TextStartY returns the y coordinate of the first line's top for the
// given vertical alignment. Unknown alignments fall back to top.
func TextStartY(verticalAlign string, boxY, padding, availableHeight, totalTextHeight float64) float64 {
	switch verticalAlign {
	case "middle":
		return boxY + padding + (availableHeight-totalTextHeight)/2
	case "bottom":
		return boxY + padding + availableHeight - totalTextHeight
	default:
		return boxY + padding
	}
}

// LineX returns the x coordinate of a line's left edge for the given
// horizontal alignment. Unknown alignments fall back to left.
func LineX(align string, boxX, boxWidth, lineWidth, padding float64) float64 {
	switch align {
	case "center":
		return boxX + (boxWidth-lineWidth)/2
	case "right":
		return boxX + boxWidth - padding - lineWidth
	default:
		return boxX + padding
	}
}
