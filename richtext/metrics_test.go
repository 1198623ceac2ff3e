package richtext

import (
	"math"
	"reflect"
	"testing"

	"github.com/slickdexic/layers"
)

func TestMaxFontSizeForLine(t *testing.T) {
	runs := []layers.RichTextRun{
		layers.Run("small "),                                                   // runes 0-5
		layers.StyledRun("big", &layers.RunStyle{FontSize: layers.Float(32)}),  // runes 6-8
		layers.StyledRun("huge", &layers.RunStyle{FontSize: layers.Float(48)}), // runes 9-12
	}

	tests := []struct {
		name       string
		start, end int
		scale      Scale
		want       float64
	}{
		{name: "no override in range", start: 0, end: 6, scale: Unit, want: 16},
		{name: "override wins", start: 6, end: 9, scale: Unit, want: 32},
		{name: "max of overlapping runs", start: 0, end: 13, scale: Unit, want: 48},
		{name: "override scales", start: 6, end: 9, scale: Scale{X: 2, Y: 2}, want: 64},
		// With no overriding run in range the unscaled base comes back.
		{name: "base is not scaled", start: 0, end: 6, scale: Scale{X: 2, Y: 2}, want: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxFontSizeForLine(runs, tt.start, tt.end, 16, tt.scale)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MaxFontSizeForLine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxFontSizeForLineSkipsInvalidRuns(t *testing.T) {
	runs := []layers.RichTextRun{
		{Invalid: true, Text: "ignored", Style: &layers.RunStyle{FontSize: layers.Float(99)}},
		layers.StyledRun("ok", &layers.RunStyle{FontSize: layers.Float(20)}),
	}
	if got := MaxFontSizeForLine(runs, 0, 2, 16, Unit); got != 20 {
		t.Errorf("MaxFontSizeForLine = %v, want 20", got)
	}
}

func TestCalculateLineMetrics(t *testing.T) {
	runs := []layers.RichTextRun{
		layers.Run("aaaa"),
		layers.StyledRun("BBBB", &layers.RunStyle{FontSize: layers.Float(24)}),
	}
	lines := []Line{{Text: "aaaa", Start: 0}, {Text: "BBBB", Start: 4}}

	metrics := CalculateLineMetrics(lines, runs, 16, 1.2, Unit)
	if len(metrics) != 2 {
		t.Fatalf("metrics = %d, want 2", len(metrics))
	}

	if metrics[0].Start != 0 || metrics[0].End != 4 {
		t.Errorf("line 0 range = [%d,%d)", metrics[0].Start, metrics[0].End)
	}
	if metrics[1].Start != 4 || metrics[1].End != 8 {
		t.Errorf("line 1 range = [%d,%d)", metrics[1].Start, metrics[1].End)
	}
	if metrics[0].MaxFontSize != 16 || metrics[1].MaxFontSize != 24 {
		t.Errorf("font sizes = %v, %v", metrics[0].MaxFontSize, metrics[1].MaxFontSize)
	}
	if math.Abs(metrics[1].LineHeight-28.8) > 1e-9 {
		t.Errorf("line height = %v, want 28.8", metrics[1].LineHeight)
	}

	total := TotalTextHeight(metrics)
	if math.Abs(total-(19.2+28.8)) > 1e-9 {
		t.Errorf("total height = %v, want 48", total)
	}
}

func TestCalculateLineMetricsAcrossCollapsedSpace(t *testing.T) {
	runs := []layers.RichTextRun{
		layers.Run("hello "),
		layers.StyledRun("world", &layers.RunStyle{FontSize: layers.Float(10)}),
	}
	lines := WrapText(PlainText(runs), perRune(10), 55)

	// The break space collapses out of both lines, but the second line
	// still starts at source offset 6 where the styled run begins.
	want := []Line{{Text: "hello", Start: 0}, {Text: "world", Start: 6}}
	if !reflect.DeepEqual(lines, want) {
		t.Fatalf("WrapText = %+v, want %+v", lines, want)
	}

	metrics := CalculateLineMetrics(lines, runs, 16, 1.2, Unit)
	if metrics[1].Start != 6 || metrics[1].End != 11 {
		t.Errorf("line 1 range = [%d,%d), want [6,11)", metrics[1].Start, metrics[1].End)
	}
	if metrics[1].MaxFontSize != 10 {
		t.Errorf("line 1 max font size = %v, want the styled run's 10", metrics[1].MaxFontSize)
	}

	charRuns := CharToRunMap(runs)
	if got := charRuns[metrics[1].Start].RunIndex; got != 1 {
		t.Errorf("run at line 1 start = %d, want 1", got)
	}
}

func TestTextStartY(t *testing.T) {
	tests := []struct {
		name  string
		align string
		want  float64
	}{
		{name: "top", align: "top", want: 110},
		{name: "middle", align: "middle", want: 130},
		{name: "bottom", align: "bottom", want: 150},
		{name: "unknown falls back to top", align: "justify", want: 110},
		{name: "empty falls back to top", align: "", want: 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// box at y=100, padding 10, 100 available, 60 of text
			got := TextStartY(tt.align, 100, 10, 100, 60)
			if got != tt.want {
				t.Errorf("TextStartY = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineX(t *testing.T) {
	tests := []struct {
		name  string
		align string
		want  float64
	}{
		{name: "left", align: "left", want: 15},
		{name: "center", align: "center", want: 40},
		{name: "right", align: "right", want: 65},
		{name: "unknown falls back to left", align: "justify", want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// box at x=10 width 100, line width 40, padding 5
			got := LineX(tt.align, 10, 100, 40, 5)
			if got != tt.want {
				t.Errorf("LineX = %v, want %v", got, tt.want)
			}
		})
	}
}
