package richtext

import (
	"testing"

	"github.com/slickdexic/layers"
)

func TestHasRichText(t *testing.T) {
	tests := []struct {
		name  string
		layer layers.Layer
		want  bool
	}{
		{name: "nil layer", layer: nil, want: false},
		{name: "non-textual", layer: &layers.Circle{}, want: false},
		{name: "no runs", layer: &layers.Textbox{}, want: false},
		{
			name: "all runs invalid",
			layer: &layers.Textbox{TextStyleFields: layers.TextStyleFields{
				RichText: []layers.RichTextRun{{Invalid: true}, {Invalid: true}},
			}},
			want: false,
		},
		{
			name: "one valid run",
			layer: &layers.Textbox{TextStyleFields: layers.TextStyleFields{
				RichText: []layers.RichTextRun{{Invalid: true}, layers.Run("hi")},
			}},
			want: true,
		},
		{
			name: "empty string run is valid",
			layer: &layers.Textbox{TextStyleFields: layers.TextStyleFields{
				RichText: []layers.RichTextRun{layers.Run("")},
			}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRichText(tt.layer); got != tt.want {
				t.Errorf("HasRichText = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	runs := []layers.RichTextRun{
		layers.Run("hello "),
		{Invalid: true, Text: "SKIPPED"},
		layers.Run("world"),
	}
	if got := PlainText(runs); got != "hello world" {
		t.Errorf("PlainText = %q", got)
	}
	if got := PlainText(nil); got != "" {
		t.Errorf("PlainText(nil) = %q", got)
	}
}

func TestCharToRunMap(t *testing.T) {
	runs := []layers.RichTextRun{
		layers.Run("ab"),
		{Invalid: true, Text: "xxx"},
		layers.Run(""),
		layers.Run("cd"),
	}
	m := CharToRunMap(runs)

	plain := PlainText(runs)
	if len(m) != len([]rune(plain)) {
		t.Fatalf("map length %d != plain text rune length %d", len(m), len([]rune(plain)))
	}

	want := []RunRef{
		{RunIndex: 0, LocalIndex: 0},
		{RunIndex: 0, LocalIndex: 1},
		{RunIndex: 3, LocalIndex: 0},
		{RunIndex: 3, LocalIndex: 1},
	}
	for i, w := range want {
		if m[i] != w {
			t.Errorf("map[%d] = %+v, want %+v", i, m[i], w)
		}
	}
}

func TestCharToRunMapMultibyte(t *testing.T) {
	runs := []layers.RichTextRun{layers.Run("héllo")}
	m := CharToRunMap(runs)
	if len(m) != 5 {
		t.Fatalf("map length = %d, want 5 runes", len(m))
	}
	if m[1].LocalIndex != 1 || m[4].LocalIndex != 4 {
		t.Error("local indices should count runes, not bytes")
	}
}
