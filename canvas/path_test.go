package canvas

import (
	"math"
	"testing"

	"github.com/slickdexic/layers"
)

func TestPathIsEmpty(t *testing.T) {
	var nilPath *Path
	if !nilPath.IsEmpty() {
		t.Error("nil path should be empty")
	}
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("fresh path should be empty")
	}
	p.MoveTo(1, 2)
	if p.IsEmpty() {
		t.Error("path with elements should not be empty")
	}
}

func TestPathBounds(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *Path)
		want  layers.Rect
	}{
		{
			name:  "rectangle",
			build: func(p *Path) { p.Rectangle(10, 20, 30, 40) },
			want:  layers.RectOf(10, 20, 30, 40),
		},
		{
			name: "two subpaths",
			build: func(p *Path) {
				p.Rectangle(0, 0, 10, 10)
				p.Rectangle(50, 50, 10, 10)
			},
			want: layers.RectOf(0, 0, 60, 60),
		},
		{
			name:  "line segment",
			build: func(p *Path) { p.MoveTo(5, 5); p.LineTo(-5, 15) },
			want:  layers.RectOf(-5, 5, 10, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.build(p)
			got := p.Bounds()
			if got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	moved := p.Transform(layers.Translate(100, 200))
	got := moved.Bounds()
	want := layers.RectOf(100, 200, 10, 10)
	if got != want {
		t.Errorf("transformed bounds = %+v, want %+v", got, want)
	}

	// Receiver unchanged.
	if p.Bounds() != layers.RectOf(0, 0, 10, 10) {
		t.Error("Transform mutated the receiver")
	}

	// Identity transform preserves geometry.
	same := p.Transform(layers.Identity())
	if same.Bounds() != p.Bounds() {
		t.Error("identity transform changed bounds")
	}
}

func TestPathFlatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(30, 20)

	subpaths, closed := p.Flatten()
	if len(subpaths) != 2 {
		t.Fatalf("subpaths = %d, want 2", len(subpaths))
	}
	if !closed[0] || closed[1] {
		t.Errorf("closed flags = %v, want [true false]", closed)
	}
	// A closed subpath repeats its start point.
	first := subpaths[0]
	if first[0] != first[len(first)-1] {
		t.Error("closed subpath should end at its start point")
	}
}

func TestPathFlattenCurveAccuracy(t *testing.T) {
	p := NewPath()
	p.Circle(0, 0, 100)

	subpaths, _ := p.Flatten()
	if len(subpaths) != 1 {
		t.Fatalf("subpaths = %d, want 1", len(subpaths))
	}
	// Every flattened point should be close to the true radius.
	for _, pt := range subpaths[0] {
		r := math.Hypot(pt.X, pt.Y)
		if math.Abs(r-100) > 1.5 {
			t.Fatalf("flattened circle point at radius %v, want ~100", r)
		}
	}
}

func TestPathContains(t *testing.T) {
	square := NewPath()
	square.Rectangle(0, 0, 100, 100)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "center", x: 50, y: 50, want: true},
		{name: "outside right", x: 150, y: 50, want: false},
		{name: "outside above", x: 50, y: -10, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Contains(tt.x, tt.y, FillNonZero); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPathContainsEvenOddHole(t *testing.T) {
	// Two nested same-direction squares: even-odd sees a hole, nonzero
	// does not.
	p := NewPath()
	p.Rectangle(0, 0, 100, 100)
	p.Rectangle(25, 25, 50, 50)

	if !p.Contains(50, 50, FillNonZero) {
		t.Error("nonzero should fill the nested region")
	}
	if p.Contains(50, 50, FillEvenOdd) {
		t.Error("even-odd should treat the nested region as a hole")
	}
	if !p.Contains(10, 50, FillEvenOdd) {
		t.Error("even-odd should fill the ring")
	}
}

func TestPathContainsOpenSubpath(t *testing.T) {
	// Open triangle; point-in-path treats it as implicitly closed.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(50, 100)

	if !p.Contains(50, 30, FillNonZero) {
		t.Error("open subpath should be implicitly closed for hit testing")
	}
}

func TestParseFillRule(t *testing.T) {
	if ParseFillRule("evenodd") != FillEvenOdd {
		t.Error("evenodd should parse to FillEvenOdd")
	}
	for _, s := range []string{"", "nonzero", "winding"} {
		if ParseFillRule(s) != FillNonZero {
			t.Errorf("ParseFillRule(%q) should default to nonzero", s)
		}
	}
}

func TestRoundedRectangleDegenerate(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 10, 10, 0)
	q := NewPath()
	q.Rectangle(0, 0, 10, 10)
	if len(p.Elements()) != len(q.Elements()) {
		t.Error("zero radius should degenerate to a plain rectangle")
	}
}
