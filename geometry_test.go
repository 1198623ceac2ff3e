package layers

import (
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance(origin) = %v, want 5", got)
	}
	if got := p.Add(Pt(1, 1)); !pointsClose(got, Pt(4, 5)) {
		t.Errorf("Add = %+v", got)
	}
	if got := p.Sub(Pt(1, 1)); !pointsClose(got, Pt(2, 3)) {
		t.Errorf("Sub = %+v", got)
	}
	if got := p.Mul(2); !pointsClose(got, Pt(6, 8)) {
		t.Errorf("Mul = %+v", got)
	}
	if got := Pt(0, 0).Midpoint(Pt(10, 20)); !pointsClose(got, Pt(5, 10)) {
		t.Errorf("Midpoint = %+v", got)
	}
	if got := Pt(1, 0).Rotate(math.Pi / 2); !pointsClose(got, Pt(0, 1)) {
		t.Errorf("Rotate(90deg) = %+v", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 10), 0.25); !pointsClose(got, Pt(2.5, 2.5)) {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{name: "identity", m: Identity(), in: Pt(3, 4), want: Pt(3, 4)},
		{name: "translate", m: Translate(10, 20), in: Pt(1, 1), want: Pt(11, 21)},
		{name: "scale", m: Scale(2, 3), in: Pt(4, 5), want: Pt(8, 15)},
		{name: "rotate quarter turn", m: Rotate(math.Pi / 2), in: Pt(1, 0), want: Pt(0, 1)},
		{
			name: "translate then scale",
			m:    Translate(10, 0).Multiply(Scale(2, 2)),
			in:   Pt(1, 1),
			want: Pt(12, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsClose(got, tt.want) {
				t.Errorf("TransformPoint = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5))
	p := Pt(13, 7)

	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if !pointsClose(back, p) {
		t.Errorf("Invert round trip = %+v, want %+v", back, p)
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	singular := Scale(0, 0)
	if !singular.Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestMatrixScaleFactor(t *testing.T) {
	if got := Scale(2, 2).ScaleFactor(); math.Abs(got-2) > 1e-9 {
		t.Errorf("ScaleFactor uniform = %v, want 2", got)
	}
	if got := Scale(2, 4).ScaleFactor(); math.Abs(got-3) > 1e-9 {
		t.Errorf("ScaleFactor mixed = %v, want 3", got)
	}
	// Rotation does not change scale.
	if got := Rotate(1.1).ScaleFactor(); math.Abs(got-1) > 1e-9 {
		t.Errorf("ScaleFactor rotation = %v, want 1", got)
	}
}

func TestRect(t *testing.T) {
	r := RectOf(10, 20, 30, 40)

	if r.IsEmpty() {
		t.Error("non-degenerate rect reported empty")
	}
	if !pointsClose(r.Center(), Pt(25, 40)) {
		t.Errorf("Center = %+v", r.Center())
	}
	if r.MaxX() != 40 || r.MaxY() != 60 {
		t.Errorf("MaxX/MaxY = %v/%v, want 40/60", r.MaxX(), r.MaxY())
	}
	if r.MaxDim() != 40 {
		t.Errorf("MaxDim = %v, want 40", r.MaxDim())
	}
	if !r.ContainsPoint(10, 20) || !r.ContainsPoint(39, 59) {
		t.Error("ContainsPoint missed interior/edge points")
	}
	if r.ContainsPoint(41, 30) {
		t.Error("ContainsPoint hit outside point")
	}

	u := r.Union(RectOf(0, 0, 5, 5))
	if u.X != 0 || u.Y != 0 || u.MaxX() != 40 || u.MaxY() != 60 {
		t.Errorf("Union = %+v", u)
	}

	e := r.Expand(2)
	if e.X != 8 || e.Y != 18 || e.Width != 34 || e.Height != 44 {
		t.Errorf("Expand = %+v", e)
	}
}

func TestRectFromCorners(t *testing.T) {
	r := RectFromCorners(Pt(10, 10), Pt(2, 5))
	if r.X != 2 || r.Y != 5 || r.Width != 8 || r.Height != 5 {
		t.Errorf("RectFromCorners = %+v", r)
	}
}
