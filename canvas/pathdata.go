package canvas

import (
	"fmt"
	"math"
)

// ParsePathData parses an SVG path-data string into a Path.
// All standard commands are supported (M/L/H/V/C/S/Q/T/A/Z), in both
// absolute and relative form. Elliptical arcs are converted to cubic
// Bezier segments.
func ParsePathData(data string) (*Path, error) {
	s := &pathScanner{data: data}
	p := NewPath()

	var (
		cmd        byte
		cur        = pt{}
		subStart   = pt{}
		lastCtrl   = pt{}
		lastCmd    byte
		hasLastCmd bool
	)

	for {
		s.skipSeparators()
		if s.done() {
			break
		}

		c := s.peek()
		if isCommand(c) {
			cmd = c
			s.next()
		} else if !hasLastCmd {
			return nil, fmt.Errorf("path data: expected command, got %q at %d", c, s.pos)
		} else {
			// Implicit command repetition; M repeats as L.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}
		hasLastCmd = true

		rel := cmd >= 'a'
		base := pt{}
		if rel {
			base = cur
		}

		switch upper(cmd) {
		case 'M':
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			cur = pt{base.x + x, base.y + y}
			subStart = cur
			p.MoveTo(cur.x, cur.y)
		case 'L':
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			cur = pt{base.x + x, base.y + y}
			p.LineTo(cur.x, cur.y)
		case 'H':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			cur = pt{base.x + x, cur.y}
			p.LineTo(cur.x, cur.y)
		case 'V':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			cur = pt{cur.x, base.y + y}
			p.LineTo(cur.x, cur.y)
		case 'C':
			x1, y1, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			x2, y2, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			c1 := pt{base.x + x1, base.y + y1}
			c2 := pt{base.x + x2, base.y + y2}
			cur = pt{base.x + x, base.y + y}
			p.CubicTo(c1.x, c1.y, c2.x, c2.y, cur.x, cur.y)
			lastCtrl = c2
		case 'S':
			x2, y2, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			c1 := reflect(cur, lastCtrl, lastCmd, 'C')
			c2 := pt{base.x + x2, base.y + y2}
			cur = pt{base.x + x, base.y + y}
			p.CubicTo(c1.x, c1.y, c2.x, c2.y, cur.x, cur.y)
			lastCtrl = c2
		case 'Q':
			x1, y1, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			c1 := pt{base.x + x1, base.y + y1}
			cur = pt{base.x + x, base.y + y}
			p.QuadraticTo(c1.x, c1.y, cur.x, cur.y)
			lastCtrl = c1
		case 'T':
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			c1 := reflect(cur, lastCtrl, lastCmd, 'Q')
			cur = pt{base.x + x, base.y + y}
			p.QuadraticTo(c1.x, c1.y, cur.x, cur.y)
			lastCtrl = c1
		case 'A':
			rx, err := s.number()
			if err != nil {
				return nil, err
			}
			ry, err := s.number()
			if err != nil {
				return nil, err
			}
			rot, err := s.number()
			if err != nil {
				return nil, err
			}
			largeArc, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			x, y, err := s.twoNumbers()
			if err != nil {
				return nil, err
			}
			end := pt{base.x + x, base.y + y}
			arcToBeziers(p, cur, end, rx, ry, rot, largeArc, sweep)
			cur = end
		case 'Z':
			p.Close()
			cur = subStart
		default:
			return nil, fmt.Errorf("path data: unsupported command %q", cmd)
		}

		lastCmd = upper(cmd)
	}

	return p, nil
}

type pt struct{ x, y float64 }

// reflect computes the reflected control point for S/T smooth commands.
// The reflection only applies when the previous command was of the same
// curve family; otherwise the current point is used.
func reflect(cur, lastCtrl pt, lastCmd, family byte) pt {
	if lastCmd != family {
		return cur
	}
	return pt{2*cur.x - lastCtrl.x, 2*cur.y - lastCtrl.y}
}

func isCommand(c byte) bool {
	switch upper(c) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// pathScanner tokenizes path data: commands, numbers, and flags separated
// by whitespace and commas.
type pathScanner struct {
	data string
	pos  int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.data) }

func (s *pathScanner) peek() byte { return s.data[s.pos] }

func (s *pathScanner) next() byte {
	c := s.data[s.pos]
	s.pos++
	return c
}

func (s *pathScanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// number scans one floating point number, including exponents and the
// compact "-1.5-2" form where a minus sign starts the next number.
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	digits := false
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c >= '0' && c <= '9' {
			digits = true
			s.pos++
		} else if c == '.' {
			s.pos++
		} else if (c == 'e' || c == 'E') && digits {
			s.pos++
			if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
				s.pos++
			}
		} else {
			break
		}
	}
	if !digits {
		return 0, fmt.Errorf("path data: expected number at %d", start)
	}
	var v float64
	if _, err := fmt.Sscanf(s.data[start:s.pos], "%g", &v); err != nil {
		return 0, fmt.Errorf("path data: bad number %q: %w", s.data[start:s.pos], err)
	}
	return v, nil
}

func (s *pathScanner) twoNumbers() (float64, float64, error) {
	a, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	b, err := s.number()
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// flag scans a single 0/1 arc flag, which may be run together with the
// following number ("1 1 0 01 10,20").
func (s *pathScanner) flag() (bool, error) {
	s.skipSeparators()
	if s.done() {
		return false, fmt.Errorf("path data: expected flag at %d", s.pos)
	}
	switch s.next() {
	case '0':
		return false, nil
	case '1':
		return true, nil
	default:
		return false, fmt.Errorf("path data: bad flag at %d", s.pos-1)
	}
}

// arcToBeziers converts an SVG elliptical arc to cubic Bezier segments
// using the endpoint-to-center parameterization from the SVG spec.
func arcToBeziers(p *Path, from, to pt, rx, ry, rotDeg float64, largeArc, sweep bool) {
	if rx == 0 || ry == 0 {
		p.LineTo(to.x, to.y)
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)

	phi := rotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Step 1: compute (x1', y1').
	dx2 := (from.x - to.x) / 2
	dy2 := (from.y - to.y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: compute (cx', cy').
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Step 3: compute center and angles.
	cx := cosPhi*cxp - sinPhi*cyp + (from.x+to.x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.y+to.y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := theta2 - theta1
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	// Split into segments of at most 90 degrees.
	segments := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if segments == 0 {
		p.LineTo(to.x, to.y)
		return
	}
	step := delta / float64(segments)

	arcPoint := func(theta float64) (pt, pt) {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		pos := pt{
			cx + rx*cosT*cosPhi - ry*sinT*sinPhi,
			cy + rx*cosT*sinPhi + ry*sinT*cosPhi,
		}
		deriv := pt{
			-rx*sinT*cosPhi - ry*cosT*sinPhi,
			-rx*sinT*sinPhi + ry*cosT*cosPhi,
		}
		return pos, deriv
	}

	// Cubic approximation factor for one arc segment.
	alpha := math.Sin(step) * (math.Sqrt(4+3*math.Pow(math.Tan(step/2), 2)) - 1) / 3

	theta := theta1
	_, d0 := arcPoint(theta)
	for i := 0; i < segments; i++ {
		thetaNext := theta + step
		pos1, d1 := arcPoint(thetaNext)
		c1 := pt{p.current.X + alpha*d0.x, p.current.Y + alpha*d0.y}
		c2 := pt{pos1.x - alpha*d1.x, pos1.y - alpha*d1.y}
		p.CubicTo(c1.x, c1.y, c2.x, c2.y, pos1.x, pos1.y)
		theta = thetaNext
		d0 = d1
	}
}
