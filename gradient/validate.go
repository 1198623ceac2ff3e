package gradient

import (
	"fmt"

	"github.com/slickdexic/layers"
)

// Result is the outcome of validating a gradient spec.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks a spec for editor use: a known type, at least two
// stops with in-range offsets, and type-specific fields within their
// documented ranges. All problems are collected, not just the first.
func Validate(spec *layers.GradientSpec) Result {
	var errs []string

	if spec == nil {
		return Result{Errors: []string{"gradient spec is nil"}}
	}

	switch spec.Type {
	case layers.GradientLinear, layers.GradientRadial:
	default:
		errs = append(errs, fmt.Sprintf("unknown gradient type %q", spec.Type))
	}

	if len(spec.Stops) < 2 {
		errs = append(errs, fmt.Sprintf("need at least 2 color stops, got %d", len(spec.Stops)))
	}
	for i, stop := range spec.Stops {
		if stop.Offset < 0 || stop.Offset > 1 {
			errs = append(errs, fmt.Sprintf("stop %d offset %v outside [0, 1]", i, stop.Offset))
		}
	}

	switch spec.Type {
	case layers.GradientLinear:
		if spec.Angle != nil && (*spec.Angle < 0 || *spec.Angle > 360) {
			errs = append(errs, fmt.Sprintf("angle %v outside [0, 360]", *spec.Angle))
		}
	case layers.GradientRadial:
		checkFraction := func(name string, v *float64) {
			if v != nil && (*v < 0 || *v > 1) {
				errs = append(errs, fmt.Sprintf("%s %v outside [0, 1]", name, *v))
			}
		}
		checkFraction("centerX", spec.CenterX)
		checkFraction("centerY", spec.CenterY)
		checkFraction("radius", spec.Radius)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
