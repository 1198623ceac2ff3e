package gradient

import (
	"strings"
	"testing"

	"github.com/slickdexic/layers"
)

func TestValidate(t *testing.T) {
	twoStops := []layers.GradientStop{
		{Offset: 0, Color: "#fff"},
		{Offset: 1, Color: "#000"},
	}

	tests := []struct {
		name     string
		spec     *layers.GradientSpec
		valid    bool
		mentions []string
	}{
		{
			name:     "nil spec",
			spec:     nil,
			valid:    false,
			mentions: []string{"nil"},
		},
		{
			name:  "valid linear",
			spec:  &layers.GradientSpec{Type: layers.GradientLinear, Stops: twoStops},
			valid: true,
		},
		{
			name: "valid radial",
			spec: &layers.GradientSpec{
				Type:    layers.GradientRadial,
				CenterX: layers.Float(0.5),
				Radius:  layers.Float(0.7),
				Stops:   twoStops,
			},
			valid: true,
		},
		{
			name:     "unknown type",
			spec:     &layers.GradientSpec{Type: "conic", Stops: twoStops},
			valid:    false,
			mentions: []string{"conic"},
		},
		{
			name:     "too few stops",
			spec:     &layers.GradientSpec{Type: layers.GradientLinear, Stops: twoStops[:1]},
			valid:    false,
			mentions: []string{"at least 2"},
		},
		{
			name: "stop offset out of range",
			spec: &layers.GradientSpec{
				Type: layers.GradientLinear,
				Stops: []layers.GradientStop{
					{Offset: -0.5, Color: "#fff"},
					{Offset: 1.2, Color: "#000"},
				},
			},
			valid:    false,
			mentions: []string{"stop 0", "stop 1"},
		},
		{
			name: "angle out of range",
			spec: &layers.GradientSpec{
				Type:  layers.GradientLinear,
				Angle: layers.Float(400),
				Stops: twoStops,
			},
			valid:    false,
			mentions: []string{"angle"},
		},
		{
			name: "radial fields out of range",
			spec: &layers.GradientSpec{
				Type:    layers.GradientRadial,
				CenterX: layers.Float(1.5),
				Radius:  layers.Float(-0.1),
				Stops:   twoStops,
			},
			valid:    false,
			mentions: []string{"centerX", "radius"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.spec)
			if got.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (errors: %v)", got.Valid, tt.valid, got.Errors)
			}
			for _, m := range tt.mentions {
				found := false
				for _, e := range got.Errors {
					if strings.Contains(e, m) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("errors %v should mention %q", got.Errors, m)
				}
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	spec := &layers.GradientSpec{
		Type:  "conic",
		Stops: []layers.GradientStop{{Offset: 2, Color: "#fff"}},
	}
	got := Validate(spec)
	if len(got.Errors) < 3 {
		t.Errorf("errors = %v, want type, stop count, and offset problems collected", got.Errors)
	}
}
