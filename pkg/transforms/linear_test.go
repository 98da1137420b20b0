package transforms

import (
	"math"
	"testing"

	"github.com/willbeason/snowflake/pkg/geometry"
)

const tol = 1e-9

func TestRotation(t *testing.T) {
	tests := []struct {
		name    string
		center  geometry.XY
		degrees float64
		in      geometry.XY
		want    geometry.XY
	}{
		{"quarter about origin", geometry.XY{}, 90, geometry.XY{X: 1}, geometry.XY{Y: 1}},
		{"half about point", geometry.XY{X: 1, Y: 1}, 180, geometry.XY{X: 2, Y: 1}, geometry.XY{X: 0, Y: 1}},
		{"center is fixed", geometry.XY{X: 3, Y: -2}, 33, geometry.XY{X: 3, Y: -2}, geometry.XY{X: 3, Y: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rotation(tt.center, tt.degrees).Apply(tt.in)
			if !got.ApproxEqual(tt.want, tol) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestThen(t *testing.T) {
	move := Translation(geometry.XY{X: 2})
	turn := Rotation(geometry.XY{}, 90)
	p := geometry.XY{X: 1, Y: 0}

	got := move.Then(turn).Apply(p)
	want := turn.Apply(move.Apply(p))
	if !got.ApproxEqual(want, tol) || !got.ApproxEqual(geometry.XY{Y: 3}, tol) {
		t.Errorf("Then = %v, want %v", got, want)
	}

	chained := Chain{move, turn}.Apply(p)
	if !chained.ApproxEqual(want, tol) {
		t.Errorf("Chain = %v, want %v", chained, want)
	}
}

func TestFit(t *testing.T) {
	lo, hi := geometry.XY{X: -10, Y: -5}, geometry.XY{X: 10, Y: 5}
	fit := Fit(lo, hi, 200, 200, 20)

	if got := fit.Scale(); math.Abs(got-8) > tol {
		t.Errorf("Scale() = %v, want 8", got)
	}
	if got := fit.Apply(geometry.XY{}); !got.ApproxEqual(geometry.XY{X: 100, Y: 100}, tol) {
		t.Errorf("center maps to %v, want (100, 100)", got)
	}
	if got := fit.Apply(lo); !got.ApproxEqual(geometry.XY{X: 20, Y: 60}, tol) {
		t.Errorf("lo maps to %v, want (20, 60)", got)
	}
}

func TestFitDegenerate(t *testing.T) {
	p := geometry.XY{X: 4, Y: 4}
	fit := Fit(p, p, 10, 20, 1)
	if fit.Scale() != 1 {
		t.Errorf("Scale() = %v, want 1", fit.Scale())
	}
	if got := fit.Apply(p); !got.ApproxEqual(geometry.XY{X: 5, Y: 10}, tol) {
		t.Errorf("point maps to %v, want (5, 10)", got)
	}
}

func TestApplyAll(t *testing.T) {
	got := ApplyAll(Identity, []geometry.XY{{X: 1, Y: 2}, {X: 3, Y: 4}})
	if len(got) != 2 || got[1] != (geometry.XY{X: 3, Y: 4}) {
		t.Errorf("ApplyAll(Identity) = %v", got)
	}
}
