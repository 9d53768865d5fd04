package linview

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApproxEqual(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestApplyMatchesScalarArithmetic(t *testing.T) {
	tests := []struct {
		name string
		m    Mat2
		v    Vec2
	}{
		{"identity", Identity(), Vec2{X: 3, Y: -4}},
		{"shear", Mat2{A: 1, B: 1, C: 0, D: 1}, Vec2{X: 2, Y: 5}},
		{"rotation", Mat2{A: 0, B: -1, C: 1, D: 0}, Vec2{X: 1, Y: 0}},
		{"negative", Mat2{A: -2, B: 0.5, C: 3, D: -1.5}, Vec2{X: -7, Y: 2.5}},
		{"zero", Mat2{}, Vec2{X: 9, Y: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Apply(tt.v)
			want := Vec2{
				X: tt.m.A*tt.v.X + tt.m.B*tt.v.Y,
				Y: tt.m.C*tt.v.X + tt.m.D*tt.v.Y,
			}
			if !vecApproxEqual(got, want, epsilon) {
				t.Errorf("Apply(%v) = %v, want %v", tt.v, got, want)
			}
		})
	}
}

func TestDetIdentity(t *testing.T) {
	if d := Identity().Det(); !approxEqual(d, 1, epsilon) {
		t.Errorf("Det(identity) = %f, want 1", d)
	}
}

func TestDetMatchesPresetDescriptions(t *testing.T) {
	// Every built-in preset states its determinant in the description.
	wants := map[string]float64{
		"identity":  1,
		"rotate90":  1,
		"shear":     1,
		"scale":     4,
		"reflect-x": -1,
		"swap":      -1,
		"project-x": 0,
	}
	for id, want := range wants {
		p, ok := LookupPreset(id)
		if !ok {
			t.Fatalf("preset %q not found", id)
		}
		if d := p.Matrix.Det(); !approxEqual(d, want, epsilon) {
			t.Errorf("Det(%s) = %f, want %f", id, d, want)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	m := Mat2{A: 2, B: 1, C: -1, D: 3}
	points := []Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: -3, Y: 2.5}, {X: 0.25, Y: -8}}
	for _, p := range points {
		if got := Interpolate(p, m, 0); !vecApproxEqual(got, p, epsilon) {
			t.Errorf("Interpolate(%v, m, 0) = %v, want %v", p, got, p)
		}
		if got, want := Interpolate(p, m, 1), m.Apply(p); !vecApproxEqual(got, want, epsilon) {
			t.Errorf("Interpolate(%v, m, 1) = %v, want %v", p, got, want)
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	m := Mat2{A: 3, B: 0, C: 0, D: 3}
	got := Interpolate(Vec2{X: 1, Y: 1}, m, 0.5)
	want := Vec2{X: 2, Y: 2}
	if !vecApproxEqual(got, want, epsilon) {
		t.Errorf("Interpolate midpoint = %v, want %v", got, want)
	}
}

func TestAxisSwapScenario(t *testing.T) {
	// Axis swap applied to the probe (2, 3): image (3, 2), det -1
	// (orientation flip, no area change).
	m := Mat2{A: 0, B: 1, C: 1, D: 0}
	got := m.Apply(Vec2{X: 2, Y: 3})
	if !vecApproxEqual(got, Vec2{X: 3, Y: 2}, epsilon) {
		t.Errorf("swap(2,3) = %v, want (3,2)", got)
	}
	if d := m.Det(); !approxEqual(d, -1, epsilon) {
		t.Errorf("Det(swap) = %f, want -1", d)
	}
	if !m.Invertible() {
		t.Error("swap reported non-invertible")
	}
}

func TestProjectionScenario(t *testing.T) {
	// Projection onto the x-axis applied to (5, 7): image (5, 0), det 0,
	// flagged non-invertible.
	m := Mat2{A: 1, B: 0, C: 0, D: 0}
	got := m.Apply(Vec2{X: 5, Y: 7})
	if !vecApproxEqual(got, Vec2{X: 5, Y: 0}, epsilon) {
		t.Errorf("project(5,7) = %v, want (5,0)", got)
	}
	if d := m.Det(); !approxEqual(d, 0, epsilon) {
		t.Errorf("Det(projection) = %f, want 0", d)
	}
	if m.Invertible() {
		t.Error("projection reported invertible")
	}
}

func TestInvertibleNaN(t *testing.T) {
	m := Mat2{A: math.NaN(), B: 0, C: 0, D: 1}
	if m.Invertible() {
		t.Error("NaN matrix reported invertible")
	}
}
