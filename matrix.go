package linview

import "math"

// Mat2 is a 2×2 linear map. Column 1 is (A, C), column 2 is (B, D), so the
// images of the basis vectors (1,0) and (0,1) are the columns. Immutable
// value; edits replace the whole matrix.
type Mat2 struct {
	A, B, C, D float64
}

// Identity returns the identity map.
func Identity() Mat2 {
	return Mat2{A: 1, B: 0, C: 0, D: 1}
}

// Apply computes the image of v under the map:
//
//	x' = A·x + B·y
//	y' = C·x + D·y
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Det returns the determinant A·D − B·C.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// detEpsilon bounds how close to zero a determinant may be before the map is
// reported as non-invertible.
const detEpsilon = 1e-12

// Invertible reports whether the map has an inverse.
func (m Mat2) Invertible() bool {
	d := m.Det()
	return !math.IsNaN(d) && math.Abs(d) > detEpsilon
}

// Interpolate blends p with its image under m: (1−t)·p + t·m.Apply(p).
// t=0 yields p unchanged, t=1 yields the full transform. Used for both
// animated and static partial-transform rendering.
func Interpolate(p Vec2, m Mat2, t float64) Vec2 {
	tp := m.Apply(p)
	return Vec2{
		X: (1-t)*p.X + t*tp.X,
		Y: (1-t)*p.Y + t*tp.Y,
	}
}
