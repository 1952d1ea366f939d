// Package vmath provides the fixed-width vector and matrix types used to
// represent shader attributes, uniforms, and clip-space geometry.
//
// The pipeline only ever needs vectors up to width 4 and a single 4x4
// matrix type, so rather than pull in a general-purpose linear algebra
// dependency this package hand-rolls exactly what the draw pipeline uses,
// the same way the pack's own from-scratch vector math (quarkgl) does.
package vmath

import "math"

// Vec2 is a 2-component float32 vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component float32 vector.
//
// Attribute and uniform values of narrower types store their live
// components in the leading lanes; trailing lanes are zero and unused.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 is a column-major 4x4 matrix: m[col*4+row].
type Mat4 [16]float32

// V2 constructs a Vec2.
func V2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// V3 constructs a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// V4 constructs a Vec4.
func V4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Add returns the component-wise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Lerp returns the linear interpolation between v and o at parameter t:
// v + (o-v)*t.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// Index returns the i-th component (0=X, 1=Y, 2=Z, 3=W).
func (v Vec4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		return v.W
	}
}

// LerpFloat32 linearly interpolates two scalars: a + (b-a)*t.
func LerpFloat32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MulVec4 returns m*v treating v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mul returns the matrix product m*o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = m[0*4+row]*o[col*4+0] +
				m[1*4+row]*o[col*4+1] +
				m[2*4+row]*o[col*4+2] +
				m[3*4+row]*o[col*4+3]
		}
	}
	return out
}

// Round implements the round-half-up convention used for color quantization:
// floor(x + 0.5). math.Round rounds halves away from zero, which agrees with
// floor(x+0.5) for all non-negative x. Color quantization rounds first and
// clamps to [0, 255] afterwards, so the two conventions can differ only for
// negative inputs, which both clamp to 0.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}
