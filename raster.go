package swgpu

import (
	"math"

	"github.com/softgpu/swgpu/internal/vmath"
)

// edgeFunction implements the standard 2D edge function used for both
// triangle traversal and barycentric weighting:
//
//	e(a, b, p) = (p.x-a.x)*(b.y-a.y) - (p.y-a.y)*(b.x-a.x)
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// boundingBox computes the integer pixel bounding box of a projected
// triangle, clamped to the framebuffer extent.
func boundingBox(v [3]OutVertex, width, height uint32) (minX, minY, maxX, maxY int) {
	minXf := v[0].Position.X
	minYf := v[0].Position.Y
	maxXf := v[0].Position.X
	maxYf := v[0].Position.Y
	for _, p := range v[1:] {
		minXf = min32(minXf, p.Position.X)
		minYf = min32(minYf, p.Position.Y)
		maxXf = max32(maxXf, p.Position.X)
		maxYf = max32(maxYf, p.Position.Y)
	}

	minX = int(math.Floor(float64(minXf)))
	minY = int(math.Floor(float64(minYf)))
	maxX = int(math.Floor(float64(maxXf)))
	maxY = int(math.Floor(float64(maxYf)))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > int(width)-1 {
		maxX = int(width) - 1
	}
	if maxY > int(height)-1 {
		maxY = int(height) - 1
	}
	return minX, minY, maxX, maxY
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// barycentric computes barycentric weights (l0, l1, l2) for point
// (px, py) against triangle v, each normalized by the triangle's signed
// double-area. A degenerate (zero-area) triangle yields ok=false so the
// caller can skip it entirely.
func barycentric(v [3]OutVertex, px, py float32) (l0, l1, l2 float32, ok bool) {
	a, b, c := v[0].Position, v[1].Position, v[2].Position
	area := edgeFunction(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return 0, 0, 0, false
	}
	w0 := edgeFunction(b.X, b.Y, c.X, c.Y, px, py)
	w1 := edgeFunction(c.X, c.Y, a.X, a.Y, px, py)
	w2 := edgeFunction(a.X, a.Y, b.X, b.Y, px, py)
	return w0 / area, w1 / area, w2 / area, true
}

// inTriangle applies the >=0 inclusion rule to the three edge function
// results for a given winding: a pixel is covered when all three signed
// areas share the sign of the triangle's own signed area (or are zero, so
// shared edges are inclusive on both sides).
func inTriangle(w0, w1, w2, area float32) bool {
	if area >= 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

// perspectiveCorrectInterpolate implements the perspective-correct
// barycentric blend:
//
//	v(x,y) = (sum lambda_i * v_i / w_i) / (sum lambda_i / w_i)
func perspectiveCorrectInterpolate(l [3]float32, invW [3]float32, values [3]vmath.Vec4) vmath.Vec4 {
	var num vmath.Vec4
	var den float32
	for i := 0; i < 3; i++ {
		weight := l[i] * invW[i]
		num = num.Add(values[i].Scale(weight))
		den += weight
	}
	if den == 0 {
		return vmath.Vec4{}
	}
	return num.Scale(1 / den)
}

// rasterizeTriangle walks the triangle's bounding box and emits one
// InFragment per covered pixel, with gl_FragCoord.z/w and every varying
// attribute perspective-correctly interpolated.
func rasterizeTriangle(tri triangleAssembly, varyings *[MaxAttr]AttributeType, width, height uint32) []InFragment {
	minX, minY, maxX, maxY := boundingBox(tri.v, width, height)
	if minX > maxX || minY > maxY {
		return nil
	}

	a, b, c := tri.v[0].Position, tri.v[1].Position, tri.v[2].Position
	area := edgeFunction(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if area == 0 {
		return nil
	}

	invW := [3]float32{1 / tri.v[0].Position.W, 1 / tri.v[1].Position.W, 1 / tri.v[2].Position.W}

	var frags []InFragment
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			w0 := edgeFunction(b.X, b.Y, c.X, c.Y, px, py)
			w1 := edgeFunction(c.X, c.Y, a.X, a.Y, px, py)
			w2 := edgeFunction(a.X, a.Y, b.X, b.Y, px, py)
			if !inTriangle(w0, w1, w2, area) {
				continue
			}

			l := [3]float32{w0 / area, w1 / area, w2 / area}

			zVals := [3]vmath.Vec4{
				vmath.V4(a.Z, 0, 0, 0),
				vmath.V4(b.Z, 0, 0, 0),
				vmath.V4(c.Z, 0, 0, 0),
			}
			zInterp := perspectiveCorrectInterpolate(l, invW, zVals).X

			wVals := [3]vmath.Vec4{
				vmath.V4(a.W, 0, 0, 0),
				vmath.V4(b.W, 0, 0, 0),
				vmath.V4(c.W, 0, 0, 0),
			}
			wInterp := perspectiveCorrectInterpolate(l, invW, wVals).X

			var frag InFragment
			frag.FragCoord = vmath.V4(px, py, zInterp, wInterp)

			for i, typ := range varyings {
				if typ == AttrEmpty {
					continue
				}
				values := [3]vmath.Vec4{
					tri.v[0].Attributes[i].v,
					tri.v[1].Attributes[i].v,
					tri.v[2].Attributes[i].v,
				}
				blended := perspectiveCorrectInterpolate(l, invW, values)
				frag.Attributes[i] = AttributeValue{v: blended}
			}

			frags = append(frags, frag)
		}
	}
	return frags
}

// rasterizeAssemblies runs rasterizeTriangle over every triangle and
// concatenates the resulting fragments.
func rasterizeAssemblies(tris []triangleAssembly, varyings *[MaxAttr]AttributeType, width, height uint32) []InFragment {
	var out []InFragment
	for _, t := range tris {
		out = append(out, rasterizeTriangle(t, varyings, width, height)...)
	}
	return out
}
