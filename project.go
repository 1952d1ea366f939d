package swgpu

// perspectiveDivide divides x, y and z by w, producing normalized device
// coordinates. w itself is left untouched in gl_Position so the
// rasterizer can still recover it for perspective-correct interpolation.
func perspectiveDivide(v OutVertex) OutVertex {
	w := v.Position.W
	v.Position.X /= w
	v.Position.Y /= w
	v.Position.Z /= w
	return v
}

// viewportTransform maps NDC x/y into pixel coordinates over a
// (width-1) x (height-1) grid:
//
//	x_pix = ((x_ndc+1)/2) * (width-1)
//	y_pix = ((y_ndc+1)/2) * (height-1)
//
// z and w are passed through unchanged.
func viewportTransform(v OutVertex, width, height uint32) OutVertex {
	v.Position.X = ((v.Position.X + 1) / 2) * float32(width-1)
	v.Position.Y = ((v.Position.Y + 1) / 2) * float32(height-1)
	return v
}

// projectVertex runs perspective division followed by the viewport
// transform, in that order.
func projectVertex(v OutVertex, width, height uint32) OutVertex {
	return viewportTransform(perspectiveDivide(v), width, height)
}

// projectAssemblies applies projectVertex to every vertex of every
// triangle, in place conceptually (returns a new slice).
func projectAssemblies(tris []triangleAssembly, width, height uint32) []triangleAssembly {
	out := make([]triangleAssembly, len(tris))
	for i, t := range tris {
		var pt triangleAssembly
		for j, v := range t.v {
			pt.v[j] = projectVertex(v, width, height)
		}
		out[i] = pt
	}
	return out
}

// recoverClipW returns the pre-division w that perspectiveDivide preserved
// on gl_Position.W. The rasterizer reads Position.W directly for
// perspective-correct interpolation and does not call this helper.
func recoverClipW(v OutVertex) float32 {
	return v.Position.W
}
