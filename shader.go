package swgpu

import "github.com/softgpu/swgpu/internal/vmath"

// InVertex is the per-vertex input fetched by the vertex puller and passed
// to the vertex shader.
type InVertex struct {
	VertexID   uint32
	Attributes [MaxAttr]AttributeValue
}

// OutVertex is the vertex shader's output: clip-space position plus
// varyings forwarded to the rasterizer.
type OutVertex struct {
	Position   vmath.Vec4
	Attributes [MaxAttr]AttributeValue
}

// InFragment is a rasterized fragment: its screen-space coordinate, the
// perspective-correct interpolated depth and clip-space w, and
// interpolated varyings.
type InFragment struct {
	// FragCoord holds (x+0.5, y+0.5, z, w) where x/y are pixel centers, z is
	// the interpolated depth, and w is the interpolated clip-space w.
	FragCoord  vmath.Vec4
	Attributes [MaxAttr]AttributeValue
}

// OutFragment is the fragment shader's output color.
type OutFragment struct {
	Color vmath.Vec4
}

// VertexShader transforms a fetched vertex into clip-space position plus
// varyings. Shaders are pure with respect to device state: they may only
// read in/uniforms and write out.
type VertexShader func(out *OutVertex, in *InVertex, uniforms *Uniforms)

// FragmentShader computes a fragment's output color from interpolated
// varyings. Shaders are pure with respect to device state.
type FragmentShader func(out *OutFragment, in *InFragment, uniforms *Uniforms)
