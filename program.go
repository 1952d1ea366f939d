package swgpu

// program holds a shader program's callbacks, its varying-type table, and
// its uniform block.
type program struct {
	vs VertexShader
	fs FragmentShader
	// varyings[i] describes the shape the vertex shader writes to
	// OutVertex.Attributes[i] and that the fragment shader reads from
	// InFragment.Attributes[i]. AttrEmpty means slot i carries nothing.
	varyings [MaxAttr]AttributeType
	uniforms Uniforms
}

func newProgram() *program {
	return &program{}
}
