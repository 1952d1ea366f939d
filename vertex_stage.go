package swgpu

// triangleAssembly holds the three shaded vertices of one primitive.
type triangleAssembly struct {
	v [3]OutVertex
}

// runVertexStage pulls and shades N = 3*triangleCount vertices in order
// and groups them into triangles.
func runVertexStage(dev *Device, pull *puller, prg *program, triangleCount uint32) []triangleAssembly {
	out := make([]triangleAssembly, triangleCount)
	for t := uint32(0); t < triangleCount; t++ {
		var a triangleAssembly
		for i := uint32(0); i < 3; i++ {
			in := pull.pull(dev, 3*t+i)
			var ov OutVertex
			prg.vs(&ov, &in, &prg.uniforms)
			a.v[i] = ov
		}
		out[t] = a
	}
	return out
}
