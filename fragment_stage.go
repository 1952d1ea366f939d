package swgpu

// runFragmentStage invokes the fragment shader once per incoming fragment
// and writes its color and the fragment's interpolated depth to the
// framebuffer at the fragment's pixel, unconditionally (no depth test —
// see framebuffer.writePixel).
func runFragmentStage(fb *framebuffer, prg *program, frags []InFragment) {
	for _, f := range frags {
		x := int(f.FragCoord.X)
		y := int(f.FragCoord.Y)
		if !fb.inBounds(x, y) {
			continue
		}

		var out OutFragment
		prg.fs(&out, &f, &prg.uniforms)

		fb.writePixel(uint32(x), uint32(y), out.Color, f.FragCoord.Z)
	}
}
