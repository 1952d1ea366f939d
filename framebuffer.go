package swgpu

import "github.com/softgpu/swgpu/internal/vmath"

// clearDepth is the depth value written by Clear (creation and resize
// leave the depth plane zeroed): strictly greater than the maximum post-perspective
// depth of 1.0, so an un-drawn pixel never passes a hypothetical "less"
// depth test against any real fragment.
const clearDepth float32 = 1.1

// framebuffer owns the color and depth planes of a draw target. Pixel
// (0,0) is bottom-left; both planes are row-major with x fastest.
type framebuffer struct {
	width, height uint32
	color         []byte    // width*height*4 bytes, RGBA8
	depth         []float32 // width*height entries
}

// newFramebuffer allocates both planes for the given size. A degenerate
// size (zero width or height) yields an empty framebuffer rather than
// erroring — CreateFramebuffer/ResizeFramebuffer have no error channel, so
// the device just treats it as having nothing to draw into.
func newFramebuffer(width, height uint32) *framebuffer {
	n := int(width) * int(height)
	return &framebuffer{
		width:  width,
		height: height,
		color:  make([]byte, n*4),
		depth:  make([]float32, n),
	}
}

func (fb *framebuffer) resize(width, height uint32) {
	n := int(width) * int(height)
	fb.width = width
	fb.height = height
	fb.color = make([]byte, n*4)
	fb.depth = make([]float32, n)
}

// clear fills the color plane with the quantized (r,g,b,a) and the depth
// plane with clearDepth.
func (fb *framebuffer) clear(r, g, b, a float32) {
	c := quantizeColor(vmath.V4(r, g, b, a))
	for i := 0; i < len(fb.color); i += 4 {
		fb.color[i+0] = c[0]
		fb.color[i+1] = c[1]
		fb.color[i+2] = c[2]
		fb.color[i+3] = c[3]
	}
	for i := range fb.depth {
		fb.depth[i] = clearDepth
	}
}

// index returns the row-major, x-fastest plane index for pixel (x,y).
func (fb *framebuffer) index(x, y uint32) int {
	return int(y)*int(fb.width) + int(x)
}

// inBounds reports whether (x,y) is a valid pixel coordinate.
func (fb *framebuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && uint32(x) < fb.width && uint32(y) < fb.height
}

// writePixel writes color and depth at (x,y) unconditionally — there is no
// depth test.
func (fb *framebuffer) writePixel(x, y uint32, color vmath.Vec4, depth float32) {
	c := quantizeColor(color)
	i := fb.index(x, y)
	fb.color[i*4+0] = c[0]
	fb.color[i*4+1] = c[1]
	fb.color[i*4+2] = c[2]
	fb.color[i*4+3] = c[3]
	fb.depth[i] = depth
}
