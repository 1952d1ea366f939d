package swgpu

import "github.com/softgpu/swgpu/internal/vmath"

// quantizeChannel converts a single color channel in [0,1] (unclamped
// inputs are allowed and clamped here) to its byte representation:
// byte = clamp(round(f*255), 0, 255), round(x) = floor(x+0.5).
func quantizeChannel(f float32) uint8 {
	scaled := float64(f) * 255
	rounded := vmath.Round(scaled)
	if rounded <= 0 {
		return 0
	}
	if rounded >= 255 {
		return 255
	}
	return uint8(rounded)
}

// quantizeColor converts a gl_FragColor-shaped vector to its RGBA8 byte
// encoding.
func quantizeColor(c vmath.Vec4) [4]byte {
	return [4]byte{
		quantizeChannel(c.X),
		quantizeChannel(c.Y),
		quantizeChannel(c.Z),
		quantizeChannel(c.W),
	}
}
