package swgpu

import (
	"encoding/binary"
	"math"
)

// decodeFloat32 reads a little-endian IEEE-754 float32 from exactly 4
// bytes. Attribute sizes are always a multiple of 4 bytes; callers slice
// defensively before calling this.
func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// decodeUint reads an unsigned integer of the given byte width (1, 2, or 4)
// in little-endian order, used to decode index buffer entries.
func decodeUint(b []byte, width int) uint32 {
	switch width {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}
