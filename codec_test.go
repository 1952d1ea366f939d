package swgpu

import "testing"

func TestDecodeFloat32(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want float32
	}{
		{"zero", []byte{0, 0, 0, 0}, 0},
		{"one", []byte{0, 0, 128, 63}, 1},
		{"negativeOne", []byte{0, 0, 128, 191}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := decodeFloat32(c.b); got != c.want {
				t.Errorf("decodeFloat32(%v) = %v, want %v", c.b, got, c.want)
			}
		})
	}
}

func TestDecodeUint(t *testing.T) {
	cases := []struct {
		name  string
		b     []byte
		width int
		want  uint32
	}{
		{"u8", []byte{200}, 1, 200},
		{"u16", []byte{0x34, 0x12}, 2, 0x1234},
		{"u32", []byte{0x78, 0x56, 0x34, 0x12}, 4, 0x12345678},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := decodeUint(c.b, c.width); got != c.want {
				t.Errorf("decodeUint(%v,%d) = %#x, want %#x", c.b, c.width, got, c.want)
			}
		})
	}
}
