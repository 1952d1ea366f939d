package swgpu

import (
	"testing"

	"github.com/softgpu/swgpu/internal/vmath"
)

func TestQuantizeChannel(t *testing.T) {
	tests := []struct {
		name   string
		in     float32
		expect uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"below zero clamps", -0.5, 0},
		{"above one clamps", 1.5, 255},
		{"half rounds up", 0.5, 128},
		{"near-one rounds to max", 0.999, 255},
		{"small positive", 1.0 / 255, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quantizeChannel(tt.in)
			if got != tt.expect {
				t.Errorf("quantizeChannel(%v) = %d, want %d", tt.in, got, tt.expect)
			}
		})
	}
}

func TestQuantizeColor(t *testing.T) {
	got := quantizeColor(vmath.V4(1, 0, 0, 1))
	want := [4]byte{255, 0, 0, 255}
	if got != want {
		t.Errorf("quantizeColor(red) = %v, want %v", got, want)
	}
}
