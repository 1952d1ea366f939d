package swgpu

import (
	"testing"

	"github.com/softgpu/swgpu/internal/vmath"
)

func TestPerspectiveDivide(t *testing.T) {
	v := OutVertex{Position: vmath.V4(2, 4, 6, 2)}
	got := perspectiveDivide(v)
	want := vmath.V4(1, 2, 3, 2)
	if got.Position != want {
		t.Fatalf("perspectiveDivide = %v, want %v", got.Position, want)
	}
}

func TestViewportTransform(t *testing.T) {
	v := OutVertex{Position: vmath.V4(-1, -1, 0, 1)}
	got := viewportTransform(v, 100, 50)
	if got.Position.X != 0 || got.Position.Y != 0 {
		t.Fatalf("viewportTransform(-1,-1) = (%v,%v), want (0,0)", got.Position.X, got.Position.Y)
	}

	v2 := OutVertex{Position: vmath.V4(1, 1, 0, 1)}
	got2 := viewportTransform(v2, 100, 50)
	if got2.Position.X != 99 || got2.Position.Y != 49 {
		t.Fatalf("viewportTransform(1,1) = (%v,%v), want (99,49)", got2.Position.X, got2.Position.Y)
	}
}

func TestProjectVertexOrder(t *testing.T) {
	v := OutVertex{Position: vmath.V4(2, 2, 2, 2)} // NDC after divide: (1,1,1)
	got := projectVertex(v, 11, 11)
	if got.Position.X != 10 || got.Position.Y != 10 {
		t.Fatalf("projectVertex = %v, want (10,10,...)", got.Position)
	}
	if got.Position.W != 2 {
		t.Fatalf("projectVertex.W = %v, want 2 (unchanged)", got.Position.W)
	}
}
