package swgpu

import (
	"testing"

	"github.com/softgpu/swgpu/internal/vmath"
)

func TestUniformsSetAndGet(t *testing.T) {
	var u Uniforms
	u.set(0, uniformSlot{kind: uniformKindFloat, vec: vmath.V4(3, 0, 0, 0)})
	if got := u.Float1f(0); got != 3 {
		t.Errorf("Float1f = %v, want 3", got)
	}

	u.set(1, uniformSlot{kind: uniformKindVec3, vec: vmath.V4(1, 2, 3, 0)})
	if got := u.Vec3f(1); got != vmath.V3(1, 2, 3) {
		t.Errorf("Vec3f = %v, want (1,2,3)", got)
	}

	m := vmath.Mat4Identity()
	u.set(2, uniformSlot{kind: uniformKindMat4, mat: m})
	if got := u.Matrix4f(2); got != m {
		t.Errorf("Matrix4f = %v, want identity", got)
	}
}

func TestUniformsEmptySlotDefaults(t *testing.T) {
	var u Uniforms
	if got := u.Float1f(5); got != 0 {
		t.Errorf("Float1f on empty slot = %v, want 0", got)
	}
	if got := u.Matrix4f(5); got != vmath.Mat4Identity() {
		t.Errorf("Matrix4f on empty slot = %v, want identity", got)
	}
}

func TestUniformsWrongShapeDefaults(t *testing.T) {
	var u Uniforms
	u.set(0, uniformSlot{kind: uniformKindFloat, vec: vmath.V4(1, 0, 0, 0)})
	if got := u.Vec4f(0); got != (vmath.Vec4{}) {
		t.Errorf("Vec4f on float slot = %v, want zero value", got)
	}
}

func TestUniformsOutOfRangeIDIsNoop(t *testing.T) {
	var u Uniforms
	u.set(MaxUniforms, uniformSlot{kind: uniformKindFloat, vec: vmath.V4(1, 0, 0, 0)})
	if got := u.Float1f(MaxUniforms); got != 0 {
		t.Errorf("Float1f(out of range) = %v, want 0", got)
	}
}
