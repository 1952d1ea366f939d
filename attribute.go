package swgpu

import "github.com/softgpu/swgpu/internal/vmath"

// AttributeType identifies the shape of a per-vertex attribute or a
// varying. Index buffer entry widths use IndexType instead.
type AttributeType int

const (
	// AttrEmpty marks a head or varying slot as unused.
	AttrEmpty AttributeType = iota
	// AttrFloat is a single float32 lane.
	AttrFloat
	// AttrVec2 is a 2-float32 vector.
	AttrVec2
	// AttrVec3 is a 3-float32 vector.
	AttrVec3
	// AttrVec4 is a 4-float32 vector.
	AttrVec4
)

// Width returns the number of float32 lanes the type occupies (0 for
// AttrEmpty).
func (t AttributeType) Width() int {
	switch t {
	case AttrFloat:
		return 1
	case AttrVec2:
		return 2
	case AttrVec3:
		return 3
	case AttrVec4:
		return 4
	default:
		return 0
	}
}

// Size returns the byte size of the type (k*4 bytes for k lanes).
func (t AttributeType) Size() uint64 {
	return uint64(t.Width()) * 4
}

// MaxAttr is the number of attribute slots a puller head or a program's
// varying table can address.
const MaxAttr = 16

// AttributeValue is a tagged-shape numeric value: an attribute, a varying,
// or a vertex/fragment shader input/output lane. Only the lanes implied by
// the associated AttributeType (from the owning head or varying-type table)
// are meaningful; trailing lanes are always zero.
//
// Using one fixed-width carrier for every width avoids C-style union /
// memcpy punning while keeping attribute storage allocation-free.
type AttributeValue struct {
	v vmath.Vec4
}

// Float returns the value's first lane.
func (a AttributeValue) Float() float32 { return a.v.X }

// Vec2 returns the value's first two lanes.
func (a AttributeValue) Vec2() vmath.Vec2 { return vmath.V2(a.v.X, a.v.Y) }

// Vec3 returns the value's first three lanes.
func (a AttributeValue) Vec3() vmath.Vec3 { return vmath.V3(a.v.X, a.v.Y, a.v.Z) }

// Vec4 returns all four lanes.
func (a AttributeValue) Vec4() vmath.Vec4 { return a.v }

// AttrFromFloat wraps a scalar as an AttributeValue.
func AttrFromFloat(f float32) AttributeValue { return AttributeValue{v: vmath.V4(f, 0, 0, 0)} }

// AttrFromVec2 wraps a Vec2 as an AttributeValue.
func AttrFromVec2(v vmath.Vec2) AttributeValue { return AttributeValue{v: vmath.V4(v.X, v.Y, 0, 0)} }

// AttrFromVec3 wraps a Vec3 as an AttributeValue.
func AttrFromVec3(v vmath.Vec3) AttributeValue {
	return AttributeValue{v: vmath.V4(v.X, v.Y, v.Z, 0)}
}

// AttrFromVec4 wraps a Vec4 as an AttributeValue.
func AttrFromVec4(v vmath.Vec4) AttributeValue { return AttributeValue{v: v} }

// attrFromBytes decodes k little-endian float32 lanes (k = typ.Width())
// from raw, zero-filling missing input bytes rather than panicking —
// callers are expected to have already range-checked, but this stays safe
// even when they haven't.
func attrFromBytes(typ AttributeType, raw []byte) AttributeValue {
	var lanes [4]float32
	for i := 0; i < typ.Width(); i++ {
		off := i * 4
		if off+4 > len(raw) {
			break
		}
		lanes[i] = decodeFloat32(raw[off : off+4])
	}
	return AttributeValue{v: vmath.V4(lanes[0], lanes[1], lanes[2], lanes[3])}
}

// lerpAttr linearly interpolates two attribute values at parameter t. The
// unused trailing lanes interpolate too, but they are never read because
// the caller always consults the same varying-type table to decide how
// many lanes matter.
func lerpAttr(a, b AttributeValue, t float32) AttributeValue {
	return AttributeValue{v: a.v.Lerp(b.v, t)}
}
