package swgpu

import "github.com/softgpu/swgpu/internal/vmath"

// Device is the entry point to the draw pipeline: a bind-then-draw state
// machine owning buffer, vertex-puller, and program registries plus a
// single framebuffer. A Device is not safe for concurrent use — callers
// issuing commands from multiple goroutines must serialize them
// externally.
type Device struct {
	buffers  *handleTable[buffer]
	pullers  *handleTable[puller]
	programs *handleTable[program]

	boundPuller   Handle
	activeProgram Handle

	framebuffer *framebuffer
}

// NewDevice creates a Device with empty registries and no framebuffer.
// Drawing before CreateFramebuffer, BindVertexPuller, and UseProgram have
// all been called is a no-op.
func NewDevice() *Device {
	return &Device{
		buffers:  newHandleTable[buffer](),
		pullers:  newHandleTable[puller](),
		programs: newHandleTable[program](),
	}
}

// -- Buffers --

// CreateBuffer allocates a zero-filled buffer of size bytes and returns its
// handle.
func (d *Device) CreateBuffer(size uint64) Handle {
	h := d.buffers.create(newBuffer(size))
	Logger().Debug("buffer created", "handle", h, "size", size)
	return h
}

// DeleteBuffer releases handle's buffer. A no-op if handle is not a live
// buffer.
func (d *Device) DeleteBuffer(handle Handle) {
	d.buffers.delete(handle)
	Logger().Debug("buffer deleted", "handle", handle)
}

// IsBuffer reports whether handle currently refers to a live buffer.
func (d *Device) IsBuffer(handle Handle) bool {
	return d.buffers.isLive(handle)
}

// SetBufferData copies data into handle's buffer starting at offset,
// clamped to the buffer's extent. A no-op if handle is not a live buffer.
func (d *Device) SetBufferData(handle Handle, offset uint64, data []byte) {
	b := d.buffers.get(handle)
	if b == nil {
		Logger().Warn("SetBufferData on unknown handle", "handle", handle)
		return
	}
	b.setData(offset, data)
}

// GetBufferData copies len(dst) bytes from handle's buffer starting at
// offset into dst, clamped to the buffer's extent. A no-op if handle is not
// a live buffer.
func (d *Device) GetBufferData(handle Handle, offset uint64, dst []byte) {
	b := d.buffers.get(handle)
	if b == nil {
		Logger().Warn("GetBufferData on unknown handle", "handle", handle)
		return
	}
	b.getData(offset, dst)
}

// -- Vertex pullers --

// CreateVertexPuller allocates a vertex puller with all heads disabled and
// indexing off, and returns its handle.
func (d *Device) CreateVertexPuller() Handle {
	h := d.pullers.create(newPuller())
	Logger().Debug("vertex puller created", "handle", h)
	return h
}

// DeleteVertexPuller releases handle's vertex puller. A no-op if handle is
// not a live puller.
func (d *Device) DeleteVertexPuller(handle Handle) {
	d.pullers.delete(handle)
	if d.boundPuller == handle {
		d.boundPuller = EmptyHandle
	}
	Logger().Debug("vertex puller deleted", "handle", handle)
}

// IsVertexPuller reports whether handle currently refers to a live vertex
// puller.
func (d *Device) IsVertexPuller(handle Handle) bool {
	return d.pullers.isLive(handle)
}

// SetVertexPullerHead configures head headIdx of the vertex puller at
// handle to read typ-shaped values from bufferHandle at the given stride
// and offset. A no-op if handle is not live, headIdx is out of range, or
// typ is AttrEmpty.
func (d *Device) SetVertexPullerHead(handle Handle, headIdx uint32, typ AttributeType, stride, offset uint64, bufferHandle Handle) {
	p := d.pullers.get(handle)
	if p == nil || headIdx >= MaxAttr || typ == AttrEmpty {
		return
	}
	p.heads[headIdx] = head{typ: typ, stride: stride, offset: offset, buffer: bufferHandle, enabled: p.heads[headIdx].enabled}
}

// EnableVertexPullerHead turns head headIdx on. A no-op if handle is not
// live or headIdx is out of range.
func (d *Device) EnableVertexPullerHead(handle Handle, headIdx uint32) {
	p := d.pullers.get(handle)
	if p == nil || headIdx >= MaxAttr {
		return
	}
	p.heads[headIdx].enabled = true
}

// DisableVertexPullerHead turns head headIdx off. A no-op if handle is not
// live or headIdx is out of range.
func (d *Device) DisableVertexPullerHead(handle Handle, headIdx uint32) {
	p := d.pullers.get(handle)
	if p == nil || headIdx >= MaxAttr {
		return
	}
	p.heads[headIdx].enabled = false
}

// SetVertexPullerIndexing enables indirection through an index buffer of
// the given type for the vertex puller at handle. A no-op if handle is not
// live.
func (d *Device) SetVertexPullerIndexing(handle Handle, typ IndexType, bufferHandle Handle) {
	p := d.pullers.get(handle)
	if p == nil {
		return
	}
	p.indexing = indexing{enabled: true, typ: typ, buffer: bufferHandle}
}

// UnsetVertexPullerIndexing disables indexing for the vertex puller at
// handle, reverting to direct k-th-vertex addressing. A no-op if handle is
// not live.
func (d *Device) UnsetVertexPullerIndexing(handle Handle) {
	p := d.pullers.get(handle)
	if p == nil {
		return
	}
	p.indexing = indexing{}
}

// BindVertexPuller makes handle the vertex puller DrawTriangles reads from.
// A no-op if handle is not a live puller (the previous binding, if any, is
// left untouched).
func (d *Device) BindVertexPuller(handle Handle) {
	if !d.pullers.isLive(handle) {
		return
	}
	d.boundPuller = handle
}

// UnbindVertexPuller clears the current vertex puller binding.
func (d *Device) UnbindVertexPuller() {
	d.boundPuller = EmptyHandle
}

// -- Programs --

// CreateProgram allocates a program with no attached shaders and returns
// its handle.
func (d *Device) CreateProgram() Handle {
	h := d.programs.create(newProgram())
	Logger().Debug("program created", "handle", h)
	return h
}

// DeleteProgram releases handle's program. A no-op if handle is not a live
// program.
func (d *Device) DeleteProgram(handle Handle) {
	d.programs.delete(handle)
	if d.activeProgram == handle {
		d.activeProgram = EmptyHandle
	}
	Logger().Debug("program deleted", "handle", handle)
}

// IsProgram reports whether handle currently refers to a live program.
func (d *Device) IsProgram(handle Handle) bool {
	return d.programs.isLive(handle)
}

// AttachShaders sets handle's vertex and fragment shader callbacks. A no-op
// if handle is not a live program.
func (d *Device) AttachShaders(handle Handle, vs VertexShader, fs FragmentShader) {
	p := d.programs.get(handle)
	if p == nil {
		return
	}
	p.vs = vs
	p.fs = fs
}

// SetVS2FSType declares the shape of varying slot slot as passed from the
// vertex shader to the fragment shader for handle's program. A no-op if
// handle is not live or slot is out of range.
func (d *Device) SetVS2FSType(handle Handle, slot uint32, typ AttributeType) {
	p := d.programs.get(handle)
	if p == nil || slot >= MaxAttr {
		return
	}
	p.varyings[slot] = typ
}

// UseProgram makes handle the active program DrawTriangles shades with. A
// no-op if handle is not a live program.
func (d *Device) UseProgram(handle Handle) {
	if !d.programs.isLive(handle) {
		return
	}
	d.activeProgram = handle
}

// ProgramUniform1f sets a scalar uniform on handle's program. A no-op if
// handle is not live.
func (d *Device) ProgramUniform1f(handle Handle, id uint32, v float32) {
	if p := d.programs.get(handle); p != nil {
		p.uniforms.set(id, uniformSlot{kind: uniformKindFloat, vec: vmath.V4(v, 0, 0, 0)})
	}
}

// ProgramUniform2f sets a Vec2 uniform on handle's program. A no-op if
// handle is not live.
func (d *Device) ProgramUniform2f(handle Handle, id uint32, x, y float32) {
	if p := d.programs.get(handle); p != nil {
		p.uniforms.set(id, uniformSlot{kind: uniformKindVec2, vec: vmath.V4(x, y, 0, 0)})
	}
}

// ProgramUniform3f sets a Vec3 uniform on handle's program. A no-op if
// handle is not live.
func (d *Device) ProgramUniform3f(handle Handle, id uint32, x, y, z float32) {
	if p := d.programs.get(handle); p != nil {
		p.uniforms.set(id, uniformSlot{kind: uniformKindVec3, vec: vmath.V4(x, y, z, 0)})
	}
}

// ProgramUniform4f sets a Vec4 uniform on handle's program. A no-op if
// handle is not live.
func (d *Device) ProgramUniform4f(handle Handle, id uint32, x, y, z, w float32) {
	if p := d.programs.get(handle); p != nil {
		p.uniforms.set(id, uniformSlot{kind: uniformKindVec4, vec: vmath.V4(x, y, z, w)})
	}
}

// ProgramUniformMatrix4f sets a 4x4 matrix uniform on handle's program. A
// no-op if handle is not live.
func (d *Device) ProgramUniformMatrix4f(handle Handle, id uint32, m vmath.Mat4) {
	if p := d.programs.get(handle); p != nil {
		p.uniforms.set(id, uniformSlot{kind: uniformKindMat4, mat: m})
	}
}

// -- Framebuffer --

// CreateFramebuffer allocates the device's single framebuffer at the given
// size, replacing any previous one.
func (d *Device) CreateFramebuffer(width, height uint32) {
	d.framebuffer = newFramebuffer(width, height)
	Logger().Debug("framebuffer created", "width", width, "height", height)
}

// DeleteFramebuffer discards the device's framebuffer. A subsequent
// DrawTriangles becomes a no-op until a new one is created.
func (d *Device) DeleteFramebuffer() {
	d.framebuffer = nil
	Logger().Debug("framebuffer deleted")
}

// ResizeFramebuffer resizes the device's framebuffer, discarding its
// contents. A no-op if no framebuffer exists.
func (d *Device) ResizeFramebuffer(width, height uint32) {
	if d.framebuffer == nil {
		return
	}
	d.framebuffer.resize(width, height)
	Logger().Debug("framebuffer resized", "width", width, "height", height)
}

// GetFramebufferWidth returns the framebuffer's width, or 0 if none exists.
func (d *Device) GetFramebufferWidth() uint32 {
	if d.framebuffer == nil {
		return 0
	}
	return d.framebuffer.width
}

// GetFramebufferHeight returns the framebuffer's height, or 0 if none
// exists.
func (d *Device) GetFramebufferHeight() uint32 {
	if d.framebuffer == nil {
		return 0
	}
	return d.framebuffer.height
}

// GetFramebufferColor returns a copy of the framebuffer's RGBA8 color
// plane, or nil if no framebuffer exists.
func (d *Device) GetFramebufferColor() []byte {
	if d.framebuffer == nil {
		return nil
	}
	out := make([]byte, len(d.framebuffer.color))
	copy(out, d.framebuffer.color)
	return out
}

// GetFramebufferDepth returns a copy of the framebuffer's depth plane, or
// nil if no framebuffer exists.
func (d *Device) GetFramebufferDepth() []float32 {
	if d.framebuffer == nil {
		return nil
	}
	out := make([]float32, len(d.framebuffer.depth))
	copy(out, d.framebuffer.depth)
	return out
}

// Clear fills the framebuffer's color plane with (r,g,b,a) and its depth
// plane with the sentinel clear depth. A no-op if no framebuffer exists.
func (d *Device) Clear(r, g, b, a float32) {
	if d.framebuffer == nil {
		return
	}
	d.framebuffer.clear(r, g, b, a)
}

// -- Drawing --

// DrawTriangles runs the full pipeline — vertex pulling and shading,
// near-plane clipping, perspective division and viewport transform,
// rasterization, and fragment shading — over vertexCount/3 triangles read
// from the currently bound vertex puller, using the currently active
// program.
//
// DrawTriangles is a silent no-op if: vertexCount is not a positive
// multiple of 3, no vertex puller is bound, no program is active, the
// active program has no attached shaders, or no framebuffer exists.
func (d *Device) DrawTriangles(vertexCount uint32) {
	if vertexCount == 0 || vertexCount%3 != 0 {
		return
	}
	if d.framebuffer == nil {
		return
	}
	pull := d.pullers.get(d.boundPuller)
	if pull == nil {
		return
	}
	prg := d.programs.get(d.activeProgram)
	if prg == nil || prg.vs == nil || prg.fs == nil {
		return
	}

	triangleCount := vertexCount / 3
	tris := runVertexStage(d, pull, prg, triangleCount)
	tris = clipAssemblies(tris, &prg.varyings)
	tris = projectAssemblies(tris, d.framebuffer.width, d.framebuffer.height)
	frags := rasterizeAssemblies(tris, &prg.varyings, d.framebuffer.width, d.framebuffer.height)
	runFragmentStage(d.framebuffer, prg, frags)
}
