// Package swgpu implements a software graphics pipeline that reproduces the
// behavior of a fixed-function-plus-programmable-shader GPU entirely on the
// CPU.
//
// # Overview
//
// swgpu exposes an imperative, bind-then-draw state machine API modeled on
// the classic desktop GPU driver contract: a host program allocates
// device-side byte buffers, configures a vertex puller that fetches
// per-vertex attributes from those buffers, attaches vertex and fragment
// shader callbacks into a shader program, and rasterizes indexed or
// non-indexed triangle lists into a color+depth framebuffer.
//
// # Quick Start
//
//	dev := swgpu.NewDevice()
//	dev.CreateFramebuffer(4, 4)
//	dev.Clear(1, 0, 0, 1)
//
//	buf := dev.CreateBuffer(36)
//	dev.SetBufferData(buf, 0, positions)
//
//	vao := dev.CreateVertexPuller()
//	dev.SetVertexPullerHead(vao, 0, swgpu.AttrVec3, 12, 0, buf)
//	dev.EnableVertexPullerHead(vao, 0)
//	dev.BindVertexPuller(vao)
//
//	prg := dev.CreateProgram()
//	dev.AttachShaders(prg, myVertexShader, myFragmentShader)
//	dev.UseProgram(prg)
//
//	dev.DrawTriangles(3)
//
// # Pipeline
//
// Data flows vertex puller -> vertex shader -> triangle assembly ->
// near-plane clipper -> perspective division + viewport transform ->
// rasterizer -> fragment shader + framebuffer writeback. Every stage runs
// synchronously and in input order: within a draw call, triangles are
// processed in submission order, and within a triangle, fragments are
// generated in row-major scan order. There is no concurrency anywhere in
// the pipeline.
//
// # Non-goals
//
// This package does not implement multithreaded rasterization, tile-based
// binning, anti-aliasing, blending, stencil, scissoring, texturing,
// geometry/compute shader stages, MSAA, SIMD, or GPU offload. Shaders are
// opaque Go function values supplied by the host; swgpu never compiles or
// dispatches them anywhere but directly, on the calling goroutine.
//
// # Error handling
//
// There is no error return channel on the draw API. Invalid handles,
// out-of-range indices, and malformed draw calls are silent no-ops —
// misuse degrades visual output rather than producing diagnostics, matching
// the permissive contract of the GPU driver this package emulates. Call
// SetLogger to observe resource lifecycle events and buffer data calls on
// unknown handles; other no-op conditions are not logged.
package swgpu
