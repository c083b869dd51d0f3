// Package gfxtest provides in-memory fakes for the gfx device and surface
// so the shader builder and frame loop can be exercised without a window
// or a real graphics context.
package gfxtest

import (
	"errors"

	"github.com/kjkrol/gokgl/pkg/gfx"
)

// DrawCall records one DrawTriangles invocation.
type DrawCall struct {
	First int
	Count int
}

// VertexLayout records the last SetVertexLayout invocation.
type VertexLayout struct {
	Attrib      uint32
	Components  int
	StrideBytes int
	OffsetBytes int
}

// FakeDevice implements gfx.Device in memory. Failures are scripted through
// the Fail* fields; every mutating call is recorded so tests can assert on
// attach order, draw counts and released handles. Handles start at 1, so a
// zero handle is always invalid.
type FakeDevice struct {
	// FailCompile maps a shader kind to the info log reported for it.
	FailCompile map[gfx.ShaderKind]string
	// FailLink, when non-empty, makes LinkProgram report failure.
	FailLink string
	// FailValidate, when non-empty, makes ValidateProgram report failure.
	FailValidate string

	nextHandle  uint32
	buffers     map[gfx.Buffer][]float32
	shaderKinds map[gfx.Shader]gfx.ShaderKind
	programs    map[gfx.ProgramHandle]bool

	Attached      map[gfx.ProgramHandle][]gfx.Shader
	Compiled      []gfx.ShaderKind
	DrawCalls     []DrawCall
	Clears        [][4]float32
	Uniforms      map[int32][4]float32
	Layout        *VertexLayout
	ActiveProgram gfx.ProgramHandle
}

// NewDevice creates an empty fake device.
func NewDevice() *FakeDevice {
	return &FakeDevice{
		buffers:     make(map[gfx.Buffer][]float32),
		shaderKinds: make(map[gfx.Shader]gfx.ShaderKind),
		programs:    make(map[gfx.ProgramHandle]bool),
		Attached:    make(map[gfx.ProgramHandle][]gfx.Shader),
		Uniforms:    make(map[int32][4]float32),
	}
}

// LiveShaders returns the number of shader units not yet deleted.
func (d *FakeDevice) LiveShaders() int { return len(d.shaderKinds) }

// LivePrograms returns the number of programs not yet deleted.
func (d *FakeDevice) LivePrograms() int { return len(d.programs) }

// LiveBuffers returns the number of buffers not yet deleted.
func (d *FakeDevice) LiveBuffers() int { return len(d.buffers) }

func (d *FakeDevice) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *FakeDevice) Version() string { return "fake 1.0" }

func (d *FakeDevice) CreateBuffer(data []float32) (gfx.Buffer, error) {
	if len(data) == 0 {
		return 0, errors.New("gfxtest: empty buffer upload")
	}
	buf := gfx.Buffer(d.handle())
	stored := make([]float32, len(data))
	copy(stored, data)
	d.buffers[buf] = stored
	return buf, nil
}

func (d *FakeDevice) BufferData(buf gfx.Buffer) ([]float32, bool) {
	data, ok := d.buffers[buf]
	if !ok {
		return nil, false
	}
	out := make([]float32, len(data))
	copy(out, data)
	return out, true
}

func (d *FakeDevice) DeleteBuffer(buf gfx.Buffer) {
	delete(d.buffers, buf)
}

func (d *FakeDevice) SetVertexLayout(attrib uint32, components, strideBytes, offsetBytes int) {
	d.Layout = &VertexLayout{
		Attrib:      attrib,
		Components:  components,
		StrideBytes: strideBytes,
		OffsetBytes: offsetBytes,
	}
}

func (d *FakeDevice) CreateShader(kind gfx.ShaderKind) gfx.Shader {
	shader := gfx.Shader(d.handle())
	d.shaderKinds[shader] = kind
	return shader
}

func (d *FakeDevice) CompileShader(shader gfx.Shader, source string) gfx.InfoResult {
	kind := d.shaderKinds[shader]
	d.Compiled = append(d.Compiled, kind)
	if log, ok := d.FailCompile[kind]; ok {
		return gfx.InfoResult{Log: log}
	}
	return gfx.InfoResult{OK: true}
}

func (d *FakeDevice) DeleteShader(shader gfx.Shader) {
	delete(d.shaderKinds, shader)
}

func (d *FakeDevice) CreateProgram() gfx.ProgramHandle {
	program := gfx.ProgramHandle(d.handle())
	d.programs[program] = true
	return program
}

func (d *FakeDevice) AttachShader(program gfx.ProgramHandle, shader gfx.Shader) {
	d.Attached[program] = append(d.Attached[program], shader)
}

func (d *FakeDevice) LinkProgram(program gfx.ProgramHandle) gfx.InfoResult {
	if d.FailLink != "" {
		return gfx.InfoResult{Log: d.FailLink}
	}
	return gfx.InfoResult{OK: true}
}

func (d *FakeDevice) ValidateProgram(program gfx.ProgramHandle) gfx.InfoResult {
	if d.FailValidate != "" {
		return gfx.InfoResult{Log: d.FailValidate}
	}
	return gfx.InfoResult{OK: true}
}

func (d *FakeDevice) UseProgram(program gfx.ProgramHandle) {
	d.ActiveProgram = program
}

func (d *FakeDevice) DeleteProgram(program gfx.ProgramHandle) {
	delete(d.programs, program)
}

func (d *FakeDevice) UniformLocation(program gfx.ProgramHandle, name string) int32 {
	if !d.programs[program] {
		return -1
	}
	// Stable location derived from the name length; enough for tests.
	return int32(len(name))
}

func (d *FakeDevice) SetUniform4f(location int32, x, y, z, w float32) {
	d.Uniforms[location] = [4]float32{x, y, z, w}
}

func (d *FakeDevice) Clear(r, g, b, a float32) {
	d.Clears = append(d.Clears, [4]float32{r, g, b, a})
}

func (d *FakeDevice) DrawTriangles(first, count int) {
	d.DrawCalls = append(d.DrawCalls, DrawCall{First: first, Count: count})
}
