package gfx

// Buffer is an opaque device handle to an uploaded vertex buffer.
type Buffer uint32

// Shader is an opaque device handle to a single compiled shader unit.
type Shader uint32

// ProgramHandle is an opaque device handle to a linked shader program.
type ProgramHandle uint32

// ShaderKind selects the pipeline stage a shader unit targets.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// InfoResult carries the outcome of a compile, link or validate request
// together with the device-reported info log. The log is only meaningful
// when OK is false, though some drivers emit warnings on success too.
type InfoResult struct {
	OK  bool
	Log string
}

// Device is the stateful graphics-device collaborator made explicit.
// All buffer, shader and draw operations go through a Device value so that
// callers never depend on implicit global state and tests can substitute
// a fake (see pkg/gfx/gfxtest).
//
// A Device must be created after the window's rendering context is current;
// device registration and selection is handled by Register and Default.
type Device interface {
	// Version returns the device version string for diagnostics.
	Version() string

	// CreateBuffer uploads data into a new device-owned vertex buffer and
	// leaves it bound. The caller keeps only the returned handle.
	CreateBuffer(data []float32) (Buffer, error)
	// BufferData reads the contents of an uploaded buffer back from the
	// device. The second result is false when readback is unsupported or
	// the handle is unknown.
	BufferData(buf Buffer) ([]float32, bool)
	DeleteBuffer(buf Buffer)

	// SetVertexLayout describes the currently bound buffer to the device:
	// components floats per vertex at the given attribute slot, strideBytes
	// apart, starting offsetBytes into the buffer.
	SetVertexLayout(attrib uint32, components, strideBytes, offsetBytes int)

	CreateShader(kind ShaderKind) Shader
	// CompileShader submits source text for the unit and reports the
	// device compile status together with the info log.
	CompileShader(shader Shader, source string) InfoResult
	DeleteShader(shader Shader)

	CreateProgram() ProgramHandle
	AttachShader(program ProgramHandle, shader Shader)
	LinkProgram(program ProgramHandle) InfoResult
	ValidateProgram(program ProgramHandle) InfoResult
	UseProgram(program ProgramHandle)
	DeleteProgram(program ProgramHandle)

	UniformLocation(program ProgramHandle, name string) int32
	SetUniform4f(location int32, x, y, z, w float32)

	// Clear fills the color buffer with the given color.
	Clear(r, g, b, a float32)
	// DrawTriangles issues a single triangle-list draw call over count
	// vertices of the bound buffer starting at first.
	DrawTriangles(first, count int)
}
