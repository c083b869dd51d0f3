package gfx

import "fmt"

// ShaderSource holds the source text for both units of a program.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// DefaultShaderSource returns a minimal passthrough pair: position flows
// through attribute slot 0 unchanged and the fragment color comes from the
// uColor uniform.
func DefaultShaderSource() ShaderSource {
	return ShaderSource{
		Vertex: `#version 330 core

layout(location = 0) in vec4 position;

void main()
{
    gl_Position = position;
}
`,
		Fragment: `#version 330 core

layout(location = 0) out vec4 color;

uniform vec4 uColor;

void main()
{
    color = uColor;
}
`,
	}
}

// CompileError reports a failed shader unit compilation together with the
// device info log.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Kind, e.Log)
}

// LinkError reports a failed program link together with the device info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// CompileUnit compiles a single shader unit on the device. On failure the
// partially created unit is released and a *CompileError carrying the
// device log is returned; a zero handle is never a valid result on success.
func CompileUnit(dev Device, kind ShaderKind, source string) (Shader, error) {
	shader := dev.CreateShader(kind)
	res := dev.CompileShader(shader, source)
	if !res.OK {
		Logger().Error("shader compile failed", "kind", kind.String(), "log", res.Log)
		dev.DeleteShader(shader)
		return 0, &CompileError{Kind: kind, Log: res.Log}
	}
	return shader, nil
}

// Program is a linked shader program bound to the device that built it.
// Validated records the device validate status; validation failure is
// advisory and does not prevent use.
type Program struct {
	dev       Device
	handle    ProgramHandle
	Validated bool
}

// BuildProgram compiles both units, links them into a new program and
// validates it. A unit that fails to compile is never attached: the first
// compile failure aborts the build and is returned to the caller. The unit
// handles are released once linking finished, the program owns them from
// then on.
func BuildProgram(dev Device, src ShaderSource) (*Program, error) {
	vs, err := CompileUnit(dev, VertexShader, src.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := CompileUnit(dev, FragmentShader, src.Fragment)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	link := dev.LinkProgram(program)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)
	if !link.OK {
		dev.DeleteProgram(program)
		return nil, &LinkError{Log: link.Log}
	}

	validate := dev.ValidateProgram(program)
	if !validate.OK {
		Logger().Warn("program validation failed", "log", validate.Log)
	}
	return &Program{dev: dev, handle: program, Validated: validate.OK}, nil
}

// Handle returns the device handle of the program.
func (p *Program) Handle() ProgramHandle {
	return p.handle
}

// Use binds the program as the active program for subsequent draws.
func (p *Program) Use() {
	p.dev.UseProgram(p.handle)
}

// UniformLocation resolves a uniform by name. Returns -1 for unknown names,
// mirroring the device convention.
func (p *Program) UniformLocation(name string) int32 {
	return p.dev.UniformLocation(p.handle, name)
}

// Delete releases the program. The Program must not be used afterwards.
func (p *Program) Delete() {
	if p == nil || p.handle == 0 {
		return
	}
	p.dev.DeleteProgram(p.handle)
	p.handle = 0
}
