// Package gldevice implements gfx.Device over OpenGL 3.3 core.
// Importing it registers the device under gfx.DeviceOpenGL.
package gldevice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/gokgl/pkg/gfx"
)

func init() {
	gfx.Register(gfx.DeviceOpenGL, New)
}

type device struct {
	vao uint32
}

// New loads the OpenGL function pointers for the current context and
// prepares the device for draws. A rendering context must be current on the
// calling thread.
func New() (gfx.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	d := &device{}
	// Core profile refuses vertex specification without a bound VAO.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	return d, nil
}

func (d *device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *device) CreateBuffer(data []float32) (gfx.Buffer, error) {
	if len(data) == 0 {
		return 0, errors.New("gldevice: empty buffer upload")
	}
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return gfx.Buffer(buf), nil
}

func (d *device) BufferData(buf gfx.Buffer) ([]float32, bool) {
	if buf == 0 {
		return nil, false
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	var size int32
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	if size <= 0 {
		return nil, false
	}
	out := make([]float32, size/4)
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, int(size), gl.Ptr(out))
	return out, true
}

func (d *device) DeleteBuffer(buf gfx.Buffer) {
	if buf == 0 {
		return
	}
	handle := uint32(buf)
	gl.DeleteBuffers(1, &handle)
}

func (d *device) SetVertexLayout(attrib uint32, components, strideBytes, offsetBytes int) {
	gl.EnableVertexAttribArray(attrib)
	gl.VertexAttribPointer(attrib, int32(components), gl.FLOAT, false, int32(strideBytes), gl.PtrOffset(offsetBytes))
}

func (d *device) CreateShader(kind gfx.ShaderKind) gfx.Shader {
	return gfx.Shader(gl.CreateShader(glShaderType(kind)))
}

func (d *device) CompileShader(shader gfx.Shader, source string) gfx.InfoResult {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(shader), 1, csources, nil)
	free()
	gl.CompileShader(uint32(shader))

	var status int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return gfx.InfoResult{Log: shaderLog(uint32(shader))}
	}
	return gfx.InfoResult{OK: true}
}

func (d *device) DeleteShader(shader gfx.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (d *device) CreateProgram() gfx.ProgramHandle {
	return gfx.ProgramHandle(gl.CreateProgram())
}

func (d *device) AttachShader(program gfx.ProgramHandle, shader gfx.Shader) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (d *device) LinkProgram(program gfx.ProgramHandle) gfx.InfoResult {
	gl.LinkProgram(uint32(program))
	return programStatus(uint32(program), gl.LINK_STATUS)
}

func (d *device) ValidateProgram(program gfx.ProgramHandle) gfx.InfoResult {
	gl.ValidateProgram(uint32(program))
	return programStatus(uint32(program), gl.VALIDATE_STATUS)
}

func (d *device) UseProgram(program gfx.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (d *device) DeleteProgram(program gfx.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

func (d *device) UniformLocation(program gfx.ProgramHandle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (d *device) SetUniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (d *device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func glShaderType(kind gfx.ShaderKind) uint32 {
	if kind == gfx.VertexShader {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programStatus(program uint32, status uint32) gfx.InfoResult {
	var ok int32
	gl.GetProgramiv(program, status, &ok)
	if ok == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return gfx.InfoResult{Log: strings.TrimRight(log, "\x00")}
	}
	return gfx.InfoResult{OK: true}
}
