package ext

import (
	"github.com/go-gl/gl/v2.1/gl"
)

const objectInfoLogLength = 0x8B84

// Procs holds the resolved ARB shader object entry points. It implements
// glsl.Funcs and adds the uniform setters for application-supplied uniforms.
type Procs struct {
	attachObject         func(container, obj uint32)
	compileShader        func(shader uint32)
	createProgramObject  func() uint32
	createShaderObject   func(shaderType uint32) uint32
	deleteObject         func(obj uint32)
	getInfoLog           func(obj uint32, maxLength int32, length *int32, infoLog *uint8)
	getObjectParameteriv func(obj, pname uint32, params *int32)
	getUniformLocation   func(program uint32, name string) int32
	linkProgram          func(program uint32)
	shaderSource         func(shader uint32, count int32, strings **uint8, lengths *int32)
	useProgramObject     func(program uint32)

	uniform1i func(location, v0 int32)
	uniform2i func(location, v0, v1 int32)
	uniform3i func(location, v0, v1, v2 int32)
	uniform4i func(location, v0, v1, v2, v3 int32)

	uniform1i64 func(location int32, x int64)
	uniform2i64 func(location int32, x, y int64)
	uniform3i64 func(location int32, x, y, z int64)
	uniform4i64 func(location int32, x, y, z, w int64)

	uniform1f func(location int32, v0 float32)
	uniform2f func(location int32, v0, v1 float32)
	uniform3f func(location int32, v0, v1, v2 float32)
	uniform4f func(location int32, v0, v1, v2, v3 float32)

	uniform1d func(location int32, x float64)
	uniform2d func(location int32, x, y float64)
	uniform3d func(location int32, x, y, z float64)
	uniform4d func(location int32, x, y, z, w float64)
}

type proc struct {
	name string
	fptr interface{}
}

func (p *Procs) table() []proc {
	return []proc{
		{"glAttachObjectARB", &p.attachObject},
		{"glCompileShaderARB", &p.compileShader},
		{"glCreateProgramObjectARB", &p.createProgramObject},
		{"glCreateShaderObjectARB", &p.createShaderObject},
		{"glDeleteObjectARB", &p.deleteObject},
		{"glGetInfoLogARB", &p.getInfoLog},
		{"glGetObjectParameterivARB", &p.getObjectParameteriv},
		{"glGetUniformLocationARB", &p.getUniformLocation},
		{"glLinkProgramARB", &p.linkProgram},
		{"glShaderSourceARB", &p.shaderSource},
		{"glUseProgramObjectARB", &p.useProgramObject},

		{"glUniform1iARB", &p.uniform1i},
		{"glUniform2iARB", &p.uniform2i},
		{"glUniform3iARB", &p.uniform3i},
		{"glUniform4iARB", &p.uniform4i},

		{"glUniform1i64ARB", &p.uniform1i64},
		{"glUniform2i64ARB", &p.uniform2i64},
		{"glUniform3i64ARB", &p.uniform3i64},
		{"glUniform4i64ARB", &p.uniform4i64},

		{"glUniform1fARB", &p.uniform1f},
		{"glUniform2fARB", &p.uniform2f},
		{"glUniform3fARB", &p.uniform3f},
		{"glUniform4fARB", &p.uniform4f},

		// double uniforms never had an ARB suffix
		{"glUniform1d", &p.uniform1d},
		{"glUniform2d", &p.uniform2d},
		{"glUniform3d", &p.uniform3d},
		{"glUniform4d", &p.uniform4d},
	}
}

func (p *Procs) AttachObject(program, shader uint32) {
	p.attachObject(program, shader)
}

func (p *Procs) CompileShader(shader uint32) {
	p.compileShader(shader)
}

func (p *Procs) CreateProgramObject() uint32 {
	return p.createProgramObject()
}

func (p *Procs) CreateShaderObject(shaderType uint32) uint32 {
	return p.createShaderObject(shaderType)
}

func (p *Procs) DeleteObject(obj uint32) {
	p.deleteObject(obj)
}

func (p *Procs) ObjectParameteri(obj, pname uint32) int32 {
	var v int32
	p.getObjectParameteriv(obj, pname, &v)
	return v
}

// InfoLog returns the compile or link log of a shader or program object.
func (p *Procs) InfoLog(obj uint32) string {
	n := p.ObjectParameteri(obj, objectInfoLogLength)
	if n <= 1 {
		return ""
	}

	buf := make([]uint8, n)
	var written int32
	p.getInfoLog(obj, n, &written, &buf[0])
	if written < 0 || written > n {
		written = n - 1
	}
	return string(buf[:written])
}

func (p *Procs) LinkProgram(program uint32) {
	p.linkProgram(program)
}

// ShaderSource hands source to the driver as one NUL terminated string with
// its length.
func (p *Procs) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()

	n := int32(len(source))
	p.shaderSource(shader, 1, csrc, &n)
}

func (p *Procs) UseProgramObject(program uint32) {
	p.useProgramObject(program)
}

func (p *Procs) UniformLocation(program uint32, name string) int32 {
	return p.getUniformLocation(program, name)
}

// Error reads the GL error flag. It is core since 1.0 and comes from the
// regular bindings.
func (p *Procs) Error() uint32 {
	return gl.GetError()
}

func (p *Procs) Uniform1i(location, v0 int32) {
	p.uniform1i(location, v0)
}

func (p *Procs) Uniform2i(location, v0, v1 int32) {
	p.uniform2i(location, v0, v1)
}

func (p *Procs) Uniform3i(location, v0, v1, v2 int32) {
	p.uniform3i(location, v0, v1, v2)
}

func (p *Procs) Uniform4i(location, v0, v1, v2, v3 int32) {
	p.uniform4i(location, v0, v1, v2, v3)
}

func (p *Procs) Uniform1i64(location int32, x int64) {
	p.uniform1i64(location, x)
}

func (p *Procs) Uniform2i64(location int32, x, y int64) {
	p.uniform2i64(location, x, y)
}

func (p *Procs) Uniform3i64(location int32, x, y, z int64) {
	p.uniform3i64(location, x, y, z)
}

func (p *Procs) Uniform4i64(location int32, x, y, z, w int64) {
	p.uniform4i64(location, x, y, z, w)
}

func (p *Procs) Uniform1f(location int32, v0 float32) {
	p.uniform1f(location, v0)
}

func (p *Procs) Uniform2f(location int32, v0, v1 float32) {
	p.uniform2f(location, v0, v1)
}

func (p *Procs) Uniform3f(location int32, v0, v1, v2 float32) {
	p.uniform3f(location, v0, v1, v2)
}

func (p *Procs) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	p.uniform4f(location, v0, v1, v2, v3)
}

func (p *Procs) Uniform1d(location int32, x float64) {
	p.uniform1d(location, x)
}

func (p *Procs) Uniform2d(location int32, x, y float64) {
	p.uniform2d(location, x, y)
}

func (p *Procs) Uniform3d(location int32, x, y, z float64) {
	p.uniform3d(location, x, y, z)
}

func (p *Procs) Uniform4d(location int32, x, y, z, w float64) {
	p.uniform4d(location, x, y, z, w)
}
