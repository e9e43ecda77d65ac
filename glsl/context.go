package glsl

import (
	"io"
	"log"
)

// ARB shader object enums
const (
	FragmentShader      = 0x8B30
	VertexShader        = 0x8B31
	ObjectCompileStatus = 0x8B81
	ObjectLinkStatus    = 0x8B82
	ObjectInfoLogLength = 0x8B84
	NoError             = 0
)

// sampler bound to the first texture unit when a program declares it
const (
	SamplerUniform       = "tex0"
	SamplerUnit    int32 = 0
)

// Funcs is the part of the GL API the pipeline drives. Handles are the
// GLhandleARB values returned by the driver.
type Funcs interface {
	CreateProgramObject() uint32
	CreateShaderObject(shaderType uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ObjectParameteri(obj, pname uint32) int32
	InfoLog(obj uint32) string
	AttachObject(program, shader uint32)
	LinkProgram(program uint32)
	UseProgramObject(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(location, v0 int32)
	DeleteObject(obj uint32)
	Error() uint32
}

// Context holds the shading capability of the current GL context. It is built
// once after the context is created and handed to every pipeline operation.
type Context struct {
	funcs     Funcs
	supported bool
	version   string
	log       *log.Logger
}

// NewContext wraps resolved entry points. A nil funcs yields an unsupported
// context on which every GL-touching operation is a no-op. Diagnostics go to
// logger, or nowhere when it is nil.
func NewContext(funcs Funcs, version string, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Context{
		funcs:     funcs,
		supported: funcs != nil,
		version:   version,
		log:       logger,
	}
}

func (c *Context) Supported() bool { return c.supported }
func (c *Context) Version() string { return c.version }
