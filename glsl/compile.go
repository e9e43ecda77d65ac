package glsl

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("shaders not supported")

// CompileError reports the step at which a shader entered the Failed state,
// with the driver's info log and, for compile failures, the offending source.
type CompileError struct {
	Shader string
	Step   State
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	switch e.Step {
	case VertexCompiling:
		return fmt.Sprintf("shader %q: failed to compile vertex shader: %v", e.Shader, e.Log)
	case FragmentCompiling:
		return fmt.Sprintf("shader %q: failed to compile fragment shader: %v", e.Shader, e.Log)
	case Linking:
		return fmt.Sprintf("shader %q: failed to link program: %v", e.Shader, e.Log)
	}
	return fmt.Sprintf("shader %q: %v after link", e.Shader, e.Log)
}

// Compile runs s through vertex compile, fragment compile, link and sampler
// binding. Objects left from an earlier compile are deleted first. On failure s
// is left in the Failed state with whatever objects were created so far; they
// are released by Free.
func (c *Context) Compile(s *Shader) error {
	if !c.supported {
		return ErrUnsupported
	}
	f := c.funcs

	// objects of an earlier compile
	s.deleteObjects(f)

	// clear the error flag to catch anything raised below
	f.Error()

	// vertex shader
	s.state = VertexCompiling
	s.vert = f.CreateShaderObject(Vertex.glType())
	if err := c.compileStage(s, s.vert, Vertex); err != nil {
		return err
	}

	// fragment shader
	s.state = FragmentCompiling
	s.frag = f.CreateShaderObject(Fragment.glType())
	if err := c.compileStage(s, s.frag, Fragment); err != nil {
		return err
	}

	// program
	s.state = Linking
	s.program = f.CreateProgramObject()
	f.AttachObject(s.program, s.vert)
	f.AttachObject(s.program, s.frag)
	f.LinkProgram(s.program)
	if f.ObjectParameteri(s.program, ObjectLinkStatus) == 0 {
		return c.fail(s, &CompileError{
			Shader: s.Name,
			Step:   Linking,
			Log:    f.InfoLog(s.program),
		})
	}

	// texture sampler, if declared
	f.UseProgramObject(s.program)
	if loc := f.UniformLocation(s.program, SamplerUniform); loc >= 0 {
		f.Uniform1i(loc, SamplerUnit)
	}
	f.UseProgramObject(0)

	if code := f.Error(); code != NoError {
		return c.fail(s, &CompileError{
			Shader: s.Name,
			Step:   Ready,
			Log:    fmt.Sprintf("gl error 0x%04x", code),
		})
	}

	s.state = Ready
	return nil
}

func (c *Context) compileStage(s *Shader, obj uint32, stage Stage) error {
	f := c.funcs
	src := s.Source(stage)

	f.ShaderSource(obj, src)
	f.CompileShader(obj)
	if f.ObjectParameteri(obj, ObjectCompileStatus) == 0 {
		return c.fail(s, &CompileError{
			Shader: s.Name,
			Step:   s.state,
			Log:    f.InfoLog(obj),
			Source: src,
		})
	}
	return nil
}

func (c *Context) fail(s *Shader, err *CompileError) error {
	s.state = Failed
	if err.Source != "" {
		c.log.Printf("%v\n%s", err, err.Source)
	} else {
		c.log.Println(err)
	}
	return err
}
