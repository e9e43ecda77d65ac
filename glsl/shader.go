// Package glsl loads, compiles and drives GLSL vertex/fragment programs through
// the ARB shader object API.
//
// A Context carries the capability state (extension support, GLSL version and the
// resolved entry points). Shaders are loaded from tagged text files, compiled
// together as a Batch and enabled or disabled while drawing. Every operation runs
// on the caller's thread, which must own the current GL context.
package glsl

// Stage selects one of the two programmable stages of a Shader.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// object type for CreateShaderObject
func (s Stage) glType() uint32 {
	if s == Fragment {
		return FragmentShader
	}
	return VertexShader
}

// State is the position of a Shader in the compile pipeline.
type State int

const (
	Uncompiled State = iota
	VertexCompiling
	FragmentCompiling
	Linking
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Uncompiled:
		return "uncompiled"
	case VertexCompiling:
		return "vertex compiling"
	case FragmentCompiling:
		return "fragment compiling"
	case Linking:
		return "linking"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Shader is one drawable shading effect: its sources and, once compiled, the
// program and shader objects built from them.
type Shader struct {
	Name     string
	Vertex   string
	Fragment string

	program uint32
	vert    uint32
	frag    uint32
	state   State
}

func (s *Shader) Program() uint32 { return s.program }
func (s *Shader) State() State    { return s.state }

// Objects returns the vertex shader, fragment shader and program handles.
func (s *Shader) Objects() (vert, frag, program uint32) {
	return s.vert, s.frag, s.program
}

// Source returns the source text of the given stage.
func (s *Shader) Source(stage Stage) string {
	if stage == Fragment {
		return s.Fragment
	}
	return s.Vertex
}

func (s *Shader) setSource(stage Stage, src string) {
	if stage == Fragment {
		s.Fragment = src
	} else {
		s.Vertex = src
	}
}

// release deletes all three objects together and drops the sources.
// owned is false when the entry points were never resolved.
func (s *Shader) release(f Funcs, owned bool) {
	if owned {
		s.deleteObjects(f)
	}
	s.vert, s.frag, s.program = 0, 0, 0

	s.Name = ""
	s.Vertex = ""
	s.Fragment = ""
	s.state = Uncompiled
}

// deleteObjects deletes the non-zero handles and zeroes them.
func (s *Shader) deleteObjects(f Funcs) {
	for _, h := range []*uint32{&s.vert, &s.frag, &s.program} {
		if *h != 0 {
			f.DeleteObject(*h)
			*h = 0
		}
	}
}
