package glsl

import (
	"fmt"
	"strings"
)

// fakeGL records every call and emulates just enough of a driver: sources
// containing badSource fail to compile, uniforms exist when an attached stage
// declares them.
type fakeGL struct {
	next  uint32
	calls []string

	sources  map[uint32]string
	types    map[uint32]uint32
	compiled map[uint32]bool
	attached map[uint32][]uint32
	deleted  []uint32
	current  uint32
	samplers map[int32]int32

	badSource string
	linkFail  bool
	linkError uint32
	pending   uint32
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		sources:  map[uint32]string{},
		types:    map[uint32]uint32{},
		compiled: map[uint32]bool{},
		attached: map[uint32][]uint32{},
		samplers: map[int32]int32{},
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) count(prefix string) int {
	var n int
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeGL) CreateProgramObject() uint32 {
	f.next++
	f.types[f.next] = 0
	f.record("CreateProgramObject")
	return f.next
}

func (f *fakeGL) CreateShaderObject(shaderType uint32) uint32 {
	f.next++
	f.types[f.next] = shaderType
	f.record("CreateShaderObject(0x%x)", shaderType)
	return f.next
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.sources[shader] = source
	f.record("ShaderSource(%d)", shader)
}

func (f *fakeGL) CompileShader(shader uint32) {
	src := f.sources[shader]
	f.compiled[shader] = f.badSource == "" || !strings.Contains(src, f.badSource)
	f.record("CompileShader(%d)", shader)
}

func (f *fakeGL) ObjectParameteri(obj, pname uint32) int32 {
	f.record("ObjectParameteri(%d, 0x%x)", obj, pname)
	switch pname {
	case ObjectCompileStatus:
		if f.compiled[obj] {
			return 1
		}
	case ObjectLinkStatus:
		if !f.linkFail {
			return 1
		}
	}
	return 0
}

func (f *fakeGL) InfoLog(obj uint32) string {
	if f.types[obj] == 0 {
		return "link error: unresolved varying"
	}
	if !f.compiled[obj] {
		return "0:3(1): error: syntax error, unexpected '}'"
	}
	return ""
}

func (f *fakeGL) AttachObject(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
	f.record("AttachObject(%d, %d)", program, shader)
}

func (f *fakeGL) LinkProgram(program uint32) {
	f.pending = f.linkError
	f.record("LinkProgram(%d)", program)
}

func (f *fakeGL) UseProgramObject(program uint32) {
	f.current = program
	f.record("UseProgramObject(%d)", program)
}

func (f *fakeGL) UniformLocation(program uint32, name string) int32 {
	f.record("UniformLocation(%d, %s)", program, name)
	for _, s := range f.attached[program] {
		if strings.Contains(f.sources[s], " "+name+";") {
			return 7
		}
	}
	return -1
}

func (f *fakeGL) Uniform1i(location, v0 int32) {
	f.samplers[location] = v0
	f.record("Uniform1i(%d, %d)", location, v0)
}

func (f *fakeGL) DeleteObject(obj uint32) {
	f.deleted = append(f.deleted, obj)
	f.record("DeleteObject(%d)", obj)
}

func (f *fakeGL) Error() uint32 {
	code := f.pending
	f.pending = NoError
	return code
}

const (
	passVertex = `#version 110
void main() {
	gl_TexCoord[0] = gl_MultiTexCoord0;
	gl_Position = ftransform();
}
`
	colorFragment = `#version 110
void main() {
	gl_FragColor = vec4(1.0, 0.5, 0.0, 1.0);
}
`
	textureFragment = `#version 110
uniform sampler2D tex0;
void main() {
	gl_FragColor = texture2D(tex0, gl_TexCoord[0].st);
}
`
	brokenFragment = `#version 110
void main() {
	gl_FragColor = vec4(1.0 SYNTAX);
}
`
)
