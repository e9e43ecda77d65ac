package ext

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fragSource = "void main() {\n\tgl_FragColor = vec4(1.0);\n}\n"

func TestProcs_ShaderSource(t *testing.T) {
	var (
		calls   int
		shader  uint32
		count   int32
		got     string
		length  int32
		nulTerm bool
	)

	p := &Procs{}
	p.shaderSource = func(s uint32, c int32, strs **uint8, lengths *int32) {
		calls++
		shader, count = s, c
		require.NotNil(t, lengths)
		length = *lengths

		// copy while the C string is still alive
		b := unsafe.Slice(*strs, length+1)
		got = string(b[:length])
		nulTerm = b[length] == 0
	}

	p.ShaderSource(9, fragSource)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint32(9), shader)
	assert.Equal(t, int32(1), count)
	assert.Equal(t, int32(len(fragSource)), length)
	assert.Equal(t, fragSource, got)
	assert.True(t, nulTerm, "source is not NUL terminated")
}

func TestProcs_ObjectParameteri(t *testing.T) {
	p := &Procs{}
	p.getObjectParameteriv = func(obj, pname uint32, params *int32) {
		*params = int32(obj*10 + pname)
	}

	assert.Equal(t, int32(3*10+0x8B81), p.ObjectParameteri(3, 0x8B81))
}

// infoLogProcs reports logLen as the info log length and writes log, claiming
// written bytes.
func infoLogProcs(logLen int32, log string, written int32) (*Procs, *int32) {
	var size int32 = -1
	p := &Procs{}
	p.getObjectParameteriv = func(obj, pname uint32, params *int32) {
		if pname == objectInfoLogLength {
			*params = logLen
		}
	}
	p.getInfoLog = func(obj uint32, maxLength int32, length *int32, infoLog *uint8) {
		size = maxLength
		copy(unsafe.Slice(infoLog, maxLength), log)
		*length = written
	}
	return p, &size
}

func TestProcs_InfoLog(t *testing.T) {
	p, size := infoLogProcs(6, "error\x00", 5)

	assert.Equal(t, "error", p.InfoLog(1))
	assert.Equal(t, int32(6), *size, "buffer sized from the info log length")
}

func TestProcs_InfoLogEmpty(t *testing.T) {
	for _, n := range []int32{0, 1} {
		p, size := infoLogProcs(n, "", 0)

		assert.Empty(t, p.InfoLog(1))
		assert.Equal(t, int32(-1), *size, "no log read for length %v", n)
	}
}

func TestProcs_InfoLogWrittenOutOfRange(t *testing.T) {
	for _, written := range []int32{-1, 100} {
		p, _ := infoLogProcs(4, "abc\x00", written)
		assert.Equal(t, "abc", p.InfoLog(1), "written %v", written)
	}
}
