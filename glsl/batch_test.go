package glsl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_EnableDisable(t *testing.T) {
	gl := newFakeGL()
	ctx, _ := newTestContext(gl)
	color := &Shader{Name: "color", Vertex: passVertex, Fragment: colorFragment}
	tex := &Shader{Name: "texture", Vertex: passVertex, Fragment: textureFragment}
	b := ctx.NewBatch(color, tex)

	require.NoError(t, b.Compile())
	assert.True(t, b.Ready())
	assert.Equal(t, 2, b.Len())
	assert.Same(t, tex, b.Shader(1))

	b.Enable(tex)
	assert.NotZero(t, gl.current)
	assert.Equal(t, tex.Program(), gl.current)

	b.Disable()
	assert.Zero(t, gl.current)
}

func TestBatch_SecondFails(t *testing.T) {
	gl := newFakeGL()
	gl.badSource = "SYNTAX"
	ctx, out := newTestContext(gl)
	first := &Shader{Name: "first", Vertex: passVertex, Fragment: colorFragment}
	second := &Shader{Name: "second", Vertex: passVertex, Fragment: brokenFragment}
	third := &Shader{Name: "third", Vertex: passVertex, Fragment: colorFragment}
	b := ctx.NewBatch(first, second, third)

	err := b.Compile()
	require.Error(t, err)
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "second", cerr.Shader)
	assert.False(t, b.Ready())
	assert.Contains(t, out.String(), `unable to compile shader "second"`)

	// first keeps its objects, third was never touched
	assert.Equal(t, Ready, first.State())
	assert.NotZero(t, first.Program())
	assert.Equal(t, Uncompiled, third.State())
	assert.Equal(t, 1, gl.count("LinkProgram"))

	// not ready: drawing calls stay silent
	before := len(gl.calls)
	b.Enable(first)
	b.Disable()
	assert.Len(t, gl.calls, before)

	vert, frag, prog := first.Objects()
	svert, sfrag, sprog := second.Objects()
	assert.Zero(t, sprog)
	b.Free()
	assert.ElementsMatch(t, []uint32{vert, frag, prog, svert, sfrag}, gl.deleted)
	assert.Zero(t, first.Program())
	assert.Empty(t, first.Name)
	assert.Empty(t, second.Fragment)
}

func TestBatch_Unsupported(t *testing.T) {
	ctx, out := newTestContext(nil)
	s := &Shader{Name: "color", Vertex: passVertex, Fragment: colorFragment}
	b := ctx.NewBatch(s)

	assert.Equal(t, ErrUnsupported, b.Compile())
	assert.False(t, b.Ready())
	assert.Contains(t, out.String(), "shaders not supported")

	// would panic on a nil Funcs if any GL call were issued
	b.Enable(s)
	b.Disable()
	_, ok := b.Uniform(s, "u_time")
	assert.False(t, ok)
	b.Free()
	assert.Empty(t, s.Vertex)
}

func TestBatch_NoCallsWhenUnsupported(t *testing.T) {
	gl := newFakeGL()
	ctx, _ := newTestContext(gl)
	ctx.supported = false
	s := &Shader{Name: "color", Vertex: passVertex, Fragment: colorFragment}
	b := ctx.NewBatch(s)
	b.ready = true

	b.Enable(s)
	b.Disable()
	b.Uniform(s, "u_mcoords")
	b.Free()
	assert.Empty(t, gl.calls)
}

func TestBatch_Uniform(t *testing.T) {
	gl := newFakeGL()
	ctx, _ := newTestContext(gl)
	s := &Shader{
		Name:     "mandelbrot",
		Vertex:   passVertex,
		Fragment: "uniform vec4 u_mcoords;\n" + colorFragment,
	}
	b := ctx.NewBatch(s)

	_, ok := b.Uniform(s, "u_mcoords")
	assert.False(t, ok, "not compiled yet")

	require.NoError(t, b.Compile())
	loc, ok := b.Uniform(s, "u_mcoords")
	assert.True(t, ok)
	assert.Equal(t, int32(7), loc)

	_, ok = b.Uniform(s, "u_time")
	assert.False(t, ok)
}

func TestBatch_FreeTwice(t *testing.T) {
	gl := newFakeGL()
	ctx, _ := newTestContext(gl)
	s := &Shader{Name: "color", Vertex: passVertex, Fragment: colorFragment}
	b := ctx.NewBatch(s)
	require.NoError(t, b.Compile())

	b.Free()
	b.Free()
	assert.Len(t, gl.deleted, 3)
	assert.False(t, b.Ready())
}

func TestBatch_Recompile(t *testing.T) {
	gl := newFakeGL()
	gl.badSource = "SYNTAX"
	ctx, _ := newTestContext(gl)
	s := &Shader{Name: "fixed", Vertex: passVertex, Fragment: brokenFragment}
	b := ctx.NewBatch(s)
	require.Error(t, b.Compile())
	b.Free()

	s = &Shader{Name: "fixed", Vertex: passVertex, Fragment: colorFragment}
	b = ctx.NewBatch(s)
	require.NoError(t, b.Compile())
	assert.True(t, b.Ready())
}

func TestBatch_CompileTwice(t *testing.T) {
	gl := newFakeGL()
	ctx, _ := newTestContext(gl)
	b := ctx.NewBatch(
		&Shader{Name: "color", Vertex: passVertex, Fragment: colorFragment},
		&Shader{Name: "texture", Vertex: passVertex, Fragment: textureFragment},
	)

	require.NoError(t, b.Compile())
	require.NoError(t, b.Compile())
	assert.Len(t, gl.deleted, 6)

	b.Free()
	assert.Len(t, gl.deleted, 12, "every object deleted exactly once")
}
