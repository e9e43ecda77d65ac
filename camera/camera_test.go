package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
)

const epsilon = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec4, what string) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], epsilon, "%v is %v, component %v", what, got, i)
	}
}

func TestUpdate_NoKeys(t *testing.T) {
	c := New()
	c.Update(input.NewSet(input.KeySpace, input.KeyComma), 1, 5, 60)
	assert.Equal(t, mgl32.Ident4(), c.Matrix)
}

func TestUpdate_Forward(t *testing.T) {
	c := New()
	c.Update(input.NewSet(input.KeyW), 0.5, 5, 60)

	assertVec(t, mgl32.Vec4{0, 0, 2.5, 1}, c.Matrix.Col(3), "translation")
}

func TestUpdate_OppositeKeysCancel(t *testing.T) {
	c := New()
	c.Update(input.NewSet(input.KeyA, input.KeyD, input.KeyLeftShift, input.KeyLeftControl), 1, 3, 60)
	for i := 0; i < 4; i++ {
		assertVec(t, mgl32.Ident4().Col(i), c.Matrix.Col(i), "column")
	}
}

func TestUpdate_Yaw(t *testing.T) {
	c := New()
	c.Update(input.NewSet(input.KeyRight), 1, 5, 90)

	x := c.Matrix.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	assertVec(t, mgl32.Vec4{0, 0, -1, 0}, x, "x axis")
}

func TestUpdate_Accumulates(t *testing.T) {
	c := New()
	keys := input.NewSet(input.KeyS)
	for i := 0; i < 4; i++ {
		c.Update(keys, 0.25, 2, 60)
	}
	assertVec(t, mgl32.Vec4{0, 0, -2, 1}, c.Matrix.Col(3), "translation")
}

func TestUpdate_TurnAfterMove(t *testing.T) {
	// a later half turn swings the earlier offset around
	c := New()
	c.Update(input.NewSet(input.KeyW), 1, 1, 0)
	c.Update(input.NewSet(input.KeyLeft), 1, 0, 180)
	assertVec(t, mgl32.Vec4{0, 0, -1, 1}, c.Matrix.Col(3), "translation")
}
