// Package camera implements the keyboard driven debug camera of the demo.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
)

// keys that move the camera
var controls = []input.Key{
	input.KeyW, input.KeyA, input.KeyS, input.KeyD,
	input.KeyLeftShift, input.KeyLeftControl,
	input.KeyUp, input.KeyLeft, input.KeyDown, input.KeyRight,
}

// Camera is the view matrix multiplied onto the modelview stack each frame.
type Camera struct {
	Matrix mgl32.Mat4
}

func New() *Camera {
	return &Camera{Matrix: mgl32.Ident4()}
}

// Update moves the camera for the held keys. move is in units per second,
// turn in degrees per second, dt in seconds. A/D strafe, W/S move along z,
// LeftControl/LeftShift raise and lower, arrows yaw and pitch. The movement is
// applied in view space before the previous camera matrix.
func (c *Camera) Update(keys input.Set, dt, move, turn float32) {
	if !keys.Any(controls...) {
		return
	}

	move *= dt
	turn = mgl32.DegToRad(turn * dt)

	delta := mgl32.Ident4()
	apply := func(k input.Key, m mgl32.Mat4) {
		if keys.Down(k) {
			delta = delta.Mul4(m)
		}
	}

	apply(input.KeyA, mgl32.Translate3D(move, 0, 0))
	apply(input.KeyD, mgl32.Translate3D(-move, 0, 0))

	apply(input.KeyW, mgl32.Translate3D(0, 0, move))
	apply(input.KeyS, mgl32.Translate3D(0, 0, -move))

	apply(input.KeyLeftControl, mgl32.Translate3D(0, move, 0))
	apply(input.KeyLeftShift, mgl32.Translate3D(0, -move, 0))

	apply(input.KeyRight, mgl32.HomogRotate3DY(turn))
	apply(input.KeyLeft, mgl32.HomogRotate3DY(-turn))
	apply(input.KeyDown, mgl32.HomogRotate3DX(turn))
	apply(input.KeyUp, mgl32.HomogRotate3DX(-turn))

	c.Matrix = delta.Mul4(c.Matrix)
}
