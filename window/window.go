// Package window opens a window with a compatibility OpenGL context through
// SDL2 or GLFW and sets up the fixed-function state the demo draws with.
//
// GL calls must stay on the thread that opened the window; callers lock the
// main OS thread before opening one.
package window

import (
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/ext"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
)

const (
	clipNear = 0.001
	clipFar  = 100000.0
)

type Config struct {
	Title        string
	Width        int
	Height       int
	FOV          float64 // horizontal, degrees; world units wide when orthographic
	Orthographic bool
	VSync        bool
}

type Window interface {
	ext.Loader

	GLVersion() string
	Poll() []Event
	Keys() input.Set
	Swap()
	Destroy()
}

type EventType int

const (
	Quit EventType = iota
	KeyDown
)

// Event is a window close request or a non-repeating key press.
type Event struct {
	Type EventType
	Key  input.Key
}

// FrustumExtents returns the half width and half height of the near plane for
// a horizontal field of view in degrees.
func FrustumExtents(width, height int, fov, near float64) (w, h float64) {
	aspect := float64(width) / float64(height)
	tan := math.Tan(fov*math.Pi/180.0*0.5) / aspect

	h = near * tan
	w = h * aspect
	return w, h
}

// Projection builds the projection matrix for cfg.
func Projection(cfg Config) mgl32.Mat4 {
	if cfg.Orthographic {
		fov := cfg.FOV * 0.5
		inv := float64(cfg.Height) / float64(cfg.Width)
		return mgl32.Ortho(
			float32(-fov), float32(fov),
			float32(-fov*inv), float32(fov*inv),
			0, clipFar,
		)
	}

	w, h := FrustumExtents(cfg.Width, cfg.Height, cfg.FOV, clipNear)
	return mgl32.Frustum(
		float32(-w), float32(w),
		float32(-h), float32(h),
		clipNear, clipFar,
	)
}

// initGL sets the state both backends start from. The modelview matrix is left
// current for drawing.
func initGL(cfg Config) {
	// viewport and clearing
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1)

	// depth
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.DEPTH_TEST)
	gl.ShadeModel(gl.SMOOTH)

	// projection
	proj := Projection(cfg)
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])

	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func glVersion() string {
	if v := gl.GetString(gl.VERSION); v != nil {
		return gl.GoStr(v)
	}
	return ""
}

// Begin clears the frame and loads camera onto the modelview matrix.
func Begin(camera mgl32.Mat4) {
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.LoadIdentity()
	gl.MultMatrixf(&camera[0])
}

// End presents the frame.
func End(w Window) {
	w.Swap()
}
