package main

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/glsl"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/texture"
)

const (
	spin       = 45 // quad rotation about x, degrees per second
	panSpeed   = 1  // mandelbrot window pan, units per second
	uMCoords   = "u_mcoords"
	uTime      = "u_time"
	sceneDepth = -4
)

// uniformSetter is the part of the extension entry points the scene sets
// application uniforms through.
type uniformSetter interface {
	Uniform1f(location int32, v0 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
}

type scene struct {
	batch    *glsl.Batch
	uniforms uniformSetter
	texture  *texture.Texture

	current int
	angle   float32
	elapsed float32
	mcoords [4]float32
}

// cycle selects the next shader of the batch, wrapping around.
func (s *scene) cycle() {
	if n := s.batch.Len(); n > 0 {
		s.current = (s.current + 1) % n
	}
}

func (s *scene) shader() *glsl.Shader {
	if s.current >= s.batch.Len() {
		return nil
	}
	return s.batch.Shader(s.current)
}

// pan shifts the horizontal range of the mandelbrot window.
func (s *scene) pan(dir, dt float32) {
	s.mcoords[0] += dir * panSpeed * dt
	s.mcoords[1] += dir * panSpeed * dt
}

// handleKeys pans with the held keys: comma towards +x, period towards -x.
func (s *scene) handleKeys(keys input.Set, dt float32) {
	if keys.Down(input.KeyComma) {
		s.pan(1, dt)
	}
	if keys.Down(input.KeyPeriod) {
		s.pan(-1, dt)
	}
}

func (s *scene) update(dt float32) {
	s.elapsed += dt
	s.angle += spin * dt
	if s.angle >= 360 {
		s.angle -= 360
	}

	sh := s.shader()
	if sh == nil || s.uniforms == nil {
		return
	}

	s.batch.Enable(sh)
	if loc, ok := s.batch.Uniform(sh, uMCoords); ok {
		s.uniforms.Uniform4f(loc, s.mcoords[0], s.mcoords[1], s.mcoords[2], s.mcoords[3])
	}
	if loc, ok := s.batch.Uniform(sh, uTime); ok {
		s.uniforms.Uniform1f(loc, s.elapsed)
	}
	s.batch.Disable()
}

// draw renders a plain triangle on the left and the shaded, textured quad on
// the right, blended by alpha.
func (s *scene) draw() {
	gl.PushMatrix()
	gl.Translatef(0, 0, sceneDepth)

	gl.PushMatrix()
	gl.Translatef(-1.5, 0, 0)
	drawTriangle()
	gl.PopMatrix()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if sh := s.shader(); sh != nil {
		s.batch.Enable(sh)
	}

	gl.PushMatrix()
	gl.Translatef(1.5, 0, 0)
	gl.Rotatef(s.angle, 1, 0, 0)
	drawQuad(s.texture)
	gl.PopMatrix()

	s.batch.Disable()
	gl.Disable(gl.BLEND)

	gl.PopMatrix()
}

func drawTriangle() {
	gl.Begin(gl.TRIANGLES)
	gl.Color3f(1, 0, 0)
	gl.Vertex3f(0, 1, 0)
	gl.Color3f(0, 1, 0)
	gl.Vertex3f(-1, -1, 0)
	gl.Color3f(0, 0, 1)
	gl.Vertex3f(1, -1, 0)
	gl.End()
}

func drawQuad(t *texture.Texture) {
	c := [4]float32{0, 0, 1, 1}
	if t != nil {
		c = t.Coords
		gl.Enable(gl.TEXTURE_2D)
		gl.TexEnvf(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, gl.MODULATE)
		t.Bind()
	}

	// bottom of the image is the last row of the uploaded pixels
	gl.Begin(gl.QUADS)
	gl.Color3f(1, 1, 1)
	gl.TexCoord2f(c[0], c[3])
	gl.Vertex3f(-1, -1, 0)
	gl.TexCoord2f(c[2], c[3])
	gl.Vertex3f(1, -1, 0)
	gl.TexCoord2f(c[2], c[1])
	gl.Vertex3f(1, 1, 0)
	gl.TexCoord2f(c[0], c[1])
	gl.Vertex3f(-1, 1, 0)
	gl.End()

	if t != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		gl.Disable(gl.TEXTURE_2D)
	}
}
