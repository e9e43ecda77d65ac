package window

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyW:           input.KeyW,
	glfw.KeyA:           input.KeyA,
	glfw.KeyS:           input.KeyS,
	glfw.KeyD:           input.KeyD,
	glfw.KeyLeftShift:   input.KeyLeftShift,
	glfw.KeyLeftControl: input.KeyLeftControl,
	glfw.KeyUp:          input.KeyUp,
	glfw.KeyDown:        input.KeyDown,
	glfw.KeyLeft:        input.KeyLeft,
	glfw.KeyRight:       input.KeyRight,
	glfw.KeyComma:       input.KeyComma,
	glfw.KeyPeriod:      input.KeyPeriod,
	glfw.KeyEscape:      input.KeyEscape,
	glfw.KeySpace:       input.KeySpace,
}

type GLFWWindow struct {
	window  *glfw.Window
	version string

	keys   input.Set
	events []Event
}

// OpenGLFW is the GLFW counterpart of OpenSDL.
func OpenGLFW(cfg Config) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize glfw")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	w := &GLFWWindow{
		keys: input.NewSet(),
	}

	var err error
	w.window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create OpenGL window")
	}

	w.window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, errors.Wrap(err, "initialize OpenGL bindings")
	}

	w.window.SetKeyCallback(w.onKey)

	initGL(cfg)
	w.version = glVersion()

	return w, nil
}

func (w *GLFWWindow) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		w.keys.Press(k)
		w.events = append(w.events, Event{Type: KeyDown, Key: k})
	case glfw.Release:
		w.keys.Release(k)
	}
}

func (w *GLFWWindow) ExtensionSupported(name string) bool {
	return glfw.ExtensionSupported(name)
}

func (w *GLFWWindow) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *GLFWWindow) GLVersion() string { return w.version }

func (w *GLFWWindow) Poll() []Event {
	w.events = w.events[:0]
	glfw.PollEvents()

	events := append([]Event(nil), w.events...)
	if w.window.ShouldClose() {
		events = append(events, Event{Type: Quit})
	}
	return events
}

func (w *GLFWWindow) Keys() input.Set {
	return w.keys.Clone()
}

func (w *GLFWWindow) Swap() {
	w.window.SwapBuffers()
}

func (w *GLFWWindow) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
