package window

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
)

var sdlKeys = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_W:      input.KeyW,
	sdl.SCANCODE_A:      input.KeyA,
	sdl.SCANCODE_S:      input.KeyS,
	sdl.SCANCODE_D:      input.KeyD,
	sdl.SCANCODE_LSHIFT: input.KeyLeftShift,
	sdl.SCANCODE_LCTRL:  input.KeyLeftControl,
	sdl.SCANCODE_UP:     input.KeyUp,
	sdl.SCANCODE_DOWN:   input.KeyDown,
	sdl.SCANCODE_LEFT:   input.KeyLeft,
	sdl.SCANCODE_RIGHT:  input.KeyRight,
	sdl.SCANCODE_COMMA:  input.KeyComma,
	sdl.SCANCODE_PERIOD: input.KeyPeriod,
	sdl.SCANCODE_ESCAPE: input.KeyEscape,
	sdl.SCANCODE_SPACE:  input.KeySpace,
}

type SDLWindow struct {
	window  *sdl.Window
	context sdl.GLContext
	version string
}

// OpenSDL initializes SDL video, opens an OpenGL 2.1 window and makes its
// context current.
func OpenSDL(cfg Config) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "initialize SDL")
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	w := &SDLWindow{}

	var err error
	w.window, err = sdl.CreateWindow(cfg.Title, 100, 100,
		int32(cfg.Width), int32(cfg.Height), uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_OPENGL))
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create OpenGL window")
	}

	w.context, err = w.window.GLCreateContext()
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "create OpenGL context")
	}

	if cfg.VSync {
		sdl.GLSetSwapInterval(1)
	}

	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		w.Destroy()
		return nil, errors.Wrap(err, "initialize OpenGL bindings")
	}

	initGL(cfg)
	w.version = glVersion()

	return w, nil
}

func (w *SDLWindow) ExtensionSupported(name string) bool {
	return sdl.GLExtensionSupported(name)
}

func (w *SDLWindow) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

func (w *SDLWindow) GLVersion() string { return w.version }

// Poll drains the event queue.
func (w *SDLWindow) Poll() []Event {
	var events []Event
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch e := e.(type) {
		case *sdl.QuitEvent:
			events = append(events, Event{Type: Quit})
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if k, ok := sdlKeys[e.Keysym.Scancode]; ok {
				events = append(events, Event{Type: KeyDown, Key: k})
			}
		}
	}
	return events
}

// Keys snapshots the keyboard state of the last Poll.
func (w *SDLWindow) Keys() input.Set {
	set := input.NewSet()
	state := sdl.GetKeyboardState()
	for sc, k := range sdlKeys {
		if int(sc) < len(state) && state[sc] != 0 {
			set.Press(k)
		}
	}
	return set
}

func (w *SDLWindow) Swap() {
	w.window.GLSwap()
}

func (w *SDLWindow) Destroy() {
	if w.context != nil {
		sdl.GLDeleteContext(w.context)
		w.context = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
