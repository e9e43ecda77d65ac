package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/glsl"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/window"
)

type Config struct {
	Backend string `toml:"backend"`
	Watch   bool   `toml:"watch"`

	Window struct {
		Title        string  `toml:"title"`
		Width        int     `toml:"width"`
		Height       int     `toml:"height"`
		FOV          float64 `toml:"fov"`
		Orthographic bool    `toml:"orthographic"`
		VSync        bool    `toml:"vsync"`
	} `toml:"window"`

	Camera struct {
		Move float32 `toml:"move"` // units per second
		Turn float32 `toml:"turn"` // degrees per second
	} `toml:"camera"`

	// initial u_mcoords of the mandelbrot shader: left, right, bottom, top
	Mandelbrot [4]float32 `toml:"mandelbrot"`

	Textures []string       `toml:"textures"`
	Shaders  []ShaderConfig `toml:"shaders"`
}

// ShaderConfig names either a tagged file holding both stages or a pair of
// vertex and fragment files.
type ShaderConfig struct {
	Name     string `toml:"name"`
	File     string `toml:"file"`
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

func DefaultConfig() Config {
	var c Config
	c.Backend = "sdl"

	c.Window.Title = "SDL_GLSL_LIB Test"
	c.Window.Width = 640
	c.Window.Height = 480
	c.Window.FOV = 75
	c.Window.VSync = true

	c.Camera.Move = 5
	c.Camera.Turn = 60

	c.Mandelbrot = [4]float32{-3, 1.5, -2.5, 2.5}

	c.Textures = []string{"resources/crate.bmp"}
	c.Shaders = []ShaderConfig{
		{File: "resources/shader_color.sdr"},
		{File: "resources/shader_texture.sdr"},
		{File: "resources/shader_texcoords.sdr"},
		{Name: "noise", Vertex: "resources/noise.vert", Fragment: "resources/noise.frag"},
		{File: "resources/shader_noise_mask.sdr"},
		{File: "resources/shader_mandelbrot.sdr"},
	}
	return c
}

// LoadConfig reads a TOML file on top of the defaults. Keys the file leaves
// out keep their default; lists given in the file replace the default lists.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, errors.Wrap(err, "open config")
	}
	defer f.Close()

	// decode lists into empty slices so file entries are not appended to the
	// defaults
	textures, shaders := c.Textures, c.Shaders
	c.Textures, c.Shaders = nil, nil

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, errors.Wrapf(err, "decode config %q", path)
	}

	if c.Textures == nil {
		c.Textures = textures
	}
	if c.Shaders == nil {
		c.Shaders = shaders
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case "sdl", "glfw":
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %vx%v", c.Window.Width, c.Window.Height)
	}

	for i, s := range c.Shaders {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "shader %d", i)
		}
	}
	return nil
}

func (c Config) WindowConfig() window.Config {
	return window.Config{
		Title:        c.Window.Title,
		Width:        c.Window.Width,
		Height:       c.Window.Height,
		FOV:          c.Window.FOV,
		Orthographic: c.Window.Orthographic,
		VSync:        c.Window.VSync,
	}
}

// LoadShaders reads every configured shader, stopping at the first error.
func (c Config) LoadShaders() ([]*glsl.Shader, error) {
	shaders := make([]*glsl.Shader, 0, len(c.Shaders))
	for _, sc := range c.Shaders {
		s, err := sc.Load()
		if err != nil {
			return nil, err
		}
		shaders = append(shaders, s)
	}
	return shaders, nil
}

// ShaderPaths lists every shader source file, for watching.
func (c Config) ShaderPaths() []string {
	var paths []string
	for _, s := range c.Shaders {
		if s.File != "" {
			paths = append(paths, s.File)
		} else {
			paths = append(paths, s.Vertex, s.Fragment)
		}
	}
	return paths
}

func (s ShaderConfig) validate() error {
	if s.File != "" {
		if s.Vertex != "" || s.Fragment != "" {
			return errors.New("file and vertex/fragment are exclusive")
		}
		return nil
	}
	if s.Vertex == "" || s.Fragment == "" {
		return errors.New("need a file or both vertex and fragment")
	}
	return nil
}

func (s ShaderConfig) Load() (*glsl.Shader, error) {
	if s.File != "" {
		sh, err := glsl.LoadFile(s.File)
		if err != nil {
			return nil, err
		}
		if s.Name != "" {
			sh.Name = s.Name
		}
		return sh, nil
	}

	name := s.Name
	if name == "" {
		name = s.Vertex
	}
	return glsl.LoadFiles(name, s.Vertex, s.Fragment)
}
