package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/BinarySemaphore/SDL-EXT-GLSL/camera"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/ext"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/glsl"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/input"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/texture"
	"github.com/BinarySemaphore/SDL-EXT-GLSL/window"
)

const fps = 60

var (
	logger = log.New(colorable.NewColorableStderr(), "", log.Ldate|log.Ltime|log.Lshortfile)
	warn   = color.New(color.FgYellow).SprintFunc()
)

func init() {
	// GL and SDL calls have to come from the main thread
	runtime.LockOSThread()

	fd := os.Stderr.Fd()
	color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func main() {
	app := &cli.App{
		Name:  "sdl-ext-glsl",
		Usage: "draw a scene through a batch of GLSL shaders",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with window, texture and shader settings",
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "window backend, sdl or glfw",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "recompile the shaders when their files change",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (Config, error) {
	cfg := DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("watch") {
		cfg.Watch = c.Bool("watch")
	}
	return cfg, cfg.Validate()
}

func openWindow(cfg Config) (window.Window, error) {
	if cfg.Backend == "glfw" {
		return window.OpenGLFW(cfg.WindowConfig())
	}
	return window.OpenSDL(cfg.WindowConfig())
}

// compileBatch loads and compiles the configured shaders. The returned batch
// may be unready; the scene then draws without shaders.
func compileBatch(cfg Config, ctx *glsl.Context) (*glsl.Batch, error) {
	shaders, err := cfg.LoadShaders()
	if err != nil {
		return nil, err
	}

	batch := ctx.NewBatch(shaders...)
	batch.Compile() // failures are logged by the batch
	return batch, nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	// textures
	pot := texture.NeedsPowerOfTwo(win.GLVersion())
	var textures []*texture.Texture
	defer func() {
		for _, t := range textures {
			t.Delete()
		}
	}()
	for _, path := range cfg.Textures {
		t, err := texture.Load(path, pot)
		if err != nil {
			return err
		}
		textures = append(textures, t)
	}

	// shaders
	var (
		funcs    glsl.Funcs
		uniforms uniformSetter
	)
	if procs, err := ext.Resolve(win); err != nil {
		logger.Println(warn("[WARN] ", err))
	} else {
		funcs, uniforms = procs, procs
	}

	ctx := glsl.NewContext(funcs, ext.Version(), logger)
	batch, err := compileBatch(cfg, ctx)
	if err != nil {
		return errors.Wrap(err, "load shaders")
	}

	sc := &scene{
		batch:    batch,
		uniforms: uniforms,
		mcoords:  cfg.Mandelbrot,
	}
	defer func() { sc.batch.Free() }()
	if len(textures) > 0 {
		sc.texture = textures[0]
	}

	if ctx.Supported() && batch.Ready() {
		logger.Println("Shaders supported and ready: SPACE to cycle")
	} else {
		logger.Println(warn("[WARN] Shaders are unsupported or not ready"))
	}
	logger.Printf("OpenGL Version: %s", win.GLVersion())
	logger.Printf("GLSL Version: %s", ctx.Version())

	var files *watcher
	if cfg.Watch {
		if files, err = newWatcher(cfg.ShaderPaths(), logger); err != nil {
			return err
		}
		defer files.Close()
	}

	cam := camera.New()

	// main loop
	var (
		lastTime    = time.Now()
		currentTime time.Time
		delta       time.Duration

		ratio  = 0.01
		curfps = float64(fps)

		render  = time.Tick(time.Second / fps)
		console = time.Tick(5 * time.Second)
	)

	for {
		select {
		case <-render:
			// calc delay
			currentTime = time.Now()
			delta = currentTime.Sub(lastTime)
			lastTime = currentTime

			// calc fps
			ds := delta.Seconds()
			if ds > 0 {
				curfps = curfps*(1-ratio) + (1.0/ds)*ratio
			}
			dt := float32(ds)

			// events
			for _, ev := range win.Poll() {
				switch {
				case ev.Type == window.Quit, ev.Key == input.KeyEscape:
					return nil
				case ev.Key == input.KeySpace:
					sc.cycle()
					if sh := sc.shader(); sh != nil {
						logger.Printf("shader %v: %v", sc.current, sh.Name)
					}
				}
			}

			keys := win.Keys()
			sc.handleKeys(keys, dt)
			cam.Update(keys, dt, cfg.Camera.Move, cfg.Camera.Turn)

			if files != nil && files.Changed() {
				sc.batch = reload(cfg, ctx, sc.batch)
			}

			// draw
			sc.update(dt)
			window.Begin(cam.Matrix)
			sc.draw()
			window.End(win)

		case <-console:
			logger.Printf("%.1f fps", curfps)
		}
	}
}

// reload compiles a fresh batch from disk. The old batch is kept when the new
// one does not load or compile.
func reload(cfg Config, ctx *glsl.Context, old *glsl.Batch) *glsl.Batch {
	batch, err := compileBatch(cfg, ctx)
	if err != nil {
		logger.Println(warn("[WARN] reload: ", err))
		return old
	}
	if !batch.Ready() && old.Ready() {
		logger.Println(warn("[WARN] reload failed, keeping previous shaders"))
		batch.Free()
		return old
	}

	old.Free()
	logger.Println("shaders reloaded")
	return batch
}
