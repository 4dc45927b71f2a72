// Example shows a reorderable list in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Grab a row by its light handle on the left and drag it to a new slot.
// Escape cancels a drag. Pass -config to load a YAML file such as:
//
//	list:
//	  rows: 8
//	  row_height: 40
//	drag:
//	  collapsed_height: 6
//	logging:
//	  verbose: true
//	  file: reorder.log
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	lj "gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/reorder"
	"github.com/go-theft-auto/reorder/backend/opengl"
	"github.com/go-theft-auto/reorder/internal/config"
)

var rowColors = []uint32{
	reorder.RGBA(196, 72, 72, 255),
	reorder.RGBA(214, 140, 60, 255),
	reorder.RGBA(200, 190, 70, 255),
	reorder.RGBA(86, 170, 90, 255),
	reorder.RGBA(70, 140, 200, 255),
	reorder.RGBA(130, 100, 190, 255),
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("verbose", false, "log drag and drop traces")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog := setupLogging(cfg.Logging, verbose)
	defer closeLog()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// The UI works in window coordinates, which is what the cursor reports.
	w, h := window.GetSize()
	renderer, err := opengl.NewRenderer(w, h)
	if err != nil {
		return fmt.Errorf("reorder renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	scene := reorder.NewScene(reorder.Vec2{X: float32(w), Y: float32(h)})
	buildList(scene, cfg)

	ui := reorder.New(renderer, scene, reorder.WithDragThreshold(cfg.DragThreshold))

	window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		ui.Resize(width, height)
	})

	last := time.Now()
	for !window.ShouldClose() {
		input := inputAdapter.Update()
		glfw.PollEvents()

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(input, dt); err != nil {
			return fmt.Errorf("reorder frame: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// buildList adds the configured list to the scene: one colored row per
// entry, each with a handle strip that starts the drag.
func buildList(scene *reorder.Scene, cfg config.Config) {
	lc := cfg.List
	list := reorder.NewList("list",
		reorder.Rect{X: lc.X, Y: lc.Y, W: lc.Width, H: lc.ListHeight()},
		reorder.Gap(lc.Gap), reorder.Padding(lc.Padding))
	list.Color = reorder.ColorDarkGray
	scene.Root.AddChild(list)

	settled := func(row *reorder.Node, from, to int) {
		slog.Info("row moved", slog.String("row", row.Name), slog.Int("from", from), slog.Int("to", to))
	}

	for i := range lc.Rows {
		row := reorder.NewNode(fmt.Sprintf("row-%d", i+1))
		row.Color = rowColors[i%len(rowColors)]
		row.SetRect(reorder.Rect{H: lc.RowHeight})
		row.SetFlexibleWidth(true)
		list.AddChild(row)

		r := row.Rect()
		handle := reorder.NewNode(fmt.Sprintf("handle-%d", i+1))
		handle.Color = reorder.RGBA(235, 235, 235, 200)
		handle.SetRect(reorder.Rect{X: r.X, Y: r.Y, W: min(24, r.W), H: r.H})
		row.AddChild(handle)

		reorder.NewDragController(scene, handle,
			reorder.WithTuning(cfg.Drag),
			reorder.WithSettled(settled))
	}

	reorder.NewDropZone(list)
}

// setupLogging routes reorder diagnostics to stderr and, when configured,
// to a rotating JSON log file. The returned func closes the file.
func setupLogging(lc config.LoggingConfig, verbose bool) func() {
	reorder.SetVerbose(verbose || lc.Verbose)
	level := reorder.LogLevel()

	if lc.File == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return func() {}
	}

	w := &lj.Logger{Filename: lc.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	reorder.SetLogger(logger)
	slog.SetDefault(logger)

	return func() {
		if err := w.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "close log:", err)
		}
	}
}
