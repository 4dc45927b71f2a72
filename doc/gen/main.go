// Command gen plays scripted drags against a sample list, captures the
// framebuffer at each phase, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/reorder"
	"github.com/go-theft-auto/reorder/backend/opengl"
)

const (
	shotWidth  = 320
	shotHeight = 280
	frameDT    = 1.0 / 60.0
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pointer is the scripted input for one frame.
type pointer struct {
	x, y float32
	down bool
}

// screenshot defines a single capture: the frames to play, then grab.
type screenshot struct {
	name   string    // filename without extension
	script []pointer // one entry per frame
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(shotWidth, shotHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("reorder renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotWidth, shotHeight)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Fresh scene per screenshot to avoid state leaking between captures.
	scene := reorder.NewScene(reorder.Vec2{X: shotWidth, Y: shotHeight})
	sampleList(scene)
	ui := reorder.New(renderer, scene)
	input := reorder.NewInputState()

	// Always draw at least one frame.
	script := s.script
	if len(script) == 0 {
		script = []pointer{{}}
	}

	for _, p := range script {
		gl.Viewport(0, 0, shotWidth, shotHeight)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		input.SetMousePos(p.x, p.y)
		input.SetMouseButton(reorder.MouseButtonLeft, p.down)
		if err := ui.Frame(input, frameDT); err != nil {
			return err
		}
		input.Reset()
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// sampleList builds five rows of 40px at (20, 20) with a 4px gap.
// Row i's handle centre is at (32, 44 + 44*i).
func sampleList(scene *reorder.Scene) {
	colors := []uint32{
		reorder.RGBA(196, 72, 72, 255),
		reorder.RGBA(214, 140, 60, 255),
		reorder.RGBA(200, 190, 70, 255),
		reorder.RGBA(86, 170, 90, 255),
		reorder.RGBA(70, 140, 200, 255),
	}

	list := reorder.NewList("list", reorder.Rect{X: 20, Y: 20, W: 280, H: 240}, reorder.Gap(4))
	list.Color = reorder.ColorDarkGray
	scene.Root.AddChild(list)

	for i, c := range colors {
		row := reorder.NewNode(fmt.Sprintf("row-%d", i+1))
		row.Color = c
		row.SetRect(reorder.Rect{H: 40})
		row.SetFlexibleWidth(true)
		list.AddChild(row)

		r := row.Rect()
		handle := reorder.NewNode(fmt.Sprintf("handle-%d", i+1))
		handle.Color = reorder.RGBA(235, 235, 235, 200)
		handle.SetRect(reorder.Rect{X: r.X, Y: r.Y, W: 24, H: r.H})
		row.AddChild(handle)

		reorder.NewDragController(scene, handle)
	}
	reorder.NewDropZone(list)
}

// hold repeats p for n frames.
func hold(p pointer, n int) []pointer {
	out := make([]pointer, n)
	for i := range out {
		out[i] = p
	}
	return out
}

// dragScript grabs row 1, lets the placeholder collapse, moves below row 3,
// and optionally releases. extra frames are played at the end.
func dragScript(moveFrames int, release bool, extra int) []pointer {
	var s []pointer
	s = append(s, pointer{x: 32, y: 44, down: true})
	s = append(s, hold(pointer{x: 32, y: 60, down: true}, 10)...)
	s = append(s, hold(pointer{x: 40, y: 150, down: true}, moveFrames)...)
	last := pointer{x: 40, y: 150, down: !release}
	s = append(s, last)
	s = append(s, hold(pointer{x: 40, y: 150}, extra)...)
	return s
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "idle"},
		{
			name: "collapsed",
			script: append([]pointer{{x: 32, y: 44, down: true}},
				hold(pointer{x: 32, y: 60, down: true}, 10)...),
		},
		{name: "placeholder_growing", script: dragScript(3, false, 0)},
		{name: "placeholder_moved", script: dragScript(12, false, 0)},
		{name: "settling", script: dragScript(12, true, 2)},
		{name: "settled", script: dragScript(12, true, 20)},
	}
}
