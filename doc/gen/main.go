// Command gen renders every demo scene offscreen, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
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

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/backend/opengl"
	"github.com/go-theft-auto/gfx/internal/demo"
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

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	scene  string  // demo scene name, also the filename without extension
	width  int     // viewport width
	height int     // viewport height
	time   float32 // scene time in seconds
}

func run() error {
	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	window, err := opengl.NewWindow("screenshot-gen", 800, 600, opengl.WindowOptions{Hidden: true})
	if err != nil {
		return err
	}
	defer window.Destroy()

	d, err := opengl.New()
	if err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{scene: "triangle", width: 400, height: 400, time: 0.6},
		{scene: "text", width: 640, height: 200, time: 1.25},
		{scene: "sprite", width: 400, height: 400},
	}

	for _, s := range shots {
		if err := capture(d, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.scene, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.scene, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(d *opengl.Driver, s screenshot, outDir string) error {
	// The hidden window stays at 800×600, larger than every screenshot; only
	// the viewport changes.
	scene, err := demo.New(d, s.scene)
	if err != nil {
		return err
	}
	defer scene.Delete()

	camera := gfx.NewCamera(s.width, s.height)
	gfx.ResizeViewport(d, s.width, s.height)
	gfx.SetClearColor(d, 0.12, 0.12, 0.14, 1.0)
	gfx.Clear(d, gfx.ClearColor|gfx.ClearDepth)
	if err := scene.Draw(demo.Frame{Time: s.time, Camera: camera}); err != nil {
		return err
	}
	if n := gfx.DrainErrors(d); n > 0 {
		return fmt.Errorf("%d driver errors while drawing", n)
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	d.ReadPixels(0, 0, int32(s.width), int32(s.height), pixels)

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.scene+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
