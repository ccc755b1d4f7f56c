// Example opens a window and draws the demo scenes: a rotating triangle,
// two lines of bitmap-font text and a checkerboard sprite.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Keys: Q shrinks the sprite, E grows it, Escape quits.
//
// Flags:
//
//	-scene   scene to draw alone (triangle, text, sprite); empty draws all
//	-verbose log resource lifecycle events
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/backend/opengl"
	"github.com/go-theft-auto/gfx/internal/demo"
)

const windowTitle = "gfx example"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	scene := flag.String("scene", "", "draw only this scene")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	gfx.SetVerbose(*verbose)

	if err := run(*width, *height, *scene); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height int, only string) error {
	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	window, err := opengl.NewWindow(windowTitle, width, height, opengl.WindowOptions{VSync: true})
	if err != nil {
		return err
	}
	defer window.Destroy()

	d, err := opengl.New()
	if err != nil {
		return err
	}

	names := demo.Names
	if only != "" {
		names = []string{only}
	}

	var (
		scenes []demo.Scene
		sprite *demo.Sprite
	)
	defer func() {
		for _, s := range scenes {
			s.Delete()
		}
	}()
	for _, name := range names {
		s, err := demo.New(d, name)
		if err != nil {
			return fmt.Errorf("scene %s: %w", name, err)
		}
		scenes = append(scenes, s)
		if sp, ok := s.(*demo.Sprite); ok {
			sprite = sp
		}
	}

	fbw, fbh := window.FramebufferSize()
	camera := gfx.NewCamera(fbw, fbh)
	gfx.ResizeViewport(d, fbw, fbh)
	gfx.SetClearColor(d, 0.12, 0.12, 0.14, 1.0)

	for !window.ShouldClose() {
		window.PollEvents()

		if window.Resized() {
			fbw, fbh = window.FramebufferSize()
			camera.Resize(fbw, fbh)
			gfx.ResizeViewport(d, fbw, fbh)
		}
		if window.Pressed(glfw.KeyEscape) {
			window.SetShouldClose(true)
		}
		if sprite != nil {
			if window.Pressed(glfw.KeyQ) {
				sprite.Shrink()
			}
			if window.Pressed(glfw.KeyE) {
				sprite.Grow()
			}
		}

		gfx.Clear(d, gfx.ClearColor|gfx.ClearDepth)

		frame := demo.Frame{Time: float32(window.Time()), Camera: camera}
		for _, s := range scenes {
			if err := s.Draw(frame); err != nil {
				return fmt.Errorf("draw %s: %w", s.Name(), err)
			}
		}

		gfx.DrainErrors(d)
		window.SwapBuffers()
	}

	return nil
}
