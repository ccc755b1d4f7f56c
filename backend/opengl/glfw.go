package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions configures NewWindow.
type WindowOptions struct {
	// Hidden creates an invisible window, for offscreen capture.
	Hidden bool
	// VSync enables a swap interval of one frame.
	VSync bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context. It tracks
// framebuffer resizes and key presses between frames.
type Window struct {
	window *glfw.Window

	fbWidth, fbHeight int
	resized           bool
	pressed           map[glfw.Key]bool
}

// Init initializes GLFW. It must be called on the main thread, which the
// caller should lock with runtime.LockOSThread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// Terminate releases all GLFW resources.
func Terminate() { glfw.Terminate() }

// NewWindow creates a window and makes its context current.
func NewWindow(title string, width, height int, opts WindowOptions) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	}

	w := &Window{window: window, pressed: make(map[glfw.Key]bool)}
	w.fbWidth, w.fbHeight = window.GetFramebufferSize()

	window.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	window.SetKeyCallback(w.keyCallback)
	return w, nil
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.window.ShouldClose() }

// SetShouldClose requests the main loop to end.
func (w *Window) SetShouldClose(v bool) { w.window.SetShouldClose(v) }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.window.SwapBuffers() }

// PollEvents processes pending events. Key presses recorded by the previous
// frame are cleared first.
func (w *Window) PollEvents() {
	clear(w.pressed)
	w.resized = false
	glfw.PollEvents()
}

// FramebufferSize returns the framebuffer size in pixels, which differs from
// the window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) { return w.fbWidth, w.fbHeight }

// Resized reports whether the framebuffer changed size during the last
// PollEvents.
func (w *Window) Resized() bool { return w.resized }

// Down reports whether key is currently held.
func (w *Window) Down(key glfw.Key) bool {
	return w.window.GetKey(key) == glfw.Press
}

// Pressed reports whether key was pressed or auto-repeated during the last
// PollEvents.
func (w *Window) Pressed(key glfw.Key) bool { return w.pressed[key] }

// Time returns the seconds elapsed since GLFW was initialized.
func (w *Window) Time() float64 { return glfw.GetTime() }

// Destroy closes the window and its context.
func (w *Window) Destroy() { w.window.Destroy() }

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.fbWidth, w.fbHeight = width, height
	w.resized = true
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press, glfw.Repeat:
		w.pressed[key] = true
	}
}
