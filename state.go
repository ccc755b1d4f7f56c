package gfx

// Clear clears the buffers selected by flags.
func Clear(d Driver, flags ClearFlags) {
	d.Clear(flags)
}

// SetClearColor sets the color used by Clear(ClearColor).
func SetClearColor(d Driver, r, g, b, a float32) {
	d.ClearColor(r, g, b, a)
}

// EnableDepth turns on depth testing.
func EnableDepth(d Driver) {
	d.Enable(DepthTest)
}

// EnableAlphaBlend turns on standard src-alpha blending.
func EnableAlphaBlend(d Driver) {
	d.Enable(Blend)
	d.BlendFunc(BlendSrcAlpha, BlendOneMinusSrcAlpha)
}

// ResizeViewport maps the viewport to a width×height framebuffer. Pass the
// framebuffer size, not the window size, on high-DPI displays.
func ResizeViewport(d Driver, width, height int) {
	d.Viewport(0, 0, int32(width), int32(height))
}

// DrainErrors polls the driver until it reports NoError, logging every
// pending error at warn level. It returns the number of errors drained.
// Driver errors are diagnostics only and are never returned as Go errors.
func DrainErrors(d Driver) int {
	n := 0
	// A lost context can report errors indefinitely.
	for n < maxDrainedErrors {
		code := d.GetError()
		if code == NoError {
			break
		}
		n++
		logger.Warn("driver error", "code", code.String())
	}
	return n
}

const maxDrainedErrors = 256
