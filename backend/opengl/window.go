package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/render"
)

// Window is a GLFW window with a current OpenGL 4.1 core context and the
// Device drawing into it. Esc closes the window and holding Tab draws in
// wireframe.
type Window struct {
	win       *glfw.Window
	dev       *Device
	wireframe bool
}

// WindowOption configures a Window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	width, height int
	title         string
	vsync         bool
}

// WithSize sets the initial window size. Default is 800x600.
func WithSize(width, height int) WindowOption {
	return func(c *windowConfig) { c.width, c.height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(c *windowConfig) { c.title = title }
}

// WithVSync enables or disables waiting for vertical sync. Default is on.
func WithVSync(on bool) WindowOption {
	return func(c *windowConfig) { c.vsync = on }
}

// NewWindow initializes GLFW, opens a window and makes its context current.
// It must be called from the main thread, which must stay locked.
func NewWindow(opts ...WindowOption) (*Window, error) {
	cfg := windowConfig{width: 800, height: 600, title: "render", vsync: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win, dev: NewDevice()}
	win.SetKeyCallback(w.keyCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)

	fbw, fbh := win.GetFramebufferSize()
	w.dev.Viewport(fbw, fbh)

	render.Logger().Info("opengl context ready",
		"version", w.dev.Version(),
		"max_vertex_attribs", w.dev.MaxVertexAttribs(),
		"width", fbw, "height", fbh)
	return w, nil
}

// Device returns the device for the window's context.
func (w *Window) Device() *Device { return w.dev }

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// Wireframe reports whether wireframe mode is on.
func (w *Window) Wireframe() bool { return w.wireframe }

// FramebufferSize returns the framebuffer size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// PollEvents processes pending window events.
func (w *Window) PollEvents() { glfw.PollEvents() }

// Time returns seconds since GLFW was initialized.
func (w *Window) Time() float64 { return glfw.GetTime() }

// Close destroys the window and terminates GLFW. Later calls do nothing.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch {
	case key == glfw.KeyEscape && action == glfw.Press:
		win.SetShouldClose(true)
	case key == glfw.KeyTab && action != glfw.Repeat:
		w.wireframe = action == glfw.Press
		w.dev.SetWireframe(w.wireframe)
		render.Logger().Debug("wireframe", "on", w.wireframe)
	}
}

func (w *Window) framebufferSizeCallback(win *glfw.Window, width, height int) {
	w.dev.Viewport(width, height)
}
