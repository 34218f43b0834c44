// Example draws a scene described by a YAML file, or a built-in shape when
// -config is empty, and slides it up and down with a "position" uniform.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Esc closes the window; hold Tab to see the wireframe.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/backend/opengl"
	"github.com/go-theft-auto/render/scene"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "example/scene.yaml", "scene file; empty draws the built-in shape")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	render.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// drawer is what the main loop draws each frame.
type drawer interface {
	Draw(position float32)
	Delete()
}

func run(configPath string) error {
	cfg := scene.DefaultConfig()
	if configPath != "" {
		loaded, err := scene.Load(configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	win, err := opengl.NewWindow(
		opengl.WithSize(cfg.Window.Width, cfg.Window.Height),
		opengl.WithTitle(cfg.Window.Title),
		opengl.WithVSync(cfg.Window.VSync),
	)
	if err != nil {
		return err
	}
	defer win.Close()
	dev := win.Device()

	var d drawer
	if configPath != "" {
		s, err := scene.Build(dev, &cfg)
		if err != nil {
			return fmt.Errorf("build scene: %w", err)
		}
		d = sceneDrawer{s}
	} else {
		d, err = newBuiltin(dev)
		if err != nil {
			return fmt.Errorf("built-in shape: %w", err)
		}
	}
	defer d.Delete()

	// The shape bounces between -1 and 1 at one unit per second.
	var (
		position float32
		dir      float32 = 1
		last             = win.Time()
	)
	for !win.ShouldClose() {
		now := win.Time()
		delta := float32(now - last)
		last = now

		position += dir * delta
		if position >= 1 || position <= -1 {
			dir = -dir
		}

		dev.Clear(cfg.ClearColor)
		d.Draw(position)

		win.SwapBuffers()
		win.PollEvents()
	}
	return nil
}

type sceneDrawer struct {
	s *scene.Scene
}

func (d sceneDrawer) Draw(position float32) {
	d.s.Material.Bind()
	d.s.Material.SetFloat("position", position)
	d.s.Object.Draw(d.s.Count())
}

func (d sceneDrawer) Delete() { d.s.Delete() }
