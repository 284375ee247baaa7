// Command gen renders every catalogue program off-screen at a few points in
// time, captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
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
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

// Seconds of scene time at which each program is captured.
var captureTimes = []float32{0, 1, 2}

// Fixed frame step, so captures do not depend on the machine.
const frameStep = float32(1.0 / 60.0)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	catalog, err := learngl.DefaultCatalog()
	if err != nil {
		return err
	}

	for _, name := range catalog.Names() {
		cfg, err := catalog.Program(name)
		if err != nil {
			return err
		}
		if err := captureProgram(cfg, outDir); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func captureProgram(cfg learngl.ProgramConfig, outDir string) error {
	cfg.Window.Hidden = true
	win, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	assets, err := opengl.LoadAssets(cfg)
	if err != nil {
		return err
	}
	defer assets.Delete()

	// Only the scene projection follows the framebuffer; the hidden window
	// is never resized.
	width, height := win.FramebufferSize()
	scene := cfg.NewScene()
	scene.Resize(width, height)
	input := learngl.NewInputState()

	for _, at := range captureTimes {
		for scene.Elapsed()+frameStep <= at {
			scene.Update(input, frameStep)
		}
		if err := assets.Renderer.Render(scene.Update(input, 0)); err != nil {
			return err
		}

		img := opengl.ReadFramebuffer(width, height)
		path := filepath.Join(outDir, fmt.Sprintf("%s_%03.0f.jpg", cfg.Name, at*100))
		if err := writeJPEG(path, img); err != nil {
			return err
		}
		slog.Info("captured", "program", cfg.Name, "t", at, "path", path)
	}
	return nil
}

func writeJPEG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
