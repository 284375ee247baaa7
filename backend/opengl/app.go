package opengl

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
)

// Run opens the program's window, uploads the cube matching its vertex
// layout, and runs the frame loop until the window closes.
func Run(cfg learngl.ProgramConfig, logger *slog.Logger) error {
	win, err := OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	logger.Info("context ready",
		"program", cfg.Name,
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	assets, err := LoadAssets(cfg)
	if err != nil {
		return err
	}
	defer assets.Delete()

	scene := cfg.NewScene()
	scene.Resize(win.FramebufferSize())
	win.OnResize(scene.Resize)

	loop := learngl.NewLoop(win, assets.Renderer, scene, learngl.WithLogger(logger))
	if err := loop.Run(); err != nil {
		return fmt.Errorf("frame %d: %w", loop.Frames(), err)
	}
	logger.Info("window closed", "program", cfg.Name, "frames", loop.Frames())
	return nil
}

// Assets holds the GPU resources of one program.
type Assets struct {
	Mesh     *Mesh
	Texture  *Texture // nil for the color layout
	Renderer *Renderer
}

// LoadAssets uploads the cube for cfg's vertex layout, generates its
// texture if the layout has UVs, and builds the shader program. A GL
// context must be current.
func LoadAssets(cfg learngl.ProgramConfig) (*Assets, error) {
	a := &Assets{}

	var err error
	switch cfg.Layout {
	case learngl.LayoutTextured:
		a.Mesh, err = NewMesh(learngl.TexturedCube())
		if err == nil {
			a.Texture = NewTexture(cfg.Texture.Image())
		}
	default:
		a.Mesh, err = NewMesh(learngl.ColoredCube())
	}
	if err != nil {
		return nil, err
	}

	a.Renderer, err = NewRenderer(cfg, a.Mesh, a.Texture)
	if err != nil {
		a.Delete()
		return nil, err
	}
	return a, nil
}

// Delete releases everything LoadAssets created.
func (a *Assets) Delete() {
	if a.Renderer != nil {
		a.Renderer.Delete()
	}
	if a.Texture != nil {
		a.Texture.Delete()
	}
	if a.Mesh != nil {
		a.Mesh.Delete()
	}
}

// ReadFramebuffer reads the bottom-left width x height pixels of the
// current framebuffer into an image with the top row first.
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	learngl.FlipVertical(img)
	return img
}
