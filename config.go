package learngl

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the catalogue file name inside a shader directory.
const CatalogFile = "programs.yaml"

// WindowConfig holds the window creation parameters.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// Hidden creates the window invisible, for off-screen captures.
	Hidden bool `yaml:"-"`
}

// ShaderFiles names the GLSL sources of a program, relative to the catalogue.
type ShaderFiles struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// CameraConfig sets the starting camera and its speed.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up"`
	Speed    float32    `yaml:"speed"`
}

// RotationConfig sets the model rotation.
type RotationConfig struct {
	Rate   float32    `yaml:"rate"` // Degrees per second
	Axis   [3]float32 `yaml:"axis"`
	Offset [3]float32 `yaml:"offset"`
}

// ProjectionConfig sets the perspective projection.
type ProjectionConfig struct {
	FovY float32 `yaml:"fovy"` // Degrees
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

// TextureConfig describes the generated checkerboard texture.
type TextureConfig struct {
	Size  int        `yaml:"size"`
	Cells int        `yaml:"cells"`
	A     [4]float32 `yaml:"a"`
	B     [4]float32 `yaml:"b"`
}

// ProgramConfig describes one tutorial program.
type ProgramConfig struct {
	Name       string           `yaml:"-"`
	Window     WindowConfig     `yaml:"window"`
	ClearColor [4]float32       `yaml:"clear_color"`
	Layout     VertexLayout     `yaml:"layout"`
	Shaders    ShaderFiles      `yaml:"shaders"`
	Camera     CameraConfig     `yaml:"camera"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Projection ProjectionConfig `yaml:"projection"`
	Texture    TextureConfig    `yaml:"texture"`

	// Loaded from Shaders by LoadCatalog.
	VertexSource   string `yaml:"-"`
	FragmentSource string `yaml:"-"`
}

// DefaultProgramConfig returns the values used for fields a catalogue
// entry leaves out.
func DefaultProgramConfig() ProgramConfig {
	return ProgramConfig{
		Window:     WindowConfig{Width: 800, Height: 600, Title: "learngl"},
		ClearColor: [4]float32{0.498, 1.0, 0.831, 1.0},
		Layout:     LayoutColor,
		Camera: CameraConfig{
			Position: [3]float32{0, 0, 3},
			Up:       [3]float32{0, 1, 0},
			Speed:    1,
		},
		Rotation:   RotationConfig{Rate: 45, Axis: [3]float32{0.5, 1, 0}},
		Projection: ProjectionConfig{FovY: 45, Near: 0.1, Far: 100},
		Texture: TextureConfig{
			Size:  256,
			Cells: 8,
			A:     [4]float32{1, 1, 1, 1},
			B:     [4]float32{0.2, 0.2, 0.2, 1},
		},
	}
}

// Validate checks the values that would make the program unusable.
func (c ProgramConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("program %q: window size %dx%d must be positive", c.Name, c.Window.Width, c.Window.Height)
	case !c.Layout.Valid():
		return fmt.Errorf("program %q: unknown vertex layout %q", c.Name, c.Layout)
	case c.Shaders.Vertex == "" || c.Shaders.Fragment == "":
		return fmt.Errorf("program %q: both vertex and fragment shaders are required", c.Name)
	case c.Projection.Near <= 0 || c.Projection.Near >= c.Projection.Far:
		return fmt.Errorf("program %q: need 0 < near < far, got near=%v far=%v", c.Name, c.Projection.Near, c.Projection.Far)
	case c.Projection.FovY <= 0 || c.Projection.FovY >= 180:
		return fmt.Errorf("program %q: fovy %v out of range (0, 180)", c.Name, c.Projection.FovY)
	case c.Camera.Speed < 0:
		return fmt.Errorf("program %q: negative camera speed %v", c.Name, c.Camera.Speed)
	case mgl32.Vec3(c.Camera.Position) == mgl32.Vec3(c.Camera.Target):
		return fmt.Errorf("program %q: camera position and target coincide", c.Name)
	}
	return nil
}

// SceneOptions converts the camera, rotation and projection settings.
func (c ProgramConfig) SceneOptions() []SceneOption {
	return []SceneOption{
		WithCamera(Camera{
			Position: mgl32.Vec3(c.Camera.Position),
			Target:   mgl32.Vec3(c.Camera.Target),
			Up:       mgl32.Vec3(c.Camera.Up),
		}),
		WithSpeed(c.Camera.Speed),
		WithRotation(c.Rotation.Rate, mgl32.Vec3(c.Rotation.Axis)),
		WithModelOffset(mgl32.Vec3(c.Rotation.Offset)),
		WithPerspective(c.Projection.FovY, c.Projection.Near, c.Projection.Far),
		WithViewport(c.Window.Width, c.Window.Height),
	}
}

// NewScene builds the scene described by c.
func (c ProgramConfig) NewScene() *Scene {
	return NewScene(c.SceneOptions()...)
}

// Catalog is a set of named program configurations.
type Catalog struct {
	programs map[string]ProgramConfig
}

// LoadCatalog reads dir/programs.yaml from fsys together with the shader
// sources it references. Every entry is validated.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, CatalogFile))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var raw struct {
		Programs map[string]yaml.Node `yaml:"programs"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(raw.Programs) == 0 {
		return nil, fmt.Errorf("catalog %s: no programs defined", path.Join(dir, CatalogFile))
	}

	cat := &Catalog{programs: make(map[string]ProgramConfig, len(raw.Programs))}
	for name, node := range raw.Programs {
		cfg := DefaultProgramConfig()
		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("program %q: %w", name, err)
		}
		cfg.Name = name
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		vs, err := fs.ReadFile(fsys, path.Join(dir, cfg.Shaders.Vertex))
		if err != nil {
			return nil, fmt.Errorf("program %q: vertex shader: %w", name, err)
		}
		fsrc, err := fs.ReadFile(fsys, path.Join(dir, cfg.Shaders.Fragment))
		if err != nil {
			return nil, fmt.Errorf("program %q: fragment shader: %w", name, err)
		}
		cfg.VertexSource = string(vs)
		cfg.FragmentSource = string(fsrc)

		cat.programs[name] = cfg
	}
	return cat, nil
}

// Program returns the named program configuration.
func (c *Catalog) Program(name string) (ProgramConfig, error) {
	cfg, ok := c.programs[name]
	if !ok {
		return ProgramConfig{}, fmt.Errorf("program %q not found in catalog (have %v)", name, c.Names())
	}
	return cfg, nil
}

// Names returns the program names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.programs))
	for name := range c.programs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
