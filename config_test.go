package learngl_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := learngl.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error: %v", err)
	}

	names := cat.Names()
	if len(names) != 2 || names[0] != "camera" || names[1] != "cube" {
		t.Fatalf("names = %v, want [camera cube]", names)
	}

	cam, err := cat.Program("camera")
	if err != nil {
		t.Fatal(err)
	}
	if cam.Window != (learngl.WindowConfig{Width: 800, Height: 600, Title: "LearnCamera"}) {
		t.Errorf("camera window = %+v", cam.Window)
	}
	if cam.Layout != learngl.LayoutColor {
		t.Errorf("camera layout = %q", cam.Layout)
	}
	if !strings.Contains(cam.VertexSource, "uniform mat4 view;") {
		t.Error("camera vertex shader does not declare the view uniform")
	}

	cube, err := cat.Program("cube")
	if err != nil {
		t.Fatal(err)
	}
	if cube.Layout != learngl.LayoutTextured {
		t.Errorf("cube layout = %q", cube.Layout)
	}
	if !strings.Contains(cube.FragmentSource, "texture1") {
		t.Error("cube fragment shader does not sample texture1")
	}

	if _, err := cat.Program("missing"); err == nil {
		t.Error("expected error for unknown program")
	}
}

const minimalCatalog = `
programs:
  tiny:
    window:
      title: Tiny
    shaders:
      vertex: a.vert
      fragment: a.frag
`

func shaderFS(catalog string) fstest.MapFS {
	return fstest.MapFS{
		"programs.yaml": {Data: []byte(catalog)},
		"a.vert":        {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"a.frag":        {Data: []byte("#version 410 core\nvoid main() {}\n")},
	}
}

func TestLoadCatalogDefaults(t *testing.T) {
	cat, err := learngl.LoadCatalog(shaderFS(minimalCatalog), ".")
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	cfg, err := cat.Program("tiny")
	if err != nil {
		t.Fatal(err)
	}

	def := learngl.DefaultProgramConfig()
	if cfg.Name != "tiny" || cfg.Window.Title != "Tiny" {
		t.Errorf("name/title = %q/%q", cfg.Name, cfg.Window.Title)
	}
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("window size = %dx%d, want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera != def.Camera || cfg.Rotation != def.Rotation || cfg.Projection != def.Projection {
		t.Error("unset sections did not keep defaults")
	}
	if cfg.ClearColor != def.ClearColor {
		t.Errorf("clear color = %v", cfg.ClearColor)
	}
	if cfg.VertexSource == "" || cfg.FragmentSource == "" {
		t.Error("shader sources not loaded")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{"no file", fstest.MapFS{}, "read catalog"},
		{"bad yaml", shaderFS("programs: [\n"), "parse catalog"},
		{"empty", shaderFS("programs: {}\n"), "no programs"},
		{"bad size", shaderFS(`
programs:
  p:
    window: {width: 0, height: 600}
    shaders: {vertex: a.vert, fragment: a.frag}
`), "must be positive"},
		{"bad layout", shaderFS(`
programs:
  p:
    layout: normals
    shaders: {vertex: a.vert, fragment: a.frag}
`), "unknown vertex layout"},
		{"missing shader name", shaderFS(`
programs:
  p:
    shaders: {vertex: a.vert}
`), "both vertex and fragment"},
		{"missing shader file", shaderFS(`
programs:
  p:
    shaders: {vertex: a.vert, fragment: nope.frag}
`), "fragment shader"},
		{"near past far", shaderFS(`
programs:
  p:
    shaders: {vertex: a.vert, fragment: a.frag}
    projection: {near: 10, far: 1}
`), "near < far"},
		{"short vector", shaderFS(`
programs:
  p:
    shaders: {vertex: a.vert, fragment: a.frag}
    camera: {position: [1, 2]}
`), `program "p"`},
		{"camera on target", shaderFS(`
programs:
  p:
    shaders: {vertex: a.vert, fragment: a.frag}
    camera: {position: [0, 0, 0]}
`), "coincide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := learngl.LoadCatalog(tt.fsys, ".")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestProgramConfigScene(t *testing.T) {
	cfg := learngl.DefaultProgramConfig()
	cfg.Window.Width, cfg.Window.Height = 1200, 600
	cfg.Camera.Position = [3]float32{1, 2, 5}
	cfg.Camera.Speed = 2
	cfg.Rotation.Rate = 30

	s := cfg.NewScene()
	if s.Camera.Position != (mgl32.Vec3{1, 2, 5}) {
		t.Errorf("camera position = %v", s.Camera.Position)
	}
	if s.Speed != 2 || s.RotationRate != 30 {
		t.Errorf("speed/rate = %v/%v", s.Speed, s.RotationRate)
	}
	if s.Aspect() != 2 {
		t.Errorf("aspect = %v, want 2", s.Aspect())
	}

	s.Update(nil, 2)
	if s.Angle() != 60 {
		t.Errorf("angle = %v, want 60", s.Angle())
	}
}
