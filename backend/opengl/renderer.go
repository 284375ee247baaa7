// Package opengl provides the OpenGL 4.1 / GLFW backend for the learngl
// programs.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/learngl"
)

// ShaderError reports a shader compile or program link failure together
// with the driver's info log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("shader program linking failed: %s", e.Log)
	}
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// Program is a linked shader program with its transform uniforms resolved.
type Program struct {
	id       uint32
	modelLoc int32
	viewLoc  int32
	projLoc  int32
	texLoc   int32
}

// NewProgram compiles and links a vertex/fragment pair and looks up the
// model, view and projection uniforms once. Uniforms the shaders do not use
// resolve to -1 and are skipped by OpenGL when set.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}

	return &Program{
		id:       id,
		modelLoc: gl.GetUniformLocation(id, gl.Str("model\x00")),
		viewLoc:  gl.GetUniformLocation(id, gl.Str("view\x00")),
		projLoc:  gl.GetUniformLocation(id, gl.Str("projection\x00")),
		texLoc:   gl.GetUniformLocation(id, gl.Str("texture1\x00")),
	}, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetTransforms uploads the three matrices. The program must be in use.
func (p *Program) SetTransforms(t learngl.Transforms) {
	gl.UniformMatrix4fv(p.modelLoc, 1, false, &t.Model[0])
	gl.UniformMatrix4fv(p.viewLoc, 1, false, &t.View[0])
	gl.UniformMatrix4fv(p.projLoc, 1, false, &t.Projection[0])
}

// HasTexture reports whether the fragment shader samples texture1.
func (p *Program) HasTexture() bool {
	return p.texLoc >= 0
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Renderer draws one mesh with one program and an optional texture.
// It implements learngl.Renderer.
type Renderer struct {
	program    *Program
	mesh       *Mesh
	texture    *Texture
	clearColor [4]float32
}

// NewRenderer builds a renderer for a program configuration and a mesh
// already validated by the caller. The texture may be nil.
func NewRenderer(cfg learngl.ProgramConfig, mesh *Mesh, texture *Texture) (*Renderer, error) {
	program, err := NewProgram(cfg.VertexSource, cfg.FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", cfg.Name, err)
	}

	if texture != nil && program.HasTexture() {
		program.Use()
		gl.Uniform1i(program.texLoc, 0)
	}

	return &Renderer{
		program:    program,
		mesh:       mesh,
		texture:    texture,
		clearColor: cfg.ClearColor,
	}, nil
}

// Render clears the framebuffer, uploads t and issues one indexed draw call.
func (r *Renderer) Render(t learngl.Transforms) error {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetTransforms(t)

	if r.texture != nil {
		r.texture.Bind(0)
	}
	r.mesh.Draw()

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// Delete releases the program. Mesh and texture belong to the caller.
func (r *Renderer) Delete() {
	r.program.Delete()
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, &ShaderError{Stage: "link", Log: trimLog(log)}
	}

	// Shaders are linked into the program now; the deferred deletes only
	// flag them and the driver frees them with the program.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(nullTerminated(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: stage, Log: trimLog(log)}
	}
	return shader, nil
}

// nullTerminated appends the terminator gl.Strs expects.
func nullTerminated(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n ")
}
