// Package renderer draws the cube grid with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubegrid/internal/engine/mesh"
	"github.com/Faultbox/cubegrid/internal/engine/shader"
	"github.com/Faultbox/cubegrid/internal/logger"
	"github.com/Faultbox/cubegrid/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Color  [3]float32
}

// Renderer owns the cube program and its buffers.
type Renderer struct {
	config Config

	program   *shader.Program
	locModel  int32
	locCamera int32
	locColor  int32

	cubeVAO     uint32
	cubeVBO     uint32
	cubeIBO     uint32
	cubeIndices int32
}

// New creates a renderer. The OpenGL context must already be current.
func New(cfg Config) (_ *Renderer, err error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{config: cfg}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.program, err = shader.CompileProgram(shader.CubeVertexShader, shader.CubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	locs, err := r.program.Uniforms("model", "camera", "color")
	if err != nil {
		return nil, fmt.Errorf("program %d: %w", r.program.ID, err)
	}
	r.locModel, r.locCamera, r.locColor = locs[0], locs[1], locs[2]
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.uploadMesh(mesh.Cube())

	return r, nil
}

// uploadMesh creates the VAO with position attribute 0 and an index buffer.
func (r *Renderer) uploadMesh(m mesh.Mesh) {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.cubeIBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeIBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// The element buffer binding is VAO state; keep it bound
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.cubeIndices = int32(len(m.Indices))

	lo, hi := m.Bounds()
	logger.Debug("cube mesh uploaded",
		zap.Uint32("vao", r.cubeVAO),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", r.cubeIndices),
		zap.Float32("extent_x", hi.X-lo.X),
		zap.Float32("extent_y", hi.Y-lo.Y),
		zap.Float32("extent_z", hi.Z-lo.Z),
	)
}

// Close releases GL objects. Safe after a partially failed New.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		r.cubeVAO = 0
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
		r.cubeVBO = 0
	}
	if r.cubeIBO != 0 {
		gl.DeleteBuffers(1, &r.cubeIBO)
		r.cubeIBO = 0
	}
	if r.program != nil {
		gl.UseProgram(0)
		r.program.Delete()
		r.program = nil
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin clears the frame and binds the cube program and geometry.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
	gl.Uniform3fv(r.locColor, 1, &r.config.Color[0])
	gl.BindVertexArray(r.cubeVAO)
}

// SetCamera uploads the combined projection * view matrix.
func (r *Renderer) SetCamera(m math.Mat4) {
	gl.UniformMatrix4fv(r.locCamera, 1, false, m.Ptr())
}

// DrawCube draws one cube with the given model matrix.
func (r *Renderer) DrawCube(model math.Mat4) {
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.cubeIndices, gl.UNSIGNED_INT, 0)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
