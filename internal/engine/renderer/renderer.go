// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitfall/internal/engine/mesh"
	"github.com/Faultbox/orbitfall/internal/engine/scene"
	"github.com/Faultbox/orbitfall/internal/engine/shader"
	"github.com/Faultbox/orbitfall/internal/engine/shader/shaders"
	"github.com/Faultbox/orbitfall/internal/engine/texture"
	"github.com/Faultbox/orbitfall/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// vertexStride is the size of one interleaved mesh.Vertex in bytes.
const vertexStride = int32(unsafe.Sizeof(mesh.Vertex{}))

type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer owns the GL state: the Phong program, uploaded meshes and
// textures. It implements scene.Device.
type Renderer struct {
	config  Config
	program *shader.Program

	meshes   map[mesh.Shape]gpuMesh
	textures map[string]uint32
}

var _ scene.Device = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[mesh.Shape]gpuMesh),
		textures: make(map[string]uint32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	program, err := shader.NewProgram(shaders.PhongVertex, shaders.PhongFragment, scene.Uniforms...)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.program.Use()

	logger.Debug("shader program created", zap.Uint32("program", program.ID))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for shape, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		delete(r.meshes, shape)
	}
	for name, id := range r.textures {
		gl.DeleteTextures(1, &id)
		delete(r.textures, name)
	}
	if r.program != nil {
		r.program.Delete()
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

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row
// first.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.Size()
	if width <= 0 || height <= 0 {
		return nil, width, height
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// UploadMesh copies a geometry into a VAO/VBO pair. Attribute locations:
// 0 position, 1 normal, 2 texture coordinate.
func (r *Renderer) UploadMesh(g *mesh.Geometry) {
	if old, ok := r.meshes[g.Shape]; ok {
		gl.DeleteVertexArrays(1, &old.vao)
		gl.DeleteBuffers(1, &old.vbo)
	}

	var m gpuMesh
	m.count = int32(g.VertexCount())

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(vertexStride), unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(mesh.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(mesh.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(mesh.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.meshes[g.Shape] = m
	logger.Debug("mesh uploaded",
		zap.Stringer("shape", g.Shape),
		zap.Int32("vertices", m.count),
		zap.Uint32("vao", m.vao),
	)
}

// UploadTexture creates a mipmapped GL texture from decoded pixels.
func (r *Renderer) UploadTexture(img *texture.Image) {
	if old, ok := r.textures[img.Name]; ok {
		gl.DeleteTextures(1, &old)
	}

	wrap := int32(gl.REPEAT)
	if img.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	b := img.RGBA.Bounds()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.RGBA.Pix[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.textures[img.Name] = id
	logger.Debug("texture uploaded",
		zap.String("name", img.Name),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
}

// Draw issues the draw call for an uploaded mesh.
func (r *Renderer) Draw(shape mesh.Shape) {
	m, ok := r.meshes[shape]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (r *Renderer) SetUniformMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(r.program.Location(name), 1, false, &m[0])
}

func (r *Renderer) SetUniformVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(r.program.Location(name), 1, &v[0])
}

func (r *Renderer) SetUniformFloat(name string, v float32) {
	gl.Uniform1f(r.program.Location(name), v)
}

func (r *Renderer) SetUniformInt(name string, v int32) {
	gl.Uniform1i(r.program.Location(name), v)
}

// BindTexture binds a named texture to unit 0.
func (r *Renderer) BindTexture(name string) bool {
	id, ok := r.textures[name]
	if !ok {
		return false
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	return true
}

func (r *Renderer) UnbindTexture() {
	gl.BindTexture(gl.TEXTURE_2D, 0)
}
