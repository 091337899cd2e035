package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
)

// OverlayQuad is one flat-colored rectangle in normalized device
// coordinates, the overlay's only drawing primitive.
type OverlayQuad struct {
	X, Y, W, H float32
	Color      [4]float32
}

// Renderer owns all GPU resources: the two shader programs, the overlay
// quad, and every mesh buffer it has uploaded. Meshes are arena-owned
// here and released in a single Dispose walk; nothing relies on garbage
// collection for GPU-side cleanup.
type Renderer struct {
	width  int
	height int
	log    *logger.Logger

	sceneProgram   uint32
	overlayProgram uint32

	// Scene program uniforms
	uModel      int32
	uView       int32
	uProjection int32
	uColor      int32
	uFogColor   int32
	uFogDensity int32
	uCameraPos  int32

	// Overlay program uniforms
	uRect      int32
	uQuadColor int32

	quadVAO uint32
	quadVBO uint32

	uploaded []*Mesh
	disposed bool
}

// NewRenderer compiles the shader programs and prepares the overlay
// quad. Requires a current OpenGL context.
func NewRenderer(width, height int, log *logger.Logger) (*Renderer, error) {
	r := &Renderer{width: width, height: height, log: log}

	var err error
	if r.sceneProgram, err = createShaderProgram(sceneVertexShaderSource, sceneFragmentShaderSource); err != nil {
		return nil, fmt.Errorf("failed to build scene shader: %v", err)
	}
	if r.overlayProgram, err = createShaderProgram(overlayVertexShaderSource, overlayFragmentShaderSource); err != nil {
		return nil, fmt.Errorf("failed to build overlay shader: %v", err)
	}

	r.uModel = gl.GetUniformLocation(r.sceneProgram, gl.Str("model\x00"))
	r.uView = gl.GetUniformLocation(r.sceneProgram, gl.Str("view\x00"))
	r.uProjection = gl.GetUniformLocation(r.sceneProgram, gl.Str("projection\x00"))
	r.uColor = gl.GetUniformLocation(r.sceneProgram, gl.Str("objectColor\x00"))
	r.uFogColor = gl.GetUniformLocation(r.sceneProgram, gl.Str("fogColor\x00"))
	r.uFogDensity = gl.GetUniformLocation(r.sceneProgram, gl.Str("fogDensity\x00"))
	r.uCameraPos = gl.GetUniformLocation(r.sceneProgram, gl.Str("cameraPos\x00"))

	r.uRect = gl.GetUniformLocation(r.overlayProgram, gl.Str("rect\x00"))
	r.uQuadColor = gl.GetUniformLocation(r.overlayProgram, gl.Str("quadColor\x00"))

	r.setupOverlayQuad()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

// setupOverlayQuad creates the shared unit quad for overlay rendering
func (r *Renderer) setupOverlayQuad() {
	vertices := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 0,
		1, 1,
		0, 1,
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// BeginFrame clears the framebuffer with the atmosphere's clear color
func (r *Renderer) BeginFrame(atm Atmosphere) {
	gl.ClearColor(atm.ClearColor[0], atm.ClearColor[1], atm.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// RenderScene draws every mesh with the camera's matrices and the
// blended atmosphere. Meshes not yet on the GPU are uploaded here.
func (r *Renderer) RenderScene(scene *ShowcaseScene, cam *CameraController, atm Atmosphere) {
	gl.UseProgram(r.sceneProgram)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	pos := cam.Position()

	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.Uniform3f(r.uFogColor, atm.FogColor[0], atm.FogColor[1], atm.FogColor[2])
	gl.Uniform1f(r.uFogDensity, atm.FogDensity)
	gl.Uniform3f(r.uCameraPos, float32(pos.X), float32(pos.Y), float32(pos.Z))

	for _, mesh := range scene.Meshes() {
		r.drawMesh(mesh)
	}
}

func (r *Renderer) drawMesh(mesh *Mesh) {
	if !mesh.uploaded {
		r.uploadMesh(mesh)
	}

	model := Mat4TranslateScale(mesh.Position, mesh.Rotation, mesh.Scale)
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform3f(r.uColor, mesh.Color[0], mesh.Color[1], mesh.Color[2])

	gl.BindVertexArray(mesh.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(mesh.VertexCount()))
	gl.BindVertexArray(0)
}

// uploadMesh moves a mesh's vertices to the GPU and records it in the
// renderer's arena for disposal.
func (r *Renderer) uploadMesh(mesh *Mesh) {
	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)

	gl.BindVertexArray(mesh.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	mesh.uploaded = true
	r.uploaded = append(r.uploaded, mesh)
}

// RenderOverlay draws the flat UI quads on top of the scene
func (r *Renderer) RenderOverlay(quads []OverlayQuad) {
	if len(quads) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(r.overlayProgram)
	gl.BindVertexArray(r.quadVAO)

	for _, q := range quads {
		gl.Uniform4f(r.uRect, q.X, q.Y, q.W, q.H)
		gl.Uniform4f(r.uQuadColor, q.Color[0], q.Color[1], q.Color[2], q.Color[3])
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

// WarmUp forces both programs through the driver's compile path and
// draws one throwaway frame, so the first real frame after reveal does
// not stutter. The frame is never presented.
func (r *Renderer) WarmUp(scene *ShowcaseScene, cam *CameraController) error {
	gl.UseProgram(r.sceneProgram)
	gl.UseProgram(r.overlayProgram)

	r.BeginFrame(scene.AtmosphereAt(0))
	r.RenderScene(scene, cam, scene.AtmosphereAt(0))
	gl.Finish()

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return fmt.Errorf("warm-up render produced GL error 0x%x", errCode)
	}
	return nil
}

// Resize updates the viewport
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Dispose releases every GPU resource the renderer owns: uploaded mesh
// buffers, the overlay quad, and both programs. Idempotent.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true

	for _, mesh := range r.uploaded {
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteVertexArrays(1, &mesh.vao)
		mesh.uploaded = false
	}
	r.uploaded = nil

	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteProgram(r.sceneProgram)
	gl.DeleteProgram(r.overlayProgram)
}

// createShaderProgram links a vertex/fragment pair into a program
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", infoLog)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a single shader stage
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", infoLog)
	}

	return shader, nil
}
