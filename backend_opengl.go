package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// OpenGLPeer is the OpenGL hardware peer backend: spec §1 acknowledges a
// rasterizer implementation can swap in a hardware backend behind the same
// Renderer surface, but the hardware rendering path itself is out of scope.
// This peer only proves the window/clear/swap contract; it does not
// reimplement the software pipeline's shading on the GPU.
// Grounded on OpenGLRenderer in renderer_opengl.go, trimmed to the
// window/context/clear/swap lifecycle.
type OpenGLPeer struct {
	window *glfw.Window
	width  int
	height int
}

func NewOpenGLPeer(width, height int) *OpenGLPeer {
	return &OpenGLPeer{width: width, height: height}
}

func (p *OpenGLPeer) Initialize() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(p.width, p.height, "software-rasterizer (OpenGL peer)", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	p.window = window
	p.window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize opengl: %w", err)
	}

	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	return nil
}

func (p *OpenGLPeer) Shutdown() {
	if p.window != nil {
		p.window.Destroy()
	}
	glfw.Terminate()
}

func (p *OpenGLPeer) BeginFrame() {
	clear := UnpackARGB32(clearColorARGB)
	gl.ClearColor(float32(clear.R), float32(clear.G), float32(clear.B), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// RenderScene is a no-op on this peer: the hardware shading path is out of
// scope, per spec §1/§4.12. The peer only proves window/clear/swap.
func (p *OpenGLPeer) RenderScene(scene *Scene, camera *Camera, settings *Settings) {}

func (p *OpenGLPeer) EndFrame() {}

func (p *OpenGLPeer) Present() {
	p.window.SwapBuffers()
	glfw.PollEvents()
}
