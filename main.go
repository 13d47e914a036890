package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"
)

// EngineConfig holds the flag-derived configuration for one run: backend
// choice, window size, camera setup and the mesh/texture paths to load.
// Grounded on the teacher's EngineConfig, trimmed to what this pipeline
// actually exercises: there are no demo indices or terminal AA modes here,
// since the rasterizer is the thing under test, not a feature showcase.
type EngineConfig struct {
	Width, Height int
	FOVDegrees    float64
	Backend       BackendType
	MeshPath      string
	DiffusePath   string
	NormalPath    string
	SpecularPath  string
	GlossPath     string
	Transparent   bool
}

// BackendType selects which Renderer implementation drives the frame loop.
type BackendType int

const (
	BackendSoftware BackendType = iota
	BackendOpenGL
	BackendVulkan
)

func main() {
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	backendFlag := flag.String("backend", "software", "rendering backend: software, opengl, vulkan")
	width := flag.Int("width", 640, "framebuffer width")
	height := flag.Int("height", 480, "framebuffer height")
	fov := flag.Float64("fov", 60, "camera vertical field of view in degrees")
	meshPath := flag.String("mesh", "", "path to a triangulated mesh file (v/vn/vt/f records)")
	diffusePath := flag.String("diffuse", "", "path to a diffuse texture")
	normalPath := flag.String("normal", "", "path to a normal map")
	specularPath := flag.String("specular", "", "path to a specular map")
	glossPath := flag.String("gloss", "", "path to a gloss map")
	transparent := flag.Bool("transparent", false, "shade the mesh with the diffuse-only transparent material")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *meshPath == "" {
		fmt.Fprintln(os.Stderr, "usage: -mesh is required")
		os.Exit(1)
	}

	backend, err := parseBackend(*backendFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	config := EngineConfig{
		Width:        *width,
		Height:       *height,
		FOVDegrees:   *fov,
		Backend:      backend,
		MeshPath:     *meshPath,
		DiffusePath:  *diffusePath,
		NormalPath:   *normalPath,
		SpecularPath: *specularPath,
		GlossPath:    *glossPath,
		Transparent:  *transparent,
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func parseBackend(s string) (BackendType, error) {
	switch s {
	case "software", "":
		return BackendSoftware, nil
	case "opengl":
		return BackendOpenGL, nil
	case "vulkan":
		return BackendVulkan, nil
	default:
		return 0, fmt.Errorf("unknown backend %q (want software, opengl or vulkan)", s)
	}
}

// run wires the resource registry, scene, camera and chosen Renderer
// together and drives the frame loop until the toggle input requests a
// quit. Grounded on main.cpp's LoadResources/LoadScene/render loop, with
// the interactive camera controls left out per spec §2.
func run(config EngineConfig) error {
	registry := NewResourceRegistry()
	material, err := loadMaterial(registry, config)
	if err != nil {
		return err
	}

	vertices, indices, err := LoadMeshFile(config.MeshPath)
	if err != nil {
		return err
	}
	mesh := NewMesh(vertices, indices, material)

	scene := NewScene()
	scene.AddMesh(mesh)

	settings := NewSettings()

	aspect := float64(config.Width) / float64(config.Height)
	camera := NewCamera(Vec3{X: 0, Y: 0, Z: -10}, Vec3{X: 0, Y: 0, Z: 1}, aspect, config.FOVDegrees, 0.1, 1000)

	renderer, err := newRenderer(config)
	if err != nil {
		return err
	}
	if err := renderer.Initialize(); err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}
	defer renderer.Shutdown()

	input := NewToggleInput(settings)
	if err := input.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "keyboard toggles unavailable: %v\n", err)
	} else {
		defer input.Stop()
	}

	printControls()

	frameCount := 0
	fpsTimer := time.Now()
	fps := 0

	for !input.ShouldQuit() {
		renderer.BeginFrame()
		renderer.RenderScene(scene, camera, settings)
		renderer.EndFrame()
		renderer.Present()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps = frameCount
			frameCount = 0
			fpsTimer = time.Now()
		}

		if input.ConsumeFPSPrintRequest() {
			fmt.Printf("FPS: %d\n", fps)
		}
	}

	return nil
}

func loadMaterial(registry *ResourceRegistry, config EngineConfig) (Material, error) {
	diffuse, err := optionalTexture(registry, config.DiffusePath)
	if err != nil {
		return nil, err
	}

	if config.Transparent {
		return &TransparentMaterial{Diffuse: diffuse}, nil
	}

	normal, err := optionalTexture(registry, config.NormalPath)
	if err != nil {
		return nil, err
	}
	specular, err := optionalTexture(registry, config.SpecularPath)
	if err != nil {
		return nil, err
	}
	gloss, err := optionalTexture(registry, config.GlossPath)
	if err != nil {
		return nil, err
	}

	return &PhongMaterial{Diffuse: diffuse, Normal: normal, Specular: specular, Gloss: gloss}, nil
}

func optionalTexture(registry *ResourceRegistry, path string) (*Texture, error) {
	if path == "" {
		return nil, nil
	}
	return registry.LoadTexture(path)
}

func newRenderer(config EngineConfig) (Renderer, error) {
	switch config.Backend {
	case BackendSoftware:
		return NewSoftwareRasterizer(config.Width, config.Height), nil
	case BackendOpenGL:
		return NewOpenGLPeer(config.Width, config.Height), nil
	case BackendVulkan:
		return NewVulkanPeer(config.Width, config.Height), nil
	default:
		return nil, fmt.Errorf("unsupported backend %v", config.Backend)
	}
}

func printControls() {
	fmt.Println("Render Settings:")
	fmt.Println("  T - toggle transparency")
	fmt.Println("  C - toggle culling (mesh-based/none/backface/frontface)")
	fmt.Println("  R - toggle render mode")
	fmt.Println("  F - toggle filter mode")
	fmt.Println("  P - print FPS")
	fmt.Println("  Esc/X - quit")
}
