package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// VulkanPeer is the Vulkan hardware peer backend, acknowledged by spec
// §1/§4.12 as a swappable alternative to the software rasterizer but not
// specified in depth: it stands up a real GLFW window, Vulkan instance and
// window surface, without reimplementing shading. It creates no logical
// device or swapchain, so BeginFrame clears nothing and Present only polls
// window events.
// Grounded on VulkanRenderer in renderer_vulkan.go, trimmed to instance
// creation, surface creation and the present loop.
type VulkanPeer struct {
	window   *glfw.Window
	width    int
	height   int
	instance vk.Instance
	surface  vk.Surface
}

func NewVulkanPeer(width, height int) *VulkanPeer {
	return &VulkanPeer{width: width, height: height}
}

func (p *VulkanPeer) Initialize() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(p.width, p.height, "software-rasterizer (Vulkan peer)", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	p.window = window

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return fmt.Errorf("initialize vulkan loader: %w", err)
	}

	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.MakeVersion(1, 0, 0),
		PApplicationName:   "software-rasterizer\x00",
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        "software-rasterizer\x00",
		EngineVersion:      vk.MakeVersion(1, 0, 0),
	}

	extensions := window.GetRequiredInstanceExtensions()
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&instanceInfo, nil, &instance); res != vk.Success {
		return fmt.Errorf("create vulkan instance: %v", res)
	}
	p.instance = instance

	surfacePtr, err := window.CreateWindowSurface(p.instance, nil)
	if err != nil {
		return fmt.Errorf("create vulkan surface: %w", err)
	}
	p.surface = vk.SurfaceFromPointer(surfacePtr)

	return nil
}

func (p *VulkanPeer) Shutdown() {
	vk.DestroySurface(p.instance, p.surface, nil)
	vk.DestroyInstance(p.instance, nil)
	p.window.Destroy()
	glfw.Terminate()
}

func (p *VulkanPeer) BeginFrame() {}

// RenderScene is a no-op on this peer: the hardware shading path is out of
// scope, per spec §1/§4.12.
func (p *VulkanPeer) RenderScene(scene *Scene, camera *Camera, settings *Settings) {}

func (p *VulkanPeer) EndFrame() {}

func (p *VulkanPeer) Present() {
	glfw.PollEvents()
}
