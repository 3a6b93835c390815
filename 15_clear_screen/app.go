package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core"
	"github.com/vkngwrapper/core/core1_0"
	"github.com/vkngwrapper/extensions/ext_debug_utils"
	"github.com/vkngwrapper/extensions/khr_surface"
	"github.com/vkngwrapper/extensions/khr_swapchain"
	"github.com/vkngwrapper/vulkan-vec/config"
	"github.com/vkngwrapper/vulkan-vec/steplog"
	"github.com/vkngwrapper/vulkan-vec/vkvec"
	"go.uber.org/zap"
	"time"
)

type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

type SwapChainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      vkvec.SurfaceFormats
	PresentModes vkvec.PresentModes
}

func (d *SwapChainSupportDetails) Free() {
	d.Capabilities = nil
	d.Formats.Free()
	d.PresentModes.Free()
}

type HelloTriangleApplication struct {
	cfg    config.Config
	logger *zap.Logger
	steps  *steplog.Log

	window *sdl.Window
	loader core.Loader

	requiredExtensions vkvec.Strings
	validationLayers   vkvec.Strings
	deviceExtensions   vkvec.Strings

	instance       core1_0.Instance
	debugMessenger ext_debug_utils.DebugUtilsMessenger
	surface        khr_surface.Surface

	physicalDevices vkvec.PhysicalDevices
	physicalDevice  core1_0.PhysicalDevice
	queueFamilies   QueueFamilyIndices
	device          core1_0.Device

	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension    khr_swapchain.Extension
	swapchain             khr_swapchain.Swapchain
	swapchainImages       vkvec.Images
	swapchainImageFormat  core1_0.Format
	swapchainExtent       core1_0.Extent2D
	swapchainImageViews   vkvec.ImageViews
	swapchainFramebuffers vkvec.Framebuffers

	renderPass core1_0.RenderPass

	commandPool    core1_0.CommandPool
	commandBuffers vkvec.CommandBuffers

	imageAvailableSemaphores vkvec.Semaphores
	renderFinishedSemaphores vkvec.Semaphores
	inFlightFences           vkvec.Fences
	imagesInFlight           vkvec.Fences
	currentFrame             int

	clearColor mgl32.Vec4

	frames     int
	fpsStarted time.Duration
}

func (app *HelloTriangleApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	defer app.cleanup()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *HelloTriangleApplication) initWindow() error {
	return app.steps.Step("initialize window", func() error {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}

		window, err := sdl.CreateWindow(app.cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(app.cfg.Window.Width), int32(app.cfg.Window.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
		if err != nil {
			return err
		}
		app.window = window

		app.loader, err = core.CreateLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
		return err
	})
}

func (app *HelloTriangleApplication) initVulkan() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"create instance", app.createInstance},
		{"set up debug messenger", app.setupDebugMessenger},
		{"create surface", app.createSurface},
		{"pick physical device", app.pickPhysicalDevice},
		{"create logical device", app.createLogicalDevice},
		{"create swap chain", app.createSwapchain},
		{"create image views", app.createImageViews},
		{"create render pass", app.createRenderPass},
		{"create framebuffers", app.createFramebuffers},
		{"create command pool", app.createCommandPool},
		{"create command buffers", app.createCommandBuffers},
		{"create sync objects", app.createSyncObjects},
	}

	return app.steps.Step("initialize vulkan", func() error {
		for _, step := range steps {
			if err := app.steps.Step(step.name, step.run); err != nil {
				return err
			}
		}
		return nil
	})
}

func (app *HelloTriangleApplication) mainLoop() error {
	rendering := true
	app.fpsStarted = hrtime.Now()

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_MINIMIZED:
					rendering = false
				case sdl.WINDOWEVENT_RESTORED:
					rendering = true
				case sdl.WINDOWEVENT_RESIZED:
					w, h := app.window.GetSize()
					if w > 0 && h > 0 {
						rendering = true
						if err := app.recreateSwapChain(); err != nil {
							return err
						}
					} else {
						rendering = false
					}
				}
			}
		}
		if rendering {
			err := app.drawFrame()
			if err != nil {
				return err
			}
			app.countFrame()
		}
	}

	_, err := app.device.WaitIdle()
	return err
}

// countFrame logs the frame rate once per configured interval.
func (app *HelloTriangleApplication) countFrame() {
	app.frames++

	now := hrtime.Now()
	elapsed := now - app.fpsStarted
	if elapsed < app.cfg.FPSInterval.Duration {
		return
	}

	app.logger.Info("frame rate",
		zap.Float64("fps", float64(app.frames)/elapsed.Seconds()),
		zap.Int("frames", app.frames),
		zap.Duration("window", elapsed))
	app.frames = 0
	app.fpsStarted = now
}

func (app *HelloTriangleApplication) cleanupSwapChain() {
	for _, framebuffer := range app.swapchainFramebuffers.IterBegin() {
		framebuffer.Destroy(nil)
	}
	app.swapchainFramebuffers.Clear()

	if app.commandBuffers.Length() > 0 {
		app.device.FreeCommandBuffers(app.commandBuffers.IterBegin())
		app.commandBuffers.Clear()
	}

	if app.renderPass != nil {
		app.renderPass.Destroy(nil)
		app.renderPass = nil
	}

	for _, imageView := range app.swapchainImageViews.IterBegin() {
		imageView.Destroy(nil)
	}
	app.swapchainImageViews.Clear()

	if app.swapchain != nil {
		app.swapchain.Destroy(nil)
		app.swapchain = nil
	}
	app.swapchainImages.Clear()
}

func (app *HelloTriangleApplication) cleanup() {
	app.steps.Down("clean up")
	defer app.steps.Up()

	app.cleanupSwapChain()
	app.swapchainFramebuffers.Free()
	app.commandBuffers.Free()
	app.swapchainImageViews.Free()
	app.swapchainImages.Free()
	app.imagesInFlight.Free()

	for _, fence := range app.inFlightFences.IterBegin() {
		fence.Destroy(nil)
	}
	app.inFlightFences.Free()

	for _, semaphore := range app.renderFinishedSemaphores.IterBegin() {
		semaphore.Destroy(nil)
	}
	app.renderFinishedSemaphores.Free()

	for _, semaphore := range app.imageAvailableSemaphores.IterBegin() {
		semaphore.Destroy(nil)
	}
	app.imageAvailableSemaphores.Free()

	if app.commandPool != nil {
		app.commandPool.Destroy(nil)
	}

	if app.device != nil {
		app.device.Destroy(nil)
	}

	if app.debugMessenger != nil {
		app.debugMessenger.Destroy(nil)
	}

	if app.surface != nil {
		app.surface.Destroy(nil)
	}

	if app.instance != nil {
		app.instance.Destroy(nil)
	}

	app.physicalDevices.Free()
	app.deviceExtensions.Free()
	app.validationLayers.Free()
	app.requiredExtensions.Free()

	if app.window != nil {
		app.window.Destroy()
	}
	sdl.Quit()

	app.steps.OK("clean up", zap.Duration("total", app.steps.Elapsed()))
}

func (app *HelloTriangleApplication) recreateSwapChain() error {
	w, h := app.window.VulkanGetDrawableSize()
	if w == 0 || h == 0 {
		return nil
	}
	if (app.window.GetFlags() & sdl.WINDOW_MINIMIZED) != 0 {
		return nil
	}

	_, err := app.device.WaitIdle()
	if err != nil {
		return err
	}

	app.cleanupSwapChain()

	err = app.createSwapchain()
	if err != nil {
		return err
	}

	err = app.createImageViews()
	if err != nil {
		return err
	}

	err = app.createRenderPass()
	if err != nil {
		return err
	}

	err = app.createFramebuffers()
	if err != nil {
		return err
	}

	err = app.createCommandBuffers()
	if err != nil {
		return err
	}

	app.resetImagesInFlight()
	return nil
}

// resetImagesInFlight sizes imagesInFlight to the swap chain with every slot
// empty. Clear would keep the old fences visible to Resize, so the storage
// is freed first.
func (app *HelloTriangleApplication) resetImagesInFlight() {
	app.imagesInFlight.Free()
	app.imagesInFlight.Resize(app.swapchainImages.Length())
}
