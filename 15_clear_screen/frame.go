package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/common"
	"github.com/vkngwrapper/core/core1_0"
	"github.com/vkngwrapper/extensions/khr_swapchain"
	"math"
	"time"
)

func (app *HelloTriangleApplication) createCommandPool() error {
	pool, _, err := app.device.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: *app.queueFamilies.GraphicsFamily,
	})
	if err != nil {
		return err
	}

	app.commandPool = pool
	return nil
}

// createCommandBuffers allocates one primary buffer per swap chain image.
// Buffers are recorded at draw time.
func (app *HelloTriangleApplication) createCommandBuffers() error {
	buffers, _, err := app.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        app.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: app.swapchainImages.Length(),
	})
	if err != nil {
		return err
	}

	app.commandBuffers.Clear()
	for _, buffer := range buffers {
		app.commandBuffers.PushBack(buffer)
	}
	return nil
}

// recordCommandBuffer replaces the command buffer of imageIndex with one
// that clears the image to color. The old buffer must not be pending.
func (app *HelloTriangleApplication) recordCommandBuffer(imageIndex int, color mgl32.Vec4) error {
	buffers, _, err := app.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        app.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return err
	}

	app.device.FreeCommandBuffers([]core1_0.CommandBuffer{app.commandBuffers.GetAt(imageIndex)})
	buffer := buffers[0]
	app.commandBuffers.SetAt(imageIndex, buffer)

	_, err = buffer.Begin(core1_0.CommandBufferBeginInfo{})
	if err != nil {
		return err
	}

	err = buffer.CmdBeginRenderPass(core1_0.SubpassContentsInline,
		core1_0.RenderPassBeginInfo{
			RenderPass:  app.renderPass,
			Framebuffer: app.swapchainFramebuffers.GetAt(imageIndex),
			RenderArea: core1_0.Rect2D{
				Offset: core1_0.Offset2D{X: 0, Y: 0},
				Extent: app.swapchainExtent,
			},
			ClearValues: []core1_0.ClearValue{
				core1_0.ClearValueFloat{color.X(), color.Y(), color.Z(), color.W()},
			},
		})
	if err != nil {
		return err
	}
	buffer.CmdEndRenderPass()

	_, err = buffer.End()
	return err
}

func (app *HelloTriangleApplication) createSyncObjects() error {
	for i := 0; i < app.cfg.MaxFramesInFlight; i++ {
		semaphore, _, err := app.device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		app.imageAvailableSemaphores.PushBack(semaphore)

		semaphore, _, err = app.device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return err
		}

		app.renderFinishedSemaphores.PushBack(semaphore)

		fence, _, err := app.device.CreateFence(nil, core1_0.FenceCreateInfo{
			Flags: core1_0.FenceCreateSignaled,
		})
		if err != nil {
			return err
		}

		app.inFlightFences.PushBack(fence)
	}

	app.resetImagesInFlight()
	return nil
}

func (app *HelloTriangleApplication) drawFrame() error {
	inFlight := app.inFlightFences.GetAt(app.currentFrame)
	fences := []core1_0.Fence{inFlight}

	_, err := app.device.WaitForFences(true, common.NoTimeout, fences)
	if err != nil {
		return err
	}

	imageAvailable := app.imageAvailableSemaphores.GetAt(app.currentFrame)
	imageIndex, res, err := app.swapchain.AcquireNextImage(common.NoTimeout, imageAvailable, nil)
	if res == khr_swapchain.VKErrorOutOfDate {
		return app.recreateSwapChain()
	} else if err != nil {
		return err
	}

	if imageFence := app.imagesInFlight.GetAt(imageIndex); imageFence != nil {
		_, err := imageFence.Wait(common.NoTimeout)
		if err != nil {
			return err
		}
	}
	app.imagesInFlight.SetAt(imageIndex, inFlight)

	_, err = app.device.ResetFences(fences)
	if err != nil {
		return err
	}

	err = app.recordCommandBuffer(imageIndex, pulse(app.clearColor, hrtime.Now()))
	if err != nil {
		return err
	}

	renderFinished := app.renderFinishedSemaphores.GetAt(app.currentFrame)
	_, err = app.graphicsQueue.Submit(inFlight, []core1_0.SubmitInfo{
		{
			WaitSemaphores:   []core1_0.Semaphore{imageAvailable},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{app.commandBuffers.GetAt(imageIndex)},
			SignalSemaphores: []core1_0.Semaphore{renderFinished},
		},
	})
	if err != nil {
		return err
	}

	res, err = app.swapchainExtension.QueuePresent(app.presentQueue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{renderFinished},
		Swapchains:     []khr_swapchain.Swapchain{app.swapchain},
		ImageIndices:   []int{imageIndex},
	})
	if res == khr_swapchain.VKErrorOutOfDate || res == khr_swapchain.VKSuboptimal {
		return app.recreateSwapChain()
	} else if err != nil {
		return err
	}

	app.currentFrame = (app.currentFrame + 1) % app.inFlightFences.Length()

	return nil
}

// pulse scales the color channels of base between half and full strength
// over a two second period. Alpha is kept.
func pulse(base mgl32.Vec4, t time.Duration) mgl32.Vec4 {
	k := float32(0.75 + 0.25*math.Cos(t.Seconds()*math.Pi))
	return base.Vec3().Mul(k).Vec4(base.W())
}
