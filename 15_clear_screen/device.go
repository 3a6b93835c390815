package main

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/core1_0"
	"github.com/vkngwrapper/extensions/khr_portability_subset"
	"github.com/vkngwrapper/extensions/khr_swapchain"
	"github.com/vkngwrapper/vulkan-vec/vkvec"
	"go.uber.org/zap"
)

func (app *HelloTriangleApplication) pickPhysicalDevice() error {
	app.deviceExtensions.Clear()
	app.deviceExtensions.PushBack(khr_swapchain.ExtensionName)
	for _, ext := range app.cfg.DeviceExtensions {
		if ext != khr_swapchain.ExtensionName {
			app.deviceExtensions.PushBack(ext)
		}
	}

	physicalDevices, _, err := app.instance.EnumeratePhysicalDevices()
	if err != nil {
		return err
	}

	app.physicalDevices.Clear()
	for _, device := range physicalDevices {
		app.physicalDevices.PushBack(device)
	}
	if app.physicalDevices.Length() == 0 {
		return errors.New("failed to find GPUs with Vulkan support")
	}

	for i := 0; i < app.physicalDevices.Length(); i++ {
		device := app.physicalDevices.GetAt(i)
		if app.isDeviceSuitable(device) {
			app.physicalDevice = device
			break
		}
	}

	if app.physicalDevice == nil {
		return errors.Newf("failed to find a suitable GPU among %d", app.physicalDevices.Length())
	}

	app.steps.Info("found a suitable GPU", zap.Int("candidates", app.physicalDevices.Length()))
	return nil
}

func (app *HelloTriangleApplication) isDeviceSuitable(device core1_0.PhysicalDevice) bool {
	indices, err := app.findQueueFamilies(device)
	if err != nil {
		return false
	}

	extensionsSupported := app.checkDeviceExtensionSupport(device)

	var swapChainAdequate bool
	if extensionsSupported {
		var swapChainSupport SwapChainSupportDetails
		defer swapChainSupport.Free()

		err := app.querySwapChainSupport(device, &swapChainSupport)
		if err != nil {
			return false
		}

		swapChainAdequate = swapChainSupport.Formats.Length() > 0 && swapChainSupport.PresentModes.Length() > 0
	}

	return indices.IsComplete() && extensionsSupported && swapChainAdequate
}

func (app *HelloTriangleApplication) checkDeviceExtensionSupport(device core1_0.PhysicalDevice) bool {
	extensions, _, err := device.EnumerateDeviceExtensionProperties()
	if err != nil {
		return false
	}

	for _, extension := range app.deviceExtensions.IterBegin() {
		_, hasExtension := extensions[extension]
		if !hasExtension {
			return false
		}
	}

	return true
}

func (app *HelloTriangleApplication) findQueueFamilies(device core1_0.PhysicalDevice) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}
	queueFamilies := device.QueueFamilyProperties()

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if (queueFamily.QueueFlags & core1_0.QueueGraphics) != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		supported, _, err := app.surface.PhysicalDeviceSurfaceSupport(device, queueFamilyIdx)
		if err != nil {
			return indices, err
		}

		if supported {
			indices.PresentFamily = new(int)
			*indices.PresentFamily = queueFamilyIdx
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}

// querySwapChainSupport replaces the contents of details with what the
// surface offers on device.
func (app *HelloTriangleApplication) querySwapChainSupport(device core1_0.PhysicalDevice, details *SwapChainSupportDetails) error {
	var err error

	details.Capabilities, _, err = app.surface.PhysicalDeviceSurfaceCapabilities(device)
	if err != nil {
		return err
	}

	formats, _, err := app.surface.PhysicalDeviceSurfaceFormats(device)
	if err != nil {
		return err
	}
	details.Formats.Resize(len(formats))
	copy(details.Formats.IterBegin(), formats)

	presentModes, _, err := app.surface.PhysicalDeviceSurfacePresentModes(device)
	if err != nil {
		return err
	}
	details.PresentModes.Resize(len(presentModes))
	copy(details.PresentModes.IterBegin(), presentModes)

	return nil
}

func (app *HelloTriangleApplication) createLogicalDevice() error {
	indices, err := app.findQueueFamilies(app.physicalDevice)
	if err != nil {
		return err
	}
	app.queueFamilies = indices

	var uniqueQueueFamilies vkvec.Ints
	defer uniqueQueueFamilies.Free()
	uniqueQueueFamilies.PushBack(*indices.GraphicsFamily)
	if uniqueQueueFamilies.GetFront() != *indices.PresentFamily {
		uniqueQueueFamilies.PushBack(*indices.PresentFamily)
	}

	var queueFamilyOptions vkvec.DeviceQueueCreateInfos
	defer queueFamilyOptions.Free()
	queuePriority := float32(1.0)
	for _, queueFamily := range uniqueQueueFamilies.IterBegin() {
		queueFamilyOptions.PushBack(core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	// Portability implementations such as MoltenVK require the subset extension.
	extensions, _, err := app.physicalDevice.EnumerateDeviceExtensionProperties()
	if err != nil {
		return err
	}

	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		app.deviceExtensions.PushBack(khr_portability_subset.ExtensionName)
	}

	app.device, _, err = app.physicalDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions.IterBegin(),
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: app.deviceExtensions.IterBegin(),
	})
	if err != nil {
		return err
	}

	app.graphicsQueue = app.device.GetQueue(*indices.GraphicsFamily, 0)
	app.presentQueue = app.device.GetQueue(*indices.PresentFamily, 0)
	app.steps.Info("queue families",
		zap.Int("graphics", *indices.GraphicsFamily),
		zap.Int("present", *indices.PresentFamily),
		zap.Int("unique", uniqueQueueFamilies.Length()))
	return nil
}
