// Package vkvec holds the named collections used by the Vulkan programs in
// this module. Each type wraps a vec.Vector of one element type; the files
// ending in _vec.go are generated.
package vkvec

//go:generate go run ../vecgen -package vkvec -output strings_vec.go Strings=string Ints=int
//go:generate go run ../vecgen -package vkvec -output core_vec.go -import github.com/vkngwrapper/core/core1_0 PhysicalDevices=core1_0.PhysicalDevice DeviceQueueCreateInfos=core1_0.DeviceQueueCreateInfo Images=core1_0.Image ImageViews=core1_0.ImageView Framebuffers=core1_0.Framebuffer CommandBuffers=core1_0.CommandBuffer Semaphores=core1_0.Semaphore Fences=core1_0.Fence
//go:generate go run ../vecgen -package vkvec -output surface_vec.go -import github.com/vkngwrapper/extensions/khr_surface SurfaceFormats=khr_surface.SurfaceFormat PresentModes=khr_surface.PresentMode
