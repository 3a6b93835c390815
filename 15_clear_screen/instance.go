package main

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/common"
	"github.com/vkngwrapper/core/core1_0"
	"github.com/vkngwrapper/extensions/ext_debug_utils"
	"github.com/vkngwrapper/extensions/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2"
	"go.uber.org/zap"
)

func (app *HelloTriangleApplication) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    app.cfg.Window.Title,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	extensions, _, err := app.loader.AvailableExtensions()
	if err != nil {
		return err
	}
	hasExtension := func(name string) bool {
		_, ok := extensions[name]
		return ok
	}

	err = app.collectRequiredExtensions(hasExtension)
	if err != nil {
		return err
	}
	if hasExtension(khr_portability_enumeration.ExtensionName) {
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}
	instanceOptions.EnabledExtensionNames = app.requiredExtensions.IterBegin()

	if app.cfg.Validation.Enable {
		err = app.checkValidationLayerSupport()
		if err != nil {
			return err
		}
		instanceOptions.EnabledLayerNames = app.validationLayers.IterBegin()
		instanceOptions.Next = app.debugMessengerOptions()
	}

	app.instance, _, err = app.loader.CreateInstance(nil, instanceOptions)
	return err
}

// collectRequiredExtensions fills requiredExtensions with what SDL needs,
// debug utils when validating, and portability enumeration when the loader
// offers it.
func (app *HelloTriangleApplication) collectRequiredExtensions(hasExtension func(string) bool) error {
	app.requiredExtensions.Clear()

	for _, ext := range app.window.VulkanGetInstanceExtensions() {
		if !hasExtension(ext) {
			return errors.Newf("createInstance: cannot initialize sdl: missing extension %s", ext)
		}
		app.requiredExtensions.PushBack(ext)
	}

	if app.cfg.Validation.Enable {
		app.requiredExtensions.PushBack(ext_debug_utils.ExtensionName)
	}

	if hasExtension(khr_portability_enumeration.ExtensionName) {
		app.requiredExtensions.PushBack(khr_portability_enumeration.ExtensionName)
	}

	for _, ext := range app.requiredExtensions.IterBegin() {
		app.steps.Info("extension " + ext)
	}
	return nil
}

func (app *HelloTriangleApplication) checkValidationLayerSupport() error {
	layers, _, err := app.loader.AvailableLayers()
	if err != nil {
		return err
	}

	app.validationLayers.Clear()
	for _, layer := range app.cfg.Validation.Layers {
		if _, ok := layers[layer]; !ok {
			return errors.Newf("createInstance: cannot add validation layer %s: not available, install the LunarG Vulkan SDK", layer)
		}
		app.validationLayers.PushBack(layer)
	}

	app.steps.Info("validation layer "+app.validationLayers.GetFront(),
		zap.Int("layers", app.validationLayers.Length()))
	return nil
}

func (app *HelloTriangleApplication) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    app.logDebug,
	}
}

func (app *HelloTriangleApplication) setupDebugMessenger() error {
	if !app.cfg.Validation.Enable {
		app.steps.Info("validation disabled")
		return nil
	}

	var err error
	debugLoader := ext_debug_utils.CreateExtensionFromInstance(app.instance)
	app.debugMessenger, _, err = debugLoader.CreateDebugUtilsMessenger(app.instance, nil, app.debugMessengerOptions())
	return err
}

func (app *HelloTriangleApplication) createSurface() error {
	surfaceLoader := khr_surface.CreateExtensionFromInstance(app.instance)

	surface, err := vkng_sdl2.CreateSurface(app.instance, surfaceLoader, app.window)
	if err != nil {
		return err
	}

	app.surface = surface
	return nil
}

func (app *HelloTriangleApplication) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	fields := []zap.Field{
		zap.String("type", fmt.Sprint(msgType)),
		zap.String("severity", fmt.Sprint(severity)),
	}

	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		app.logger.Error(data.Message, fields...)
	case severity&ext_debug_utils.SeverityWarning != 0:
		app.logger.Warn(data.Message, fields...)
	default:
		app.logger.Info(data.Message, fields...)
	}
	return false
}
