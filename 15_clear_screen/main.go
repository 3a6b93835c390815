package main

import (
	"flag"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/vulkan-vec/config"
	"github.com/vkngwrapper/vulkan-vec/logutil"
	"github.com/vkngwrapper/vulkan-vec/steplog"
	"log"
	"runtime"
)

func init() {
	// SDL wants its calls on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML or TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	logger, err := logutil.New(cfg.Log)
	if err != nil {
		log.Fatalf("%+v\n", err)
	}

	app := &HelloTriangleApplication{
		cfg:        cfg,
		logger:     logger,
		steps:      steplog.New(logger),
		clearColor: mgl32.Vec4(cfg.ClearColor),
	}

	err = app.Run()
	_ = logger.Sync()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
