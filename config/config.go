// Package config loads the settings of the Vulkan program from an optional
// YAML or TOML file layered over built-in defaults.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/vkngwrapper/vulkan-vec/logutil"
	"github.com/vkngwrapper/vulkan-vec/vec"
)

const ValidationLayer = "VK_LAYER_KHRONOS_validation"

type Config struct {
	Window            WindowConfig     `yaml:"window" toml:"window"`
	Validation        ValidationConfig `yaml:"validation" toml:"validation"`
	DeviceExtensions  []string         `yaml:"device_extensions" toml:"device-extensions"`
	MaxFramesInFlight int              `yaml:"max_frames_in_flight" toml:"max-frames-in-flight"`
	ClearColor        [4]float32       `yaml:"clear_color" toml:"clear-color"`
	FPSInterval       Duration         `yaml:"fps_interval" toml:"fps-interval"`
	Log               logutil.Config   `yaml:"log" toml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

type ValidationConfig struct {
	Enable bool     `yaml:"enable" toml:"enable"`
	Layers []string `yaml:"layers" toml:"layers"`
}

// Duration is a time.Duration written as a string such as "2s" in files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "duration %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the built-in settings. Validation layers are on whenever
// the vec bounds checks are compiled in.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Vulkan",
			Width:  800,
			Height: 600,
		},
		Validation: ValidationConfig{
			Enable: vec.Checked,
			Layers: []string{ValidationLayer},
		},
		MaxFramesInFlight: 2,
		ClearColor:        [4]float32{0, 0, 0, 1},
		FPSInterval:       Duration{2 * time.Second},
		Log:               logutil.Default(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse %s", path)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, errors.Wrapf(err, "parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.Newf("parse %s: unknown key %s", path, undecoded[0])
		}
	default:
		return cfg, errors.Newf("config %s: unsupported extension %q", path, ext)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Newf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.MaxFramesInFlight < 1 {
		return errors.Newf("max frames in flight %d must be at least 1", c.MaxFramesInFlight)
	}
	for i, component := range c.ClearColor {
		if component < 0 || component > 1 {
			return errors.Newf("clear color component %d is %v, want [0,1]", i, component)
		}
	}
	if c.FPSInterval.Duration <= 0 {
		return errors.Newf("fps interval %s must be positive", c.FPSInterval)
	}
	if c.Validation.Enable && len(c.Validation.Layers) == 0 {
		return errors.New("validation enabled without layers")
	}
	return nil
}
