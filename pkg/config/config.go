// Package config loads pixelrows settings from an INI file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Defaults used when the file or a key is missing.
const (
	DefaultOutput   = "generated.png"
	DefaultWidth    = 32
	DefaultHeight   = 32
	DefaultGreeting = "Hello world!"
)

// Config holds the settings for one run.
type Config struct {
	Output   string // Output file path; extension selects the format
	Width    int    // Pixel width
	Height   int    // Pixel height
	Seed     uint64 // 0 = process-wide random source
	Greeting string // Printed before generating
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output:   DefaultOutput,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Greeting: DefaultGreeting,
	}
}

// Load reads path. A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}

	img := file.Section("image")
	cfg.Output = img.Key("output").MustString(cfg.Output)
	cfg.Width = img.Key("width").MustInt(cfg.Width)
	cfg.Height = img.Key("height").MustInt(cfg.Height)
	cfg.Seed = img.Key("seed").MustUint64(0)
	cfg.Greeting = file.Section("app").Key("greeting").MustString(cfg.Greeting)

	return cfg, nil
}

// Validate checks that the settings can produce an image.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d: width and height must be positive", c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return nil
}

// Save writes c to path in the format Load reads.
func (c Config) Save(path string) error {
	file := ini.Empty()

	app := file.Section("app")
	app.Key("greeting").SetValue(c.Greeting)

	img := file.Section("image")
	img.Key("output").SetValue(c.Output)
	img.Key("width").SetValue(fmt.Sprint(c.Width))
	img.Key("height").SetValue(fmt.Sprint(c.Height))
	img.Key("seed").SetValue(fmt.Sprint(c.Seed))

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
