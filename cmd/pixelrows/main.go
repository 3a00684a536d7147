// pixelrows — 1-bit grayscale images from randomly shuffled pixel rows.
//
// Usage:
//
//	pixelrows [-c config.ini] [generate] [-o <file>] [--width <px>] [--height <px>] [--seed <n>]
//	pixelrows inspect <file.png>
//	pixelrows serve [--addr :8080]
//	pixelrows init [--output config.ini]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xob0t/pixelrows/clients/server"
	"github.com/xob0t/pixelrows/pkg/config"
	"github.com/xob0t/pixelrows/pkg/generator"
	"github.com/xob0t/pixelrows/pkg/rowgen"
)

var settings = config.Default()

func generateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path (.png, .bmp or .tiff)"},
		&cli.IntFlag{Name: "width", Usage: "Width in pixels"},
		&cli.IntFlag{Name: "height", Usage: "Height in pixels"},
		&cli.Uint64Flag{Name: "seed", Usage: "Seed for reproducible output (0 = random)"},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if exit, ok := err.(cli.ExitCoder); ok {
			os.Exit(exit.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pixelrows"
	app.Usage = "Generate 1-bit grayscale images from shuffled pixel rows"
	app.HideVersion = true

	app.Flags = append([]cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "config.ini",
			Usage:   "config file path",
		},
	}, generateFlags()...)

	app.Before = func(ctx *cli.Context) error {
		// init must work even when the existing config is broken
		if ctx.Args().First() == "init" {
			settings = config.Default()
			return nil
		}
		var err error
		settings, err = config.Load(ctx.String("config"))
		return err
	}

	app.Action = runGenerate
	app.Commands = []*cli.Command{
		{
			Name:   "generate",
			Usage:  "Write an image (default command)",
			Flags:  generateFlags(),
			Action: runGenerate,
		},
		{
			Name:      "inspect",
			Usage:     "Print the header of a PNG file",
			ArgsUsage: "<file.png>",
			Action:    runInspect,
		},
		{
			Name:  "serve",
			Usage: "Start the HTTP API",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
			},
			Action: func(ctx *cli.Context) error {
				return server.RunServe(ctx.String("addr"))
			},
		},
		{
			Name:  "init",
			Usage: "Write a sample config file",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "config.ini", Usage: "Output path for the config"},
			},
			Action: runInit,
		},
	}

	return app
}

// flagContext returns the innermost context on which name was set, so that
// generate flags work both before and after the sub-command name.
func flagContext(ctx *cli.Context, name string) *cli.Context {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c
		}
	}
	return nil
}

func runGenerate(ctx *cli.Context) error {
	cfg := settings
	if c := flagContext(ctx, "output"); c != nil {
		cfg.Output = c.String("output")
	}
	if c := flagContext(ctx, "width"); c != nil {
		cfg.Width = c.Int("width")
	}
	if c := flagContext(ctx, "height"); c != nil {
		cfg.Height = c.Int("height")
	}
	if c := flagContext(ctx, "seed"); c != nil {
		cfg.Seed = c.Uint64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Println(cfg.Greeting)

	gen := generator.Config{Width: cfg.Width, Height: cfg.Height}
	if cfg.Seed != 0 {
		gen.Source = rowgen.NewSeeded(cfg.Seed)
	}

	fmt.Printf("Generating %dx%d: %s\n", cfg.Width, cfg.Height, cfg.Output)
	if err := generator.Generate(cfg.Output, gen); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", cfg.Output)
	return nil
}

func runInspect(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("inspect: file argument is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr, err := generator.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	kind := "color"
	if hdr.Grayscale() {
		kind = "grayscale"
	}
	fmt.Printf("%s: %dx%d, %d-bit %s, interlaced=%t\n", path, hdr.Width, hdr.Height, hdr.BitDepth, kind, hdr.Interlace)
	return nil
}

func runInit(ctx *cli.Context) error {
	out := ctx.String("output")
	if err := config.Default().Save(out); err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", out)
	fmt.Println("Run: pixelrows -c " + out)
	return nil
}
