package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/grindlemire/svgc/internal/debug"
	"github.com/grindlemire/svgc/pkg/preview"
)

// runPreview implements the preview subcommand.
// It colorizes the formatted SVG and prints it, writes it, or renders a PNG.
func (c *cli) runPreview(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		pngPath string
		output  string
		paths   []string
	)

	// Parse arguments
	args = splitFlagValues(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--color", "-color":
			if cfg.Preview.Color, err = flagValue(args, &i); err != nil {
				return err
			}
		case "--size", "-size":
			v, err := flagValue(args, &i)
			if err != nil {
				return err
			}
			size, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", v, err)
			}
			cfg.Preview.Size = size
		case "--png", "-png":
			if pngPath, err = flagValue(args, &i); err != nil {
				return err
			}
		case "-o", "--output", "-output":
			if output, err = flagValue(args, &i); err != nil {
				return err
			}
		default:
			if isFlag(arg) {
				return fmt.Errorf("unknown flag %s", arg)
			}
			paths = append(paths, arg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := c.selectPath(paths)
	if err != nil {
		return err
	}
	in, err := c.readInput(path)
	if err != nil {
		return err
	}

	canonical, err := newFormatter(cfg).Format(in.name, in.source)
	if err != nil {
		return err
	}
	colored, err := preview.Colorize(canonical, cfg.Preview.Color, cfg.Preview.Size)
	if err != nil {
		return err
	}
	debug.With("preview", "input", in.path, "color", cfg.Preview.Color, "size", cfg.Preview.Size)

	switch {
	case pngPath != "":
		return writePNG(pngPath, colored, cfg.Preview.Size)
	case output != "":
		if err := os.WriteFile(output, []byte(colored+"\n"), 0644); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
		return nil
	default:
		return display(c.stdout, colored, false)
	}
}

func writePNG(path, svg string, size int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing png: %w", cerr)
		}
	}()

	return preview.Rasterize(f, svg, size)
}
