package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grindlemire/svgc/internal/config"
	"github.com/grindlemire/svgc/internal/debug"
	"github.com/grindlemire/svgc/pkg/formatter"
	"github.com/grindlemire/svgc/pkg/svgcomp"
)

// runGenerate implements the generate subcommand.
// It formats the SVG file and writes the generated component source.
func (c *cli) runGenerate(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		verbose bool
		stdout  bool
		number  bool
		name    string
		output  string
		paths   []string
	)

	// Parse arguments
	args = splitFlagValues(args)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "--stdout", "-stdout":
			stdout = true
		case "-n", "--number":
			number = true
		case "-typed", "--typed", "-tsx", "--tsx":
			cfg.Dialect = svgcomp.DialectTyped.String()
		case "-untyped", "--untyped", "-jsx", "--jsx":
			cfg.Dialect = svgcomp.DialectUntyped.String()
		case "--dialect", "-dialect":
			if cfg.Dialect, err = flagValue(args, &i); err != nil {
				return err
			}
		case "--profile", "-profile":
			if cfg.Profile, err = flagValue(args, &i); err != nil {
				return err
			}
		case "--name", "-name":
			if name, err = flagValue(args, &i); err != nil {
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

	if name == "" {
		name = svgcomp.DeriveName(in.name, cfg.DefaultName)
	}
	if !svgcomp.IsIdentifier(name) {
		debug.Log("component name %q is not an identifier", name)
		fmt.Fprintf(c.stderr, "warning: component name %q is not a valid identifier\n", name)
	}

	dialect := cfg.DialectValue()
	code, err := generate(in, name, cfg)
	if err != nil {
		return err
	}

	if stdout {
		return display(c.stdout, code, useLineNumbers(c.stdout, number))
	}

	if output == "" {
		output = outputFileName(in.path, name, dialect)
	}
	if verbose {
		fmt.Fprintf(c.stdout, "Processing %s -> %s\n", in.path, output)
	}
	if err := os.WriteFile(output, []byte(code+"\n"), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	debug.With("generated", "input", in.path, "output", output, "component", name, "dialect", dialect.String())

	if verbose {
		fmt.Fprintf(c.stdout, "Generated %s component %s\n", dialect, name)
	}
	return nil
}

// generate formats the input, then generates the component from the
// canonical SVG.
func generate(in *input, name string, cfg config.Config) (string, error) {
	canonical, err := newFormatter(cfg).Format(in.name, in.source)
	if err != nil {
		return "", err
	}

	gen := &svgcomp.Generator{Profile: cfg.ProfileValue()}
	return gen.Generate(canonical, name, cfg.DialectValue())
}

// newFormatter builds a formatter from validated settings.
func newFormatter(cfg config.Config) *formatter.Formatter {
	return &formatter.Formatter{
		IndentString: cfg.Indent,
		Locale:       cfg.LocaleValue(),
	}
}

// outputFileName places the component next to its input, named after the
// component.
// Examples:
//
//	icons/arrow-right.svg, ArrowRight, typed   -> icons/ArrowRight.tsx
//	close.svg, Close, untyped                  -> Close.jsx
//	- (stdin), SvgComponent, typed             -> SvgComponent.tsx
func outputFileName(inputPath, name string, dialect svgcomp.Dialect) string {
	dir := "."
	if inputPath != stdinPath {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, name+dialect.Ext())
}
