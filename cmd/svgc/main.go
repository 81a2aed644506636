// Package main provides the CLI tool for converting SVG files into React
// components.
//
// Usage:
//
//	svgc generate [options] file.svg   Generate a component from an SVG file
//	svgc fmt [options] file.svg        Format an SVG file
//	svgc preview [options] file.svg    Colorize and size an SVG for preview
//	svgc name file.svg                 Print the derived component name
//	svgc help                          Show help
//
// Examples:
//
//	svgc generate arrow-right.svg             Write ArrowRight.tsx next to the input
//	svgc generate -untyped --stdout icon.svg  Print a JSX component
//	svgc fmt --check icon.svg                 Check formatting without modifying
//	svgc preview --png icon.png icon.svg      Render a PNG preview
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/svgc/internal/debug"
)

const version = "0.1.0"

const usage = `svgc - convert SVG files into React components

Usage:
  svgc <command> [options] file.svg

Commands:
  generate    Generate component source from an SVG file
  fmt         Format an SVG file
  preview     Colorize and size an SVG file for preview
  name        Print the component name derived from a file name
  version     Print version information
  help        Show this help message

Generate options:
  --name N          Component name (default: derived from the file name)
  --dialect D       typed (TSX) or untyped (JSX)
  -typed, -untyped  Shorthand for --dialect
  --profile P       Root attribute profile: v1 or v2 (default v2)
  -o, --output F    Output file (default: <Name>.tsx next to the input)
  --stdout          Print to stdout instead of writing a file
  -v                Verbose output

Fmt options:
  --check           Exit 1 if the file is not formatted
  --stdout          Print formatted output instead of modifying the file
  -n, --number      Number output lines (default when stdout is a terminal)

Preview options:
  --color C         Preview color, #rrggbb or a CSS name (default #000000)
  --size N          Preview size in pixels, 8-512 (default 24)
  --png F           Render a PNG to F instead of printing SVG
  -o, --output F    Write the preview SVG to F

Only the first file argument is processed; "-" reads standard input.
Settings may also come from .svgc.toml or the file named by SVGC_CONFIG.
Set SVGC_DEBUG=<path> to write a debug log.
`

func main() {
	os.Exit(run(os.Args[1:], &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

// cli carries the process streams so commands can be exercised in tests.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, c *cli) int {
	if len(args) < 1 {
		fmt.Fprint(c.stderr, usage)
		return 1
	}

	if err := debug.InitFromEnv(); err != nil {
		fmt.Fprintf(c.stderr, "warning: %v\n", err)
	}
	defer debug.Close()

	command := args[0]
	args = args[1:]
	debug.Log("command %s %v", command, args)

	var err error
	switch command {
	case "generate", "gen":
		err = c.runGenerate(args)
	case "fmt":
		err = c.runFmt(args)
	case "preview":
		err = c.runPreview(args)
	case "name":
		err = c.runName(args)
	case "version":
		fmt.Fprintf(c.stdout, "svgc version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
	default:
		fmt.Fprintf(c.stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(c.stderr, usage)
		return 1
	}

	if err != nil {
		debug.Log("command %s failed: %v", command, err)
		fmt.Fprintf(c.stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
