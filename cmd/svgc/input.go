package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/svgc/internal/config"
	"github.com/grindlemire/svgc/internal/debug"
)

// stdinPath selects standard input as the source file.
const stdinPath = "-"

// input is the single SVG file a command operates on.
type input struct {
	path   string // as given on the command line
	name   string // base name used for messages and name derivation
	source string
}

// splitFlagValues expands --flag=value into two arguments.
func splitFlagValues(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			k, v, _ := strings.Cut(arg, "=")
			out = append(out, k, v)
			continue
		}
		out = append(out, arg)
	}
	return out
}

// flagValue returns the argument following the flag at args[*i] and advances *i.
func flagValue(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("flag %s needs a value", args[*i])
	}
	*i++
	return args[*i], nil
}

// isFlag reports whether arg looks like an option rather than a path.
func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-") && arg != stdinPath
}

// selectPath picks the file to process. Only the first path is used.
func (c *cli) selectPath(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no .svg file given")
	}
	if len(paths) > 1 {
		debug.Log("ignoring %d extra path(s): %v", len(paths)-1, paths[1:])
		fmt.Fprintf(c.stderr, "warning: only the first file is processed, ignoring %s\n", strings.Join(paths[1:], " "))
	}

	path := paths[0]
	if path != stdinPath && !strings.EqualFold(filepath.Ext(path), ".svg") {
		return "", fmt.Errorf("%s: not an .svg file", path)
	}
	return path, nil
}

// readInput loads the selected file, or standard input for "-".
func (c *cli) readInput(path string) (*input, error) {
	if path == stdinPath {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &input{path: path, name: "stdin.svg", source: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return &input{path: path, name: filepath.Base(path), source: string(data)}, nil
}

// loadConfig reads settings from disk; flag overrides are applied by the caller.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	debug.With("config loaded", "dialect", cfg.Dialect, "profile", cfg.Profile, "locale", cfg.Locale)
	return cfg, nil
}
