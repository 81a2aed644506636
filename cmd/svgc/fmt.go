package main

import (
	"fmt"
	"os"
)

// runFmt implements the fmt subcommand.
// It formats an SVG file in place, checks it, or prints the result.
func (c *cli) runFmt(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var (
		stdout bool // print to stdout instead of modifying file
		check  bool // check mode (exit 1 if not formatted)
		number bool
		paths  []string
	)

	// Parse arguments
	for _, arg := range args {
		switch arg {
		case "--stdout", "-stdout":
			stdout = true
		case "--check", "-check":
			check = true
		case "-n", "--number":
			number = true
		default:
			if isFlag(arg) {
				return fmt.Errorf("unknown flag %s", arg)
			}
			paths = append(paths, arg)
		}
	}

	path, err := c.selectPath(paths)
	if err != nil {
		return err
	}
	in, err := c.readInput(path)
	if err != nil {
		return err
	}

	res, err := newFormatter(cfg).FormatWithResult(in.name, in.source)
	if err != nil {
		return err
	}
	// Files are written with a trailing newline.
	out := res.Content + "\n"
	changed := out != in.source

	switch {
	case check:
		if changed {
			fmt.Fprintf(c.stderr, "ERROR: %s is not formatted\n", in.path)
			return fmt.Errorf("1 file(s) not formatted")
		}
		return nil

	case stdout || in.path == stdinPath:
		return display(c.stdout, res.Content, useLineNumbers(c.stdout, number))

	default:
		if !changed {
			return nil
		}
		if err := os.WriteFile(in.path, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
		fmt.Fprintf(c.stdout, "Formatted: %s\n", in.path)
		return nil
	}
}
