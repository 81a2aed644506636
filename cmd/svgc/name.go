package main

import (
	"fmt"
	"path/filepath"

	"github.com/grindlemire/svgc/pkg/svgcomp"
)

// runName implements the name subcommand.
// It prints the component name derived from a file name. The file does not
// need to exist.
func (c *cli) runName(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var paths []string
	for _, arg := range args {
		if isFlag(arg) {
			return fmt.Errorf("unknown flag %s", arg)
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no file name given")
	}

	fmt.Fprintln(c.stdout, svgcomp.DeriveName(filepath.Base(paths[0]), cfg.DefaultName))
	return nil
}
