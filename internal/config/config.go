// Package config loads svgc settings from an optional .svgc.toml file.
//
// Values are layered: built-in defaults, then the config file, then
// command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/grindlemire/svgc/pkg/preview"
	"github.com/grindlemire/svgc/pkg/svgcomp"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = ".svgc.toml"
	// EnvVar overrides the config file path.
	EnvVar = "SVGC_CONFIG"
)

// Config holds user-adjustable settings.
type Config struct {
	Dialect     string  `toml:"dialect"`
	Profile     string  `toml:"profile"`
	DefaultName string  `toml:"default_name"`
	Locale      string  `toml:"locale"`
	Indent      string  `toml:"indent"`
	Preview     Preview `toml:"preview"`
}

// Preview holds preview settings.
type Preview struct {
	Color string `toml:"color"`
	Size  int    `toml:"size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dialect:     svgcomp.DialectTyped.String(),
		Profile:     svgcomp.DefaultProfile.Name,
		DefaultName: svgcomp.DefaultComponentName,
		Locale:      language.Und.String(),
		Indent:      "  ",
		Preview: Preview{
			Color: preview.DefaultColor,
			Size:  preview.DefaultSize,
		},
	}
}

// Load reads the file named by SVGC_CONFIG, or .svgc.toml in the working
// directory. A missing default file is not an error; a missing file named by
// SVGC_CONFIG is.
func Load() (Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(FileName)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads settings from path on top of the defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML settings from r on top of the defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown config keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting can be resolved.
func (c Config) Validate() error {
	if _, err := svgcomp.ParseDialect(c.Dialect); err != nil {
		return err
	}
	if _, err := svgcomp.LookupProfile(c.Profile); err != nil {
		return err
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if !svgcomp.IsIdentifier(c.DefaultName) {
		return fmt.Errorf("default_name %q is not a valid identifier", c.DefaultName)
	}
	if err := preview.ValidateColor(c.Preview.Color); err != nil {
		return err
	}
	return preview.ValidateSize(c.Preview.Size)
}

// DialectValue returns the resolved dialect. Call Validate first.
func (c Config) DialectValue() svgcomp.Dialect {
	d, _ := svgcomp.ParseDialect(c.Dialect)
	return d
}

// ProfileValue returns the resolved profile. Call Validate first.
func (c Config) ProfileValue() svgcomp.Profile {
	p, _ := svgcomp.LookupProfile(c.Profile)
	return p
}

// LocaleValue returns the resolved collation locale. Call Validate first.
func (c Config) LocaleValue() language.Tag {
	tag, _ := language.Parse(c.Locale)
	return tag
}
