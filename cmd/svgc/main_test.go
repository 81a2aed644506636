package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/svgc/internal/config"
	"github.com/grindlemire/svgc/internal/debug"
)

const iconSVG = `<svg viewBox="0 0 24 24" stroke-width="2"><path d="M0 0" fill="#333"/></svg>`

type result struct {
	code   int
	stdout string
	stderr string
}

// setup runs the test in a fresh directory holding the given files.
func setup(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv(debug.EnvVar, "")

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func runCLI(stdin string, args ...string) result {
	var stdout, stderr bytes.Buffer
	c := &cli{stdin: strings.NewReader(stdin), stdout: &stdout, stderr: &stderr}
	code := run(args, c)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestGenerate(t *testing.T) {
	type tc struct {
		args         []string
		wantFile     string
		wantContains []string
	}

	tests := map[string]tc{
		"typed by default": {
			args:     []string{"generate", "arrow-right.svg"},
			wantFile: "ArrowRight.tsx",
			wantContains: []string{
				"interface ArrowRightProps extends React.SVGProps<SVGSVGElement> {",
				`strokeWidth="2" viewBox="0 0 24 24"`,
				`<path d="M0 0" fill="currentColor"></path>`,
				"export default ArrowRight;\n",
			},
		},
		"untyped": {
			args:     []string{"gen", "-untyped", "arrow-right.svg"},
			wantFile: "ArrowRight.jsx",
			wantContains: []string{
				"export const ArrowRight = ({ title, size = 24, ...props }) => (",
			},
		},
		"explicit name and output": {
			args:     []string{"generate", "--name=Pointer", "-o", "out.tsx", "arrow-right.svg"},
			wantFile: "out.tsx",
			wantContains: []string{
				"Pointer.displayName = 'Pointer';",
			},
		},
		"profile v1 keeps root size": {
			args:     []string{"generate", "--profile", "v1", "--dialect", "jsx", "arrow-right.svg"},
			wantFile: "ArrowRight.jsx",
			wantContains: []string{
				"({ title, ...props })",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setup(t, map[string]string{"arrow-right.svg": iconSVG})

			res := runCLI("", tt.args...)
			if res.code != 0 {
				t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
			}

			got := readFile(t, tt.wantFile)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing expected string: %q\nGot:\n%s", want, got)
				}
			}
		})
	}
}

func TestGenerate_Stdout(t *testing.T) {
	setup(t, map[string]string{"close.svg": iconSVG})

	res := runCLI("", "generate", "--stdout", "close.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "import React from 'react';\n") {
		t.Errorf("stdout = %q, want component source", res.stdout)
	}
	if _, err := os.Stat("Close.tsx"); err == nil {
		t.Error("Close.tsx written in --stdout mode")
	}
}

func TestGenerate_Stdin(t *testing.T) {
	setup(t, nil)

	res := runCLI(iconSVG, "generate", "--stdout", "-n", "-")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, " 1  import React from 'react';\n") {
		t.Errorf("stdout not numbered:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "export const Stdin =") {
		t.Errorf("stdout missing derived name:\n%s", res.stdout)
	}
}

func TestGenerate_Errors(t *testing.T) {
	type tc struct {
		files      map[string]string
		args       []string
		wantStderr string
	}

	tests := map[string]tc{
		"parse failure": {
			files:      map[string]string{"bad.svg": `<svg><g></svg>`},
			args:       []string{"generate", "bad.svg"},
			wantStderr: "error: bad.svg:1:",
		},
		"not svg extension": {
			files:      map[string]string{"icon.txt": iconSVG},
			args:       []string{"generate", "icon.txt"},
			wantStderr: "not an .svg file",
		},
		"missing file": {
			args:       []string{"generate", "nope.svg"},
			wantStderr: "error: reading file:",
		},
		"no file": {
			args:       []string{"generate"},
			wantStderr: "no .svg file given",
		},
		"bad dialect": {
			files:      map[string]string{"icon.svg": iconSVG},
			args:       []string{"generate", "--dialect", "vue", "icon.svg"},
			wantStderr: "error:",
		},
		"unknown flag": {
			files:      map[string]string{"icon.svg": iconSVG},
			args:       []string{"generate", "--bogus", "icon.svg"},
			wantStderr: "unknown flag --bogus",
		},
		"flag without value": {
			files:      map[string]string{"icon.svg": iconSVG},
			args:       []string{"generate", "icon.svg", "--name"},
			wantStderr: "flag --name needs a value",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setup(t, tt.files)

			res := runCLI("", tt.args...)
			if res.code != 1 {
				t.Errorf("exit code %d, want 1", res.code)
			}
			if !strings.Contains(res.stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestGenerate_Warnings(t *testing.T) {
	setup(t, map[string]string{"a.svg": iconSVG, "b.svg": iconSVG})

	res := runCLI("", "generate", "--name", "my-icon", "a.svg", "b.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	for _, want := range []string{"ignoring b.svg", `"my-icon" is not a valid identifier`} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, res.stderr)
		}
	}
	if _, err := os.Stat("B.tsx"); err == nil {
		t.Error("second file was processed")
	}
}

func TestGenerate_Config(t *testing.T) {
	setup(t, map[string]string{
		"icon.svg":    iconSVG,
		".svgc.toml":  "dialect = \"untyped\"\n",
		"broken.toml": "colour = \"red\"\n",
	})

	res := runCLI("", "generate", "icon.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if _, err := os.Stat("Icon.jsx"); err != nil {
		t.Errorf("config dialect not applied: %v", err)
	}

	// Flags override the file.
	res = runCLI("", "generate", "-typed", "icon.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if _, err := os.Stat("Icon.tsx"); err != nil {
		t.Errorf("flag dialect not applied: %v", err)
	}

	t.Setenv(config.EnvVar, "broken.toml")
	res = runCLI("", "generate", "icon.svg")
	if res.code != 1 || !strings.Contains(res.stderr, "unknown config keys") {
		t.Errorf("code = %d, stderr = %q, want unknown key error", res.code, res.stderr)
	}
}

func TestFmt(t *testing.T) {
	setup(t, map[string]string{"icon.svg": `<svg width="1" fill="none"><path/></svg>`})
	const want = "<svg fill=\"none\" width=\"1\">  <path></path></svg>\n"

	res := runCLI("", "fmt", "--check", "icon.svg")
	if res.code != 1 || !strings.Contains(res.stderr, "icon.svg is not formatted") {
		t.Fatalf("check on unformatted file: code = %d, stderr = %q", res.code, res.stderr)
	}

	res = runCLI("", "fmt", "--stdout", "icon.svg")
	if res.code != 0 || res.stdout != want {
		t.Fatalf("--stdout: code = %d, stdout = %q, want %q", res.code, res.stdout, want)
	}

	res = runCLI("", "fmt", "icon.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if got := readFile(t, "icon.svg"); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	res = runCLI("", "fmt", "--check", "icon.svg")
	if res.code != 0 {
		t.Errorf("check on formatted file: code = %d, stderr = %q", res.code, res.stderr)
	}

	// Already formatted files are left alone.
	res = runCLI("", "fmt", "icon.svg")
	if res.code != 0 || res.stdout != "" {
		t.Errorf("second fmt: code = %d, stdout = %q", res.code, res.stdout)
	}
}

func TestFmt_Stdin(t *testing.T) {
	setup(t, nil)

	res := runCLI(`<svg b="1" a="2"/>`, "fmt", "-")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	if want := "<svg a=\"2\" b=\"1\"></svg>\n"; res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
}

func TestPreview(t *testing.T) {
	setup(t, map[string]string{"icon.svg": `<svg viewBox="0 0 10 10"><rect width="10" height="10" fill="none"/></svg>`})

	res := runCLI("", "preview", "--color", "red", "--size=48", "icon.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}
	// The preview is built from the formatted source.
	want := "<svg viewBox=\"0 0 10 10\" width=\"48\" height=\"48\" fill=\"red\" stroke=\"red\">  <rect width=\"10\" height=\"10\" fill=\"none\" stroke=\"red\"/></svg>\n"
	if res.stdout != want {
		t.Errorf("stdout = %q, want %q", res.stdout, want)
	}
}

func TestPreview_PNG(t *testing.T) {
	setup(t, map[string]string{"icon.svg": `<svg viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`})

	res := runCLI("", "preview", "--size", "16", "--png", "icon.png", "icon.svg")
	if res.code != 0 {
		t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
	}

	f, err := os.Open("icon.png")
	if err != nil {
		t.Fatalf("opening png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("image bounds = %v, want 16x16", b)
	}
}

func TestPreview_InvalidOptions(t *testing.T) {
	type tc struct {
		args       []string
		wantStderr string
	}

	tests := map[string]tc{
		"bad color":    {args: []string{"preview", "--color", "blurple", "icon.svg"}, wantStderr: "invalid preview color"},
		"size too big": {args: []string{"preview", "--size", "1024", "icon.svg"}, wantStderr: "out of range"},
		"size not int": {args: []string{"preview", "--size", "big", "icon.svg"}, wantStderr: `invalid size "big"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setup(t, map[string]string{"icon.svg": iconSVG})

			res := runCLI("", tt.args...)
			if res.code != 1 || !strings.Contains(res.stderr, tt.wantStderr) {
				t.Errorf("code = %d, stderr = %q, want %q", res.code, res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"arrow-right.svg":          "ArrowRight",
		"icons/chevron_down.svg":   "ChevronDown",
		"HOME icon.SVG":            "HomeIcon",
		"123.svg":                  "SvgComponent",
		"already-Camel-case.svg":   "AlreadyCamelCase",
		"does/not/exist/check.svg": "Check",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			setup(t, nil)

			res := runCLI("", "name", input)
			if res.code != 0 {
				t.Fatalf("exit code %d, stderr:\n%s", res.code, res.stderr)
			}
			if got := strings.TrimSpace(res.stdout); got != want {
				t.Errorf("name %q = %q, want %q", input, got, want)
			}
		})
	}
}

func TestRun_Commands(t *testing.T) {
	setup(t, nil)

	if res := runCLI(""); res.code != 1 || !strings.Contains(res.stderr, "Usage:") {
		t.Errorf("no args: code = %d, stderr = %q", res.code, res.stderr)
	}
	if res := runCLI("", "frobnicate"); res.code != 1 || !strings.Contains(res.stderr, "unknown command: frobnicate") {
		t.Errorf("unknown command: code = %d, stderr = %q", res.code, res.stderr)
	}
	if res := runCLI("", "help"); res.code != 0 || !strings.Contains(res.stdout, "Commands:") {
		t.Errorf("help: code = %d, stdout = %q", res.code, res.stdout)
	}
	if res := runCLI("", "version"); res.code != 0 || res.stdout != "svgc version "+version+"\n" {
		t.Errorf("version: code = %d, stdout = %q", res.code, res.stdout)
	}
}

func TestOutputFileName(t *testing.T) {
	type tc struct {
		input   string
		name    string
		untyped bool
		want    string
	}

	tests := map[string]tc{
		"same directory": {input: "close.svg", name: "Close", want: "Close.tsx"},
		"nested":         {input: filepath.Join("icons", "arrow-right.svg"), name: "ArrowRight", want: filepath.Join("icons", "ArrowRight.tsx")},
		"untyped":        {input: "close.svg", name: "Close", untyped: true, want: "Close.jsx"},
		"stdin":          {input: stdinPath, name: "SvgComponent", want: "SvgComponent.tsx"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			if tt.untyped {
				cfg.Dialect = "untyped"
			}
			if got := outputFileName(tt.input, tt.name, cfg.DialectValue()); got != tt.want {
				t.Errorf("outputFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
