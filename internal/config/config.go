// Package config loads the optional constgen configuration file.
//
// The file is either constgen.yaml (or .yml) or constgen.toml. Every key is
// optional; missing keys keep their defaults:
//
//	packages: ["./store", "./catalog/..."]
//	suffix: _const.go
//	comments: true
//	verbose: false
//	render_import: const-generator/render
//	parallelism: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Names are the file names searched by Find, in order.
var Names = []string{"constgen.yaml", "constgen.yml", "constgen.toml"}

var (
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

// Config is the generator configuration.
type Config struct {
	Packages     []string
	Suffix       string
	Comments     bool
	Verbose      bool
	RenderImport string
	Parallelism  int
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Packages:     []string{"."},
		Suffix:       "_const.go",
		Comments:     true,
		RenderImport: "const-generator/render",
		Parallelism:  runtime.GOMAXPROCS(0),
	}
}

// fileConfig mirrors the file; pointers tell unset keys apart from zero values.
type fileConfig struct {
	Packages     []string `yaml:"packages"      toml:"packages"`
	Suffix       *string  `yaml:"suffix"        toml:"suffix"`
	Comments     *bool    `yaml:"comments"      toml:"comments"`
	Verbose      *bool    `yaml:"verbose"       toml:"verbose"`
	RenderImport *string  `yaml:"render_import" toml:"render_import"`
	Parallelism  *int     `yaml:"parallelism"   toml:"parallelism"`
}

// Find returns the path of the first config file in dir, or "" when there is
// none.
func Find(dir string) (string, error) {
	for _, name := range Names {
		p := filepath.Join(dir, name)

		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", p, err)
		}
	}

	return "", nil
}

// LoadFile reads the config at path, picking the format from its extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var format string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".toml":
		format = "toml"
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data in the given format ("yaml" or "toml") over the defaults.
func Parse(data []byte, format string) (Config, error) {
	var raw fileConfig

	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		// an empty document decodes to EOF
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case "toml":
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config TOML: %w", err)
		}

		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return raw.apply(Default())
}

// apply overlays the keys set in the file on cfg.
func (f fileConfig) apply(cfg Config) (Config, error) {
	if f.Packages != nil {
		cfg.Packages = f.Packages
	}

	if f.Suffix != nil {
		cfg.Suffix = strings.TrimSpace(*f.Suffix)
	}

	if f.Comments != nil {
		cfg.Comments = *f.Comments
	}

	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}

	if f.RenderImport != nil {
		cfg.RenderImport = strings.TrimSpace(*f.RenderImport)
	}

	if f.Parallelism != nil {
		cfg.Parallelism = *f.Parallelism
	}

	return cfg, cfg.Validate()
}

// Validate checks that cfg can drive a generator run.
func (c Config) Validate() error {
	switch {
	case len(c.Packages) == 0:
		return fmt.Errorf("%w: no packages", ErrInvalid)
	case !strings.HasSuffix(c.Suffix, ".go") || strings.HasSuffix(c.Suffix, "_test.go"):
		return fmt.Errorf("%w: suffix %q must end in .go and not _test.go", ErrInvalid, c.Suffix)
	case c.RenderImport == "":
		return fmt.Errorf("%w: empty render_import", ErrInvalid)
	case c.Parallelism < 1:
		return fmt.Errorf("%w: parallelism %d", ErrInvalid, c.Parallelism)
	}

	return nil
}
