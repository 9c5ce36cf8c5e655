package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const defaultFileMode = "0644"

// Config captures the runtime knobs for a conversion.
type Config struct {
	Strict    bool   `yaml:"strict"`
	OutputDir string `yaml:"output_dir"`
	Quiet     bool   `yaml:"quiet"`
	FileMode  string `yaml:"file_mode"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Strict    bool
	OutputDir string
	Quiet     bool
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{FileMode: defaultFileMode}
}

// Load reads and validates a Config from YAML.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when path does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Strict {
		c.Strict = true
	}
	if o.OutputDir != "" {
		c.OutputDir = o.OutputDir
	}
	if o.Quiet {
		c.Quiet = true
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.FileMode == "" {
		c.FileMode = defaultFileMode
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.OutputDir != "" {
		info, err := os.Stat(c.OutputDir)
		if err != nil {
			return fmt.Errorf("output_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("output_dir %s is not a directory", c.OutputDir)
		}
	}
	return nil
}

// Mode returns the permission bits used for the output file.
func (c *Config) Mode() (os.FileMode, error) {
	v, err := strconv.ParseUint(c.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("file_mode must be octal (got %q): %w", c.FileMode, err)
	}
	if v == 0 || v > 0o777 {
		return 0, fmt.Errorf("file_mode must be within 0001..0777 (got %s)", c.FileMode)
	}
	return os.FileMode(v), nil
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}
