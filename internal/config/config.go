// Package config loads tree settings for the quadtree command from YAML.
//
//	bounds: {x: 0, y: 0, w: 100, h: 100}
//	maxChildren: 2
//	maxDepth: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterstace/quadtree"
)

// Bounds is the tree's bounding box as written in the file.
type Bounds struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Config holds the construction parameters of a tree.
type Config struct {
	Bounds *Bounds `yaml:"bounds"`
	// MaxChildren of zero selects the library default.
	MaxChildren int `yaml:"maxChildren"`
	// MaxDepth is a pointer so that an explicit 0 can be told apart from an
	// omitted value.
	MaxDepth *int `yaml:"maxDepth"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that the library would otherwise reject at
// construction, so that the error names the config key.
func (c *Config) Validate() error {
	var errs []error
	if c.Bounds == nil {
		errs = append(errs, errors.New("bounds: required"))
	} else if c.Bounds.W <= 0 || c.Bounds.H <= 0 {
		errs = append(errs, fmt.Errorf("bounds: width and height must be positive, got %vx%v", c.Bounds.W, c.Bounds.H))
	}
	if c.MaxChildren < 0 {
		errs = append(errs, fmt.Errorf("maxChildren: must not be negative, got %d", c.MaxChildren))
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("maxDepth: must not be negative, got %d", *c.MaxDepth))
	}
	return errors.Join(errs...)
}

// Rect returns the configured bounds.
func (c *Config) Rect() quadtree.Rect {
	return quadtree.Rect{X: c.Bounds.X, Y: c.Bounds.Y, W: c.Bounds.W, H: c.Bounds.H}
}

// Options translates the config into tree options. Settings left out of the
// file are left to the library defaults.
func (c *Config) Options() []quadtree.Option {
	opts := []quadtree.Option{quadtree.WithMaxChildren(c.MaxChildren)}
	if c.MaxDepth != nil {
		opts = append(opts, quadtree.WithMaxDepth(*c.MaxDepth))
	}
	return opts
}
