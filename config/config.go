// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config handles hopfield command configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emer/hopfield/capacity"
	"github.com/emer/hopfield/hopfield"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Recall   RecallConfig   `yaml:"recall"`
	Patterns PatternsConfig `yaml:"patterns"`
	Bench    BenchConfig    `yaml:"bench"`
	Log      LogConfig      `yaml:"log"`
}

// NetworkConfig holds recognizer settings.
type NetworkConfig struct {
	ImageSize int `yaml:"image_size"`
	// Columns is the grid width used to display patterns
	Columns int `yaml:"columns"`
	// IndexBound is "CountBound" or the legacy "ImageSizeBound"
	IndexBound string `yaml:"index_bound"`
}

// RecallConfig holds recall settings.
type RecallConfig struct {
	Attempts int `yaml:"attempts"`
}

// PatternsConfig holds the patterns learned at startup.
type PatternsConfig struct {
	// File is a newline-delimited '0'/'1' pattern file; empty means the built-in demo set
	File string `yaml:"file"`
}

// BenchConfig holds capacity experiment settings.
type BenchConfig struct {
	Sizes    []int   `yaml:"sizes"`
	MaxPats  int     `yaml:"max_patterns"`
	Trials   int     `yaml:"trials"`
	PctOn    float32 `yaml:"pct_on"`
	FlipPct  float32 `yaml:"flip_pct"`
	Attempts int     `yaml:"attempts"`
	Workers  int     `yaml:"workers"`
	Seed     int64   `yaml:"seed"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
	JSON    bool `yaml:"json"`
}

// Default returns the default configuration.
func Default() *Config {
	bp := capacity.Params{}
	bp.Defaults()
	return &Config{
		Network: NetworkConfig{
			ImageSize:  100,
			Columns:    10,
			IndexBound: hopfield.CountBound.String(),
		},
		Recall: RecallConfig{
			Attempts: 100,
		},
		Bench: BenchConfig{
			Sizes:    bp.Sizes,
			MaxPats:  bp.MaxPats,
			Trials:   bp.Trials,
			PctOn:    bp.PctOn,
			FlipPct:  bp.FlipPct,
			Attempts: bp.Attempts,
			Workers:  bp.Workers,
			Seed:     bp.Seed,
		},
	}
}

// Load loads configuration from a file, on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values that the recognizer and experiment would reject.
func (c *Config) Validate() error {
	if c.Network.ImageSize <= 0 {
		return fmt.Errorf("network.image_size %d must be positive", c.Network.ImageSize)
	}
	if c.Network.Columns <= 0 {
		return fmt.Errorf("network.columns %d must be positive", c.Network.Columns)
	}
	if _, err := c.IndexBound(); err != nil {
		return err
	}
	if c.Recall.Attempts < 1 {
		return fmt.Errorf("recall.attempts %d must be at least 1", c.Recall.Attempts)
	}
	bp := c.BenchParams()
	if err := bp.Validate(); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return nil
}

// IndexBound parses Network.IndexBound
func (c *Config) IndexBound() (hopfield.IndexBounds, error) {
	var ib hopfield.IndexBounds
	if c.Network.IndexBound == "" {
		return hopfield.CountBound, nil
	}
	if err := ib.FromString(c.Network.IndexBound); err != nil {
		return hopfield.CountBound, fmt.Errorf("network.index_bound: %w", err)
	}
	return ib, nil
}

// BenchParams returns the capacity experiment parameters
func (c *Config) BenchParams() *capacity.Params {
	return &capacity.Params{
		Sizes:    c.Bench.Sizes,
		MaxPats:  c.Bench.MaxPats,
		Trials:   c.Bench.Trials,
		PctOn:    c.Bench.PctOn,
		FlipPct:  c.Bench.FlipPct,
		Attempts: c.Bench.Attempts,
		Workers:  c.Bench.Workers,
		Seed:     c.Bench.Seed,
	}
}

// NewRecognizer returns a new Recognizer configured from the network settings
func (c *Config) NewRecognizer() (*hopfield.Recognizer, error) {
	ib, err := c.IndexBound()
	if err != nil {
		return nil, err
	}
	rc, err := hopfield.NewRecognizer(c.Network.ImageSize)
	if err != nil {
		return nil, err
	}
	rc.Params.IndexBound = ib
	return rc, nil
}
