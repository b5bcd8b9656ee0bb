// Copyright 2026 The Gurmukhi Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/gurmukhi-go/gurmukhi"
	"github.com/gurmukhi-go/gurmukhi/mapping"
)

// LogLevel is the minimum severity of log records written to standard error.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Input character sets.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
)

// Config holds the settings of the command. Flags override the values read
// from the configuration file.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`

	// InputCharset is the encoding of input files. Files typed for a legacy
	// font are often stored as windows-1252.
	InputCharset string `yaml:"input_charset"`

	// Vishraams lists the pause marks removed by strip-vishraams. An empty
	// list removes all of them.
	Vishraams []string `yaml:"vishraams"`

	// Workers is the number of files converted at the same time.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:     LogWarn,
		InputCharset: CharsetUTF8,
		Workers:      runtime.GOMAXPROCS(0),
	}
}

// Load reads the YAML configuration file at path and returns a validated
// Config. Settings missing from the file keep their default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	if err := validate(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	var errs []error
	if !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	if _, err := cfg.decoder(); err != nil {
		errs = append(errs, err)
	}
	if _, err := cfg.vishraams(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers))
	}
	return errors.Join(errs...)
}

// decoder returns the transformer that converts input bytes to UTF-8, or nil
// if the input is UTF-8 already.
func (c *Config) decoder() (transform.Transformer, error) {
	switch strings.ToLower(c.InputCharset) {
	case CharsetUTF8, "utf8":
		return nil, nil
	case CharsetWindows1252, "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	}
	return nil, fmt.Errorf("input_charset %q is invalid; valid values: %s, %s", c.InputCharset, CharsetUTF8, CharsetWindows1252)
}

// vishraams returns the configured pause marks as a set.
func (c *Config) vishraams() (gurmukhi.Vishraam, error) {
	return parseVishraams(c.Vishraams)
}

func parseVishraams(names []string) (gurmukhi.Vishraam, error) {
	if len(names) == 0 {
		return gurmukhi.AllVishraams, nil
	}
	var v gurmukhi.Vishraam
	for _, n := range names {
		x, err := mapping.ParseVishraam(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		v |= x
	}
	return v, nil
}
