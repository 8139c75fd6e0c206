// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the description of a charting run.
package config

import (
	"fmt"
	"image/color"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/vuelsbench/benchplot/internal/logging"
)

// LoadConfig reads a YAML configuration file. ${VAR} references are
// replaced by the value of the environment variable VAR when it is
// set. Layout fields left out of the file take their defaults.
func LoadConfig(path string) (*Config, error) {
	logger := logging.GetLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Config{Separate: true}
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.fill()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("file", path).WithField("charts", len(cfg.Charts)).Debug("Loaded configuration")
	return &cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(content string) string {
	return envRef.ReplaceAllStringFunc(content, func(match string) string {
		name := strings.Trim(match, "${}")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if len(c.Charts) == 0 {
		return fmt.Errorf("no charts configured")
	}
	for i, ch := range c.Charts {
		if ch.Input == "" {
			return fmt.Errorf("chart %d: missing input", i+1)
		}
		if c.Separate && ch.Output == "" {
			return fmt.Errorf("chart %d (%s): missing output", i+1, ch.Input)
		}
	}
	if !c.Separate && c.Combined == "" {
		return fmt.Errorf("nothing to write: separate is false and combined is empty")
	}
	switch c.Scale {
	case ScaleLinear, ScaleLog1p:
	default:
		return fmt.Errorf("unknown scale %q (want %s or %s)", c.Scale, ScaleLinear, ScaleLog1p)
	}
	for _, h := range c.Highlight {
		if h.Series == "" {
			return fmt.Errorf("highlight without a series name")
		}
		if _, err := ParseColor(h.Color); err != nil {
			return fmt.Errorf("highlight %s: %w", h.Series, err)
		}
		if h.Width <= 0 {
			return fmt.Errorf("highlight %s: width must be positive", h.Series)
		}
	}
	if c.DimAlpha <= 0 || c.DimAlpha > 1 {
		return fmt.Errorf("dim_alpha %v out of range (0, 1]", c.DimAlpha)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive")
	}
	if c.Width <= 0 || c.Height <= 0 || c.PanelHeight <= 0 {
		return fmt.Errorf("width, height and panel_height must be positive")
	}
	return nil
}

// ParseColor accepts "#rrggbb" or an SVG 1.1 colour name such as
// "darkgreen".
func ParseColor(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad colour %q", s)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
