// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for the commands in this module.
//
// Values are read from the environment (CDIFF_COLOR, CDIFF_LOG_LEVEL) and from command line
// flags bound to the same keys, flags take precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// ColorMode describes when output is colored.
type ColorMode int

const (
	// Color output if the terminal supports it and the environment doesn't disable colors (e.g.
	// via NO_COLOR).
	ColorAuto ColorMode = iota

	// Always color output.
	ColorAlways

	// Never color output.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode parses the textual representation of a color mode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return 0, fmt.Errorf("invalid color mode %q, want one of auto, always, never", s)
	}
}

// Config collects all configurable parameters for the commands in this module.
type Config struct {
	// When to color the output.
	Color ColorMode

	// Minimum level of log messages written to stderr.
	LogLevel log.Level
}

// Default is the default configuration.
var Default = Config{
	Color:    ColorAuto,
	LogLevel: log.WarnLevel,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a command.
type Flag int

const (
	Color Flag = 1 << iota
	LogLevel
)

// Option is the mechanism used to expose the configuration to commands.
type Option func(*Config) Flag

// WithColor sets the color mode.
func WithColor(m ColorMode) Option {
	return func(cfg *Config) Flag {
		cfg.Color = m
		return Color
	}
}

// WithLogLevel sets the minimum log level.
func WithLogLevel(l log.Level) Option {
	return func(cfg *Config) Flag {
		cfg.LogLevel = l
		return LogLevel
	}
}

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Color:
		return "config.WithColor"
	case LogLevel:
		return "config.WithLogLevel"
	default:
		panic("never reached")
	}
}

// Keys used to look up configuration values.
const (
	KeyColor    = "color"
	KeyLogLevel = "log-level"
)

// NewViper returns a viper instance that reads configuration values from CDIFF_* environment
// variables. Command line flags can be bound to the keys [KeyColor] and [KeyLogLevel].
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("cdiff")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyColor, Default.Color.String())
	v.SetDefault(KeyLogLevel, Default.LogLevel.String())
	return v
}

// Load reads the configuration values from v and returns them as options.
func Load(v *viper.Viper) ([]Option, error) {
	color, err := ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", KeyColor, err)
	}
	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", KeyLogLevel, err)
	}
	return []Option{WithColor(color), WithLogLevel(level)}, nil
}
