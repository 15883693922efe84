// config.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads the tellofly settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SMerrony/tellosdk"
)

// Config holds the complete tellofly configuration.
type Config struct {
	Drone  tellosdk.Config `yaml:"drone"`
	Flight FlightConfig    `yaml:"flight"`
	Log    LogConfig       `yaml:"log"`
}

// FlightConfig holds the settings of the scripted flight.
type FlightConfig struct {
	MinBattery uint8         `yaml:"min_battery"` // percent; below this the drone stays on the ground
	Settle     time.Duration `yaml:"settle"`      // pause after takeoff
}

// LogConfig holds logging settings.  An empty File means log to stderr.
type LogConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Verbose    bool   `yaml:"verbose"` // log every command and reply
}

// DefaultPath returns the default config file path: ~/.tello/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tello", "config.yaml")
	}
	return filepath.Join(home, ".tello", "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Drone: tellosdk.DefaultConfig(),
		Flight: FlightConfig{
			MinBattery: 15,
			Settle:     tellosdk.DefaultSettle,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the configuration from the given YAML file path on top of the defaults.
// If the file does not exist, it returns the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values make sense.
func (cfg *Config) Validate() error {
	if cfg.Drone.Addr == "" {
		return fmt.Errorf("drone address must be set")
	}
	if cfg.Drone.Port <= 0 || cfg.Drone.Port > 65535 {
		return fmt.Errorf("invalid drone port %d", cfg.Drone.Port)
	}
	if cfg.Drone.ReadTimeout <= 0 || cfg.Drone.WriteTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive (read=%v, write=%v)", cfg.Drone.ReadTimeout, cfg.Drone.WriteTimeout)
	}
	if cfg.Flight.MinBattery > 100 {
		return fmt.Errorf("min_battery %d is not a percentage", cfg.Flight.MinBattery)
	}
	if cfg.Flight.Settle < 0 {
		return fmt.Errorf("settle %v must not be negative", cfg.Flight.Settle)
	}
	return nil
}
