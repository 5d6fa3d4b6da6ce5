// Copyright 2025 fluids Authors
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

// Package dispatch reports which floating-point kernels the current CPU can
// run efficiently. The numerics packages consult it once at init to choose
// between a portable kernel and one that relies on hardware fused
// multiply-add.
package dispatch

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Level represents the kernel family selected for this runtime.
type Level int

const (
	// LevelPortable indicates plain multiply/add kernels only.
	LevelPortable Level = iota

	// LevelFMA indicates hardware fused multiply-add is available, so
	// math.FMA compiles to a single instruction.
	LevelFMA
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelPortable:
		return "portable"
	case LevelFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// Config holds the environment overrides recognised by the numerics
// packages. Variables use the FLUIDS_ prefix, e.g. FLUIDS_NO_FMA=1.
type Config struct {
	// NoFMA forces the portable kernels regardless of CPU capabilities.
	// Useful for testing and for reproducing results across machines.
	NoFMA bool `envconfig:"NO_FMA" default:"false"`

	// LogLevel is read by the command-line tools; the library does not log.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// EnvPrefix is the prefix applied to every Config variable.
const EnvPrefix = "FLUIDS"

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s config: %w", EnvPrefix, err)
	}
	return cfg, nil
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// hardwareFMA records what the CPU reports, independent of overrides.
var hardwareFMA bool

// CurrentLevel returns the kernel family in use.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level,
// for example "fma" or "portable".
func CurrentName() string {
	return currentLevel.String()
}

// HasFMA reports whether FMA-based kernels should be used.
func HasFMA() bool {
	return currentLevel == LevelFMA
}

// HardwareFMA reports whether the CPU supports FMA, even when the
// FLUIDS_NO_FMA override disabled it.
func HardwareFMA() bool {
	return hardwareFMA
}

// selectLevel applies the environment override to the detected capability.
// A malformed environment falls back to the portable level.
func selectLevel(hasFMA bool) Level {
	hardwareFMA = hasFMA
	cfg, err := LoadConfig()
	if err != nil || cfg.NoFMA || !hasFMA {
		return LevelPortable
	}
	return LevelFMA
}
