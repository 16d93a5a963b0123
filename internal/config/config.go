// SPDX-License-Identifier: EPL-2.0

// Package config loads the batch job settings from the environment.
package config

import (
	"os"
	"runtime"
	"strconv"
)

// DefaultOutputDir is where the asset set lives, relative to the working directory.
const DefaultOutputDir = "assets/sounds/piano"

// Config holds the settings that may vary between runs. Render parameters
// are fixed and not configurable.
type Config struct {
	OutputDir string
	Workers   int  // concurrent notes, at least 1
	Manifest  bool // write manifest.yaml next to the files
	Verify    bool // decode each file after writing it
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		OutputDir: envStr("PIANOGEN_OUTPUT_DIR", DefaultOutputDir),
		Workers:   envInt("PIANOGEN_WORKERS", runtime.NumCPU()),
		Manifest:  envBool("PIANOGEN_MANIFEST", true),
		Verify:    envBool("PIANOGEN_VERIFY", true),
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
