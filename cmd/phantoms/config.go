// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// ============================================================
// Configuration
// ============================================================

// Config holds the run settings. Flags win over environment variables,
// which win over the built-in defaults.
type Config struct {
	OutDir   string
	Seed     int64
	Scale    float64
	OpenSCAD string
	NoMesh   bool
	Debug    bool
	Version  bool
}

// Load parses args (without the program name) on top of the environment.
func Load(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	seedDefault := getEnvAsInt64("PHANTOMS_SEED", time.Now().UnixNano())

	fs := flag.NewFlagSet("phantoms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.OutDir, "out", getEnv("PHANTOMS_OUT", "."), "output directory for .scad and .stl files")
	fs.Int64Var(&cfg.Seed, "seed", seedDefault, "random seed (default: PHANTOMS_SEED or the current time)")
	fs.Float64Var(&cfg.Scale, "scale", getEnvAsFloat("PHANTOMS_SCALE", 100), "uniform scale applied to every scene")
	fs.StringVar(&cfg.OpenSCAD, "openscad", getEnv("PHANTOMS_OPENSCAD", "openscad"), "mesher executable")
	fs.BoolVar(&cfg.NoMesh, "no-mesh", false, "write .scad files only")
	fs.BoolVar(&cfg.Version, "version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !(cfg.Scale > 0) {
		return nil, fmt.Errorf("scale must be > 0, got %g", cfg.Scale)
	}
	cfg.Debug = getEnv("PHANTOMS_LOG_LEVEL", "") == "debug"

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
