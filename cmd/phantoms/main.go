// SPDX-License-Identifier: MIT

// Command phantoms writes the standard phantom scenes as OpenSCAD files and
// meshes each one to STL when the openscad executable is available.
//
// Usage:
//
//	phantoms [-out dir] [-seed n] [-scale s] [-openscad path] [-no-mesh]
//
// Environment variables PHANTOMS_OUT, PHANTOMS_SEED, PHANTOMS_SCALE and
// PHANTOMS_OPENSCAD supply defaults for the matching flags;
// PHANTOMS_LOG_LEVEL=debug logs every file written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/katalvlaran/phantomgen/scad"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if cfg.Version {
		fmt.Printf("phantoms %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("phantoms: %v", err)
	}
}

// run writes every scene to cfg.OutDir and meshes it unless disabled.
// A missing mesher is logged once and skips the remaining meshing.
func run(ctx context.Context, cfg *Config) error {
	if cfg.Debug {
		log.Printf("phantoms v%s (built %s, commit %s) seed=%d", Version, BuildTime, GitCommit, cfg.Seed)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	scenes, err := buildScenes(rand.New(rand.NewSource(cfg.Seed)), cfg.Scale)
	if err != nil {
		return err
	}

	meshing := !cfg.NoMesh
	for _, sc := range scenes {
		scadPath := filepath.Join(cfg.OutDir, sc.Name+".scad")
		if err := writeScene(scadPath, sc, cfg.Seed); err != nil {
			return err
		}
		if cfg.Debug {
			log.Printf("wrote %s", scadPath)
		}
		if !meshing {
			continue
		}

		stlPath := filepath.Join(cfg.OutDir, sc.Name+".stl")
		err := mesh(ctx, cfg.OpenSCAD, scadPath, stlPath)
		switch {
		case err == nil:
		case errors.Is(err, errMesherMissing):
			log.Printf("%v; skipping STL export", err)
			meshing = false
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			log.Printf("mesh %s: %v", sc.Name, err)
		}
	}
	log.Printf("wrote %d scenes to %s", len(scenes), cfg.OutDir)

	return nil
}

func writeScene(path string, sc Scene, seed int64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return scad.Write(f, sc.Node, scad.WithHeader(fmt.Sprintf("%s (seed %d)", sc.Name, seed)))
}
