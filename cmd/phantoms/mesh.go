// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// errMesherMissing reports that the mesher executable is not installed.
var errMesherMissing = errors.New("mesher not found")

// mesh converts scadPath to stlPath with the OpenSCAD command line.
func mesh(ctx context.Context, bin, scadPath, stlPath string) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%w: %s", errMesherMissing, bin)
	}

	cmd := exec.CommandContext(ctx, path, "-o", stlPath, scadPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s -o %s %s: %w: %s", bin, stlPath, scadPath, err, strings.TrimSpace(string(out)))
	}
	log.Printf("meshed %s", stlPath)

	return nil
}
