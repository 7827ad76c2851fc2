package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phantomgen/csg"
)

var wantScenes = []string{
	"doga-plate", "doga-spheres", "star-plate", "star", "spheres",
	"mat-spheres-0", "mat-spheres-1", "mat-spheres-2", "mat-spheres-3", "mat-spheres-4",
}

func TestBuildScenes(t *testing.T) {
	scenes, err := buildScenes(rand.New(rand.NewSource(1)), 100)
	require.NoError(t, err)

	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.Name
		require.NoError(t, csg.Validate(sc.Node), sc.Name)
		tr, ok := sc.Node.(*csg.Transform)
		require.True(t, ok)
		require.Equal(t, csg.OpScale, tr.Op)
		require.Equal(t, csg.Uniform(100), tr.By)
	}
	require.Equal(t, wantScenes, names)

	plate := scenes[0].Node.(*csg.Transform).Child.(*csg.Boolean)
	require.Equal(t, csg.OpDifference, plate.Op)
	star := scenes[3].Node.(*csg.Transform).Child.(*csg.Boolean)
	require.Equal(t, csg.OpIntersection, star.Op)
	require.Equal(t, 20, csg.Collect(star).Extrusions)

	seen := make(map[csg.Node]string)
	for _, sc := range scenes {
		csg.Walk(sc.Node, func(n csg.Node, _ int) bool {
			prev, dup := seen[n]
			require.False(t, dup, "%s reuses a node of %s", sc.Name, prev)
			seen[n] = sc.Name
			return true
		})
	}
}

func TestRunWritesScenes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := &Config{OutDir: dir, Seed: 3, Scale: 100, NoMesh: true}
	require.NoError(t, run(context.Background(), cfg))

	for _, name := range wantScenes {
		data, err := os.ReadFile(filepath.Join(dir, name+".scad"))
		require.NoError(t, err, name)
		require.True(t, strings.HasPrefix(string(data), "// "+name+" (seed 3)\nscale([100, 100, 100]) {\n"), name)
		_, err = os.Stat(filepath.Join(dir, name+".stl"))
		require.True(t, os.IsNotExist(err))
	}
}

func TestRunSameSeedSameOutput(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	require.NoError(t, run(context.Background(), &Config{OutDir: a, Seed: 11, Scale: 1, NoMesh: true}))
	require.NoError(t, run(context.Background(), &Config{OutDir: b, Seed: 11, Scale: 1, NoMesh: true}))

	for _, name := range wantScenes {
		x, err := os.ReadFile(filepath.Join(a, name+".scad"))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b, name+".scad"))
		require.NoError(t, err)
		require.Equal(t, string(x), string(y), name)
	}
}

func TestRunMissingMesherIsNotFatal(t *testing.T) {
	cfg := &Config{
		OutDir:   t.TempDir(),
		Seed:     1,
		Scale:    100,
		OpenSCAD: "phantoms-test-no-such-mesher",
	}
	require.NoError(t, run(context.Background(), cfg))

	err := mesh(context.Background(), cfg.OpenSCAD, "a.scad", "a.stl")
	require.ErrorIs(t, err, errMesherMissing)
}
