// SPDX-License-Identifier: MIT

// Package siemens builds Siemens star resolution targets.
//
// A star with n sectors and outer radius R has 2n boundary points evenly
// spaced on the circle of radius R, starting at angle 0 and excluding 2π.
// Consecutive pairs (P[2i], P[2i+1]) are joined with the center into n
// filled triangles; the n gaps between them are the empty wedges.
//
// The local line-pair spacing at distance r from the center is 2πr/n, so the
// spatial frequency there is
//
//	f(r) = n / (2πr)    and inversely    r(f) = n / (2πf).
package siemens

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
)

const (
	methodBuild       = "Build"
	methodFrequencyAt = "Star.FrequencyAt"
	methodRadiusAt    = "Star.RadiusAt"

	// MinSectors is the smallest star that still alternates filled and empty wedges.
	MinSectors = 2
)

// Star is a Siemens star centered at the origin. Read-only after Build.
type Star struct {
	Sectors   int
	Radius    float64
	Points    []vec.Vec2    // 2·Sectors boundary points, counter-clockwise from angle 0
	Triangles [][3]vec.Vec2 // (P[2i], P[2i+1], origin)
}

// Build returns a star with n sectors and outer radius r.
//
// Errors:
//   - ErrInvalidParameter when n < 2 or r is not a positive finite number.
func Build(n int, r float64) (*Star, error) {
	if n < MinSectors {
		return nil, phantomgen.Errorf(methodBuild, phantomgen.ErrInvalidParameter,
			"sectors=%d (must be ≥ %d)", n, MinSectors)
	}
	if !(r > 0) || math.IsInf(r, 1) {
		return nil, phantomgen.Errorf(methodBuild, phantomgen.ErrInvalidParameter,
			"radius=%g (must be > 0)", r)
	}

	nPoints := 2 * n
	step := 2 * math.Pi / float64(nPoints)
	points := make([]vec.Vec2, nPoints)
	var t float64
	for k := range points {
		t = float64(k) * step
		points[k] = vec.Vec2{X: r * math.Cos(t), Y: r * math.Sin(t)}
	}

	var center vec.Vec2
	triangles := make([][3]vec.Vec2, n)
	for i := range triangles {
		triangles[i] = [3]vec.Vec2{points[2*i], points[2*i+1], center}
	}

	return &Star{
		Sectors:   n,
		Radius:    r,
		Points:    points,
		Triangles: triangles,
	}, nil
}

// FrequencyAt returns the spatial frequency, in cycles per unit length, at
// distance r from the center.
func (s *Star) FrequencyAt(r float64) (float64, error) {
	if !(r > 0) {
		return 0, phantomgen.Errorf(methodFrequencyAt, phantomgen.ErrInvalidParameter, "r=%g", r)
	}

	return float64(s.Sectors) / (2 * math.Pi * r), nil
}

// RadiusAt returns the distance from the center at which the star has
// spatial frequency f.
func (s *Star) RadiusAt(f float64) (float64, error) {
	if !(f > 0) {
		return 0, phantomgen.Errorf(methodRadiusAt, phantomgen.ErrInvalidParameter, "f=%g", f)
	}

	return float64(s.Sectors) / (2 * math.Pi * f), nil
}

// OuterFrequency is the lowest frequency the star resolves, reached at its rim.
func (s *Star) OuterFrequency() float64 {
	return float64(s.Sectors) / (2 * math.Pi * s.Radius)
}

// WedgeAngle is the angular width of one filled (or empty) wedge: π/n.
func (s *Star) WedgeAngle() float64 {
	return math.Pi / float64(s.Sectors)
}

// Polygons returns each filled sector as a closed vertex list.
func (s *Star) Polygons() [][]vec.Vec2 {
	out := make([][]vec.Vec2, len(s.Triangles))
	for i, tri := range s.Triangles {
		out[i] = []vec.Vec2{tri[0], tri[1], tri[2]}
	}

	return out
}

// Outline returns the filled sectors as closed subpaths, one per triangle.
func (s *Star) Outline() *path.Data {
	p := &path.Data{}
	for _, tri := range s.Triangles {
		p = p.MoveTo(tri[0]).LineTo(tri[1]).LineTo(tri[2]).Close()
	}

	return p
}

// Bounds returns the extent of the filled sectors.
func (s *Star) Bounds() rect.Rect {
	b := rect.Rect{}
	for _, tri := range s.Triangles {
		for _, v := range tri {
			b.LLx = math.Min(b.LLx, v.X)
			b.LLy = math.Min(b.LLy, v.Y)
			b.URx = math.Max(b.URx, v.X)
			b.URy = math.Max(b.URy, v.Y)
		}
	}

	return b
}
