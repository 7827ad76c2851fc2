// SPDX-License-Identifier: MIT

// Package scad serializes csg trees to OpenSCAD source.
//
// Only the node kinds of package csg are emitted:
//
//	sphere(r = R, $fn = N);
//	cube(size = [X, Y, Z], center = true);
//	linear_extrude(height = H) circle(r = R, $fn = N);
//	linear_extrude(height = H) polygon(points = [[X, Y], ...]);
//	translate([X, Y, Z]) { ... }
//	scale([X, Y, Z]) { ... }
//	union() { ... }  difference() { ... }  intersection() { ... }
//
// $fn is omitted when the segment count is 0. Numbers use the shortest
// representation that round-trips to the same float64.
package scad
