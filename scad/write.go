// SPDX-License-Identifier: MIT
// Package: phantomgen/scad
//
// write.go — the serializer.
//
// Contract:
//   • The tree is checked with csg.Validate before the first byte is written.
//   • Children keep their order; nothing is merged or simplified.
//   • Write reports the first I/O error and stops.

package scad

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/phantomgen"
	"github.com/katalvlaran/phantomgen/csg"
)

const methodWrite = "Write"

// Write serializes n to w.
func Write(w io.Writer, n csg.Node, opts ...Option) error {
	if err := csg.Validate(n); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	cfg := newConfig(opts...)

	p := &printer{w: bufio.NewWriter(w), indent: cfg.indent}
	for _, line := range cfg.header {
		p.line(0, "// "+line)
	}
	p.node(n, 0)
	if p.err == nil {
		p.err = p.w.Flush()
	}
	if p.err != nil {
		return phantomgen.Errorf(methodWrite, p.err, "output")
	}

	return nil
}

// Render returns the serialization of n as a string.
func Render(n csg.Node, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, n, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// printer writes indented lines and remembers the first error.
type printer struct {
	w      *bufio.Writer
	indent string
	err    error
}

func (p *printer) line(depth int, s string) {
	if p.err != nil {
		return
	}
	for i := 0; i < depth; i++ {
		if _, p.err = p.w.WriteString(p.indent); p.err != nil {
			return
		}
	}
	if _, p.err = p.w.WriteString(s); p.err != nil {
		return
	}
	p.err = p.w.WriteByte('\n')
}

func (p *printer) node(n csg.Node, depth int) {
	switch v := n.(type) {
	case *csg.Sphere:
		p.line(depth, "sphere(r = "+num(v.Radius)+fn(v.Segments)+");")
	case *csg.Box:
		p.line(depth, "cube(size = "+vec3(v.Size)+", center = "+strconv.FormatBool(v.Center)+");")
	case *csg.Extrusion:
		p.line(depth, "linear_extrude(height = "+num(v.Height)+") "+profile(v.Profile)+";")
	case *csg.Transform:
		p.block(depth, v.Op.String()+"("+vec3(v.By)+")", []csg.Node{v.Child})
	case *csg.Boolean:
		p.block(depth, v.Op.String()+"()", v.Children)
	}
}

func (p *printer) block(depth int, head string, children []csg.Node) {
	p.line(depth, head+" {")
	for _, c := range children {
		p.node(c, depth+1)
	}
	p.line(depth, "}")
}

func profile(pr csg.Profile) string {
	switch v := pr.(type) {
	case *csg.Circle:
		return "circle(r = " + num(v.Radius) + fn(v.Segments) + ")"
	case *csg.Polygon:
		return "polygon(points = " + points(v.Points) + ")"
	default:
		return ""
	}
}

func points(pts []vec.Vec2) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = "[" + num(pt.X) + ", " + num(pt.Y) + "]"
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func vec3(v csg.Vec3) string {
	return "[" + num(v.X) + ", " + num(v.Y) + ", " + num(v.Z) + "]"
}

func fn(segments int) string {
	if segments == 0 {
		return ""
	}
	return ", $fn = " + strconv.Itoa(segments)
}

// num formats x in its shortest round-trip form; -0 prints as 0.
func num(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
