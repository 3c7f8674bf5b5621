// Package svgslice renders a single Z-plane cross-section of a dmc quad
// mesh as an SVG wireframe, for a quick 2D sanity check of an extraction
// without a 3D viewer.
package svgslice

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/lignin/pkg/dmc"
)

// Options controls how a slice is framed and scaled.
type Options struct {
	Z          float64 // the plane to slice at, in the same units as vertices
	Width      int     // output image width in pixels
	Height     int     // output image height in pixels
	MinX, MinY float64 // world-space bounds mapped onto the image
	MaxX, MaxY float64
	LineStroke string
}

// DefaultOptions returns Options sized for a typical preview; the caller
// still needs to supply Z and the world-space bounds.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, LineStroke: "black"}
}

// Write finds, for every quad whose boundary crosses the Z plane at exactly
// two edges, the segment between those two intersection points and draws it
// projected onto XY. Quads entirely on one side of the plane contribute
// nothing, and so do non-planar quads whose boundary crosses the plane at
// four edges.
func Write(w io.Writer, vertices []dmc.Vertex, quads []dmc.Quad, opts Options) error {
	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	defer canvas.End()

	scaleX := float64(opts.Width) / maxf(opts.MaxX-opts.MinX, 1e-9)
	scaleY := float64(opts.Height) / maxf(opts.MaxY-opts.MinY, 1e-9)
	style := fmt.Sprintf("stroke:%s", opts.LineStroke)

	for _, q := range quads {
		corners := [4]dmc.Vertex{vertices[q.I0], vertices[q.I1], vertices[q.I2], vertices[q.I3]}
		var points [][2]float64
		for i := 0; i < 4; i++ {
			a, b := corners[i], corners[(i+1)%4]
			if pt, ok := planeIntersection(a, b, opts.Z); ok {
				points = append(points, pt)
			}
		}
		if len(points) != 2 {
			continue
		}
		ax := int((points[0][0] - opts.MinX) * scaleX)
		ay := int((points[0][1] - opts.MinY) * scaleY)
		bx := int((points[1][0] - opts.MinX) * scaleX)
		by := int((points[1][1] - opts.MinY) * scaleY)
		canvas.Line(ax, ay, bx, by, style)
	}
	return nil
}

// planeIntersection returns the (x, y) point where segment a-b crosses
// z=plane, if the endpoints are on opposite sides of it.
func planeIntersection(a, b dmc.Vertex, plane float64) ([2]float64, bool) {
	da := float64(a.Z) - plane
	db := float64(b.Z) - plane
	if (da < 0) == (db < 0) {
		return [2]float64{}, false
	}
	t := da / (da - db)
	x := float64(a.X) + t*(float64(b.X)-float64(a.X))
	y := float64(a.Y) + t*(float64(b.Y)-float64(a.Y))
	return [2]float64{x, y}, true
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
