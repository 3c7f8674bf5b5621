// Package obj writes a dmc quad mesh as a Wavefront OBJ file. OBJ's face
// record natively supports more than three indices, so quads are written
// directly without triangulation.
package obj

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chazu/lignin/pkg/dmc"
)

// Write serializes vertices and quads to w as a Wavefront OBJ document.
// Vertex indices are 1-based per the OBJ convention.
func Write(w io.Writer, vertices []dmc.Vertex, quads []dmc.Quad) error {
	bw := bufio.NewWriter(w)

	for _, v := range vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("obj: writing vertex: %w", err)
		}
	}
	for _, q := range quads {
		if _, err := fmt.Fprintf(bw, "f %d %d %d %d\n", q.I0+1, q.I1+1, q.I2+1, q.I3+1); err != nil {
			return fmt.Errorf("obj: writing face: %w", err)
		}
	}
	return bw.Flush()
}
