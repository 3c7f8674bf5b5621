package svgslice

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/lignin/pkg/dmc"
)

func TestWriteDrawsCrossingQuad(t *testing.T) {
	// A quad tilted through z=0.5: two corners below the plane, two above.
	vertices := []dmc.Vertex{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}
	quads := []dmc.Quad{{I0: 0, I1: 1, I2: 2, I3: 3}}

	opts := DefaultOptions()
	opts.Z = 0.5
	opts.MaxX, opts.MaxY = 1, 1

	var buf bytes.Buffer
	if err := Write(&buf, vertices, quads, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "<line") {
		t.Errorf("expected an SVG line for the crossing quad, got:\n%s", buf.String())
	}
}

func TestWriteSkipsQuadEntirelyAboveThePlane(t *testing.T) {
	vertices := []dmc.Vertex{
		{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2},
	}
	quads := []dmc.Quad{{I0: 0, I1: 1, I2: 2, I3: 3}}

	opts := DefaultOptions()
	opts.Z = 0
	opts.MaxX, opts.MaxY = 1, 1

	var buf bytes.Buffer
	if err := Write(&buf, vertices, quads, opts); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "<line") {
		t.Errorf("expected no lines for a quad that never crosses the plane, got:\n%s", buf.String())
	}
}

func TestPlaneIntersectionMidpoint(t *testing.T) {
	a := dmc.Vertex{X: 0, Y: 0, Z: 0}
	b := dmc.Vertex{X: 2, Y: 4, Z: 2}
	pt, ok := planeIntersection(a, b, 1)
	if !ok {
		t.Fatal("expected a crossing")
	}
	if pt[0] != 1 || pt[1] != 2 {
		t.Errorf("planeIntersection = %v, want [1 2]", pt)
	}
}
