package sdfx

import (
	"testing"

	"github.com/chazu/lignin/pkg/dmc"
	"github.com/deadsy/sdfx/sdf"
)

func TestNewRejectsNonPositiveCellSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("expected an error for cell size 0")
	}
	if _, err := New(-1); err == nil {
		t.Error("expected an error for a negative cell size")
	}
}

func TestSampleSphereProducesNonTrivialGrid(t *testing.T) {
	solid, err := sdf.Sphere3D(2)
	if err != nil {
		t.Fatalf("sdf.Sphere3D: %v", err)
	}

	sampler, err := New(0.5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	samples, nx, ny, nz, origin, err := sampler.Sample(solid)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if nx < 2 || ny < 2 || nz < 2 {
		t.Fatalf("grid too small: %dx%dx%d", nx, ny, nz)
	}
	if int64(len(samples)) != int64(nx)*int64(ny)*int64(nz) {
		t.Fatalf("len(samples) = %d, want %d", len(samples), nx*ny*nz)
	}

	// Somewhere near the grid center (inside the sphere) should read
	// solidly "inside" (>= Iso); a corner of the grid (outside the
	// sphere's bounding box plus margin) should read "outside" (< Iso).
	centerIdx := (nz/2)*(ny*nx) + (ny/2)*nx + nx/2
	if samples[centerIdx] < Iso {
		t.Errorf("grid center sample = %d, want >= Iso (%d)", samples[centerIdx], Iso)
	}
	if samples[0] >= Iso {
		t.Errorf("grid corner sample = %d, want < Iso (%d)", samples[0], Iso)
	}

	// origin should sit outside the sphere's bounding box (the margin).
	bb := solid.BoundingBox()
	if origin[0] >= bb.Min.X {
		t.Errorf("origin.X = %g, want < bounding box min %g", origin[0], bb.Min.X)
	}
}

func TestToWorldRoundTripsOrigin(t *testing.T) {
	origin := [3]float64{-1, -2, -3}
	cellSize := 0.5
	v := dmc.Vertex{X: 2, Y: 4, Z: 6}

	x, y, z := ToWorld(v, origin, cellSize)
	if x != -1+2*0.5 || y != -2+4*0.5 || z != -3+6*0.5 {
		t.Errorf("ToWorld(%v) = (%g, %g, %g), unexpected", v, x, y, z)
	}
}
