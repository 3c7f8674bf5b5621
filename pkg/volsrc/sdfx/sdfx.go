// Package sdfx samples a github.com/deadsy/sdfx signed-distance solid onto
// a regular grid, producing the flat u8 volume the dmc package consumes.
// Rather than letting sdfx mesh the solid itself, this package only
// samples it, leaving meshing to dmc.Build.
package sdfx

import (
	"fmt"

	"github.com/chazu/lignin/pkg/dmc"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Iso is the sample value that represents the zero level set once a signed
// distance is clamped into [0,255]. It is the iso-value callers should pass
// to dmc.Build for a volume produced by Sample.
const Iso uint8 = 128

// clampScale converts one unit of signed distance into 8-bit sample units.
// At this scale the ramp from 0 to 255 covers signed distances from +2 to
// -2 solid units around the surface, whatever the cell size; farther points
// clamp. The ramp gives dmc's linear interpolation graded samples near the
// surface instead of a hard 0/255 step.
const clampScale = 255.0 / 4.0

// Sampler samples an sdf.SDF3 onto a grid with a fixed cell size.
type Sampler struct {
	cellSize float64
}

// New returns a Sampler that spaces grid points cellSize apart in solid
// units. The caller picks an absolute spacing rather than a cell count,
// since dmc.Build needs concrete dimensions up front.
func New(cellSize float64) (*Sampler, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("sdfx: cell size must be positive, got %g", cellSize)
	}
	return &Sampler{cellSize: cellSize}, nil
}

// Sample evaluates solid on a regular grid covering its bounding box, plus
// a two-cell margin on every side so the iso-surface closes instead of
// being clipped at the volume boundary (dmc.Build does not mesh crossings
// between the last two grid layers on the high side of each axis, so one
// cell of margin is not enough there). It returns the flat u8 samples and
// the grid dimensions ready to pass to dmc.Build, along with the
// grid-to-solid-space transform (origin and cell size) needed to map
// dmc.Vertex output back into the solid's own coordinate system.
func (s *Sampler) Sample(solid sdf.SDF3) (samples []uint8, nx, ny, nz int32, origin [3]float64, err error) {
	bb := solid.BoundingBox()
	const margin = 2

	nx = cellsAcross(bb.Min.X, bb.Max.X, s.cellSize) + 2*margin
	ny = cellsAcross(bb.Min.Y, bb.Max.Y, s.cellSize) + 2*margin
	nz = cellsAcross(bb.Min.Z, bb.Max.Z, s.cellSize) + 2*margin

	count, overflow := volumeCount(nx, ny, nz)
	if overflow {
		return nil, 0, 0, 0, origin, fmt.Errorf("sdfx: sample grid %dx%dx%d is too large", nx, ny, nz)
	}

	origin = [3]float64{
		bb.Min.X - float64(margin)*s.cellSize,
		bb.Min.Y - float64(margin)*s.cellSize,
		bb.Min.Z - float64(margin)*s.cellSize,
	}

	samples = make([]uint8, count)
	idx := 0
	for z := int32(0); z < nz; z++ {
		wz := origin[2] + float64(z)*s.cellSize
		for y := int32(0); y < ny; y++ {
			wy := origin[1] + float64(y)*s.cellSize
			for x := int32(0); x < nx; x++ {
				wx := origin[0] + float64(x)*s.cellSize
				d := solid.Evaluate(v3.Vec{X: wx, Y: wy, Z: wz})
				samples[idx] = clampSample(d)
				idx++
			}
		}
	}
	return samples, nx, ny, nz, origin, nil
}

// clampSample maps a signed distance (negative inside, per sdfx convention)
// into an 8-bit sample where larger means "more inside", matching dmc's
// ">= iso means inside" rule.
func clampSample(d float64) uint8 {
	v := float64(Iso) - d*clampScale
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func cellsAcross(lo, hi, cellSize float64) int32 {
	span := hi - lo
	n := int32(span/cellSize) + 1
	if n < 1 {
		n = 1
	}
	return n
}

func volumeCount(nx, ny, nz int32) (int32, bool) {
	total := int64(nx) * int64(ny) * int64(nz)
	if total <= 0 || total > 1<<28 {
		return 0, true
	}
	return int32(total), false
}

// ToWorld converts a dmc.Vertex (grid-index units) back into the solid's
// coordinate space, using the origin and cell size returned by Sample.
func ToWorld(v dmc.Vertex, origin [3]float64, cellSize float64) (x, y, z float64) {
	return origin[0] + float64(v.X)*cellSize,
		origin[1] + float64(v.Y)*cellSize,
		origin[2] + float64(v.Z)*cellSize
}
