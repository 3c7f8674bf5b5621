package dmc

// resolveDualPoint returns the point code of the dual point that contains
// edgeBit (a single set bit in [0,12)) for the given cell code, or 0 if
// none of the cell's up-to-four slots contains it. The resolver is total:
// a zero result only arises if the caller queries an edge the cell does
// not actually intersect, which never happens along the quad emitter's own
// intersection-tested edges.
func resolveDualPoint(cellCode uint8, edgeBit uint16) uint16 {
	for _, code := range dualPointsList[cellCode] {
		if code&edgeBit != 0 {
			return code
		}
	}
	return 0
}

// dualPointPosition computes the position of the dual point identified by
// pointCode inside the cell at (x,y,z): the arithmetic mean, in cell-local
// coordinates, of the linearly interpolated edge intersections contributed
// by each set bit, offset by the cell's low corner.
func dualPointPosition(v *Volume, iso uint8, x, y, z int32, pointCode uint16) Vertex {
	var px, py, pz, n float32
	for e := uint8(0); e < 12; e++ {
		bit := uint16(1) << e
		if pointCode&bit == 0 {
			continue
		}
		dx, dy, dz := edgeIntersection(v, iso, x, y, z, e)
		px += dx
		py += dy
		pz += dz
		n++
	}
	if n > 0 {
		px /= n
		py /= n
		pz /= n
	}
	return Vertex{X: float32(x) + px, Y: float32(y) + py, Z: float32(z) + pz}
}

// edgeIntersection returns the cell-local position, in [0,1]^3, at which
// edge e of the cell at (x,y,z) crosses iso. The denominator b-a is
// guaranteed non-zero: edgeIntersection is only called for edges set in a
// point code, and those edges are only set for cells where the edge's two
// endpoints straddle iso.
func edgeIntersection(v *Volume, iso uint8, x, y, z int32, e uint8) (dx, dy, dz float32) {
	ends := edgeCorners[e]
	offA := cornerOffset[ends[0]]
	offB := cornerOffset[ends[1]]

	a := float32(v.sample(x+offA[0], y+offA[1], z+offA[2]))
	b := float32(v.sample(x+offB[0], y+offB[1], z+offB[2]))
	t := (float32(iso) - a) / (b - a)

	dx, dy, dz = float32(offA[0]), float32(offA[1]), float32(offA[2])
	switch edgeAxis[e] {
	case axisX:
		dx = t
	case axisY:
		dy = t
	case axisZ:
		dz = t
	}
	return dx, dy, dz
}
