package dmc

// correctedCellCode applies Wenger's manifold correction to the cell code
// at (x,y,z): when the cell's ambiguous face also ambiguously borders the
// corresponding neighbor cell, this cell's code is replaced by its bitwise
// complement before dual-point resolution. The rule is applied to each cell
// on its own, so when both cells of such a pair are queried, both codes are
// complemented.
//
// Correction is a pure function of the volume and position, so the vertex
// cache (keyed only on cell id and point code) stays referentially
// transparent: the same query always yields the same corrected code.
func correctedCellCode(v *Volume, iso uint8, x, y, z int32) uint8 {
	code := v.cellCode(x, y, z, iso)

	dir := ambiguousFaceDir[code]
	if dir == 255 {
		return code
	}

	ax := axis(dir >> 1)
	delta := int32(-1)
	if dir&1 != 0 {
		delta = 1
	}

	nx, ny, nz := x, y, z
	switch ax {
	case axisX:
		nx += delta
	case axisY:
		ny += delta
	case axisZ:
		nz += delta
	}

	dims := [3]int32{v.nx, v.ny, v.nz}
	coord := [3]int32{nx, ny, nz}[ax]
	if coord < 0 || coord >= dims[ax]-1 {
		return code
	}

	neighborCode := v.cellCode(nx, ny, nz, iso)
	if ambiguousFaceDir[neighborCode] == 255 {
		return code
	}
	return code ^ 0xFF
}
