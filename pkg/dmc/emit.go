package dmc

// Build extracts a quad mesh from volume, a flat grid of unsigned 8-bit
// samples with dimensions nx*ny*nz, at the given iso-value. If manifold is
// true, Wenger's correction is applied so the result is a 2-manifold. If
// soup is true, no vertex is shared between quads (every quad gets its own
// four fresh vertices); otherwise equal dual points resolve to the same
// output vertex.
//
// Build fails with InvalidInputError if len(volume) != nx*ny*nz, if
// nx*ny*nz overflows a 32-bit count, or if any dimension is negative. A
// volume whose dimensions match its data, with any dimension of 0 or 1, has
// no cells to scan and produces an empty, error-free mesh. Build does
// no I/O and holds no state across calls.
func Build(volume []uint8, nx, ny, nz int32, iso uint8, manifold, soup bool) ([]Vertex, []Quad, error) {
	v, err := newVolume(volume, nx, ny, nz)
	if err != nil {
		return nil, nil, err
	}
	if v.tooSmall() {
		return nil, nil, nil
	}

	vertices := make([]Vertex, 0)
	quads := make([]Quad, 0)
	cache := newVertexCache()

	for z := int32(0); z < nz-2; z++ {
		for y := int32(0); y < ny-2; y++ {
			for x := int32(0); x < nx-2; x++ {
				if z > 0 && y > 0 {
					emitXEdge(v, iso, manifold, soup, cache, x, y, z, &vertices, &quads)
				}
				if z > 0 && x > 0 {
					emitYEdge(v, iso, manifold, soup, cache, x, y, z, &vertices, &quads)
				}
				if x > 0 && y > 0 {
					emitZEdge(v, iso, manifold, soup, cache, x, y, z, &vertices, &quads)
				}
			}
		}
	}

	if soup {
		for k := 0; k < len(vertices)/4; k++ {
			base := int32(4 * k)
			quads = append(quads, Quad{base, base + 1, base + 2, base + 3})
		}
	}

	return vertices, quads, nil
}

// dualRef names one dual-point query: the cell it belongs to and the edge
// of interest within that cell.
type dualRef struct {
	x, y, z int32
	edge    uint8
}

// cellCodeFor returns the cell code to use for dual-point resolution at
// (x,y,z), applying the manifold correction when requested.
func cellCodeFor(v *Volume, iso uint8, manifold bool, x, y, z int32) uint8 {
	if manifold {
		return correctedCellCode(v, iso, x, y, z)
	}
	return v.cellCode(x, y, z, iso)
}

// emitQuad resolves the four dual points named by refs, in order, and
// records the resulting quad: through the vertex cache in shared mode, or
// as four freshly appended vertices in soup mode (quads are synthesized
// from those afterward, in Build).
func emitQuad(v *Volume, iso uint8, manifold, soup bool, cache *vertexCache, refs [4]dualRef, vertices *[]Vertex, quads *[]Quad) {
	if soup {
		for _, r := range refs {
			code := cellCodeFor(v, iso, manifold, r.x, r.y, r.z)
			point := resolveDualPoint(code, uint16(1)<<r.edge)
			*vertices = append(*vertices, dualPointPosition(v, iso, r.x, r.y, r.z, point))
		}
		return
	}

	var idx [4]int32
	for i, r := range refs {
		code := cellCodeFor(v, iso, manifold, r.x, r.y, r.z)
		point := resolveDualPoint(code, uint16(1)<<r.edge)
		cellID := v.linearIndex(r.x, r.y, r.z)
		idx[i] = cache.getOrInsert(v, iso, r.x, r.y, r.z, cellID, point, vertices)
	}
	*quads = append(*quads, Quad{idx[0], idx[1], idx[2], idx[3]})
}

// emitXEdge tests the grid edge from (x,y,z) to (x+1,y,z) and, if it
// crosses iso, emits the quad formed by the four cells sharing it.
func emitXEdge(v *Volume, iso uint8, manifold, soup bool, cache *vertexCache, x, y, z int32, vertices *[]Vertex, quads *[]Quad) {
	a, b := v.sample(x, y, z), v.sample(x+1, y, z)
	entering := a < iso && b >= iso
	exiting := a >= iso && b < iso
	if !entering && !exiting {
		return
	}

	natural := [4]dualRef{
		{x, y, z, 0},
		{x, y, z - 1, 2},
		{x, y - 1, z - 1, 6},
		{x, y - 1, z, 4},
	}
	refs := natural
	if exiting {
		refs = [4]dualRef{natural[0], natural[3], natural[2], natural[1]}
	}
	emitQuad(v, iso, manifold, soup, cache, refs, vertices, quads)
}

// emitYEdge tests the grid edge from (x,y,z) to (x,y+1,z) and, if it
// crosses iso, emits the quad formed by the four cells sharing it.
func emitYEdge(v *Volume, iso uint8, manifold, soup bool, cache *vertexCache, x, y, z int32, vertices *[]Vertex, quads *[]Quad) {
	a, b := v.sample(x, y, z), v.sample(x, y+1, z)
	entering := a < iso && b >= iso
	exiting := a >= iso && b < iso
	if !entering && !exiting {
		return
	}

	natural := [4]dualRef{
		{x, y, z, 8},
		{x, y, z - 1, 11},
		{x - 1, y, z - 1, 10},
		{x - 1, y, z, 9},
	}
	refs := natural
	if entering {
		refs = [4]dualRef{natural[0], natural[3], natural[2], natural[1]}
	}
	emitQuad(v, iso, manifold, soup, cache, refs, vertices, quads)
}

// emitZEdge tests the grid edge from (x,y,z) to (x,y,z+1) and, if it
// crosses iso, emits the quad formed by the four cells sharing it.
func emitZEdge(v *Volume, iso uint8, manifold, soup bool, cache *vertexCache, x, y, z int32, vertices *[]Vertex, quads *[]Quad) {
	a, b := v.sample(x, y, z), v.sample(x, y, z+1)
	entering := a < iso && b >= iso
	exiting := a >= iso && b < iso
	if !entering && !exiting {
		return
	}

	natural := [4]dualRef{
		{x, y, z, 3},
		{x - 1, y, z, 1},
		{x - 1, y - 1, z, 5},
		{x, y - 1, z, 7},
	}
	refs := natural
	if entering {
		refs = [4]dualRef{natural[0], natural[3], natural[2], natural[1]}
	}
	emitQuad(v, iso, manifold, soup, cache, refs, vertices, quads)
}
