package dmc

// vertexCache memoizes dual-point positions by (linear cell id, point
// code), so neighboring cells that share a dual point resolve to the same
// output vertex index. It is private scratch state: a fresh cache backs
// every Build call and is discarded when that call returns.
type vertexCache struct {
	index map[uint64]int32
}

func newVertexCache() *vertexCache {
	return &vertexCache{index: make(map[uint64]int32)}
}

// cacheKey packs a cell id and point code into a single lookup key. The
// pairing is effectively injective: a single cell never produces two
// distinct dual points with the same point code.
func cacheKey(cellID int32, code uint16) uint64 {
	return uint64(uint32(cellID)) | uint64(code)<<32
}

// getOrInsert returns the vertex index for (cellID, code), appending a
// freshly computed vertex to vertices the first time this dual point is
// requested and returning the memoized index on every later request.
func (c *vertexCache) getOrInsert(v *Volume, iso uint8, x, y, z, cellID int32, code uint16, vertices *[]Vertex) int32 {
	key := cacheKey(cellID, code)
	if idx, ok := c.index[key]; ok {
		return idx
	}
	idx := int32(len(*vertices))
	*vertices = append(*vertices, dualPointPosition(v, iso, x, y, z, code))
	c.index[key] = idx
	return idx
}
