package dmc

import "sort"

// dualPointsList[cc][slot] is the 12-bit point code of the slot-th dual
// point (Marching Cubes face) produced by cell code cc, or 0 if the slot is
// unused. Slots are filled from index 0 upward; trailing slots are 0.
var dualPointsList [256][4]uint16

// ambiguousFaceDir[cc] is the direction code (bit 0 sign, bits 1-2 axis) of
// cc's diagonally-ambiguous face when cc has exactly one such face, as
// consumed by the manifold corrector, and 255 when it has none or several.
var ambiguousFaceDir [256]uint8

func init() {
	for cc := 0; cc < 256; cc++ {
		dualPointsList[cc], ambiguousFaceDir[cc] = buildCellTables(uint8(cc))
	}
}

// buildCellTables computes the dual-point codes and ambiguous-face
// direction for a single cell code by tracing connected loops of bipolar
// (sign-crossing) edges across the cube's six faces.
//
// A dual point is, by definition, one Marching Cubes face of the cell, and
// an MC face is one connected loop of bipolar edges: every bipolar edge
// borders exactly two of the cube's faces and is paired with another
// bipolar edge on each of them (directly, when a face has one or three
// inside corners; via a fixed convention keyed on the face's first corner,
// when a face has two diagonal inside corners — the classic ambiguous
// case). Since every bipolar edge is paired exactly twice, the pairings
// partition the twelve edges into disjoint cycles, one per dual point.
func buildCellTables(cc uint8) (points [4]uint16, dir uint8) {
	inside := func(corner uint8) bool {
		return cc&(1<<corner) != 0
	}

	var parent [12]int8
	for i := range parent {
		parent[i] = int8(i)
	}
	var find func(int8) int8
	find = func(n int8) int8 {
		if parent[n] != n {
			parent[n] = find(parent[n])
		}
		return parent[n]
	}
	union := func(a, b uint8) {
		ra, rb := find(int8(a)), find(int8(b))
		if ra != rb {
			parent[ra] = rb
		}
	}

	var used [12]bool
	ambiguousFaces := 0
	ambiguousDir := uint8(255)

	for _, f := range cubeFaces {
		pairs, ambiguous := faceConnections(f, inside)
		for _, p := range pairs {
			union(p[0], p[1])
			used[p[0]] = true
			used[p[1]] = true
		}
		if ambiguous {
			ambiguousFaces++
			ambiguousDir = f.dir
		}
	}
	if ambiguousFaces != 1 {
		ambiguousDir = 255
	}

	codes := map[int8]uint16{}
	var roots []int8
	for e := 0; e < 12; e++ {
		if !used[e] {
			continue
		}
		r := find(int8(e))
		if _, ok := codes[r]; !ok {
			roots = append(roots, r)
		}
		codes[r] |= 1 << uint(e)
	}
	// Order slots by each loop's lowest edge index (its lowest set bit).
	sort.Slice(roots, func(i, j int) bool {
		ci, cj := codes[roots[i]], codes[roots[j]]
		return ci&-ci < cj&-cj
	})
	for i, r := range roots {
		if i >= len(points) {
			break
		}
		points[i] = codes[r]
	}
	return points, ambiguousDir
}

// faceConnections returns the bipolar-edge pairings a face contributes,
// given its corners' inside/outside state, and whether those corners form
// the diagonally ambiguous (checkerboard) pattern.
func faceConnections(f cubeFace, inside func(uint8) bool) (pairs [][2]uint8, ambiguous bool) {
	var s [4]bool
	count := 0
	for i, c := range f.corners {
		s[i] = inside(c)
		if s[i] {
			count++
		}
	}
	switch count {
	case 0, 4:
		return nil, false
	case 1, 3:
		// One corner disagrees with the other three; connect the two edges
		// that meet at it.
		minorityVal := count == 1
		m := 0
		for i, v := range s {
			if v == minorityVal {
				m = i
				break
			}
		}
		prev := (m + 3) % 4
		return [][2]uint8{{f.edges[prev], f.edges[m]}}, false
	default: // count == 2
		switch {
		case s[0] == s[1]:
			return [][2]uint8{{f.edges[1], f.edges[3]}}, false
		case s[1] == s[2]:
			return [][2]uint8{{f.edges[0], f.edges[2]}}, false
		case s[0]:
			return [][2]uint8{{f.edges[0], f.edges[1]}, {f.edges[2], f.edges[3]}}, true
		default:
			return [][2]uint8{{f.edges[1], f.edges[2]}, {f.edges[3], f.edges[0]}}, true
		}
	}
}
