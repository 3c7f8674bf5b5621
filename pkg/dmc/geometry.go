package dmc

// axis names one of the three grid axes.
type axis uint8

const (
	axisX axis = iota
	axisY
	axisZ
)

// cornerOffset gives the (dx,dy,dz) offset of each of a cell's eight
// corners from its low corner, in the corner-index order fixed by the
// external interface:
//
//	0:(0,0,0) 1:(1,0,0) 2:(0,1,0) 3:(1,1,0)
//	4:(0,0,1) 5:(1,0,1) 6:(0,1,1) 7:(1,1,1)
var cornerOffset = [8][3]int32{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// edgeCorners gives the two corner indices spanned by each of the twelve
// cell edges, in the edge-index order fixed by the external interface.
var edgeCorners = [12][2]uint8{
	{0, 1}, {1, 5}, {4, 5}, {0, 4},
	{2, 3}, {3, 7}, {6, 7}, {2, 6},
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// edgeAxis gives the axis each edge varies along; the other two coordinates
// are fixed at the 0/1 value of the edge's position within the cell.
var edgeAxis = [12]axis{
	axisX, axisZ, axisX, axisZ,
	axisX, axisZ, axisX, axisZ,
	axisY, axisY, axisY, axisY,
}

// cubeFace describes one of a cell's six faces: its four corners and four
// edges, both listed in a consistent cyclic order (edge i connects
// corners[i] and corners[(i+1)%4]), and the ambiguous-face direction code
// this face represents when its corners are diagonally ambiguous (bit 0
// sign, bits 1-2 axis, as resolved by the manifold corrector).
type cubeFace struct {
	corners [4]uint8
	edges   [4]uint8
	dir     uint8
}

var cubeFaces = [6]cubeFace{
	{corners: [4]uint8{0, 2, 6, 4}, edges: [4]uint8{8, 7, 11, 3}, dir: 0}, // -x
	{corners: [4]uint8{1, 3, 7, 5}, edges: [4]uint8{9, 5, 10, 1}, dir: 1}, // +x
	{corners: [4]uint8{0, 1, 5, 4}, edges: [4]uint8{0, 1, 2, 3}, dir: 2},  // -y
	{corners: [4]uint8{2, 3, 7, 6}, edges: [4]uint8{4, 5, 6, 7}, dir: 3},  // +y
	{corners: [4]uint8{0, 1, 3, 2}, edges: [4]uint8{0, 9, 4, 8}, dir: 4},  // -z
	{corners: [4]uint8{4, 5, 7, 6}, edges: [4]uint8{2, 10, 6, 11}, dir: 5}, // +z
}
