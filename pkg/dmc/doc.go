// Package dmc extracts a quad mesh from a regular grid of 8-bit scalar
// samples using Nielson's Dual Marching Cubes, with an optional application
// of Wenger's manifold correction. Build is the package's only entry point;
// everything else is private machinery: an 8-bit corner classifier, two
// 256-entry lookup tables generated once at package init from the cube's
// face topology, a resolver turning a classified cell and a queried edge
// into a dual point, linear edge-intersection geometry, a vertex cache for
// shared-vertex output, and a quad emitter sweeping the three edge
// directions of the grid.
//
// The package is synchronous and holds no state across calls: Build borrows
// its input slice for the duration of one call and returns freshly
// allocated output slices. A given volume may be built from multiple
// goroutines concurrently; nothing here is shared between calls.
package dmc
