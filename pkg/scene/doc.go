// Package scene defines a content-addressed design graph of volumetric
// primitives, combined by boolean operations and spatial transforms, that
// compiles to an github.com/deadsy/sdfx solid for sampling by
// pkg/volsrc/sdfx and meshing by pkg/dmc.
//
// It holds a content-addressed, DAG-shaped Scene of typed Nodes: sphere,
// box, torus, and cylinder primitives combined by transform, union,
// difference, intersection, and group nodes.
package scene
