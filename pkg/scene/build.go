package scene

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ToSDF3 compiles a scene into an sdf.SDF3 rooted at the scene's first root,
// for sampling by pkg/volsrc/sdfx. It fails if the scene has no roots, a
// child reference is missing, or a node's data does not match its kind.
func ToSDF3(s *Scene) (sdf.SDF3, error) {
	if len(s.Roots) == 0 {
		return nil, fmt.Errorf("scene: no root node to build")
	}
	return buildNode(s, s.Roots[0])
}

func buildNode(s *Scene, id NodeID) (sdf.SDF3, error) {
	n := s.Nodes[id]
	if n == nil {
		return nil, fmt.Errorf("scene: missing node %s", id)
	}
	switch n.Kind {
	case NodePrimitive:
		return buildPrimitive(n)
	case NodeTransform:
		return buildTransform(s, n)
	case NodeUnion:
		return buildUnion(s, n)
	case NodeGroup:
		return buildGroup(s, n)
	default:
		return nil, fmt.Errorf("scene: node %s has unknown kind %s", id, n.Kind)
	}
}

func buildPrimitive(n *Node) (sdf.SDF3, error) {
	switch d := n.Data.(type) {
	case SphereData:
		return sdf.Sphere3D(d.Radius)
	case BoxData:
		dims := v3.Vec{X: d.Dimensions.X, Y: d.Dimensions.Y, Z: d.Dimensions.Z}
		box, err := sdf.Box3D(dims, d.Round)
		if err != nil {
			return nil, err
		}
		// Min-corner-at-origin convention, matching BoxData's doc comment.
		m := sdf.Translate3d(v3.Vec{X: dims.X / 2, Y: dims.Y / 2, Z: dims.Z / 2})
		return sdf.Transform3D(box, m), nil
	case TorusData:
		return sdf.Torus3D(d.MinorRadius, d.MajorRadius)
	case CylinderData:
		return sdf.Cylinder3D(d.Height, d.Radius, 0)
	default:
		return nil, fmt.Errorf("scene: node %s is a primitive with unrecognized data %T", n.ID, n.Data)
	}
}

func buildTransform(s *Scene, n *Node) (sdf.SDF3, error) {
	if len(n.Children) != 1 {
		return nil, fmt.Errorf("scene: transform node %s wants exactly 1 child, has %d", n.ID, len(n.Children))
	}
	child, err := buildNode(s, n.Children[0])
	if err != nil {
		return nil, err
	}
	d, ok := n.Data.(TransformData)
	if !ok {
		return nil, fmt.Errorf("scene: node %s is a transform with unrecognized data %T", n.ID, n.Data)
	}

	m := sdf.Identity3d()
	if d.Rotation != nil {
		rx := d.Rotation.X * math.Pi / 180
		ry := d.Rotation.Y * math.Pi / 180
		rz := d.Rotation.Z * math.Pi / 180
		m = sdf.RotateZ(rz).Mul(sdf.RotateY(ry)).Mul(sdf.RotateX(rx))
	}
	if d.Translation != nil {
		t := v3.Vec{X: d.Translation.X, Y: d.Translation.Y, Z: d.Translation.Z}
		m = sdf.Translate3d(t).Mul(m)
	}
	return sdf.Transform3D(child, m), nil
}

func buildUnion(s *Scene, n *Node) (sdf.SDF3, error) {
	if len(n.Children) < 2 {
		return nil, fmt.Errorf("scene: union node %s wants at least 2 children, has %d", n.ID, len(n.Children))
	}
	d, ok := n.Data.(UnionData)
	if !ok {
		return nil, fmt.Errorf("scene: node %s is a union with unrecognized data %T", n.ID, n.Data)
	}

	kids := make([]sdf.SDF3, len(n.Children))
	for i, cid := range n.Children {
		child, err := buildNode(s, cid)
		if err != nil {
			return nil, err
		}
		kids[i] = child
	}

	acc := kids[0]
	for _, k := range kids[1:] {
		switch d.Op {
		case BoolUnion:
			acc = sdf.Union3D(acc, k)
		case BoolDifference:
			acc = sdf.Difference3D(acc, k)
		case BoolIntersection:
			acc = sdf.Intersect3D(acc, k)
		default:
			return nil, fmt.Errorf("scene: node %s has unknown boolean op %s", n.ID, d.Op)
		}
	}
	return acc, nil
}

func buildGroup(s *Scene, n *Node) (sdf.SDF3, error) {
	if len(n.Children) == 0 {
		return nil, fmt.Errorf("scene: group node %s has no children", n.ID)
	}
	kids := make([]sdf.SDF3, len(n.Children))
	for i, cid := range n.Children {
		child, err := buildNode(s, cid)
		if err != nil {
			return nil, err
		}
		kids[i] = child
	}
	acc := kids[0]
	for _, k := range kids[1:] {
		acc = sdf.Union3D(acc, k)
	}
	return acc, nil
}
