package scene

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"
)

// Primitives returns every primitive node in the scene, in map iteration
// order.
func Primitives(s *Scene) []*Node {
	all := make([]*Node, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		all = append(all, n)
	}
	return lo.Filter(all, func(n *Node, _ int) bool {
		return n.Kind == NodePrimitive
	})
}

// boundingBoxNode wraps a *Node's solid bounding box so it can be indexed
// by rtreego.
type boundingBoxNode struct {
	node *Node
	rect rtreego.Rect
}

func (b boundingBoxNode) Bounds() rtreego.Rect {
	return b.rect
}

// Overlaps reports pairs of sibling nodes under the same boolean-union node
// whose world-space bounding boxes intersect. For a union (rather than a
// difference or intersection), an overlap is usually intentional, but it is
// still useful to surface: the SDF composition itself has no notion of
// "these two volumes occupy the same space" to warn about on its own.
func Overlaps(s *Scene) ([][2]NodeID, error) {
	var pairs [][2]NodeID
	for _, n := range s.Nodes {
		if n.Kind != NodeUnion {
			continue
		}
		overlaps, err := overlapsAmongChildren(s, n)
		if err != nil {
			return nil, fmt.Errorf("scene: computing overlaps for union %s: %w", n.ID, err)
		}
		pairs = append(pairs, overlaps...)
	}
	return pairs, nil
}

func overlapsAmongChildren(s *Scene, n *Node) ([][2]NodeID, error) {
	tree := rtreego.NewTree(3, 2, 8)
	entries := make(map[NodeID]boundingBoxNode, len(n.Children))

	for _, cid := range n.Children {
		child := s.Nodes[cid]
		if child == nil {
			continue
		}
		solid, err := buildNode(s, cid)
		if err != nil {
			return nil, err
		}
		bb := solid.BoundingBox()
		lengths := []float64{bb.Max.X - bb.Min.X, bb.Max.Y - bb.Min.Y, bb.Max.Z - bb.Min.Z}
		for i, l := range lengths {
			if l <= 0 {
				lengths[i] = 1e-9
			}
		}
		rect, err := rtreego.NewRect(rtreego.Point{bb.Min.X, bb.Min.Y, bb.Min.Z}, lengths)
		if err != nil {
			return nil, err
		}
		entry := boundingBoxNode{node: child, rect: rect}
		entries[cid] = entry
		tree.Insert(entry)
	}

	seen := make(map[[2]NodeID]bool)
	var pairs [][2]NodeID
	for cid, entry := range entries {
		hits := tree.SearchIntersect(entry.rect)
		for _, h := range hits {
			other := h.(boundingBoxNode)
			if other.node.ID == cid {
				continue
			}
			key := [2]NodeID{cid, other.node.ID}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	return pairs, nil
}
