package scene

import "testing"

func TestOverlapsDetectsIntersectingSiblings(t *testing.T) {
	s := New()
	s.AddNode(sphereNode("a", 2))
	s.AddNode(sphereNode("b", 2))
	s.AddNode(&Node{ID: "b-t", Kind: NodeTransform, Children: []NodeID{"b"}, Data: TransformData{Translation: &Vec3{X: 1}}})
	s.AddNode(&Node{ID: "u", Kind: NodeUnion, Children: []NodeID{"a", "b-t"}, Data: UnionData{Op: BoolUnion}})
	s.AddRoot("u")

	pairs, err := Overlaps(s)
	if err != nil {
		t.Fatalf("Overlaps: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Overlaps = %v, want 1 pair", pairs)
	}
	got := pairs[0]
	if got != (([2]NodeID{"a", "b-t"})) && got != (([2]NodeID{"b-t", "a"})) {
		t.Errorf("Overlaps pair = %v, want {a, b-t}", got)
	}
}

func TestOverlapsIgnoresDisjointSiblings(t *testing.T) {
	s := New()
	s.AddNode(sphereNode("a", 1))
	s.AddNode(sphereNode("b", 1))
	s.AddNode(&Node{ID: "b-t", Kind: NodeTransform, Children: []NodeID{"b"}, Data: TransformData{Translation: &Vec3{X: 100}}})
	s.AddNode(&Node{ID: "u", Kind: NodeUnion, Children: []NodeID{"a", "b-t"}, Data: UnionData{Op: BoolUnion}})
	s.AddRoot("u")

	pairs, err := Overlaps(s)
	if err != nil {
		t.Fatalf("Overlaps: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Overlaps = %v, want no pairs, got %v", len(pairs), pairs)
	}
}

func TestOverlapsIgnoresNonUnionNodes(t *testing.T) {
	s := New()
	s.AddNode(sphereNode("a", 2))
	s.AddNode(sphereNode("b", 2))
	s.AddNode(&Node{ID: "g", Kind: NodeGroup, Children: []NodeID{"a", "b"}, Data: GroupData{}})
	s.AddRoot("g")

	pairs, err := Overlaps(s)
	if err != nil {
		t.Fatalf("Overlaps: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Overlaps = %v, want no pairs for a group node", pairs)
	}
}
