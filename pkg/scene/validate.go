package scene

import "fmt"

// ValidationError describes a single validation finding.
type ValidationError struct {
	NodeID  NodeID // zero if scene-level
	Message string
}

func (e ValidationError) Error() string {
	if e.NodeID == "" {
		return e.Message
	}
	return fmt.Sprintf("node %s: %s", e.NodeID, e.Message)
}

// Validate runs structural checks on the scene graph: every child reference
// resolves, the graph is acyclic, and every root exists. An empty slice
// means the scene is valid.
func Validate(s *Scene) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateReferences(s)...)
	errs = append(errs, validateRoots(s)...)
	errs = append(errs, validateDAG(s)...)
	return errs
}

func validateReferences(s *Scene) []ValidationError {
	var errs []ValidationError
	for id, n := range s.Nodes {
		for _, cid := range n.Children {
			if _, ok := s.Nodes[cid]; !ok {
				errs = append(errs, ValidationError{
					NodeID:  id,
					Message: fmt.Sprintf("references missing child node %s", cid),
				})
			}
		}
	}
	return errs
}

func validateRoots(s *Scene) []ValidationError {
	var errs []ValidationError
	for _, id := range s.Roots {
		if _, ok := s.Nodes[id]; !ok {
			errs = append(errs, ValidationError{Message: fmt.Sprintf("root references missing node %s", id)})
		}
	}
	return errs
}

// validateDAG checks for cycles using DFS with 3-color marking: white
// (unvisited), gray (on the current path), black (fully explored). Finding
// a gray node again means a cycle.
func validateDAG(s *Scene) []ValidationError {
	const (
		white = iota
		gray
		black
	)
	color := make(map[NodeID]int)
	var errs []ValidationError

	var visit func(id NodeID) bool
	visit = func(id NodeID) bool {
		switch color[id] {
		case black:
			return false
		case gray:
			errs = append(errs, ValidationError{
				NodeID:  id,
				Message: "cycle detected: node is part of a cycle",
			})
			return true
		}
		color[id] = gray
		n := s.Nodes[id]
		if n != nil {
			for _, c := range n.Children {
				if visit(c) {
					color[id] = black
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for id := range s.Nodes {
		if color[id] == white {
			visit(id)
		}
	}
	return errs
}
