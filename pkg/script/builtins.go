package script

import (
	"fmt"

	"github.com/chazu/lignin/pkg/scene"
	zygo "github.com/glycerine/zygomys/zygo"
)

// contentID derives a node's ID and content hash from its kind, a
// caller-supplied summary of its data, and its children, so two script
// forms that build identical geometry resolve to the same node instead of
// duplicating it. label is a human-readable prefix only; identity comes
// entirely from the hash.
func contentID(label string, kind scene.NodeKind, summary string, children []scene.NodeID) (scene.NodeID, scene.ContentHash) {
	hash := scene.NewContentHash(kind, summary, children)
	return scene.NodeID(fmt.Sprintf("%s-%s", label, hash)), hash
}

func vec3Summary(v *scene.Vec3) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%g,%g,%g", v.X, v.Y, v.Z)
}

// registerBuiltins wires the scene-construction vocabulary into env, mutating
// s as each form is evaluated. Every builtin except vec3 (which returns a
// *sexpVec3) returns a *sexpNodeRef so forms compose:
// (union a (place b :at (vec3 1 0 0))).
func registerBuiltins(env *zygo.Zlisp, s *scene.Scene) {
	env.AddFunction("vec3", builtinVec3)

	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		r, err := toFloat64Default(a.kw, "r", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		return addPrimitive(s, "sphere", fmt.Sprintf("r=%g", r), scene.SphereData{Radius: r}), nil
	})

	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		x, err := toFloat64Default(a.kw, "x", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		y, err := toFloat64Default(a.kw, "y", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		z, err := toFloat64Default(a.kw, "z", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		round, err := toFloat64Default(a.kw, "round", 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		summary := fmt.Sprintf("x=%g,y=%g,z=%g,round=%g", x, y, z, round)
		return addPrimitive(s, "box", summary, scene.BoxData{
			Dimensions: scene.Vec3{X: x, Y: y, Z: z},
			Round:      round,
		}), nil
	})

	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		major, err := toFloat64Default(a.kw, "major", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minor, err := toFloat64Default(a.kw, "minor", 0.5)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		summary := fmt.Sprintf("major=%g,minor=%g", major, minor)
		return addPrimitive(s, "torus", summary, scene.TorusData{MajorRadius: major, MinorRadius: minor}), nil
	})

	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		h, err := toFloat64Default(a.kw, "h", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		r, err := toFloat64Default(a.kw, "r", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		summary := fmt.Sprintf("h=%g,r=%g", h, r)
		return addPrimitive(s, "cylinder", summary, scene.CylinderData{Height: h, Radius: r}), nil
	})

	env.AddFunction("place", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("place: expected a node argument")
		}
		child, err := toNodeRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("place: %w", err)
		}
		a := parseArgs(args[1:])
		data := scene.TransformData{}
		if at, ok := a.kw["at"]; ok {
			v, err := toVec3(at)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place :at: %w", err)
			}
			data.Translation = &v
		}
		if rot, ok := a.kw["rotate"]; ok {
			v, err := toVec3(rot)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("place :rotate: %w", err)
			}
			data.Rotation = &v
		}
		summary := fmt.Sprintf("at=%s;rotate=%s", vec3Summary(data.Translation), vec3Summary(data.Rotation))
		id, hash := contentID("transform", scene.NodeTransform, summary, []scene.NodeID{child})
		s.AddNode(&scene.Node{ID: id, Kind: scene.NodeTransform, Children: []scene.NodeID{child}, ContentHash: hash, Data: data})
		return &sexpNodeRef{id: id}, nil
	})

	env.AddFunction("union", combinator(s, scene.BoolUnion))
	env.AddFunction("difference", combinator(s, scene.BoolDifference))
	env.AddFunction("intersection", combinator(s, scene.BoolIntersection))

	env.AddFunction("group", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		children, err := nodeRefs(a.positional)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("group: %w", err)
		}
		description := ""
		if d, ok := a.kw["desc"]; ok {
			description, err = toString(d)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("group :desc: %w", err)
			}
		}
		// Groups are organizational, not structural: two groups wrapping the
		// same children shouldn't merge just because their content matches,
		// so this gets an anonymous ID rather than a content hash.
		id := scene.NewAnonymousID("group")
		s.AddNode(&scene.Node{ID: id, Kind: scene.NodeGroup, Children: children, Data: scene.GroupData{Description: description}})
		return &sexpNodeRef{id: id}, nil
	})

	env.AddFunction("root", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("root: expected exactly one node argument")
		}
		id, err := toNodeRef(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("root: %w", err)
		}
		s.AddRoot(id)
		return args[0], nil
	})
}

func builtinVec3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 3 {
		return zygo.SexpNull, fmt.Errorf("vec3: expected 3 arguments, got %d", len(args))
	}
	x, err := toFloat64(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
	}
	y, err := toFloat64(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
	}
	z, err := toFloat64(args[2])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
	}
	return &sexpVec3{vec: scene.Vec3{X: x, Y: y, Z: z}}, nil
}

func addPrimitive(s *scene.Scene, label, summary string, data scene.NodeData) *sexpNodeRef {
	id, hash := contentID(label, scene.NodePrimitive, summary, nil)
	s.AddNode(&scene.Node{ID: id, Kind: scene.NodePrimitive, ContentHash: hash, Data: data})
	return &sexpNodeRef{id: id}
}

// combinator builds the (union ...)/(difference ...)/(intersection ...)
// builtin for a fixed BoolOp: every positional argument becomes a child of a
// single NodeUnion node.
func combinator(s *scene.Scene, op scene.BoolOp) func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		children, err := nodeRefs(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		if len(children) < 2 {
			return zygo.SexpNull, fmt.Errorf("%s: expected at least 2 node arguments, got %d", name, len(children))
		}
		id, hash := contentID(op.String(), scene.NodeUnion, op.String(), children)
		s.AddNode(&scene.Node{ID: id, Kind: scene.NodeUnion, Children: children, ContentHash: hash, Data: scene.UnionData{Op: op}})
		return &sexpNodeRef{id: id}, nil
	}
}

func nodeRefs(args []zygo.Sexp) ([]scene.NodeID, error) {
	ids := make([]scene.NodeID, 0, len(args))
	for _, a := range args {
		id, err := toNodeRef(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
