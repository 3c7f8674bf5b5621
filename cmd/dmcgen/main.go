// Command dmcgen is an example driver: it builds a volume from either a
// raw-volume file or a scene script, extracts a quad mesh with dmc.Build,
// and writes the result as OBJ, 3MF, or an SVG slice preview.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/lignin/pkg/dmc"
	"github.com/chazu/lignin/pkg/meshio/obj"
	"github.com/chazu/lignin/pkg/meshio/rawvol"
	"github.com/chazu/lignin/pkg/meshio/svgslice"
	"github.com/chazu/lignin/pkg/meshio/threemf"
	"github.com/chazu/lignin/pkg/scene"
	"github.com/chazu/lignin/pkg/script"
	"github.com/chazu/lignin/pkg/volsrc/sdfx"
)

func main() {
	var (
		rawPath   = flag.String("raw", "", "path to a raw-volume file (mutually exclusive with -scene)")
		scenePath = flag.String("scene", "", "path to a scene script (mutually exclusive with -raw)")
		cellSize  = flag.Float64("cell-size", 0.25, "sampling cell size for -scene, in scene units")
		iso       = flag.Int("iso", int(sdfx.Iso), "iso-value threshold, 0-255")
		manifold     = flag.Bool("manifold", true, "apply manifold-dual-marching-cubes correction")
		soup         = flag.Bool("soup", false, "emit a quad soup instead of a shared-vertex mesh")
		out          = flag.String("out", "out.obj", "output path; extension selects the writer (.obj, .3mf, .svg)")
		sliceZ       = flag.Float64("slice-z", 0, "Z plane for an .svg slice preview")
		warnOverlaps = flag.Bool("warn-overlaps", false, "for -scene, warn about overlapping siblings under a union node before sampling")
	)
	flag.Parse()

	if err := run(*rawPath, *scenePath, *cellSize, uint8(*iso), *manifold, *soup, *out, *sliceZ, *warnOverlaps); err != nil {
		log.Fatal(err)
	}
}

func run(rawPath, scenePath string, cellSize float64, iso uint8, manifold, soup bool, out string, sliceZ float64, warnOverlaps bool) error {
	samples, nx, ny, nz, origin, err := loadVolume(rawPath, scenePath, cellSize, warnOverlaps)
	if err != nil {
		return err
	}

	vertices, quads, err := dmc.Build(samples, nx, ny, nz, iso, manifold, soup)
	if err != nil {
		return fmt.Errorf("dmcgen: extracting mesh: %w", err)
	}
	if scenePath != "" {
		for i, v := range vertices {
			x, y, z := sdfx.ToWorld(v, origin, cellSize)
			vertices[i] = dmc.Vertex{X: float32(x), Y: float32(y), Z: float32(z)}
		}
	}

	fmt.Fprintf(os.Stderr, "dmcgen: %d vertices, %d quads\n", len(vertices), len(quads))
	return writeMesh(out, vertices, quads, sliceZ)
}

func loadVolume(rawPath, scenePath string, cellSize float64, warnOverlaps bool) (samples []uint8, nx, ny, nz int32, origin [3]float64, err error) {
	switch {
	case rawPath != "" && scenePath != "":
		return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: -raw and -scene are mutually exclusive")
	case rawPath != "":
		f, err := os.Open(rawPath)
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: opening %s: %w", rawPath, err)
		}
		defer f.Close()
		h, s, err := rawvol.Read(f)
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: reading %s: %w", rawPath, err)
		}
		return s, h.NX, h.NY, h.NZ, origin, nil
	case scenePath != "":
		src, err := os.ReadFile(scenePath)
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: reading %s: %w", scenePath, err)
		}
		eng := script.NewEngine()
		sc, evalErrs, err := eng.Evaluate(string(src))
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: evaluating %s: %w", scenePath, err)
		}
		if len(evalErrs) > 0 {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: %s: %v", scenePath, evalErrs[0])
		}
		if errs := scene.Validate(sc); len(errs) > 0 {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: %s: %v", scenePath, errs[0])
		}
		if warnOverlaps {
			pairs, err := scene.Overlaps(sc)
			if err != nil {
				return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: checking overlaps in %s: %w", scenePath, err)
			}
			for _, p := range pairs {
				fmt.Fprintf(os.Stderr, "dmcgen: warning: %s and %s overlap under the same union\n", p[0], p[1])
			}
		}
		solid, err := scene.ToSDF3(sc)
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: compiling %s: %w", scenePath, err)
		}
		sampler, err := sdfx.New(cellSize)
		if err != nil {
			return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: %w", err)
		}
		return sampler.Sample(solid)
	default:
		return nil, 0, 0, 0, origin, fmt.Errorf("dmcgen: one of -raw or -scene is required")
	}
}

func writeMesh(out string, vertices []dmc.Vertex, quads []dmc.Quad, sliceZ float64) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("dmcgen: creating %s: %w", out, err)
	}
	defer f.Close()

	switch ext(out) {
	case ".3mf":
		return threemf.Write(f, vertices, quads)
	case ".svg":
		opts := svgslice.DefaultOptions()
		opts.Z = sliceZ
		setSliceBounds(&opts, vertices)
		return svgslice.Write(f, vertices, quads, opts)
	default:
		return obj.Write(f, vertices, quads)
	}
}

func setSliceBounds(opts *svgslice.Options, vertices []dmc.Vertex) {
	if len(vertices) == 0 {
		return
	}
	opts.MinX, opts.MaxX = float64(vertices[0].X), float64(vertices[0].X)
	opts.MinY, opts.MaxY = float64(vertices[0].Y), float64(vertices[0].Y)
	for _, v := range vertices[1:] {
		opts.MinX = minf(opts.MinX, float64(v.X))
		opts.MaxX = maxf(opts.MaxX, float64(v.X))
		opts.MinY = minf(opts.MinY, float64(v.Y))
		opts.MaxY = maxf(opts.MaxY, float64(v.Y))
	}
}

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
