package solid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrDegenerate is returned for zero-size or non-finite input geometry
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrFillet is returned when a fillet cannot be resolved on the selected edges
	ErrFillet = errors.New("fillet failed")
	// ErrTolerance is returned for unusable tessellation tolerances
	ErrTolerance = errors.New("invalid tessellation tolerance")
)

// snap is the distance below which two coordinates are treated as equal
const snap = 1e-6

// Solid is an immutable body made of axis-aligned boxes with optionally
// rounded vertical edges
type Solid struct {
	boxes  []r3.Box
	rounds []round
}

// Extrude sweeps the profile along +Z from z0 by height
func Extrude(p Profile, z0, height float64) (Solid, error) {
	if !(height > 0) || math.IsInf(height, 0) || math.IsNaN(z0) || math.IsInf(z0, 0) {
		return Solid{}, fmt.Errorf("%w: extrude height %v at z %v", ErrDegenerate, height, z0)
	}
	if len(p.rects) == 0 {
		return Solid{}, fmt.Errorf("%w: empty profile", ErrDegenerate)
	}

	boxes := make([]r3.Box, 0, len(p.rects))
	for _, r := range p.rects {
		if !positive(r) || !finite(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) {
			return Solid{}, fmt.Errorf("%w: profile rectangle %v", ErrDegenerate, r)
		}
		boxes = append(boxes, r3.Box{
			Min: r3.Vec{X: r.Min.X, Y: r.Min.Y, Z: z0},
			Max: r3.Vec{X: r.Max.X, Y: r.Max.Y, Z: z0 + height},
		})
	}
	return Solid{boxes: boxes}, nil
}

// Translate returns the solid moved by d
func (s Solid) Translate(d r3.Vec) Solid {
	out := Solid{
		boxes:  make([]r3.Box, len(s.boxes)),
		rounds: make([]round, len(s.rounds)),
	}
	for i, b := range s.boxes {
		out.boxes[i] = r3.Box{Min: r3.Add(b.Min, d), Max: r3.Add(b.Max, d)}
	}
	for i, r := range s.rounds {
		out.rounds[i] = r.translate(d)
	}
	return out
}

// Replicate places a copy of s at every offset and unions them.
// No offsets yields an empty solid.
func Replicate(s Solid, offsets []r3.Vec) Solid {
	copies := make([]Solid, len(offsets))
	for i, o := range offsets {
		copies[i] = s.Translate(o)
	}
	return Union(copies...)
}

// Union returns the boolean union of the solids
func Union(solids ...Solid) Solid {
	var out Solid
	for _, s := range solids {
		out.boxes = append(out.boxes, s.boxes...)
		out.rounds = append(out.rounds, s.rounds...)
	}
	return out
}

// Empty reports whether the solid encloses no volume
func (s Solid) Empty() bool {
	return len(s.boxes) == 0
}

// Bounds returns the axis-aligned bounding box of the solid
func (s Solid) Bounds() r3.Box {
	if s.Empty() {
		return r3.Box{}
	}
	b := s.boxes[0]
	for _, o := range s.boxes[1:] {
		b.Min = r3.Vec{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)}
	}
	return b
}

// Volume returns the exact enclosed volume, counting rounded edges as true arcs
func (s Solid) Volume() (float64, error) {
	if s.Empty() {
		return 0, nil
	}
	g, err := s.grid()
	if err != nil {
		return 0, err
	}
	var v float64
	g.eachFilled(func(i, j, k int) {
		dx, dy, dz := g.xs[i+1]-g.xs[i], g.ys[j+1]-g.ys[j], g.zs[k+1]-g.zs[k]
		if _, ok := g.rounded[g.index(i, j, k)]; ok {
			v += (math.Pi / 4) * dx * dy * dz
			return
		}
		v += dx * dy * dz
	})
	return v, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
