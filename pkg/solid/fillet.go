package solid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeSelector picks edges of a solid
type EdgeSelector int

const (
	// VerticalOnExtremeX selects edges parallel to Z lying on the min-X or max-X face
	VerticalOnExtremeX EdgeSelector = iota
	// VerticalOnExtremeY selects edges parallel to Z lying on the min-Y or max-Y face
	VerticalOnExtremeY
)

func (e EdgeSelector) String() string {
	switch e {
	case VerticalOnExtremeX:
		return "|Z and (>X or <X)"
	case VerticalOnExtremeY:
		return "|Z and (>Y or <Y)"
	default:
		return fmt.Sprintf("EdgeSelector(%d)", int(e))
	}
}

// round is a convex vertical edge replaced by a quarter cylinder.
// sx and sy point from the cylinder axis towards the edge.
type round struct {
	x, y   float64
	sx, sy int
	z0, z1 float64
	radius float64
}

func (r round) centerX() float64 { return r.x - float64(r.sx)*r.radius }
func (r round) centerY() float64 { return r.y - float64(r.sy)*r.radius }

func (r round) translate(d r3.Vec) round {
	r.x += d.X
	r.y += d.Y
	r.z0 += d.Z
	r.z1 += d.Z
	return r
}

// Fillet rounds every selected edge with the given radius. The corner
// square of each edge must be solid along the whole edge, free of other
// features, and open above and below.
func (s Solid) Fillet(sel EdgeSelector, radius float64) (Solid, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Solid{}, fmt.Errorf("%w: radius %v", ErrFillet, radius)
	}
	if s.Empty() {
		return Solid{}, fmt.Errorf("%w: empty solid", ErrFillet)
	}

	g, err := s.grid()
	if err != nil {
		return Solid{}, err
	}

	var edges []round
	switch sel {
	case VerticalOnExtremeX:
		edges = g.extremeXEdges(radius)
	case VerticalOnExtremeY:
		edges = g.extremeYEdges(radius)
	default:
		return Solid{}, fmt.Errorf("%w: unknown selector %v", ErrFillet, sel)
	}
	if len(edges) == 0 {
		return Solid{}, fmt.Errorf("%w: no edges match %v", ErrFillet, sel)
	}

	out := Solid{
		boxes:  s.boxes,
		rounds: append(append([]round(nil), s.rounds...), edges...),
	}
	if _, err := out.grid(); err != nil {
		return Solid{}, err
	}
	return out, nil
}

// extremeXEdges finds the vertical boundary edges of the min-X and max-X faces
func (g *grid) extremeXEdges(radius float64) []round {
	var out []round
	for _, side := range []int{-1, 1} {
		i, x := 0, g.xs[0]
		if side > 0 {
			i, x = g.nx-1, g.xs[g.nx]
		}
		for j := 0; j <= g.ny; j++ {
			out = append(out, g.edgeRuns(func(k int) (bool, bool) {
				return g.at(i, j-1, k), g.at(i, j, k)
			}, func(dir int, z0, z1 float64) round {
				return round{x: x, y: g.ys[j], sx: side, sy: dir, z0: z0, z1: z1, radius: radius}
			})...)
		}
	}
	return out
}

// extremeYEdges finds the vertical boundary edges of the min-Y and max-Y faces
func (g *grid) extremeYEdges(radius float64) []round {
	var out []round
	for _, side := range []int{-1, 1} {
		j, y := 0, g.ys[0]
		if side > 0 {
			j, y = g.ny-1, g.ys[g.ny]
		}
		for i := 0; i <= g.nx; i++ {
			out = append(out, g.edgeRuns(func(k int) (bool, bool) {
				return g.at(i-1, j, k), g.at(i, j, k)
			}, func(dir int, z0, z1 float64) round {
				return round{x: g.xs[i], y: y, sx: dir, sy: side, z0: z0, z1: z1, radius: radius}
			})...)
		}
	}
	return out
}

// edgeRuns walks up one grid line on a face and merges consecutive layers
// where exactly one side of the line is solid into single edges.
// The direction is +1 when the solid side is below the line.
func (g *grid) edgeRuns(sides func(k int) (bool, bool), mk func(dir int, z0, z1 float64) round) []round {
	var out []round
	start, dir := -1, 0
	flush := func(k int) {
		if start >= 0 {
			out = append(out, mk(dir, g.zs[start], g.zs[k]))
		}
		start, dir = -1, 0
	}
	for k := 0; k < g.nz; k++ {
		below, above := sides(k)
		d := 0
		switch {
		case below && !above:
			d = 1
		case above && !below:
			d = -1
		}
		if d != dir {
			flush(k)
			if d != 0 {
				start, dir = k, d
			}
		}
	}
	flush(g.nz)
	return out
}

// round marks the corner cell of an edge as rounded after checking that the
// quarter cylinder fits
func (g *grid) round(r round) error {
	ex, cx := find(g.xs, r.x), find(g.xs, r.centerX())
	ey, cy := find(g.ys, r.y), find(g.ys, r.centerY())
	k0, k1 := find(g.zs, r.z0), find(g.zs, r.z1)
	if ex < 0 || cx < 0 || ey < 0 || cy < 0 || k0 < 0 || k1 <= k0 {
		return fmt.Errorf("%w: edge at (%v, %v) is off the grid", ErrFillet, r.x, r.y)
	}
	if abs(ex-cx) != 1 || abs(ey-cy) != 1 {
		return fmt.Errorf("%w: radius %v crosses other features at edge (%v, %v)", ErrFillet, r.radius, r.x, r.y)
	}

	i, j := min(ex, cx), min(ey, cy)
	for k := k0; k < k1; k++ {
		if !g.at(i, j, k) {
			return fmt.Errorf("%w: radius %v exceeds the material at edge (%v, %v)", ErrFillet, r.radius, r.x, r.y)
		}
		if g.at(i+r.sx, j, k) || g.at(i, j+r.sy, k) {
			return fmt.Errorf("%w: edge at (%v, %v) is not convex", ErrFillet, r.x, r.y)
		}
		idx := g.index(i, j, k)
		if _, dup := g.rounded[idx]; dup {
			return fmt.Errorf("%w: edge at (%v, %v) is rounded twice", ErrFillet, r.x, r.y)
		}
		g.rounded[idx] = r
	}
	if g.at(i, j, k0-1) || g.at(i, j, k1) {
		return fmt.Errorf("%w: rounded edge at (%v, %v) is covered above or below", ErrFillet, r.x, r.y)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
